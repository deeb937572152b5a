package renderer

import (
	"github.com/polygonengine/polygon/assert"
)

// registry stores renderer resources keyed by a monotonically increasing
// id, and remembers insertion order so iteration is deterministic. Id 0 is
// never handed out and means "no resource".
type registry[ID ~uint32, T any] struct {
	items map[ID]*T
	order []ID
	next  ID
}

func newRegistry[ID ~uint32, T any]() registry[ID, T] {
	return registry[ID, T]{
		items: map[ID]*T{},
		next:  1,
	}
}

func (r *registry[ID, T]) add(item *T) ID {

	id := r.next
	r.next++

	_, exists := r.items[id]
	assert.T(!exists, "Registry already has an item with id %d", id)

	r.items[id] = item
	r.order = append(r.order, id)
	return id
}

func (r *registry[ID, T]) get(id ID) (*T, bool) {
	item, ok := r.items[id]
	return item, ok
}

// ids returns registered ids in insertion order. The returned slice is the
// registry's own backing slice and must not be mutated.
func (r *registry[ID, T]) ids() []ID {
	return r.order
}

func (r *registry[ID, T]) len() int {
	return len(r.order)
}
