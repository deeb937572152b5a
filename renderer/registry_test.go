package renderer

import (
	"testing"

	"github.com/polygonengine/polygon/scene"
)

func TestRegistryAdd(t *testing.T) {

	r := newRegistry[scene.AnchorId, scene.Anchor]()

	var prev scene.AnchorId
	for i := 0; i < 10; i++ {

		a := scene.NewAnchor()
		id := r.add(&a)

		if id == 0 {
			t.Fatal("registry handed out the zero id")
		}
		if id <= prev {
			t.Fatalf("ids not strictly increasing: got %d after %d", id, prev)
		}
		prev = id
	}

	if r.len() != 10 {
		t.Errorf("len() = %d, want 10", r.len())
	}
}

func TestRegistryGet(t *testing.T) {

	r := newRegistry[scene.AnchorId, scene.Anchor]()

	a := scene.NewAnchor()
	id := r.add(&a)

	got, ok := r.get(id)
	if !ok {
		t.Fatal("get(id) missing just-added item")
	}
	if got != &a {
		t.Error("get(id) returned a different pointer")
	}

	if _, ok := r.get(id + 1); ok {
		t.Error("get of unknown id succeeded")
	}
	if _, ok := r.get(0); ok {
		t.Error("get of zero id succeeded")
	}
}

func TestRegistryOrder(t *testing.T) {

	r := newRegistry[scene.LightId, scene.Light]()

	var want []scene.LightId
	for i := 0; i < 5; i++ {
		l := scene.NewPointLight(gglmWhite(), 1, 1)
		want = append(want, r.add(&l))
	}

	got := r.ids()
	if len(got) != len(want) {
		t.Fatalf("ids() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ids()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRegistryDuplicateIdPanics(t *testing.T) {

	r := newRegistry[scene.AnchorId, scene.Anchor]()

	a := scene.NewAnchor()
	id := r.add(&a)

	// Rewind the counter so the next add would reuse an existing id.
	r.next = id

	defer func() {
		if recover() == nil {
			t.Error("add with a reused id did not panic")
		}
	}()
	b := scene.NewAnchor()
	r.add(&b)
}
