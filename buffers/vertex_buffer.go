package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/polygonengine/polygon/engine"
	"github.com/polygonengine/polygon/logging"
)

// AttribLayout describes how one named attribute is packed inside a vertex
// buffer's raw float array. All three fields count float32 elements, not
// bytes: Offset is where the attribute's data starts, Elements is how many
// floats one vertex contributes, and Stride is the extra floats between
// consecutive vertices (zero for tightly packed planar data).
type AttribLayout struct {
	Elements int
	Stride   int
	Offset   int
}

// elementLen is the vertex count implied by this layout for a buffer of
// bufLen floats. Integer division truncates. The formula assumes every
// attribute set on a buffer agrees on the vertex count; this is not
// verified, and calling SetAttrib before the final Elements/Stride values
// are known produces a stale count.
func (l AttribLayout) elementLen(bufLen int) int {
	return (bufLen-l.Offset)/l.Elements + l.Stride
}

// VertexBuffer owns one device buffer of float32 vertex data plus the
// named-attribute layout table describing what is packed inside it.
type VertexBuffer struct {
	Handle uint32
	// Len is the number of floats last uploaded with SetData.
	Len int

	attribs    map[string]AttribLayout
	elementLen int

	ctx *engine.Context
}

func NewVertexBuffer(ctx *engine.Context) VertexBuffer {

	release := ctx.Acquire()
	defer release()

	vb := VertexBuffer{
		attribs: make(map[string]AttribLayout),
		ctx:     ctx,
	}

	gl.GenBuffers(1, &vb.Handle)
	if vb.Handle == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	return vb
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.Handle)
}

func (vb *VertexBuffer) UnBind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// SetData replaces the full contents of the buffer. There is no sub-range
// upload; re-uploading resets Len along with the data.
func (vb *VertexBuffer) SetData(values []float32, usage engine.BufUsage) {

	release := vb.ctx.Acquire()
	defer release()

	vb.Len = len(values)

	vb.Bind()
	sizeInBytes := len(values) * 4
	if sizeInBytes == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, usage.ToGL())
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, sizeInBytes, gl.Ptr(&values[0]), usage.ToGL())
	}
	vb.UnBind()
}

// SetAttrib records the layout of a named attribute and recomputes the
// buffer's implied vertex count from it. Names are unique per buffer; a
// second SetAttrib with the same name wins.
func (vb *VertexBuffer) SetAttrib(name string, layout AttribLayout) {

	vb.elementLen = layout.elementLen(vb.Len)

	if vb.attribs == nil {
		vb.attribs = make(map[string]AttribLayout)
	}
	vb.attribs[name] = layout
}

// Attrib looks up the layout of a named attribute.
func (vb *VertexBuffer) Attrib(name string) (AttribLayout, bool) {
	layout, ok := vb.attribs[name]
	return layout, ok
}

// ElementLen is the vertex count implied by the most recent SetAttrib call,
// used for non-indexed draws.
func (vb *VertexBuffer) ElementLen() int {
	return vb.elementLen
}

// Delete releases the device buffer. The owning context must still be live;
// using a buffer after its context was destroyed is undefined.
func (vb *VertexBuffer) Delete() {
	release := vb.ctx.Acquire()
	defer release()

	gl.DeleteBuffers(1, &vb.Handle)
	vb.Handle = 0
}
