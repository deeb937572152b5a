package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/polygonengine/polygon/engine"
	"github.com/polygonengine/polygon/logging"
)

// IndexBuffer owns one device buffer of unsigned 32-bit indices.
type IndexBuffer struct {
	Handle uint32
	// Len is the number of indices last uploaded with SetData.
	Len int

	ctx *engine.Context
}

func NewIndexBuffer(ctx *engine.Context) IndexBuffer {

	release := ctx.Acquire()
	defer release()

	ib := IndexBuffer{ctx: ctx}

	gl.GenBuffers(1, &ib.Handle)
	if ib.Handle == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	return ib
}

func (ib *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.Handle)
}

func (ib *IndexBuffer) UnBind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// SetData replaces the full contents of the buffer.
func (ib *IndexBuffer) SetData(values []uint32) {

	release := ib.ctx.Acquire()
	defer release()

	ib.Len = len(values)

	// The element array binding is vertex-array state, so make sure no
	// vertex array captures this upload.
	ib.ctx.BindVertexArray(0)

	ib.Bind()
	sizeInBytes := len(values) * 4
	if sizeInBytes == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, engine.BufUsage_StaticDraw.ToGL())
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, sizeInBytes, gl.Ptr(&values[0]), engine.BufUsage_StaticDraw.ToGL())
	}
	ib.UnBind()
}

func (ib *IndexBuffer) Delete() {
	release := ib.ctx.Acquire()
	defer release()

	gl.DeleteBuffers(1, &ib.Handle)
	ib.Handle = 0
}
