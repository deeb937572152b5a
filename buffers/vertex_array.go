package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/polygonengine/polygon/engine"
	"github.com/polygonengine/polygon/logging"
)

// VertexArray owns one device vertex-array object plus the vertex buffer
// (and optional index buffer) it was built from. The buffers are moved into
// the array at construction: the array's lifetime fully subsumes theirs and
// Delete releases all of them. The device object captures the buffer
// bindings made at construction; attribute-to-location binding happens
// later, per draw.
type VertexArray struct {
	Handle       uint32
	VertexBuffer VertexBuffer
	IndexBuffer  *IndexBuffer

	ctx *engine.Context
}

func NewVertexArray(ctx *engine.Context, vertexBuffer VertexBuffer) VertexArray {
	return newVertexArray(ctx, vertexBuffer, nil)
}

func NewVertexArrayIndexed(ctx *engine.Context, vertexBuffer VertexBuffer, indexBuffer IndexBuffer) VertexArray {
	return newVertexArray(ctx, vertexBuffer, &indexBuffer)
}

func newVertexArray(ctx *engine.Context, vertexBuffer VertexBuffer, indexBuffer *IndexBuffer) VertexArray {

	release := ctx.Acquire()
	defer release()

	va := VertexArray{
		VertexBuffer: vertexBuffer,
		IndexBuffer:  indexBuffer,
		ctx:          ctx,
	}

	gl.GenVertexArrays(1, &va.Handle)
	if va.Handle == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL vertex array object")
	}

	ctx.BindVertexArray(va.Handle)
	va.VertexBuffer.Bind()
	if va.IndexBuffer != nil {
		va.IndexBuffer.Bind()
	}

	// This is needed so that buffer binds made while setting up the next
	// vertex array don't get captured into this one.
	ctx.BindVertexArray(0)

	return va
}

// Delete releases the device array object and the buffers it owns, and
// clears any context bookkeeping that still references the array.
func (va *VertexArray) Delete() {

	release := va.ctx.Acquire()
	defer release()

	gl.DeleteVertexArrays(1, &va.Handle)
	va.ctx.UnbindVertexArray(va.Handle)
	va.Handle = 0

	va.VertexBuffer.Delete()
	if va.IndexBuffer != nil {
		va.IndexBuffer.Delete()
	}
}
