package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/polygonengine/polygon/assert"
	"github.com/polygonengine/polygon/engine"
	"github.com/polygonengine/polygon/shaders"
)

// DrawBuilder assembles the full state for exactly one draw call:
// fixed-function toggles, attribute bindings and uniform values. It is
// constructed, configured and discarded within one draw; nothing about it
// persists across frames.
//
// Configuration methods are chainable and only mutate builder state, with
// two exceptions: MapAttribLocation and MapAttribName issue device calls
// immediately because attribute pointers live on the vertex array object,
// not in per-draw state.
type DrawBuilder struct {
	ctx         *engine.Context
	vertexArray *VertexArray
	drawMode    engine.DrawMode

	polygonMode    engine.PolygonMode
	hasPolygonMode bool

	program *shaders.Program

	cullFace engine.Face
	hasCull  bool
	winding  engine.WindingOrder

	depthTest    engine.Comparison
	hasDepthTest bool

	blendSrc engine.SourceFactor
	blendDst engine.DestFactor

	uniforms map[int32]UniformValue
}

func NewDrawBuilder(ctx *engine.Context, vertexArray *VertexArray, drawMode engine.DrawMode) *DrawBuilder {
	return &DrawBuilder{
		ctx:         ctx,
		vertexArray: vertexArray,
		drawMode:    drawMode,
		uniforms:    make(map[int32]UniformValue),
	}
}

func (b *DrawBuilder) PolygonMode(mode engine.PolygonMode) *DrawBuilder {
	b.polygonMode = mode
	b.hasPolygonMode = true
	return b
}

func (b *DrawBuilder) Program(program *shaders.Program) *DrawBuilder {
	b.program = program
	return b
}

func (b *DrawBuilder) Cull(face engine.Face) *DrawBuilder {
	b.cullFace = face
	b.hasCull = true
	return b
}

func (b *DrawBuilder) Winding(winding engine.WindingOrder) *DrawBuilder {
	b.winding = winding
	return b
}

func (b *DrawBuilder) DepthTest(comparison engine.Comparison) *DrawBuilder {
	b.depthTest = comparison
	b.hasDepthTest = true
	return b
}

func (b *DrawBuilder) Blend(src engine.SourceFactor, dst engine.DestFactor) *DrawBuilder {
	b.blendSrc = src
	b.blendDst = dst
	return b
}

// MapAttribLocation binds an explicit attribute location to the named
// attribute of the vertex buffer. A name the buffer does not have is a
// programmer error and fatal, unlike the speculative MapAttribName.
// Attribute data is always treated as floats; other component types are
// not supported.
func (b *DrawBuilder) MapAttribLocation(bufferAttribName string, location uint32) *DrawBuilder {

	layout, ok := b.vertexArray.VertexBuffer.Attrib(bufferAttribName)
	assert.T(ok, "Vertex buffer has no attribute '%s'", bufferAttribName)

	b.bindAttrib(location, layout)
	return b
}

// MapAttribName binds the vertex buffer attribute bufferAttribName to the
// program input programAttribName. If the program has no such input or the
// buffer has no such attribute this is a silent no-op, so one material
// skeleton can be speculatively applied across meshes and programs with
// partially overlapping attribute sets. Requires a program to be set.
func (b *DrawBuilder) MapAttribName(bufferAttribName, programAttribName string) *DrawBuilder {

	assert.T(b.program != nil, "Cannot map attributes by name without a shader program")

	location, ok := b.program.AttribLoc(programAttribName)
	if !ok {
		return b
	}

	layout, ok := b.vertexArray.VertexBuffer.Attrib(bufferAttribName)
	if !ok {
		return b
	}

	b.bindAttrib(uint32(location), layout)
	return b
}

func (b *DrawBuilder) bindAttrib(location uint32, layout AttribLayout) {

	release := b.ctx.Acquire()
	defer release()

	b.ctx.BindVertexArray(b.vertexArray.Handle)

	gl.EnableVertexAttribArray(location)
	gl.VertexAttribPointerWithOffset(
		location,
		int32(layout.Elements),
		gl.FLOAT,
		false,
		int32(layout.Stride*4),
		uintptr(layout.Offset*4),
	)
}

// Uniform stages a value for the named uniform, keyed by its resolved
// location; a later value for the same location overwrites an earlier one.
// Names the program does not use are silently ignored (same speculative
// contract as MapAttribName). Requires a program to be set.
func (b *DrawBuilder) Uniform(name string, value UniformValue) *DrawBuilder {

	assert.T(b.program != nil, "Cannot set a uniform without a shader program")

	location, ok := b.program.UniformLoc(name)
	if !ok {
		return b
	}

	b.uniforms[location] = value
	return b
}

// Draw issues exactly one draw call with the accumulated state: polygon
// mode, program, cull/depth/blend toggles, staged uniforms (each texture
// uniform taking the next sequential texture unit from zero), the vertex
// array binding, and finally an indexed draw if the array has an index
// buffer or a non-indexed draw over the vertex buffer's element count.
// Completion is not awaited.
func (b *DrawBuilder) Draw() {

	release := b.ctx.Acquire()
	defer release()

	polygonMode := engine.PolygonMode_Fill
	if b.hasPolygonMode {
		polygonMode = b.polygonMode
	}
	b.ctx.SetPolygonMode(polygonMode)

	if b.program != nil {
		b.ctx.UseProgram(b.program.Handle)
	} else {
		b.ctx.UseProgram(0)
	}

	if b.hasCull {
		b.ctx.EnableCull(b.cullFace, b.winding)
	} else {
		b.ctx.DisableCull()
	}

	if b.hasDepthTest {
		b.ctx.EnableDepthTest(b.depthTest)
	} else {
		b.ctx.DisableDepthTest()
	}

	b.ctx.SetBlend(b.blendSrc, b.blendDst)

	// Iteration order over the staged uniforms is unspecified; texture
	// units are assigned independently per uniform so the order does not
	// matter within one draw.
	activeTexture := int32(0)
	for location, value := range b.uniforms {
		value.apply(location, &activeTexture)
	}

	b.ctx.BindVertexArray(b.vertexArray.Handle)

	if b.vertexArray.IndexBuffer != nil {
		gl.DrawElementsWithOffset(b.drawMode.ToGL(), int32(b.vertexArray.IndexBuffer.Len), gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(b.drawMode.ToGL(), 0, int32(b.vertexArray.VertexBuffer.ElementLen()))
	}
}
