package engine

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/polygonengine/polygon/assert"
)

// The draw-state enums below are laid out so that the zero value of each
// type matches the default state of a fresh OpenGL context. That lets the
// Context bind-state cache start out zeroed and still be accurate.

type DrawMode int32

const (
	DrawMode_Points DrawMode = iota
	DrawMode_Lines
	DrawMode_LineStrip
	DrawMode_LineLoop
	DrawMode_Triangles
	DrawMode_TriangleStrip
	DrawMode_TriangleFan
)

func (d DrawMode) ToGL() uint32 {
	switch d {
	case DrawMode_Points:
		return gl.POINTS
	case DrawMode_Lines:
		return gl.LINES
	case DrawMode_LineStrip:
		return gl.LINE_STRIP
	case DrawMode_LineLoop:
		return gl.LINE_LOOP
	case DrawMode_Triangles:
		return gl.TRIANGLES
	case DrawMode_TriangleStrip:
		return gl.TRIANGLE_STRIP
	case DrawMode_TriangleFan:
		return gl.TRIANGLE_FAN
	}

	assert.T(false, fmt.Sprintf("Unexpected DrawMode value '%v'", d))
	return 0
}

type PolygonMode int32

const (
	PolygonMode_Fill PolygonMode = iota
	PolygonMode_Line
	PolygonMode_Point
)

func (p PolygonMode) ToGL() uint32 {
	switch p {
	case PolygonMode_Fill:
		return gl.FILL
	case PolygonMode_Line:
		return gl.LINE
	case PolygonMode_Point:
		return gl.POINT
	}

	assert.T(false, fmt.Sprintf("Unexpected PolygonMode value '%v'", p))
	return 0
}

type Face int32

const (
	Face_Back Face = iota
	Face_Front
	Face_FrontAndBack
)

func (f Face) ToGL() uint32 {
	switch f {
	case Face_Back:
		return gl.BACK
	case Face_Front:
		return gl.FRONT
	case Face_FrontAndBack:
		return gl.FRONT_AND_BACK
	}

	assert.T(false, fmt.Sprintf("Unexpected Face value '%v'", f))
	return 0
}

type WindingOrder int32

const (
	WindingOrder_CounterClockwise WindingOrder = iota
	WindingOrder_Clockwise
)

func (w WindingOrder) ToGL() uint32 {
	switch w {
	case WindingOrder_CounterClockwise:
		return gl.CCW
	case WindingOrder_Clockwise:
		return gl.CW
	}

	assert.T(false, fmt.Sprintf("Unexpected WindingOrder value '%v'", w))
	return 0
}

type Comparison int32

const (
	Comparison_Less Comparison = iota
	Comparison_Never
	Comparison_Equal
	Comparison_LessEqual
	Comparison_Greater
	Comparison_NotEqual
	Comparison_GreaterEqual
	Comparison_Always
)

func (c Comparison) ToGL() uint32 {
	switch c {
	case Comparison_Less:
		return gl.LESS
	case Comparison_Never:
		return gl.NEVER
	case Comparison_Equal:
		return gl.EQUAL
	case Comparison_LessEqual:
		return gl.LEQUAL
	case Comparison_Greater:
		return gl.GREATER
	case Comparison_NotEqual:
		return gl.NOTEQUAL
	case Comparison_GreaterEqual:
		return gl.GEQUAL
	case Comparison_Always:
		return gl.ALWAYS
	}

	assert.T(false, fmt.Sprintf("Unexpected Comparison value '%v'", c))
	return 0
}

type SourceFactor int32

const (
	SourceFactor_One SourceFactor = iota
	SourceFactor_Zero
	SourceFactor_SrcAlpha
	SourceFactor_OneMinusSrcAlpha
	SourceFactor_DstColor
)

func (s SourceFactor) ToGL() uint32 {
	switch s {
	case SourceFactor_One:
		return gl.ONE
	case SourceFactor_Zero:
		return gl.ZERO
	case SourceFactor_SrcAlpha:
		return gl.SRC_ALPHA
	case SourceFactor_OneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case SourceFactor_DstColor:
		return gl.DST_COLOR
	}

	assert.T(false, fmt.Sprintf("Unexpected SourceFactor value '%v'", s))
	return 0
}

type DestFactor int32

const (
	DestFactor_Zero DestFactor = iota
	DestFactor_One
	DestFactor_SrcAlpha
	DestFactor_OneMinusSrcAlpha
	DestFactor_SrcColor
)

func (d DestFactor) ToGL() uint32 {
	switch d {
	case DestFactor_Zero:
		return gl.ZERO
	case DestFactor_One:
		return gl.ONE
	case DestFactor_SrcAlpha:
		return gl.SRC_ALPHA
	case DestFactor_OneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case DestFactor_SrcColor:
		return gl.SRC_COLOR
	}

	assert.T(false, fmt.Sprintf("Unexpected DestFactor value '%v'", d))
	return 0
}

type BufUsage int32

// Full docs for buffer usage can be found here: https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
const (
	// Buffer is set only once and used many times
	BufUsage_StaticDraw BufUsage = iota
	// Buffer is changed a lot and used many times
	BufUsage_DynamicDraw
	// Buffer is set only once and used by the GPU at most a few times
	BufUsage_StreamDraw
)

func (b BufUsage) ToGL() uint32 {
	switch b {
	case BufUsage_StaticDraw:
		return gl.STATIC_DRAW
	case BufUsage_DynamicDraw:
		return gl.DYNAMIC_DRAW
	case BufUsage_StreamDraw:
		return gl.STREAM_DRAW
	}

	assert.T(false, fmt.Sprintf("Unexpected BufUsage value '%v'", b))
	return 0
}
