package buffers

import (
	"unsafe"

	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/polygonengine/polygon/assert"
	"github.com/polygonengine/polygon/textures"
)

// UniformValue is a value staged on a DrawBuilder for one uniform location.
// Values are written to the device only when Draw runs, with the draw
// builder's program already active.
type UniformValue interface {
	apply(location int32, activeTexture *int32)
}

type UniformF32 float32
type UniformI32 int32
type UniformU32 uint32
type UniformVec2 [2]float32
type UniformVec3 [3]float32
type UniformVec4 [4]float32

// GlMatrix carries raw 3x3 or 4x4 matrix data for a uniform. Transpose
// tells the device the data is row major. Any other data length is fatal.
type GlMatrix struct {
	Data      []float32
	Transpose bool
}

// UniformTexture stages a texture reference. At draw time each texture
// uniform consumes the next sequential texture unit starting at zero; the
// texture is bound to that unit and the unit index becomes the uniform's
// integer value.
type UniformTexture struct {
	Texture *textures.Texture2d
}

// Mat4Uniform wraps a gglm matrix for a uniform. gglm stores matrices
// column major, which is what the device expects, so no transpose is
// needed.
func Mat4Uniform(m *gglm.Mat4) GlMatrix {
	return GlMatrix{Data: unsafe.Slice(&m.Data[0][0], 16)}
}

func Mat3Uniform(m *gglm.Mat3) GlMatrix {
	return GlMatrix{Data: unsafe.Slice(&m.Data[0][0], 9)}
}

func Vec3Uniform(v *gglm.Vec3) UniformVec3 {
	return UniformVec3{v.X(), v.Y(), v.Z()}
}

func Vec4Uniform(v *gglm.Vec4) UniformVec4 {
	return UniformVec4(v.Data)
}

func (v UniformF32) apply(location int32, activeTexture *int32) {
	gl.Uniform1f(location, float32(v))
}

func (v UniformI32) apply(location int32, activeTexture *int32) {
	gl.Uniform1i(location, int32(v))
}

func (v UniformU32) apply(location int32, activeTexture *int32) {
	gl.Uniform1ui(location, uint32(v))
}

func (v UniformVec2) apply(location int32, activeTexture *int32) {
	gl.Uniform2f(location, v[0], v[1])
}

func (v UniformVec3) apply(location int32, activeTexture *int32) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (v UniformVec4) apply(location int32, activeTexture *int32) {
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

func (m GlMatrix) apply(location int32, activeTexture *int32) {

	switch len(m.Data) {
	case 16:
		gl.UniformMatrix4fv(location, 1, m.Transpose, &m.Data[0])
	case 9:
		gl.UniformMatrix3fv(location, 1, m.Transpose, &m.Data[0])
	default:
		assert.T(false, "Unsupported matrix uniform data length '%d'", len(m.Data))
	}
}

func (t UniformTexture) apply(location int32, activeTexture *int32) {

	gl.ActiveTexture(uint32(gl.TEXTURE0 + *activeTexture))
	gl.BindTexture(gl.TEXTURE_2D, t.Texture.Handle)
	gl.Uniform1i(location, *activeTexture)

	*activeTexture++
}
