package materials

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/polygonengine/polygon/shaders"
	"github.com/polygonengine/polygon/textures"
)

type PropertyType uint8

const (
	PropertyType_Unknown PropertyType = iota
	PropertyType_Color
	PropertyType_Texture2d
	PropertyType_F32
	PropertyType_Vector3
)

func (p PropertyType) String() string {

	switch p {
	case PropertyType_Color:
		return "Color"
	case PropertyType_Texture2d:
		return "Texture2d"
	case PropertyType_F32:
		return "f32"
	case PropertyType_Vector3:
		return "Vector3"

	default:
		return "Unknown"
	}
}

// Property is one user-tunable material input. Exactly the field matching
// Type is meaningful; the rest stay at their zero values.
type Property struct {
	Type PropertyType

	Color   gglm.Vec4
	Texture textures.TextureId
	Scalar  float32
	Vector  gglm.Vec3
}

// Material pairs a shader program reference with the named property values
// fed to it as uniforms each draw. Materials are plain values; scene
// objects receive their own clone so tweaking one instance's material never
// leaks into another.
type Material struct {
	Shader     shaders.ShaderId
	Properties map[string]Property
}

func NewMaterial(shader shaders.ShaderId) Material {
	return Material{
		Shader:     shader,
		Properties: make(map[string]Property),
	}
}

// NewMaterialFromSource builds a material whose declared properties are all
// present at their type defaults. Values written in the source are not
// carried over; callers set the ones they care about afterwards.
func NewMaterialFromSource(shader shaders.ShaderId, source MaterialSource) Material {

	m := NewMaterial(shader)
	for _, decl := range source.Properties {
		m.Properties[decl.Name] = Property{Type: decl.Type}
	}

	return m
}

func (m *Material) SetColor(name string, color gglm.Vec4) {
	m.Properties[name] = Property{Type: PropertyType_Color, Color: color}
}

func (m *Material) SetTexture(name string, texture textures.TextureId) {
	m.Properties[name] = Property{Type: PropertyType_Texture2d, Texture: texture}
}

func (m *Material) SetF32(name string, value float32) {
	m.Properties[name] = Property{Type: PropertyType_F32, Scalar: value}
}

func (m *Material) SetVector3(name string, value gglm.Vec3) {
	m.Properties[name] = Property{Type: PropertyType_Vector3, Vector: value}
}

// Clone deep-copies the material so the receiver and the copy can diverge.
func (m Material) Clone() Material {

	props := make(map[string]Property, len(m.Properties))
	for name, prop := range m.Properties {
		props[name] = prop
	}

	return Material{
		Shader:     m.Shader,
		Properties: props,
	}
}
