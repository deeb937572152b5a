package renderer

import (
	"image"

	"github.com/bloeys/gglm/gglm"
	"github.com/polygonengine/polygon/materials"
	"github.com/polygonengine/polygon/scene"
	"github.com/polygonengine/polygon/textures"
)

type MaterialId uint32

// Renderer owns every GPU-side resource of a scene and draws it. Resources
// are registered once and referenced by id afterwards; the zero id always
// means "none".
type Renderer interface {

	// DefaultMaterial returns a fresh copy of the built-in lit material,
	// ready for per-instance property overrides.
	DefaultMaterial() materials.Material

	// BuildMaterial compiles a material source into a shader program and
	// registers it. The returned material carries the program's id and has
	// every declared property at its default value.
	BuildMaterial(source materials.MaterialSource) (materials.Material, error)

	RegisterMaterial(source materials.MaterialSource) (MaterialId, error)
	RegisterMesh(data scene.MeshData) scene.MeshId
	RegisterTexture(img image.Image) textures.TextureId
	RegisterMeshInstance(instance scene.MeshInstance) scene.MeshInstanceId
	RegisterAnchor(anchor scene.Anchor) scene.AnchorId
	RegisterCamera(camera scene.Camera) scene.CameraId
	RegisterLight(light scene.Light) scene.LightId

	GetMaterial(id MaterialId) (*materials.Material, bool)
	GetAnchor(id scene.AnchorId) (*scene.Anchor, bool)
	GetCamera(id scene.CameraId) (*scene.Camera, bool)
	GetLight(id scene.LightId) (*scene.Light, bool)
	GetMeshInstance(id scene.MeshInstanceId) (*scene.MeshInstance, bool)

	SetAmbientLight(color gglm.Vec4)

	// Draw renders one full frame from the first registered camera and
	// swaps buffers.
	Draw()

	// Destroy releases every GPU resource the renderer owns, then the
	// context itself.
	Destroy()
}
