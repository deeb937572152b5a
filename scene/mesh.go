package scene

import (
	"github.com/polygonengine/polygon/materials"
)

type MeshId uint32

type MeshInstanceId uint32

// VertexAttribute describes where one named attribute lives inside a
// mesh's packed float data. Fields count float32 elements: Offset is the
// start of the attribute's block, Elements the floats per vertex, Stride
// any extra floats between consecutive vertices (zero when the block is
// tightly packed).
type VertexAttribute struct {
	Elements int
	Stride   int
	Offset   int
}

// MeshData is the contract between mesh producers (file importers,
// procedural generators) and the renderer: raw packed float vertex data,
// per-attribute layout descriptors, and an unsigned 32-bit index list.
// Position is mandatory; normal and one texcoord set are optional.
type MeshData struct {
	VertexData []float32
	Indices    []uint32

	Position VertexAttribute
	Normal   *VertexAttribute
	Texcoord *VertexAttribute
}

// MeshInstance places one registered mesh in the scene with its own
// material. The material is cloned in so per-instance tweaks stay local to
// the instance.
type MeshInstance struct {
	Mesh     MeshId
	Anchor   AnchorId
	Material materials.Material
}

func NewMeshInstance(mesh MeshId, material materials.Material) MeshInstance {
	return MeshInstance{
		Mesh:     mesh,
		Material: material.Clone(),
	}
}
