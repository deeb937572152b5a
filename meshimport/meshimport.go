package meshimport

import (
	"fmt"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/polygonengine/polygon/assert"
	"github.com/polygonengine/polygon/logging"
	"github.com/polygonengine/polygon/scene"
)

// DefaultLoadFlags are always applied when loading a model, on top of
// whatever flags the caller passes. Triangulation is required because mesh
// data is always drawn as triangle lists.
var DefaultLoadFlags asig.PostProcess = asig.PostProcessTriangulate | asig.PostProcessJoinIdenticalVertices

// Load reads a model file and converts its first mesh into renderer mesh
// data. Vertex data is laid out in planar blocks: all positions (as vec4
// with w=1), then all normals, then all first-set texcoords, each block
// present only if the source mesh has that data.
func Load(modelPath string, postProcessFlags asig.PostProcess) (scene.MeshData, error) {

	aScene, release, err := asig.ImportFile(modelPath, DefaultLoadFlags|postProcessFlags)
	if err != nil {
		return scene.MeshData{}, fmt.Errorf("failed to load model '%s': %w", modelPath, err)
	}
	defer release()

	if len(aScene.Meshes) == 0 {
		return scene.MeshData{}, fmt.Errorf("no meshes found in file '%s'", modelPath)
	}

	if len(aScene.Meshes) > 1 {
		logging.WarnLog.Printf("Model '%s' has %d meshes. Only the first is loaded\n", modelPath, len(aScene.Meshes))
	}

	mesh := aScene.Meshes[0]

	var texcoords []gglm.Vec3
	if len(mesh.TexCoords) > 0 {
		texcoords = mesh.TexCoords[0]
	}

	return buildMeshData(mesh.Vertices, mesh.Normals, texcoords, flattenFaces(mesh.Faces)), nil
}

// buildMeshData packs per-vertex slices into one planar float buffer and
// records where each attribute block starts. Normals and texcoords may be
// empty; positions may not.
func buildMeshData(positions, normals, texcoords []gglm.Vec3, indices []uint32) scene.MeshData {

	assert.T(len(positions) > 0, "Mesh has no vertex positions")
	assert.T(len(normals) == 0 || len(normals) == len(positions), "Mesh has %d normals for %d positions", len(normals), len(positions))
	assert.T(len(texcoords) == 0 || len(texcoords) == len(positions), "Mesh has %d texcoords for %d positions", len(texcoords), len(positions))

	totalSize := len(positions)*4 + len(normals)*3 + len(texcoords)*2
	vertexData := make([]float32, 0, totalSize)

	data := scene.MeshData{
		Indices:  indices,
		Position: scene.VertexAttribute{Elements: 4},
	}

	for i := range positions {
		vertexData = append(vertexData, positions[i].X(), positions[i].Y(), positions[i].Z(), 1)
	}

	if len(normals) > 0 {
		data.Normal = &scene.VertexAttribute{Elements: 3, Offset: len(vertexData)}
		for i := range normals {
			vertexData = append(vertexData, normals[i].X(), normals[i].Y(), normals[i].Z())
		}
	}

	if len(texcoords) > 0 {
		data.Texcoord = &scene.VertexAttribute{Elements: 2, Offset: len(vertexData)}
		for i := range texcoords {
			vertexData = append(vertexData, texcoords[i].X(), texcoords[i].Y())
		}
	}

	data.VertexData = vertexData
	return data
}

func flattenFaces(faces []asig.Face) []uint32 {

	assert.T(len(faces) == 0 || len(faces[0].Indices) == 3, "Face doesn't have 3 indices. Index count: %v\n", len(faces[0].Indices))

	uints := make([]uint32, len(faces)*3)
	for i := 0; i < len(faces); i++ {
		uints[i*3+0] = uint32(faces[i].Indices[0])
		uints[i*3+1] = uint32(faces[i].Indices[1])
		uints[i*3+2] = uint32(faces[i].Indices[2])
	}

	return uints
}
