package meshimport

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
)

func TestBuildVertexDataFull(t *testing.T) {

	positions := []gglm.Vec3{gglm.NewVec3(1, 2, 3), gglm.NewVec3(4, 5, 6)}
	normals := []gglm.Vec3{gglm.NewVec3(0, 1, 0), gglm.NewVec3(0, 0, 1)}
	texcoords := []gglm.Vec3{gglm.NewVec3(0.5, 0.25, 0), gglm.NewVec3(1, 0, 0)}
	indices := []uint32{0, 1, 0}

	data := buildMeshData(positions, normals, texcoords, indices)

	want := []float32{
		1, 2, 3, 1, 4, 5, 6, 1, // positions as vec4
		0, 1, 0, 0, 0, 1, // normals
		0.5, 0.25, 1, 0, // texcoords
	}

	if len(data.VertexData) != len(want) {
		t.Fatalf("VertexData has %d floats, want %d", len(data.VertexData), len(want))
	}
	for i := range want {
		if data.VertexData[i] != want[i] {
			t.Errorf("VertexData[%d] = %v, want %v", i, data.VertexData[i], want[i])
		}
	}

	if data.Position.Elements != 4 || data.Position.Offset != 0 {
		t.Errorf("Position = %+v, want Elements 4 Offset 0", data.Position)
	}

	if data.Normal == nil || data.Normal.Elements != 3 || data.Normal.Offset != 8 {
		t.Errorf("Normal = %+v, want Elements 3 Offset 8", data.Normal)
	}

	if data.Texcoord == nil || data.Texcoord.Elements != 2 || data.Texcoord.Offset != 14 {
		t.Errorf("Texcoord = %+v, want Elements 2 Offset 14", data.Texcoord)
	}

	if len(data.Indices) != 3 || data.Indices[1] != 1 {
		t.Errorf("Indices = %v", data.Indices)
	}
}

func TestBuildVertexDataPositionsOnly(t *testing.T) {

	positions := []gglm.Vec3{gglm.NewVec3(1, 0, 0)}

	data := buildMeshData(positions, nil, nil, nil)

	if len(data.VertexData) != 4 {
		t.Fatalf("VertexData has %d floats, want 4", len(data.VertexData))
	}
	if data.VertexData[3] != 1 {
		t.Errorf("position w = %v, want 1", data.VertexData[3])
	}
	if data.Normal != nil || data.Texcoord != nil {
		t.Error("optional attributes set for position-only data")
	}
}

func TestBuildVertexDataMismatchedNormalsPanics(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Error("mismatched normal count did not panic")
		}
	}()

	positions := []gglm.Vec3{gglm.NewVec3(1, 0, 0), gglm.NewVec3(0, 1, 0)}
	normals := []gglm.Vec3{gglm.NewVec3(0, 1, 0)}

	buildMeshData(positions, normals, nil, nil)
}
