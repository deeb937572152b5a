package scene

import (
	"math"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/polygonengine/polygon/materials"
)

const epsilon = 1e-5

func mat4Near(t *testing.T, got, want *gglm.Mat4, what string) {
	t.Helper()

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			if math.Abs(float64(got.Data[col][row]-want.Data[col][row])) > epsilon {
				t.Fatalf("%s: [%d][%d] = %v, want %v", what, col, row, got.Data[col][row], want.Data[col][row])
			}
		}
	}
}

func TestAnchorIdentity(t *testing.T) {

	a := NewAnchor()

	identity := gglm.NewTrMatId()
	mat4Near(t, &a.Matrix().Mat4, &identity.Mat4, "Matrix of a fresh anchor")
	mat4Near(t, &a.ViewMatrix().Mat4, &identity.Mat4, "ViewMatrix of a fresh anchor")
}

func TestAnchorMatrixTranslation(t *testing.T) {

	a := NewAnchor()
	a.Pos = gglm.NewVec3(2, -3, 5)

	m := a.Matrix()
	if m.Mat4.Data[3][0] != 2 || m.Mat4.Data[3][1] != -3 || m.Mat4.Data[3][2] != 5 {
		t.Errorf("translation column = (%v, %v, %v), want (2, -3, 5)",
			m.Mat4.Data[3][0], m.Mat4.Data[3][1], m.Mat4.Data[3][2])
	}

	// The view matrix of a pure translation is the opposite translation.
	v := a.ViewMatrix()
	if v.Mat4.Data[3][0] != -2 || v.Mat4.Data[3][1] != 3 || v.Mat4.Data[3][2] != -5 {
		t.Errorf("view translation column = (%v, %v, %v), want (-2, 3, -5)",
			v.Mat4.Data[3][0], v.Mat4.Data[3][1], v.Mat4.Data[3][2])
	}
}

// For an unscaled anchor the view matrix must invert the model matrix.
func TestAnchorViewInvertsModel(t *testing.T) {

	a := NewAnchor()
	a.Pos = gglm.NewVec3(1, 2, 3)
	a.Rot = gglm.NewQuatEuler(0.3, -1.1, 0.7)

	composed := a.ViewMatrix().Mul(a.Matrix())

	identity := gglm.NewTrMatId()
	mat4Near(t, &composed.Mat4, &identity.Mat4, "view * model")
}

func TestAnchorInverseViewMatrix(t *testing.T) {

	a := NewAnchor()
	a.Pos = gglm.NewVec3(-2, 4, 1)
	a.Rot = gglm.NewQuatEuler(1.2, 0.4, -0.9)

	composed := a.InverseViewMatrix().Mul(a.ViewMatrix())

	identity := gglm.NewTrMatId()
	mat4Near(t, &composed.Mat4, &identity.Mat4, "inverse view * view")
}

func TestTransformPoint(t *testing.T) {

	m := gglm.NewTranslationMat(10, 20, 30)
	p := gglm.NewVec3(1, 2, 3)

	got := TransformPoint(&m.Mat4, &p)
	if got.X() != 11 || got.Y() != 22 || got.Z() != 33 {
		t.Errorf("TransformPoint = (%v, %v, %v), want (11, 22, 33)", got.X(), got.Y(), got.Z())
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {

	m := gglm.NewTranslationMat(10, 20, 30)
	d := gglm.NewVec3(0, 0, -1)

	got := TransformDirection(&m.Mat4, &d)
	if got.X() != 0 || got.Y() != 0 || got.Z() != -1 {
		t.Errorf("TransformDirection = (%v, %v, %v), want (0, 0, -1)", got.X(), got.Y(), got.Z())
	}
}

func TestMeshInstanceClonesMaterial(t *testing.T) {

	mat := materials.NewMaterial(1)
	mat.SetF32("surface_shininess", 8)

	instance := NewMeshInstance(1, mat)
	instance.Material.SetF32("surface_shininess", 64)

	if got := mat.Properties["surface_shininess"].Scalar; got != 8 {
		t.Errorf("source material changed through the instance: shininess = %v, want 8", got)
	}
}
