package scene

import (
	"github.com/bloeys/gglm/gglm"
)

// AnchorId references an anchor registered with a renderer. Zero means "no
// anchor": mesh instances without one are skipped during rendering, lights
// without one cannot be rendered.
type AnchorId uint32

// Anchor is a scene node holding a world transform. Mesh instances,
// cameras and lights reference anchors by id; the renderer reads them once
// per frame.
type Anchor struct {
	Pos   gglm.Vec3
	Rot   gglm.Quat
	Scale gglm.Vec3
}

func NewAnchor() Anchor {
	return Anchor{
		Rot:   gglm.NewQuatEuler(0, 0, 0),
		Scale: gglm.NewVec3(1, 1, 1),
	}
}

// Matrix is the local-to-world (model) transform: translation * rotation *
// scale.
func (a *Anchor) Matrix() *gglm.TrMat {

	translationMat := gglm.NewTranslationMat(a.Pos.X(), a.Pos.Y(), a.Pos.Z())
	rotMat := gglm.NewRotMatQuat(&a.Rot)
	scaleMat := gglm.NewScaleMat(a.Scale.X(), a.Scale.Y(), a.Scale.Z())

	return translationMat.Mul(rotMat.Mul(&scaleMat))
}

// NormalMatrix is the inverse-transpose of the model transform, for
// transforming normals into world space.
func (a *Anchor) NormalMatrix() gglm.Mat3 {
	return a.Matrix().InvertAndTranspose().ToMat3()
}

// InverseViewMatrix is the local-to-world transform of the anchor ignoring
// scale, i.e. the camera-to-world transform when the anchor carries a
// camera.
func (a *Anchor) InverseViewMatrix() *gglm.TrMat {

	translationMat := gglm.NewTranslationMat(a.Pos.X(), a.Pos.Y(), a.Pos.Z())
	rotMat := gglm.NewRotMatQuat(&a.Rot)

	return translationMat.Mul(&rotMat)
}

// ViewMatrix is the world-to-local transform of the anchor ignoring scale,
// i.e. the view transform when the anchor carries a camera. For a rigid
// transform M = T*R the inverse is R^T * T(-pos), assembled directly
// rather than through a general matrix inversion.
func (a *Anchor) ViewMatrix() *gglm.TrMat {

	rotMat := gglm.NewRotMatQuat(&a.Rot)

	view := gglm.NewTrMatId()

	// Rotation block: transpose. gglm matrices are column major, so
	// Data[col][row] addressing swaps indices.
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			view.Mat4.Data[col][row] = rotMat.Mat4.Data[row][col]
		}
	}

	// Translation column: -R^T * pos.
	for row := 0; row < 3; row++ {
		view.Mat4.Data[3][row] = -(rotMat.Mat4.Data[row][0]*a.Pos.X() +
			rotMat.Mat4.Data[row][1]*a.Pos.Y() +
			rotMat.Mat4.Data[row][2]*a.Pos.Z())
	}

	return &view
}
