package renderer

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/polygonengine/polygon/scene"
)

func TestCameraView(t *testing.T) {

	r := &GlRenderer{
		anchors: newRegistry[scene.AnchorId, scene.Anchor](),
	}

	a := scene.NewAnchor()
	a.Pos = gglm.NewVec3(1, 2, 3)

	camera := scene.NewPerspectiveCamera(60*gglm.Deg2Rad, 1, 0.1, 100)
	camera.Anchor = r.anchors.add(&a)

	view, cameraPos := r.cameraView(&camera)

	if cameraPos != a.Pos {
		t.Errorf("camera position = %v, want %v", cameraPos, a.Pos)
	}

	// With no rotation the view transform is a pure inverse translation.
	want := [3]float32{-1, -2, -3}
	for row := 0; row < 3; row++ {
		if view.Mat4.Data[3][row] != want[row] {
			t.Errorf("view translation[%d] = %f, want %f", row, view.Mat4.Data[3][row], want[row])
		}
	}
}

func TestCameraViewMissingAnchorPanics(t *testing.T) {

	r := &GlRenderer{
		anchors: newRegistry[scene.AnchorId, scene.Anchor](),
	}

	camera := scene.NewPerspectiveCamera(60*gglm.Deg2Rad, 1, 0.1, 100)

	defer func() {
		if recover() == nil {
			t.Error("camera with no anchor did not panic")
		}
	}()
	r.cameraView(&camera)
}
