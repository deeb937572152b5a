package scene

import (
	"github.com/bloeys/gglm/gglm"
)

type CameraId uint32

// Camera is a perspective projection attached to an anchor. The anchor
// supplies the view transform; the camera only owns the projection
// parameters.
type Camera struct {
	Anchor AnchorId

	FovRad      float32
	AspectRatio float32
	NearClip    float32
	FarClip     float32
}

func NewPerspectiveCamera(fovRad, aspectRatio, nearClip, farClip float32) Camera {
	return Camera{
		FovRad:      fovRad,
		AspectRatio: aspectRatio,
		NearClip:    nearClip,
		FarClip:     farClip,
	}
}

func (c *Camera) ProjectionMatrix() gglm.Mat4 {
	return gglm.Perspective(c.FovRad, c.AspectRatio, c.NearClip, c.FarClip)
}
