package scene

import (
	"github.com/bloeys/gglm/gglm"
)

// TransformPoint applies m to p as a position (w=1), returning the
// transformed point. Used to move light positions into view space.
func TransformPoint(m *gglm.Mat4, p *gglm.Vec3) gglm.Vec3 {

	x := p.X()
	y := p.Y()
	z := p.Z()

	return gglm.NewVec3(
		m.Data[0][0]*x+m.Data[1][0]*y+m.Data[2][0]*z+m.Data[3][0],
		m.Data[0][1]*x+m.Data[1][1]*y+m.Data[2][1]*z+m.Data[3][1],
		m.Data[0][2]*x+m.Data[1][2]*y+m.Data[2][2]*z+m.Data[3][2],
	)
}

// TransformDirection applies only the rotational part of m to d (w=0), so
// translation is ignored. Used for directional light vectors.
func TransformDirection(m *gglm.Mat4, d *gglm.Vec3) gglm.Vec3 {

	x := d.X()
	y := d.Y()
	z := d.Z()

	return gglm.NewVec3(
		m.Data[0][0]*x+m.Data[1][0]*y+m.Data[2][0]*z,
		m.Data[0][1]*x+m.Data[1][1]*y+m.Data[2][1]*z,
		m.Data[0][2]*x+m.Data[1][2]*y+m.Data[2][2]*z,
	)
}
