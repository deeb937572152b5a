package debugdraw

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/polygonengine/polygon/buffers"
	"github.com/polygonengine/polygon/engine"
	"github.com/polygonengine/polygon/shaders"
)

// Unit wireframe cube centered on the origin: 8 corners and the 12 edges
// between them as a line list.
var cubeVerts = []float32{
	-0.5, -0.5, -0.5, 1,
	0.5, -0.5, -0.5, 1,
	0.5, 0.5, -0.5, 1,
	-0.5, 0.5, -0.5, 1,
	-0.5, -0.5, 0.5, 1,
	0.5, -0.5, 0.5, 1,
	0.5, 0.5, 0.5, 1,
	-0.5, 0.5, 0.5, 1,
}

var cubeEdges = []uint32{
	0, 1, 1, 2, 2, 3, 3, 0,
	4, 5, 5, 6, 6, 7, 7, 4,
	0, 4, 1, 5, 2, 6, 3, 7,
}

type lineCmd struct {
	start gglm.Vec3
	end   gglm.Vec3
}

type boxCmd struct {
	center gglm.Vec3
	widths gglm.Vec3
}

// DebugDraw accumulates wireframe draw commands during a frame and issues
// them all in Flush. It owns two small vertex arrays: a static unit cube
// for boxes and a two-point dynamic buffer rewritten per line.
type DebugDraw struct {
	ctx *engine.Context

	cube buffers.VertexArray
	line buffers.VertexArray

	lines []lineCmd
	boxes []boxCmd
}

func New(ctx *engine.Context) *DebugDraw {

	cubeVb := buffers.NewVertexBuffer(ctx)
	cubeVb.SetData(cubeVerts, engine.BufUsage_StaticDraw)
	cubeVb.SetAttrib("position", buffers.AttribLayout{Elements: 4})

	cubeIb := buffers.NewIndexBuffer(ctx)
	cubeIb.SetData(cubeEdges)

	lineVb := buffers.NewVertexBuffer(ctx)
	lineVb.SetData(make([]float32, 8), engine.BufUsage_DynamicDraw)
	lineVb.SetAttrib("position", buffers.AttribLayout{Elements: 4})

	return &DebugDraw{
		ctx:  ctx,
		cube: buffers.NewVertexArrayIndexed(ctx, cubeVb, cubeIb),
		line: buffers.NewVertexArray(ctx, lineVb),
	}
}

func (d *DebugDraw) Line(start, end gglm.Vec3) {
	d.lines = append(d.lines, lineCmd{start: start, end: end})
}

// Box queues a wireframe box. widths are the full extents along each axis.
func (d *DebugDraw) Box(center, widths gglm.Vec3) {
	d.boxes = append(d.boxes, boxCmd{center: center, widths: widths})
}

// Flush draws every queued command with the given program and view
// projection, then clears the queues. The program only needs a
// vertex_position input and a model_view_projection uniform.
func (d *DebugDraw) Flush(program *shaders.Program, viewProjection *gglm.Mat4) {

	release := d.ctx.Acquire()
	defer release()

	for i := range d.lines {

		cmd := &d.lines[i]
		d.line.VertexBuffer.SetData([]float32{
			cmd.start.X(), cmd.start.Y(), cmd.start.Z(), 1,
			cmd.end.X(), cmd.end.Y(), cmd.end.Z(), 1,
		}, engine.BufUsage_DynamicDraw)

		buffers.NewDrawBuilder(d.ctx, &d.line, engine.DrawMode_Lines).
			Program(program).
			MapAttribName("position", "vertex_position").
			Uniform("model_view_projection", buffers.Mat4Uniform(viewProjection)).
			Draw()
	}

	for i := range d.boxes {

		cmd := &d.boxes[i]
		model := gglm.NewTrMatId()
		model.TranslateVec(&cmd.center).Scale(cmd.widths.X(), cmd.widths.Y(), cmd.widths.Z())
		mvp := viewProjection.Clone().Mul(&model.Mat4)

		buffers.NewDrawBuilder(d.ctx, &d.cube, engine.DrawMode_Lines).
			Program(program).
			PolygonMode(engine.PolygonMode_Line).
			MapAttribName("position", "vertex_position").
			Uniform("model_view_projection", buffers.Mat4Uniform(mvp)).
			Draw()
	}

	d.lines = d.lines[:0]
	d.boxes = d.boxes[:0]
}

func (d *DebugDraw) Delete() {
	d.cube.Delete()
	d.line.Delete()
}
