package renderer

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/polygonengine/polygon/assert"
	"github.com/polygonengine/polygon/buffers"
	"github.com/polygonengine/polygon/engine"
	"github.com/polygonengine/polygon/logging"
	"github.com/polygonengine/polygon/materials"
	"github.com/polygonengine/polygon/scene"
)

// Draw renders one frame: clear, then every mesh instance once per pass
// (ambient plus one additive pass per registered light), then present.
// The first registered camera is used; with no cameras the frame is just
// cleared and presented.
func (r *GlRenderer) Draw() {

	release := r.ctx.Acquire()
	defer release()

	r.ctx.Clear()

	camIds := r.cameras.ids()
	if len(camIds) == 0 {
		r.ctx.SwapBuffers()
		return
	}
	camera, _ := r.cameras.get(camIds[0])

	view, cameraPos := r.cameraView(camera)
	projection := camera.ProjectionMatrix()
	passes := lightPasses(r.lights.ids())

	for _, id := range r.meshInstances.ids() {
		instance, _ := r.meshInstances.get(id)
		r.drawInstance(instance, view, &projection, &cameraPos, passes)
	}

	r.ctx.SwapBuffers()
}

// cameraView resolves a camera's anchor into the view transform and the
// camera's world position. Unlike mesh instances, a camera cannot render
// without an anchor: a zero or stale anchor id is fatal.
func (r *GlRenderer) cameraView(camera *scene.Camera) (*gglm.TrMat, gglm.Vec3) {

	camAnchor, ok := r.anchors.get(camera.Anchor)
	assert.T(ok, "Camera references unknown anchor '%d' and cannot render", camera.Anchor)

	return camAnchor.ViewMatrix(), camAnchor.Pos
}

func (r *GlRenderer) drawInstance(instance *scene.MeshInstance, view *gglm.TrMat, projection *gglm.Mat4, cameraPos *gglm.Vec3, passes []passState) {

	if instance.Anchor == 0 {
		return
	}

	anchor, ok := r.anchors.get(instance.Anchor)
	assert.T(ok, "Mesh instance references unknown anchor '%d'", instance.Anchor)

	mesh, ok := r.meshes.get(instance.Mesh)
	assert.T(ok, "Mesh instance references unknown mesh '%d'", instance.Mesh)

	material := &instance.Material
	program, ok := r.programs.get(material.Shader)
	if !ok {
		logging.WarnLog.Printf("Material references unknown shader '%d'. Using the default material\n", material.Shader)

		material = &r.defaultMaterial
		if program, ok = r.programs.get(material.Shader); !ok {
			return
		}
	}

	model := anchor.Matrix()
	normal := anchor.NormalMatrix()
	modelView := view.Clone().Mul(model)
	viewNormal := modelView.Clone().InvertAndTranspose().ToMat3()
	mvp := projection.Clone().Mul(&modelView.Mat4)

	for _, pass := range passes {

		builder := buffers.NewDrawBuilder(r.ctx, &mesh.vertexArray, engine.DrawMode_Triangles).
			Program(program).
			Cull(engine.Face_Back).
			DepthTest(pass.depthTest)

		if pass.blend {
			builder.Blend(engine.SourceFactor_One, engine.DestFactor_One)
		}

		builder.
			MapAttribName("position", "vertex_position").
			MapAttribName("normal", "vertex_normal").
			MapAttribName("texcoord", "vertex_uv0")

		builder.
			Uniform("model_transform", buffers.Mat4Uniform(&model.Mat4)).
			Uniform("normal_transform", buffers.Mat3Uniform(&normal)).
			Uniform("view_transform", buffers.Mat4Uniform(&view.Mat4)).
			Uniform("view_normal_transform", buffers.Mat3Uniform(&viewNormal)).
			Uniform("model_view_transform", buffers.Mat4Uniform(&modelView.Mat4)).
			Uniform("projection_transform", buffers.Mat4Uniform(projection)).
			Uniform("model_view_projection", buffers.Mat4Uniform(mvp)).
			Uniform("global_ambient", buffers.Vec4Uniform(&r.ambientColor)).
			Uniform("camera_position", buffers.UniformVec4{cameraPos.X(), cameraPos.Y(), cameraPos.Z(), 1})

		r.stageMaterialUniforms(builder, material)

		if pass.light == 0 {
			builder.Uniform("light_type", buffers.UniformI32(0))
		} else {
			r.stageLightUniforms(builder, pass.light, view)
		}

		builder.Draw()
	}
}

func (r *GlRenderer) stageMaterialUniforms(builder *buffers.DrawBuilder, material *materials.Material) {

	for name, prop := range material.Properties {

		switch prop.Type {

		case materials.PropertyType_Color:
			builder.Uniform(name, buffers.Vec4Uniform(&prop.Color))

		case materials.PropertyType_Texture2d:
			builder.Uniform(name, buffers.UniformTexture{Texture: r.textureOrDefault(prop.Texture)})

		case materials.PropertyType_F32:
			builder.Uniform(name, buffers.UniformF32(prop.Scalar))

		case materials.PropertyType_Vector3:
			builder.Uniform(name, buffers.Vec3Uniform(&prop.Vector))

		default:
			assert.T(false, "Unexpected material property type '%s' for property '%s'", prop.Type, name)
		}
	}
}

func (r *GlRenderer) stageLightUniforms(builder *buffers.DrawBuilder, lightId scene.LightId, view *gglm.TrMat) {

	light, ok := r.lights.get(lightId)
	assert.T(ok, "Light pass references unknown light '%d'", lightId)

	builder.
		Uniform("light_color", buffers.Vec4Uniform(&light.Color)).
		Uniform("light_strength", buffers.UniformF32(light.Strength))

	switch light.Kind {

	case scene.LightKind_Point:
		lightAnchor, ok := r.anchors.get(light.Anchor)
		assert.T(ok, "Point light '%d' has no anchor and cannot be rendered", lightId)

		posView := scene.TransformPoint(&view.Mat4, &lightAnchor.Pos)

		builder.
			Uniform("light_type", buffers.UniformI32(1)).
			Uniform("light_position", buffers.UniformVec4{lightAnchor.Pos.X(), lightAnchor.Pos.Y(), lightAnchor.Pos.Z(), 1}).
			Uniform("light_position_view", buffers.UniformVec4{posView.X(), posView.Y(), posView.Z(), 1}).
			Uniform("light_radius", buffers.UniformF32(light.Radius))

	case scene.LightKind_Directional:
		dirView := scene.TransformDirection(&view.Mat4, &light.Direction)

		builder.
			Uniform("light_type", buffers.UniformI32(2)).
			Uniform("light_direction", buffers.Vec3Uniform(&light.Direction)).
			Uniform("light_direction_view", buffers.Vec3Uniform(&dirView))

	default:
		assert.T(false, "Unexpected light kind '%d' on light '%d'", light.Kind, lightId)
	}
}
