package renderer

import (
	_ "embed"
	"fmt"
	"image"

	"github.com/bloeys/gglm/gglm"
	"github.com/polygonengine/polygon/buffers"
	"github.com/polygonengine/polygon/engine"
	"github.com/polygonengine/polygon/logging"
	"github.com/polygonengine/polygon/materials"
	"github.com/polygonengine/polygon/scene"
	"github.com/polygonengine/polygon/shaders"
	"github.com/polygonengine/polygon/textures"
)

//go:embed diffuse_lit.material
var diffuseLitSource string

type glMesh struct {
	vertexArray buffers.VertexArray
}

var _ Renderer = &GlRenderer{}

// GlRenderer is the OpenGL renderer. All methods must be called from the
// thread that owns the context.
type GlRenderer struct {
	ctx *engine.Context

	meshes        registry[scene.MeshId, glMesh]
	meshInstances registry[scene.MeshInstanceId, scene.MeshInstance]
	anchors       registry[scene.AnchorId, scene.Anchor]
	cameras       registry[scene.CameraId, scene.Camera]
	lights        registry[scene.LightId, scene.Light]
	programs      registry[shaders.ShaderId, shaders.Program]
	mats          registry[MaterialId, materials.Material]
	texs          registry[textures.TextureId, textures.Texture2d]

	defaultTexture  textures.Texture2d
	defaultMaterial materials.Material
	ambientColor    gglm.Vec4
}

func NewGlRenderer(ctx *engine.Context) (*GlRenderer, error) {

	r := &GlRenderer{
		ctx: ctx,

		meshes:        newRegistry[scene.MeshId, glMesh](),
		meshInstances: newRegistry[scene.MeshInstanceId, scene.MeshInstance](),
		anchors:       newRegistry[scene.AnchorId, scene.Anchor](),
		cameras:       newRegistry[scene.CameraId, scene.Camera](),
		lights:        newRegistry[scene.LightId, scene.Light](),
		programs:      newRegistry[shaders.ShaderId, shaders.Program](),
		mats:          newRegistry[MaterialId, materials.Material](),
		texs:          newRegistry[textures.TextureId, textures.Texture2d](),

		ambientColor: gglm.NewVec4(0.01, 0.01, 0.01, 1),
	}

	r.defaultTexture = textures.Empty(ctx)

	source, err := materials.MaterialSourceFromString(diffuseLitSource)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in material: %w", err)
	}

	r.defaultMaterial, err = r.BuildMaterial(source)
	if err != nil {
		return nil, fmt.Errorf("failed to build built-in material: %w", err)
	}

	r.defaultMaterial.SetColor("surface_color", gglm.NewVec4(1, 1, 1, 1))
	r.defaultMaterial.SetColor("surface_specular", gglm.NewVec4(1, 1, 1, 1))
	r.defaultMaterial.SetF32("surface_shininess", 32)

	return r, nil
}

func (r *GlRenderer) DefaultMaterial() materials.Material {
	return r.defaultMaterial.Clone()
}

func (r *GlRenderer) BuildMaterial(source materials.MaterialSource) (materials.Material, error) {

	vertSrc, fragSrc, err := materials.GenerateShaderSource(source)
	if err != nil {
		return materials.Material{}, fmt.Errorf("material build failed: %w", err)
	}

	vert, err := shaders.Compile(r.ctx, vertSrc, shaders.ShaderType_Vertex)
	if err != nil {
		return materials.Material{}, fmt.Errorf("material build failed. Vertex stage: %w", err)
	}

	frag, err := shaders.Compile(r.ctx, fragSrc, shaders.ShaderType_Fragment)
	if err != nil {
		return materials.Material{}, fmt.Errorf("material build failed. Fragment stage: %w", err)
	}

	program, err := shaders.NewProgram(r.ctx, vert, frag)
	if err != nil {
		return materials.Material{}, fmt.Errorf("material build failed. Link: %w", err)
	}

	shaderId := r.programs.add(program)
	return materials.NewMaterialFromSource(shaderId, source), nil
}

func (r *GlRenderer) RegisterMaterial(source materials.MaterialSource) (MaterialId, error) {

	mat, err := r.BuildMaterial(source)
	if err != nil {
		return 0, err
	}

	return r.mats.add(&mat), nil
}

func (r *GlRenderer) RegisterMesh(data scene.MeshData) scene.MeshId {

	vb := buffers.NewVertexBuffer(r.ctx)
	vb.SetData(data.VertexData, engine.BufUsage_StaticDraw)

	vb.SetAttrib("position", buffers.AttribLayout{
		Elements: data.Position.Elements,
		Stride:   data.Position.Stride,
		Offset:   data.Position.Offset,
	})

	if data.Normal != nil {
		vb.SetAttrib("normal", buffers.AttribLayout{
			Elements: data.Normal.Elements,
			Stride:   data.Normal.Stride,
			Offset:   data.Normal.Offset,
		})
	}

	if data.Texcoord != nil {
		vb.SetAttrib("texcoord", buffers.AttribLayout{
			Elements: data.Texcoord.Elements,
			Stride:   data.Texcoord.Stride,
			Offset:   data.Texcoord.Offset,
		})
	}

	ib := buffers.NewIndexBuffer(r.ctx)
	ib.SetData(data.Indices)

	va := buffers.NewVertexArrayIndexed(r.ctx, vb, ib)
	return r.meshes.add(&glMesh{vertexArray: va})
}

func (r *GlRenderer) RegisterTexture(img image.Image) textures.TextureId {
	tex := textures.New(r.ctx, img)
	return r.texs.add(&tex)
}

func (r *GlRenderer) RegisterMeshInstance(instance scene.MeshInstance) scene.MeshInstanceId {
	return r.meshInstances.add(&instance)
}

func (r *GlRenderer) RegisterAnchor(anchor scene.Anchor) scene.AnchorId {
	return r.anchors.add(&anchor)
}

func (r *GlRenderer) RegisterCamera(camera scene.Camera) scene.CameraId {
	return r.cameras.add(&camera)
}

func (r *GlRenderer) RegisterLight(light scene.Light) scene.LightId {
	return r.lights.add(&light)
}

func (r *GlRenderer) GetMaterial(id MaterialId) (*materials.Material, bool) {
	return r.mats.get(id)
}

func (r *GlRenderer) GetAnchor(id scene.AnchorId) (*scene.Anchor, bool) {
	return r.anchors.get(id)
}

func (r *GlRenderer) GetCamera(id scene.CameraId) (*scene.Camera, bool) {
	return r.cameras.get(id)
}

func (r *GlRenderer) GetLight(id scene.LightId) (*scene.Light, bool) {
	return r.lights.get(id)
}

func (r *GlRenderer) GetMeshInstance(id scene.MeshInstanceId) (*scene.MeshInstance, bool) {
	return r.meshInstances.get(id)
}

func (r *GlRenderer) SetAmbientLight(color gglm.Vec4) {
	r.ambientColor = color
}

// textureOrDefault resolves a material's texture id to a live texture,
// falling back to the built-in white texture when the id is zero or stale.
func (r *GlRenderer) textureOrDefault(id textures.TextureId) *textures.Texture2d {

	if id == 0 {
		return &r.defaultTexture
	}

	tex, ok := r.texs.get(id)
	if !ok {
		logging.WarnLog.Printf("Unknown texture id %d. Using default texture\n", id)
		return &r.defaultTexture
	}

	return tex
}

func (r *GlRenderer) program(id shaders.ShaderId) (*shaders.Program, bool) {
	return r.programs.get(id)
}

func (r *GlRenderer) Destroy() {

	for _, id := range r.meshes.ids() {
		mesh, _ := r.meshes.get(id)
		mesh.vertexArray.Delete()
	}

	for _, id := range r.texs.ids() {
		tex, _ := r.texs.get(id)
		tex.Delete()
	}

	for _, id := range r.programs.ids() {
		program, _ := r.programs.get(id)
		program.Delete()
	}

	r.defaultTexture.Delete()

	logging.InfoLog.Printf("Renderer destroyed. Released %d meshes, %d textures, %d programs\n",
		r.meshes.len(), r.texs.len(), r.programs.len())

	r.ctx.Destroy()
}
