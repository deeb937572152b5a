package renderer

import (
	"strings"
	"testing"

	"github.com/polygonengine/polygon/materials"
	"github.com/polygonengine/polygon/textures"
)

func TestTextureOrDefault(t *testing.T) {

	r := &GlRenderer{
		texs:           newRegistry[textures.TextureId, textures.Texture2d](),
		defaultTexture: textures.Texture2d{Handle: 7},
	}

	registered := textures.Texture2d{Handle: 12}
	id := r.texs.add(&registered)

	if got := r.textureOrDefault(id); got.Handle != 12 {
		t.Errorf("registered texture handle = %d, want 12", got.Handle)
	}

	if got := r.textureOrDefault(0); got.Handle != 7 {
		t.Errorf("zero id handle = %d, want default 7", got.Handle)
	}

	if got := r.textureOrDefault(id + 99); got.Handle != 7 {
		t.Errorf("stale id handle = %d, want default 7", got.Handle)
	}
}

// The embedded built-in material must parse and generate without errors,
// and must declare the properties the renderer sets defaults for.
func TestBuiltinMaterialSource(t *testing.T) {

	source, err := materials.MaterialSourceFromString(diffuseLitSource)
	if err != nil {
		t.Fatalf("built-in material failed to parse: %v", err)
	}

	wantProps := map[string]materials.PropertyType{
		"surface_color":     materials.PropertyType_Color,
		"surface_diffuse":   materials.PropertyType_Texture2d,
		"surface_specular":  materials.PropertyType_Color,
		"surface_shininess": materials.PropertyType_F32,
	}

	if len(source.Properties) != len(wantProps) {
		t.Fatalf("got %d properties, want %d", len(source.Properties), len(wantProps))
	}
	for _, decl := range source.Properties {
		if wantProps[decl.Name] != decl.Type {
			t.Errorf("property %s has type %v, want %v", decl.Name, decl.Type, wantProps[decl.Name])
		}
	}

	vertSrc, fragSrc, err := materials.GenerateShaderSource(source)
	if err != nil {
		t.Fatalf("built-in material failed to generate: %v", err)
	}

	if strings.Contains(vertSrc, "@") || strings.Contains(fragSrc, "@") {
		t.Error("generated built-in material still contains an @-keyword")
	}

	for _, want := range []string{"light_type", "light_radius", "light_direction_view", "global_ambient"} {
		if !strings.Contains(fragSrc, want) {
			t.Errorf("built-in fragment source missing %q", want)
		}
	}
}
