package materials

import (
	"strings"
	"testing"
)

func TestGenerateShaderSource(t *testing.T) {

	source, err := MaterialSourceFromString(`
//property:surface_color Color
//property:surface_shininess f32

//shader:fragment
@color = surface_color * vec4(@vertex.uv0, 0, 1);
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	vertSrc, fragSrc, err := GenerateShaderSource(source)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for _, src := range []string{vertSrc, fragSrc} {

		if !strings.HasPrefix(src, "#version 410") {
			t.Error("generated source missing version header")
		}

		for _, decl := range []string{
			"uniform vec4 surface_color;",
			"uniform float surface_shininess;",
			"uniform mat4 model_view_projection;",
			"uniform vec4 global_ambient;",
		} {
			if !strings.Contains(src, decl) {
				t.Errorf("generated source missing %q", decl)
			}
		}

		if strings.Contains(src, "@") {
			t.Error("generated source still contains an @-keyword")
		}
	}

	// No vertex body was given, so the default pass-through is used.
	if !strings.Contains(vertSrc, "gl_Position = model_view_projection * vertex_position;") {
		t.Error("vertex source missing default position write")
	}
	if !strings.Contains(vertSrc, "_vertex_view_normal_ = normalize(view_normal_transform * vertex_normal);") {
		t.Error("vertex source missing default view normal write")
	}

	if !strings.Contains(fragSrc, "_fragment_color_ = surface_color * vec4(_vertex_uv0_, 0, 1);") {
		t.Error("fragment source keyword substitution incomplete")
	}
	if !strings.Contains(fragSrc, "out vec4 _fragment_color_;") {
		t.Error("fragment source missing color output declaration")
	}
}

func TestGenerateShaderSourceCustomVertexBody(t *testing.T) {

	source := MaterialSource{
		VertexSrc:   "@position = model_view_projection * vertex_position;\n@vertex.view_position = model_view_transform * vertex_position;",
		FragmentSrc: "@color = @vertex.view_position;",
	}

	vertSrc, _, err := GenerateShaderSource(source)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if !strings.Contains(vertSrc, "_vertex_view_position_ = model_view_transform * vertex_position;") {
		t.Error("custom vertex body not substituted")
	}
	if strings.Contains(vertSrc, "_vertex_world_normal_ = normalize(") {
		t.Error("default vertex body used despite a custom one")
	}
}

func TestGenerateShaderSourceRequiresFragment(t *testing.T) {

	_, _, err := GenerateShaderSource(MaterialSource{VertexSrc: "@position = vertex_position;"})
	if err == nil {
		t.Error("generate succeeded without a fragment body, want error")
	}
}

func TestPropertyUniformDecls(t *testing.T) {

	decls := propertyUniformDecls([]PropertyDecl{
		{Name: "surface_diffuse", Type: PropertyType_Texture2d},
		{Name: "wind_direction", Type: PropertyType_Vector3},
	})

	want := "uniform sampler2D surface_diffuse;\nuniform vec3 wind_direction;\n"
	if decls != want {
		t.Errorf("decls = %q, want %q", decls, want)
	}
}
