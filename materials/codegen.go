package materials

import (
	"errors"
	"fmt"
	"strings"

	"github.com/polygonengine/polygon/assert"
)

// The material keyword language. Shader bodies in a MaterialSource refer to
// engine-provided values through @-keywords, which codegen substitutes for
// the internal variable names before wrapping the body into a complete
// GLSL translation unit:
//
//	@position              final clip-space position (vertex stage)
//	@color                 fragment output color (fragment stage)
//	@vertex.position       pass-through of the raw vertex position
//	@vertex.normal         pass-through of the vertex normal
//	@vertex.uv0            pass-through of the first texcoord set
//	@vertex.world_position vertex position in world space
//	@vertex.world_normal   vertex normal in world space
//	@vertex.view_position  vertex position in view space
//	@vertex.view_normal    vertex normal in view space

const glslVersion = "#version 410"

// Engine uniforms every generated program can rely on. The renderer fills
// these each draw; programs that ignore some of them simply have those
// writes skipped by the speculative uniform contract.
const builtinUniforms = `uniform mat4 model_transform;
uniform mat3 normal_transform;
uniform mat4 view_transform;
uniform mat3 view_normal_transform;
uniform mat4 model_view_transform;
uniform mat4 projection_transform;
uniform mat4 model_view_projection;

uniform vec4 global_ambient;
uniform vec4 camera_position;
uniform vec4 light_position;
uniform vec4 light_position_view;
uniform float light_strength;
uniform vec4 light_color;
uniform int light_type;
uniform float light_radius;
uniform vec3 light_direction;
uniform vec3 light_direction_view;`

// Used when the material supplies no vertex stage: pass everything through
// and precompute the world/view space values.
const defaultVertexBody = `@position = model_view_projection * vertex_position;

@vertex.position = vertex_position;
@vertex.normal = vertex_normal;
@vertex.uv0 = vertex_uv0;

@vertex.world_position = model_transform * vertex_position;
@vertex.world_normal = normalize(normal_transform * vertex_normal);

@vertex.view_position = model_view_transform * vertex_position;
@vertex.view_normal = normalize(view_normal_transform * vertex_normal);`

var vertexKeywords = strings.NewReplacer(
	"@vertex.world_position", "_vertex_world_position_",
	"@vertex.world_normal", "_vertex_world_normal_",
	"@vertex.view_position", "_vertex_view_position_",
	"@vertex.view_normal", "_vertex_view_normal_",
	"@vertex.position", "_vertex_position_",
	"@vertex.normal", "_vertex_normal_",
	"@vertex.uv0", "_vertex_uv0_",
	"@position", "gl_Position",
)

var fragmentKeywords = strings.NewReplacer(
	"@vertex.world_position", "_vertex_world_position_",
	"@vertex.world_normal", "_vertex_world_normal_",
	"@vertex.view_position", "_vertex_view_position_",
	"@vertex.view_normal", "_vertex_view_normal_",
	"@vertex.position", "_vertex_position_",
	"@vertex.normal", "_vertex_normal_",
	"@vertex.uv0", "_vertex_uv0_",
	"@color", "_fragment_color_",
)

const vertexTemplate = `%s

%s

%s
in vec4 vertex_position;
in vec3 vertex_normal;
in vec2 vertex_uv0;

out vec4 _vertex_position_;
out vec3 _vertex_normal_;
out vec2 _vertex_uv0_;
out vec4 _vertex_world_position_;
out vec3 _vertex_world_normal_;
out vec4 _vertex_view_position_;
out vec3 _vertex_view_normal_;

void main(void) {
%s
}
`

const fragmentTemplate = `%s

%s

%s
in vec4 _vertex_position_;
in vec3 _vertex_normal_;
in vec2 _vertex_uv0_;
in vec4 _vertex_world_position_;
in vec3 _vertex_world_normal_;
in vec4 _vertex_view_position_;
in vec3 _vertex_view_normal_;

out vec4 _fragment_color_;

void main(void) {
%s
}
`

// GenerateShaderSource turns a material source into complete GLSL for the
// vertex and fragment stages: one uniform declaration per declared
// property, keyword substitution over the stage bodies, and the fixed
// wrapping of version header, built-in uniforms and stage interfaces. A
// missing fragment body is a build error; a missing vertex body falls back
// to the default pass-through.
func GenerateShaderSource(source MaterialSource) (vertSrc, fragSrc string, err error) {

	if source.FragmentSrc == "" {
		return "", "", errors.New("material source has no fragment shader: a '//shader:fragment' section is required")
	}

	uniformDecls := propertyUniformDecls(source.Properties)

	vertBody := source.VertexSrc
	if vertBody == "" {
		vertBody = defaultVertexBody
	}

	vertSrc = fmt.Sprintf(vertexTemplate, glslVersion, builtinUniforms, uniformDecls, vertexKeywords.Replace(vertBody))
	fragSrc = fmt.Sprintf(fragmentTemplate, glslVersion, builtinUniforms, uniformDecls, fragmentKeywords.Replace(source.FragmentSrc))

	return vertSrc, fragSrc, nil
}

func propertyUniformDecls(decls []PropertyDecl) string {

	sb := strings.Builder{}
	for _, decl := range decls {
		sb.WriteString("uniform ")
		sb.WriteString(glslType(decl.Type))
		sb.WriteByte(' ')
		sb.WriteString(decl.Name)
		sb.WriteString(";\n")
	}

	return sb.String()
}

func glslType(propType PropertyType) string {

	switch propType {
	case PropertyType_Color:
		return "vec4"
	case PropertyType_Texture2d:
		return "sampler2D"
	case PropertyType_F32:
		return "float"
	case PropertyType_Vector3:
		return "vec3"
	}

	assert.T(false, "Unknown property type '%d'", propType)
	return ""
}
