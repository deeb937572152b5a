package materials

import (
	"fmt"
	"os"
	"strings"
)

// MaterialSource is the parsed form of a material file: the declared
// property list plus optional shader stage bodies written in the small
// keyword language (see codegen.go).
//
// The textual format uses comment markers so material files stay valid
// GLSL-ish text for editors:
//
//	//property:surface_color Color
//	//property:surface_shininess f32
//
//	//shader:vertex
//	@position = model_view_projection * vertex_position;
//
//	//shader:fragment
//	@color = surface_color;
//
// Property declarations must come before the first //shader: marker. The
// vertex stage is optional (a default pass-through body is generated);
// the fragment stage is required to build, but its absence is reported at
// build time, not parse time.
type MaterialSource struct {
	Properties []PropertyDecl

	VertexSrc   string
	FragmentSrc string
}

type PropertyDecl struct {
	Name string
	Type PropertyType
}

const (
	propertyMarker = "//property:"
	shaderMarker   = "//shader:"
)

func MaterialSourceFromFile(path string) (MaterialSource, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return MaterialSource{}, fmt.Errorf("failed to read material file '%s': %w", path, err)
	}

	return MaterialSourceFromString(string(data))
}

func MaterialSourceFromString(src string) (MaterialSource, error) {

	out := MaterialSource{}

	sections := strings.Split(src, shaderMarker)

	// Everything before the first shader marker is the declaration block.
	for _, line := range strings.Split(sections[0], "\n") {

		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, propertyMarker) {
			continue
		}

		decl, err := parsePropertyDecl(strings.TrimPrefix(line, propertyMarker))
		if err != nil {
			return MaterialSource{}, err
		}

		out.Properties = append(out.Properties, decl)
	}

	for _, section := range sections[1:] {

		switch {
		case strings.HasPrefix(section, "vertex"):
			out.VertexSrc = strings.TrimSpace(strings.TrimPrefix(section, "vertex"))
		case strings.HasPrefix(section, "fragment"):
			out.FragmentSrc = strings.TrimSpace(strings.TrimPrefix(section, "fragment"))
		default:
			return MaterialSource{}, fmt.Errorf("unknown shader stage marker '%s%s'", shaderMarker, firstLine(section))
		}
	}

	return out, nil
}

func parsePropertyDecl(decl string) (PropertyDecl, error) {

	fields := strings.Fields(decl)
	if len(fields) != 2 {
		return PropertyDecl{}, fmt.Errorf("malformed property declaration '%s%s': want '%sname type'", propertyMarker, decl, propertyMarker)
	}

	var propType PropertyType
	switch fields[1] {
	case "Color":
		propType = PropertyType_Color
	case "Texture2d":
		propType = PropertyType_Texture2d
	case "f32":
		propType = PropertyType_F32
	case "Vector3":
		propType = PropertyType_Vector3
	default:
		return PropertyDecl{}, fmt.Errorf("unknown property type '%s' for property '%s'", fields[1], fields[0])
	}

	return PropertyDecl{Name: fields[0], Type: propType}, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i != -1 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
