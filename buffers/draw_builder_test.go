package buffers

import (
	"testing"

	"github.com/polygonengine/polygon/engine"
	"github.com/polygonengine/polygon/shaders"
)

func testProgram() *shaders.Program {
	return &shaders.Program{
		UniformLocs: map[string]int32{
			"surface_color":         3,
			"model_view_projection": 0,
		},
		AttribLocs: map[string]int32{
			"vertex_position": 0,
			"vertex_normal":   1,
		},
	}
}

func testVertexArray() *VertexArray {

	vb := VertexBuffer{Len: 56}
	vb.SetAttrib("position", AttribLayout{Elements: 4})
	vb.SetAttrib("normal", AttribLayout{Elements: 3, Offset: 32})

	return &VertexArray{VertexBuffer: vb}
}

func TestUniformStaging(t *testing.T) {

	b := NewDrawBuilder(&engine.Context{}, testVertexArray(), engine.DrawMode_Triangles).
		Program(testProgram())

	// A name the program does not use is ignored.
	b.Uniform("light_radius", UniformF32(1))
	if len(b.uniforms) != 0 {
		t.Fatalf("staged uniforms = %d, want 0 after a miss", len(b.uniforms))
	}

	b.Uniform("surface_color", UniformVec4{1, 0, 0, 1})
	if len(b.uniforms) != 1 {
		t.Fatalf("staged uniforms = %d, want 1", len(b.uniforms))
	}

	got, ok := b.uniforms[3]
	if !ok {
		t.Fatal("uniform not staged under its resolved location")
	}
	if got != (UniformVec4{1, 0, 0, 1}) {
		t.Errorf("staged value = %v", got)
	}

	// A later value for the same location wins.
	b.Uniform("surface_color", UniformVec4{0, 1, 0, 1})
	if got := b.uniforms[3]; got != (UniformVec4{0, 1, 0, 1}) {
		t.Errorf("staged value after overwrite = %v", got)
	}
	if len(b.uniforms) != 1 {
		t.Errorf("staged uniforms = %d, want 1 after overwrite", len(b.uniforms))
	}
}

func TestUniformWithoutProgramPanics(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Error("Uniform without a program did not panic")
		}
	}()

	NewDrawBuilder(&engine.Context{}, testVertexArray(), engine.DrawMode_Triangles).
		Uniform("surface_color", UniformF32(1))
}

func TestMapAttribNameMisses(t *testing.T) {

	b := NewDrawBuilder(&engine.Context{}, testVertexArray(), engine.DrawMode_Triangles).
		Program(testProgram())

	// Program input missing: no-op.
	b.MapAttribName("position", "vertex_uv0")

	// Buffer attribute missing: no-op.
	b.MapAttribName("texcoord", "vertex_position")
}

func TestMapAttribNameWithoutProgramPanics(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Error("MapAttribName without a program did not panic")
		}
	}()

	NewDrawBuilder(&engine.Context{}, testVertexArray(), engine.DrawMode_Triangles).
		MapAttribName("position", "vertex_position")
}

func TestMapAttribLocationUnknownNamePanics(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Error("MapAttribLocation with an unknown buffer attribute did not panic")
		}
	}()

	NewDrawBuilder(&engine.Context{}, testVertexArray(), engine.DrawMode_Triangles).
		MapAttribLocation("tangent", 0)
}
