package shaders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/polygonengine/polygon/engine"
)

// Shader is one compiled stage, alive only between Compile and program
// linking.
type Shader struct {
	Handle uint32
	Type   ShaderType
}

func (s *Shader) Delete() {
	gl.DeleteShader(s.Handle)
	s.Handle = 0
}

// Compile compiles one shader stage. The returned error carries the full
// driver info log so callers can report actionable build failures.
func Compile(ctx *engine.Context, source string, shaderType ShaderType) (Shader, error) {

	release := ctx.Acquire()
	defer release()

	shaderHandle := gl.CreateShader(shaderType.ToGl())
	if shaderHandle == 0 {
		return Shader{}, fmt.Errorf("failed to create OpenGl shader. OpenGl Error=%d", gl.GetError())
	}

	shaderCStr, shaderFree := gl.Strs(source + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderHandle, 1, shaderCStr, nil)

	gl.CompileShader(shaderHandle)
	if err := getShaderCompileErrors(shaderHandle); err != nil {
		gl.DeleteShader(shaderHandle)
		return Shader{}, err
	}

	return Shader{Handle: shaderHandle, Type: shaderType}, nil
}

func getShaderCompileErrors(shaderHandle uint32) error {

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderHandle, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetShaderiv(shaderHandle, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)+1))
	gl.GetShaderInfoLog(shaderHandle, logLength, nil, log)

	return errors.New(gl.GoStr(log))
}
