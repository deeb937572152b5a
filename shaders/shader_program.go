package shaders

import (
	"errors"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/polygonengine/polygon/engine"
)

// Program is a linked shader program plus its uniform and attribute
// name-to-location tables. The tables are filled once at link time so that
// speculative lookups against names the program does not use stay off the
// device entirely. A Program is never mutated after NewProgram returns.
type Program struct {
	Handle uint32

	UniformLocs map[string]int32
	AttribLocs  map[string]int32

	ctx *engine.Context
}

// NewProgram links the given stages into one program, deletes the stage
// objects, and snapshots the active uniform/attribute locations. Link
// failure returns the driver info log as the error.
func NewProgram(ctx *engine.Context, stages ...Shader) (*Program, error) {

	release := ctx.Acquire()
	defer release()

	handle := gl.CreateProgram()
	if handle == 0 {
		return nil, errors.New("failed to create shader program")
	}

	for i := 0; i < len(stages); i++ {
		gl.AttachShader(handle, stages[i].Handle)
	}

	gl.LinkProgram(handle)

	for i := 0; i < len(stages); i++ {
		stages[i].Delete()
	}

	if err := getProgramLinkErrors(handle); err != nil {
		gl.DeleteProgram(handle)
		return nil, err
	}

	p := &Program{
		Handle:      handle,
		UniformLocs: make(map[string]int32),
		AttribLocs:  make(map[string]int32),
		ctx:         ctx,
	}
	p.readActiveUniforms()
	p.readActiveAttribs()

	return p, nil
}

// UniformLoc reports the location of a named uniform, or false if the
// program has no active uniform with that name. Misses are not an error:
// callers speculatively set uniforms that only some programs use.
func (p *Program) UniformLoc(name string) (int32, bool) {
	loc, ok := p.UniformLocs[name]
	return loc, ok
}

// AttribLoc reports the location of a named vertex input, or false if the
// program has no such input.
func (p *Program) AttribLoc(name string) (int32, bool) {
	loc, ok := p.AttribLocs[name]
	return loc, ok
}

func (p *Program) Delete() {
	release := p.ctx.Acquire()
	defer release()

	gl.DeleteProgram(p.Handle)
	p.Handle = 0
}

func (p *Program) readActiveUniforms() {

	var count int32
	gl.GetProgramiv(p.Handle, gl.ACTIVE_UNIFORMS, &count)

	var maxNameLen int32
	gl.GetProgramiv(p.Handle, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxNameLen)
	if maxNameLen <= 0 {
		maxNameLen = 256
	}

	nameBuf := make([]byte, maxNameLen+1)
	for i := int32(0); i < count; i++ {

		var nameLen, size int32
		var xtype uint32
		gl.GetActiveUniform(p.Handle, uint32(i), maxNameLen, &nameLen, &size, &xtype, &nameBuf[0])

		// Array uniforms report as "name[0]"; store the bare name.
		name := strings.TrimSuffix(string(nameBuf[:nameLen]), "[0]")
		loc := gl.GetUniformLocation(p.Handle, gl.Str(name+"\x00"))
		if loc != -1 {
			p.UniformLocs[name] = loc
		}
	}
}

func (p *Program) readActiveAttribs() {

	var count int32
	gl.GetProgramiv(p.Handle, gl.ACTIVE_ATTRIBUTES, &count)

	var maxNameLen int32
	gl.GetProgramiv(p.Handle, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxNameLen)
	if maxNameLen <= 0 {
		maxNameLen = 256
	}

	nameBuf := make([]byte, maxNameLen+1)
	for i := int32(0); i < count; i++ {

		var nameLen, size int32
		var xtype uint32
		gl.GetActiveAttrib(p.Handle, uint32(i), maxNameLen, &nameLen, &size, &xtype, &nameBuf[0])

		name := string(nameBuf[:nameLen])
		loc := gl.GetAttribLocation(p.Handle, gl.Str(name+"\x00"))
		if loc != -1 {
			p.AttribLocs[name] = loc
		}
	}
}

func getProgramLinkErrors(handle uint32) error {

	var linkedSuccessfully int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)+1))
	gl.GetProgramInfoLog(handle, logLength, nil, log)

	return errors.New(gl.GoStr(log))
}
