package engine

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/polygonengine/polygon/logging"
	"github.com/veandco/go-sdl2/sdl"
)

// Context owns the connection to the graphics device for one window plus a
// cache of the server state currently bound on it (vertex array, program,
// enabled toggles). Every resource object holds a *Context and re-activates
// it before touching the device, so the context must outlive every buffer,
// vertex array, program and texture created from it.
//
// The bind-state cache is not synchronized: exactly one goroutine (the
// render thread locked by Init) may issue device calls.
type Context struct {
	Win   *Window
	GlCtx sdl.GLContext

	// Cached server state. Field zero values match the defaults of a fresh
	// OpenGL context, so a new cache starts out accurate.
	boundVao      uint32
	activeProgram uint32
	programBound  bool
	polygonMode   PolygonMode
	cullEnabled   bool
	cullFace      Face
	winding       WindingOrder
	depthEnabled  bool
	depthFunc     Comparison
	blendSrc      SourceFactor
	blendDst      DestFactor
}

// NewContext creates an OpenGL context on the window and loads the GL
// function pointers. Context creation failure is the one recoverable
// device error in this layer.
func NewContext(win *Window) (*Context, error) {

	glCtx, err := win.SDLWin.GLCreateContext()
	if err != nil {
		return nil, err
	}

	if err := gl.Init(); err != nil {
		return nil, err
	}

	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0, 0, 0, 1)

	return &Context{
		Win:   win,
		GlCtx: glCtx,
	}, nil
}

// Acquire makes this context the active one and returns a release func that
// restores whatever context was active before. Callers must defer the
// release so the prior state comes back even on early return:
//
//	release := ctx.Acquire()
//	defer release()
func (c *Context) Acquire() func() {

	prevWin, _ := sdl.GLGetCurrentWindow()
	prevCtx, _ := sdl.GLGetCurrentContext()

	if prevCtx == c.GlCtx {
		return func() {}
	}

	if err := c.Win.SDLWin.GLMakeCurrent(c.GlCtx); err != nil {
		logging.ErrLog.Panicln("Failed to make OpenGL context current. Err:", err)
	}

	return func() {

		if prevWin == nil || prevCtx == nil {
			return
		}

		if err := prevWin.GLMakeCurrent(prevCtx); err != nil {
			logging.ErrLog.Panicln("Failed to restore previous OpenGL context. Err:", err)
		}
	}
}

// Clear clears the color, depth and stencil buffers of the swap chain.
func (c *Context) Clear() {
	release := c.Acquire()
	defer release()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

// SwapBuffers presents the back buffer.
func (c *Context) SwapBuffers() {
	release := c.Acquire()
	defer release()

	c.Win.SDLWin.GLSwap()
}

// Destroy tears the GL context down. All resources created from this
// context must have been deleted first; handles that reference a destroyed
// context are invalid and using them is undefined.
func (c *Context) Destroy() {
	sdl.GLDeleteContext(c.GlCtx)
	c.GlCtx = nil
}

// BindVertexArray binds the vertex array if it is not already bound.
func (c *Context) BindVertexArray(handle uint32) {

	if c.boundVao == handle {
		return
	}

	gl.BindVertexArray(handle)
	c.boundVao = handle
}

// UnbindVertexArray clears the binding if the given vertex array is the
// bound one. Called when a vertex array is deleted so the cache never
// points at a dead handle.
func (c *Context) UnbindVertexArray(handle uint32) {

	if c.boundVao != handle {
		return
	}

	gl.BindVertexArray(0)
	c.boundVao = 0
}

// UseProgram makes the program active. Zero unbinds any program, which is
// valid for shaderless debug draws.
func (c *Context) UseProgram(handle uint32) {

	if c.programBound && c.activeProgram == handle {
		return
	}

	gl.UseProgram(handle)
	c.activeProgram = handle
	c.programBound = true
}

func (c *Context) SetPolygonMode(mode PolygonMode) {

	if c.polygonMode == mode {
		return
	}

	gl.PolygonMode(gl.FRONT_AND_BACK, mode.ToGL())
	c.polygonMode = mode
}

func (c *Context) EnableCull(face Face, winding WindingOrder) {

	if !c.cullEnabled {
		gl.Enable(gl.CULL_FACE)
		c.cullEnabled = true
	}

	if c.cullFace != face {
		gl.CullFace(face.ToGL())
		c.cullFace = face
	}

	if c.winding != winding {
		gl.FrontFace(winding.ToGL())
		c.winding = winding
	}
}

func (c *Context) DisableCull() {

	if !c.cullEnabled {
		return
	}

	gl.Disable(gl.CULL_FACE)
	c.cullEnabled = false
}

func (c *Context) EnableDepthTest(comparison Comparison) {

	if !c.depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
		c.depthEnabled = true
	}

	if c.depthFunc != comparison {
		gl.DepthFunc(comparison.ToGL())
		c.depthFunc = comparison
	}
}

func (c *Context) DisableDepthTest() {

	if !c.depthEnabled {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	c.depthEnabled = false
}

func (c *Context) SetBlend(src SourceFactor, dst DestFactor) {

	if c.blendSrc == src && c.blendDst == dst {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(src.ToGL(), dst.ToGL())
	c.blendSrc = src
	c.blendDst = dst
}
