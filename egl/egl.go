package egl

import (
	"errors"

	"github.com/phanxgames/nativeshell/surface"
)

// ErrUnsupported is returned by Open on platforms without EGL.
var ErrUnsupported = errors.New("egl: unsupported platform")

// EGL enums used by the driver.
const (
	eglFalse uint32 = 0

	eglDefaultDisplay uintptr = 0

	eglBlueSize             int32 = 0x3022
	eglGreenSize            int32 = 0x3023
	eglRedSize              int32 = 0x3024
	eglDepthSize            int32 = 0x3025
	eglSurfaceType          int32 = 0x3033
	eglNone                 int32 = 0x3038
	eglRenderableType       int32 = 0x3040
	eglHeight               int32 = 0x3056
	eglWidth                int32 = 0x3057
	eglContextClientVersion int32 = 0x3098

	eglWindowBit    int32 = 0x0004
	eglOpenGLES3Bit int32 = 0x0040
)

// api holds the library entry points. Each field is bound by Open.
type api struct {
	getDisplay          func(native uintptr) uintptr
	initialize          func(dpy uintptr, major, minor *int32) uint32
	chooseConfig        func(dpy uintptr, attribs *int32, configs *uintptr, size int32, num *int32) uint32
	createWindowSurface func(dpy, cfg, win uintptr, attribs *int32) uintptr
	querySurface        func(dpy, surf uintptr, attr int32, value *int32) uint32
	createContext       func(dpy, cfg, share uintptr, attribs *int32) uintptr
	makeCurrent         func(dpy, draw, read, ctx uintptr) uint32
	swapBuffers         func(dpy, surf uintptr) uint32
	destroySurface      func(dpy, surf uintptr) uint32
	destroyContext      func(dpy, ctx uintptr) uint32
	terminate           func(dpy uintptr) uint32
	getError            func() int32
	glGetString         func(name uint32) string
}

// Driver is a surface.Driver backed by the system EGL library. Create it
// with Open.
type Driver struct {
	api
	close func() error
}

var _ surface.Driver = (*Driver)(nil)

// Close unloads the libraries. The Driver must not be used afterwards.
func (d *Driver) Close() error {
	if d.close == nil {
		return nil
	}
	err := d.close()
	d.close = nil
	return err
}

func (d *Driver) lastError() surface.Code {
	return surface.Code(d.getError())
}

func (d *Driver) OpenDisplay() surface.Display {
	return surface.Display(d.getDisplay(eglDefaultDisplay))
}

func (d *Driver) Initialize(dpy surface.Display) surface.Code {
	var major, minor int32
	if d.initialize(uintptr(dpy), &major, &minor) == eglFalse {
		return d.lastError()
	}
	logger().Debug("egl initialized", "major", major, "minor", minor)
	return surface.Success
}

func (d *Driver) ChooseConfig(dpy surface.Display, req surface.ConfigRequest) (surface.Config, bool) {
	attribs := configAttribs(req)
	var cfg uintptr
	var n int32
	if d.chooseConfig(uintptr(dpy), &attribs[0], &cfg, 1, &n) == eglFalse || n == 0 {
		return surface.NoConfig, false
	}
	return surface.Config(cfg), true
}

func (d *Driver) CreateWindowSurface(dpy surface.Display, cfg surface.Config, win surface.Window) (surface.Surface, surface.Code) {
	s := d.createWindowSurface(uintptr(dpy), uintptr(cfg), uintptr(win), nil)
	if s == 0 {
		return surface.NoSurface, d.lastError()
	}
	return surface.Surface(s), surface.Success
}

func (d *Driver) QuerySurfaceSize(dpy surface.Display, s surface.Surface) (width, height int32) {
	d.querySurface(uintptr(dpy), uintptr(s), eglWidth, &width)
	d.querySurface(uintptr(dpy), uintptr(s), eglHeight, &height)
	return width, height
}

func (d *Driver) CreateContext(dpy surface.Display, cfg surface.Config, clientVersion int32) (surface.RenderContext, surface.Code) {
	attribs := contextAttribs(clientVersion)
	ctx := d.createContext(uintptr(dpy), uintptr(cfg), 0, &attribs[0])
	if ctx == 0 {
		return surface.NoContext, d.lastError()
	}
	return surface.RenderContext(ctx), surface.Success
}

func (d *Driver) MakeCurrent(dpy surface.Display, s surface.Surface, ctx surface.RenderContext) surface.Code {
	if d.makeCurrent(uintptr(dpy), uintptr(s), uintptr(s), uintptr(ctx)) == eglFalse {
		return d.lastError()
	}
	return surface.Success
}

func (d *Driver) SwapBuffers(dpy surface.Display, s surface.Surface) surface.Code {
	if d.swapBuffers(uintptr(dpy), uintptr(s)) == eglFalse {
		return d.lastError()
	}
	return surface.Success
}

func (d *Driver) DestroySurface(dpy surface.Display, s surface.Surface) {
	d.destroySurface(uintptr(dpy), uintptr(s))
}

func (d *Driver) DestroyContext(dpy surface.Display, ctx surface.RenderContext) {
	d.destroyContext(uintptr(dpy), uintptr(ctx))
}

func (d *Driver) Terminate(dpy surface.Display) {
	d.terminate(uintptr(dpy))
}

// GetString returns a driver string of the current context. It returns ""
// when no context is current.
func (d *Driver) GetString(name surface.StringName) string {
	return d.glGetString(uint32(name))
}

// configAttribs builds the EGL_NONE terminated attribute list for req.
func configAttribs(req surface.ConfigRequest) []int32 {
	return []int32{
		eglRenderableType, eglOpenGLES3Bit,
		eglSurfaceType, eglWindowBit,
		eglBlueSize, req.BlueSize,
		eglGreenSize, req.GreenSize,
		eglRedSize, req.RedSize,
		eglDepthSize, req.DepthSize,
		eglNone,
	}
}

func contextAttribs(clientVersion int32) []int32 {
	return []int32{eglContextClientVersion, clientVersion, eglNone}
}
