package surface

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultClientVersion is the minimum rendering API version requested when
// creating a context.
const DefaultClientVersion = 3

// Option configures a Context.
type Option func(*Context)

// WithClientVersion overrides the client API version passed to
// Driver.CreateContext.
func WithClientVersion(v int32) Option {
	return func(c *Context) { c.clientVersion = v }
}

// WithConfigRequests overrides the pixel formats tried, in order, during
// initialization.
func WithConfigRequests(reqs ...ConfigRequest) Option {
	return func(c *Context) { c.requests = reqs }
}

// Context owns a display connection, a window surface and a rendering
// context, and recovers them across window and context loss.
type Context struct {
	drv Driver

	window  Window
	display Display
	surface Surface
	context RenderContext
	config  Config

	width     int32
	height    int32
	colorSize int32
	depthSize int32

	clientVersion int32
	requests      []ConfigRequest

	glesInitialized bool
	initialized     bool
	contextValid    bool
	glVersion       float32
	gles3           bool
}

// New creates an uninitialized Context on top of drv.
func New(drv Driver, opts ...Option) *Context {
	c := &Context{
		drv:           drv,
		clientVersion: DefaultClientVersion,
		requests:      DefaultConfigRequests,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init connects to the display, creates a surface for win and a context, and
// binds them. Calling Init on an initialized Context does nothing. On failure
// every partially created resource is released and the Context stays
// uninitialized.
func (c *Context) Init(win Window) error {
	if c.initialized {
		return nil
	}

	c.window = win
	if err := c.build(); err != nil {
		c.terminate()
		return fmt.Errorf("surface: init: %w", err)
	}
	c.initGLES()
	c.initialized = true

	logger().Info("surface initialized",
		"width", c.width, "height", c.height,
		"color", c.colorSize, "depth", c.depthSize,
		"gles3", c.gles3)
	return nil
}

// Swap presents the back buffer.
//
// A lost surface is recreated in place and Success is returned; the frame is
// dropped. A lost context tears everything down, rebuilds it against the
// same window and returns the original code so the caller reloads its
// resources. Any other failure is returned unchanged.
func (c *Context) Swap() Code {
	code := c.drv.SwapBuffers(c.display, c.surface)
	if code == Success {
		return Success
	}

	switch {
	case code == BadSurface:
		logger().Warn("surface lost, recreating")
		return c.recreateSurface()
	case code.IsContextLoss():
		logger().Warn("context lost, recreating", "code", code)
		c.contextValid = false
		c.rebuild()
	default:
		logger().Error("swap failed", "code", code)
	}
	return code
}

// Resume attaches the Context to win after the window was hidden or
// replaced. An uninitialized Context is initialized instead.
//
// When the existing context cannot be bound to the new surface it is
// recreated, and the platform code of the failure is returned.
func (c *Context) Resume(win Window) Code {
	if !c.initialized {
		if err := c.Init(win); err != nil {
			logger().Error("resume: init failed", "err", err)
			return CodeOf(err)
		}
		return Success
	}

	prevWidth, prevHeight := c.width, c.height

	if c.surface != NoSurface {
		c.drv.DestroySurface(c.display, c.surface)
		c.surface = NoSurface
	}
	c.window = win

	code := Success
	if err := c.createSurface(); err != nil {
		code = CodeOf(err)
	} else {
		if c.width != prevWidth || c.height != prevHeight {
			logger().Info("screen resized",
				"from", fmt.Sprintf("%dx%d", prevWidth, prevHeight),
				"to", fmt.Sprintf("%dx%d", c.width, c.height))
		}
		code = c.drv.MakeCurrent(c.display, c.surface, c.context)
		if code == Success {
			c.contextValid = true
			return Success
		}
	}

	logger().Error("unable to make context current", "code", code)
	c.contextValid = false
	if code == ContextLost {
		logger().Info("recreating context")
		c.recreateContext()
	} else {
		c.rebuild()
	}
	return code
}

// Suspend destroys the window surface. The display connection and the
// context are kept so Resume is cheap.
func (c *Context) Suspend() {
	if c.surface == NoSurface {
		return
	}
	c.drv.DestroySurface(c.display, c.surface)
	c.surface = NoSurface
	logger().Debug("surface suspended")
}

// Invalidate releases every resource and clears the initialized flag so the
// next Init rebuilds from scratch.
func (c *Context) Invalidate() bool {
	c.terminate()
	c.initialized = false
	logger().Debug("surface invalidated")
	return true
}

// TrimMemory responds to a low-memory signal by releasing all GPU-side
// resources. The next Init against the same window reconstructs them.
func (c *Context) TrimMemory() {
	logger().Info("trim memory")
	c.Invalidate()
}

// CheckExtension reports whether name is one of the extensions the driver
// advertises.
func (c *Context) CheckExtension(name string) bool {
	if name == "" {
		return false
	}
	for _, ext := range strings.Fields(c.drv.GetString(StringExtensions)) {
		if ext == name {
			return true
		}
	}
	return false
}

// Width returns the negotiated surface width in pixels.
func (c *Context) Width() int32 { return c.width }

// Height returns the negotiated surface height in pixels.
func (c *Context) Height() int32 { return c.height }

// ColorSize returns the bits per color channel of the chosen config.
func (c *Context) ColorSize() int32 { return c.colorSize }

// DepthSize returns the depth buffer bits of the chosen config.
func (c *Context) DepthSize() int32 { return c.depthSize }

// GLVersion returns 3.0 when the driver reports a version 3 or later API and
// 2.0 otherwise. It is zero before the first successful Init.
func (c *Context) GLVersion() float32 { return c.glVersion }

// HasGLES3 reports whether the driver supports API version 3 or later.
func (c *Context) HasGLES3() bool { return c.gles3 }

// Window returns the window the surface was created for.
func (c *Context) Window() Window { return c.window }

// Display returns the display handle.
func (c *Context) Display() Display { return c.display }

// Surface returns the surface handle.
func (c *Context) Surface() Surface { return c.surface }

// RenderContext returns the context handle.
func (c *Context) RenderContext() RenderContext { return c.context }

// HasSurface reports whether a window surface exists.
func (c *Context) HasSurface() bool { return c.surface != NoSurface }

// Initialized reports whether Init has completed since the last Invalidate.
func (c *Context) Initialized() bool { return c.initialized }

// ContextValid reports whether the rendering context is bound and usable.
func (c *Context) ContextValid() bool { return c.contextValid }

// build creates the display, surface and context in order.
func (c *Context) build() error {
	if err := c.initDisplay(); err != nil {
		return err
	}
	if err := c.createSurface(); err != nil {
		return err
	}
	return c.initContext()
}

func (c *Context) initDisplay() error {
	c.display = c.drv.OpenDisplay()
	if c.display == NoDisplay {
		return ErrNoDisplay
	}
	if code := c.drv.Initialize(c.display); code != Success {
		return fmt.Errorf("initialize display: %w", code)
	}
	for _, req := range c.requests {
		cfg, ok := c.drv.ChooseConfig(c.display, req)
		if !ok {
			logger().Debug("config rejected", "color", req.RedSize, "depth", req.DepthSize)
			continue
		}
		c.config = cfg
		c.colorSize = req.RedSize
		c.depthSize = req.DepthSize
		return nil
	}
	return ErrNoConfig
}

func (c *Context) createSurface() error {
	s, code := c.drv.CreateWindowSurface(c.display, c.config, c.window)
	if code != Success {
		return fmt.Errorf("create window surface: %w", code)
	}
	c.surface = s
	c.width, c.height = c.drv.QuerySurfaceSize(c.display, c.surface)
	return nil
}

func (c *Context) initContext() error {
	ctx, code := c.drv.CreateContext(c.display, c.config, c.clientVersion)
	if code != Success {
		return fmt.Errorf("create context: %w", code)
	}
	c.context = ctx
	if code := c.drv.MakeCurrent(c.display, c.surface, c.context); code != Success {
		logger().Error("unable to make context current", "code", code)
		return fmt.Errorf("make current: %w", code)
	}
	c.contextValid = true
	return nil
}

// initGLES detects the API level once per process lifetime of the Context.
func (c *Context) initGLES() {
	if c.glesInitialized {
		return
	}
	version := c.drv.GetString(StringVersion)
	c.gles3 = parseMajorVersion(version) >= 3
	if c.gles3 {
		c.glVersion = 3.0
	} else {
		c.glVersion = 2.0
	}
	c.glesInitialized = true
	logger().Debug("driver version", "version", version, "gles3", c.gles3)
}

// recreateSurface replaces a lost surface and rebinds the existing context.
func (c *Context) recreateSurface() Code {
	if c.surface != NoSurface {
		c.drv.DestroySurface(c.display, c.surface)
		c.surface = NoSurface
	}
	if err := c.createSurface(); err != nil {
		logger().Error("surface recreation failed", "err", err)
		return CodeOf(err)
	}
	if c.context == NoContext {
		return Success
	}
	if code := c.drv.MakeCurrent(c.display, c.surface, c.context); code != Success {
		logger().Error("unable to bind recreated surface", "code", code)
		return code
	}
	return Success
}

// recreateContext replaces the rendering context, keeping display and surface.
func (c *Context) recreateContext() {
	if c.context != NoContext {
		c.drv.DestroyContext(c.display, c.context)
		c.context = NoContext
	}
	if err := c.initContext(); err != nil {
		logger().Error("context recreation failed", "err", err)
	}
}

// rebuild tears everything down and builds it again for the current window.
// If that fails the Context drops back to uninitialized so the next Init or
// Resume starts from scratch.
func (c *Context) rebuild() {
	c.terminate()
	if err := c.build(); err != nil {
		logger().Error("context recreation failed", "err", err)
		c.terminate()
		c.initialized = false
		return
	}
	logger().Info("context recreated")
}

// terminate releases every handle. The window is kept so the Context can be
// rebuilt against it. It is safe to call repeatedly.
func (c *Context) terminate() {
	if c.display != NoDisplay {
		c.drv.MakeCurrent(c.display, NoSurface, NoContext)
		if c.context != NoContext {
			c.drv.DestroyContext(c.display, c.context)
		}
		if c.surface != NoSurface {
			c.drv.DestroySurface(c.display, c.surface)
		}
		c.drv.Terminate(c.display)
	}

	c.display = NoDisplay
	c.context = NoContext
	c.surface = NoSurface
	c.config = NoConfig
	c.contextValid = false
}

// parseMajorVersion extracts the major API version from strings such as
// "OpenGL ES 3.2 build 1.13" or "OpenGL ES-CM 1.1". It returns 0 when no
// version number is found.
func parseMajorVersion(s string) int {
	for _, field := range strings.Fields(s) {
		major, _, ok := strings.Cut(field, ".")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(major); err == nil {
			return n
		}
	}
	return 0
}
