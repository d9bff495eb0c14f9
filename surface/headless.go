package surface

// Headless is an in-memory Driver. Handles come from a private arena and
// every create/destroy pair is tracked, so tests can assert that nothing
// leaks and inject platform failures at precise points.
//
// The zero value is not usable; call NewHeadless.
type Headless struct {
	// Width and Height are reported for windows without an explicit size.
	Width, Height int32
	// Version is returned for StringVersion.
	Version string
	// Extensions is returned for StringExtensions.
	Extensions string
	// RejectDepth24 makes ChooseConfig refuse 24-bit depth requests.
	RejectDepth24 bool
	// RejectAll makes ChooseConfig refuse every request.
	RejectAll bool
	// NoDisplay makes OpenDisplay fail.
	NoDisplay bool

	next     uintptr
	sizes    map[Window][2]int32
	displays map[Display]bool
	configs  map[Config]Display
	surfaces map[Surface]Window
	contexts map[RenderContext]int32

	curSurface Surface
	curContext RenderContext

	swapFaults          []Code
	makeCurrentFaults   []Code
	createSurfaceFaults []Code

	calls map[string]int
}

// NewHeadless returns a driver reporting a 1280x720 window and an ES 3.2
// version string.
func NewHeadless() *Headless {
	return &Headless{
		Width:      1280,
		Height:     720,
		Version:    "OpenGL ES 3.2 headless",
		Extensions: "GL_OES_vertex_array_object GL_EXT_texture_format_BGRA8888",
		sizes:      make(map[Window][2]int32),
		displays:   make(map[Display]bool),
		configs:    make(map[Config]Display),
		surfaces:   make(map[Surface]Window),
		contexts:   make(map[RenderContext]int32),
		calls:      make(map[string]int),
	}
}

// SetWindowSize fixes the size reported for surfaces created on w.
func (h *Headless) SetWindowSize(w Window, width, height int32) {
	h.sizes[w] = [2]int32{width, height}
}

// FailSwap queues codes returned by the next SwapBuffers calls, one per call.
func (h *Headless) FailSwap(codes ...Code) {
	h.swapFaults = append(h.swapFaults, codes...)
}

// FailMakeCurrent queues codes returned by the next MakeCurrent calls that
// bind a surface. Release calls are never failed.
func (h *Headless) FailMakeCurrent(codes ...Code) {
	h.makeCurrentFaults = append(h.makeCurrentFaults, codes...)
}

// FailCreateSurface queues codes returned by the next CreateWindowSurface
// calls.
func (h *Headless) FailCreateSurface(codes ...Code) {
	h.createSurfaceFaults = append(h.createSurfaceFaults, codes...)
}

// LiveDisplays returns the number of displays opened and not terminated.
func (h *Headless) LiveDisplays() int { return len(h.displays) }

// LiveSurfaces returns the number of surfaces created and not destroyed.
func (h *Headless) LiveSurfaces() int { return len(h.surfaces) }

// LiveConfigs returns the number of configs chosen on displays that are
// not terminated.
func (h *Headless) LiveConfigs() int { return len(h.configs) }

// LiveContexts returns the number of contexts created and not destroyed.
func (h *Headless) LiveContexts() int { return len(h.contexts) }

// Current returns the bound surface and context.
func (h *Headless) Current() (Surface, RenderContext) {
	return h.curSurface, h.curContext
}

// CallCount returns how many times the named Driver method was called.
func (h *Headless) CallCount(method string) int {
	return h.calls[method]
}

func (h *Headless) alloc() uintptr {
	h.next++
	return h.next
}

func pop(q *[]Code) (Code, bool) {
	if len(*q) == 0 {
		return Success, false
	}
	c := (*q)[0]
	*q = (*q)[1:]
	return c, true
}

func (h *Headless) OpenDisplay() Display {
	h.calls["OpenDisplay"]++
	if h.NoDisplay {
		return NoDisplay
	}
	d := Display(h.alloc())
	h.displays[d] = false
	return d
}

func (h *Headless) Initialize(d Display) Code {
	h.calls["Initialize"]++
	if _, ok := h.displays[d]; !ok {
		return BadDisplay
	}
	h.displays[d] = true
	return Success
}

func (h *Headless) ChooseConfig(d Display, req ConfigRequest) (Config, bool) {
	h.calls["ChooseConfig"]++
	if !h.displays[d] || h.RejectAll {
		return NoConfig, false
	}
	if h.RejectDepth24 && req.DepthSize >= 24 {
		return NoConfig, false
	}
	c := Config(h.alloc())
	h.configs[c] = d
	return c, true
}

func (h *Headless) CreateWindowSurface(d Display, c Config, w Window) (Surface, Code) {
	h.calls["CreateWindowSurface"]++
	if code, ok := pop(&h.createSurfaceFaults); ok && code != Success {
		return NoSurface, code
	}
	if !h.displays[d] {
		return NoSurface, BadDisplay
	}
	if h.configs[c] != d {
		return NoSurface, BadConfig
	}
	if w == NoWindow {
		return NoSurface, BadNativeWindow
	}
	s := Surface(h.alloc())
	h.surfaces[s] = w
	return s, Success
}

func (h *Headless) QuerySurfaceSize(d Display, s Surface) (width, height int32) {
	h.calls["QuerySurfaceSize"]++
	w, ok := h.surfaces[s]
	if !ok {
		return 0, 0
	}
	if sz, ok := h.sizes[w]; ok {
		return sz[0], sz[1]
	}
	return h.Width, h.Height
}

func (h *Headless) CreateContext(d Display, c Config, clientVersion int32) (RenderContext, Code) {
	h.calls["CreateContext"]++
	if !h.displays[d] {
		return NoContext, BadDisplay
	}
	if h.configs[c] != d {
		return NoContext, BadConfig
	}
	ctx := RenderContext(h.alloc())
	h.contexts[ctx] = clientVersion
	return ctx, Success
}

func (h *Headless) MakeCurrent(d Display, s Surface, ctx RenderContext) Code {
	h.calls["MakeCurrent"]++
	if s == NoSurface && ctx == NoContext {
		h.curSurface, h.curContext = NoSurface, NoContext
		return Success
	}
	if code, ok := pop(&h.makeCurrentFaults); ok && code != Success {
		return code
	}
	if !h.displays[d] {
		return BadDisplay
	}
	if _, ok := h.surfaces[s]; !ok {
		return BadSurface
	}
	if _, ok := h.contexts[ctx]; !ok {
		return BadContext
	}
	h.curSurface, h.curContext = s, ctx
	return Success
}

func (h *Headless) SwapBuffers(d Display, s Surface) Code {
	h.calls["SwapBuffers"]++
	if code, ok := pop(&h.swapFaults); ok && code != Success {
		return code
	}
	if !h.displays[d] {
		return BadDisplay
	}
	if _, ok := h.surfaces[s]; !ok {
		return BadSurface
	}
	if h.curSurface != s || h.curContext == NoContext {
		return BadCurrentSurface
	}
	return Success
}

func (h *Headless) DestroySurface(d Display, s Surface) {
	h.calls["DestroySurface"]++
	delete(h.surfaces, s)
	if h.curSurface == s {
		h.curSurface = NoSurface
	}
}

func (h *Headless) DestroyContext(d Display, ctx RenderContext) {
	h.calls["DestroyContext"]++
	delete(h.contexts, ctx)
	if h.curContext == ctx {
		h.curContext = NoContext
	}
}

func (h *Headless) Terminate(d Display) {
	h.calls["Terminate"]++
	delete(h.displays, d)
	for c, owner := range h.configs {
		if owner == d {
			delete(h.configs, c)
		}
	}
}

func (h *Headless) GetString(name StringName) string {
	h.calls["GetString"]++
	switch name {
	case StringVendor:
		return "nativeshell"
	case StringRenderer:
		return "headless"
	case StringVersion:
		return h.Version
	case StringExtensions:
		return h.Extensions
	default:
		return ""
	}
}

var _ Driver = (*Headless)(nil)
