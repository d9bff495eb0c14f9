package nativeshell

import (
	"io/fs"
	"os"
	"time"

	"github.com/phanxgames/nativeshell/gesture"
	"github.com/phanxgames/nativeshell/surface"
)

// Stats counts engine activity since creation.
type Stats struct {
	Frames            int
	SwapFailures      int
	ContextRecoveries int
	Loads             int
	Unloads           int
	Gestures          int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSensors attaches a sensor source that is enabled while the app has
// focus.
func WithSensors(s SensorSource) Option {
	return func(e *Engine) { e.sensors = s }
}

// WithAssets sets the file system handed to Renderer.Init.
func WithAssets(fsys fs.FS) Option {
	return func(e *Engine) { e.assets = fsys }
}

// WithClock sets the nanosecond clock used to stamp injected input.
func WithClock(now func() int64) Option {
	return func(e *Engine) { e.now = now }
}

// WithGestureSink forwards every arbitrated gesture to s.
func WithGestureSink(s GestureSink) Option {
	return func(e *Engine) { e.sink = s }
}

// WithRunUnfocused keeps IsReady true while a surface exists, even without
// input focus.
func WithRunUnfocused(on bool) Option {
	return func(e *Engine) { e.runUnfocused = on }
}

// Engine coordinates the window system, the surface lifecycle, gesture
// recognition and the renderer. All methods must be called from the thread
// that delivers platform events.
type Engine struct {
	renderer Renderer
	surface  *surface.Context
	arbiter  *gesture.Arbiter
	sensors  SensorSource
	sink     GestureSink
	assets   fs.FS
	config   gesture.Configuration

	window       surface.Window
	hasWindow    bool
	hasFocus     bool
	runUnfocused bool
	started      bool
	loaded       bool

	handlers    handlerRegistry
	last        GestureEvent
	stats       Stats
	now         func() int64
	synth       gesture.Synthesizer
	injectQueue []injectFrame
	testRunner  *TestRunner
}

// NewEngine creates an Engine. A nil arbiter is replaced by one with the
// default arbitration.
func NewEngine(r Renderer, sc *surface.Context, arb *gesture.Arbiter, opts ...Option) *Engine {
	if arb == nil {
		arb = gesture.NewArbiter()
	}
	start := time.Now()
	e := &Engine{
		renderer: r,
		surface:  sc,
		arbiter:  arb,
		now:      func() int64 { return int64(time.Since(start)) },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewEngineFromConfig builds the surface and arbiter described by cfg on
// top of drv.
func NewEngineFromConfig(cfg Config, r Renderer, drv surface.Driver, opts ...Option) *Engine {
	arb := gesture.NewArbiter(
		gesture.WithArbitration(cfg.ArbitrationMode()),
		gesture.WithConfiguration(cfg.Configuration()),
	)
	base := []Option{WithRunUnfocused(cfg.RunUnfocused)}
	if cfg.AssetDir != "" {
		base = append(base, WithAssets(os.DirFS(cfg.AssetDir)))
	}
	e := NewEngine(r, surface.New(drv), arb, append(base, opts...)...)
	e.config = cfg.Configuration()
	return e
}

// HandleCommand reacts to a lifecycle command. win is only used by
// CmdInitWindow. The returned error reports a surface that could not be
// initialized; the engine stays usable and retries on the next
// CmdInitWindow.
func (e *Engine) HandleCommand(cmd Command, win surface.Window) error {
	logger().Info("command", "cmd", cmd)
	switch cmd {
	case CmdSaveState, CmdStop:
	case CmdInitWindow:
		if win == surface.NoWindow {
			return nil
		}
		if err := e.initDisplay(win); err != nil {
			return err
		}
		e.hasFocus = true
		e.Draw()
	case CmdTermWindow:
		e.Terminate()
		e.hasFocus = false
	case CmdGainedFocus:
		if e.sensors != nil {
			e.sensors.Resume()
		}
		e.hasFocus = true
	case CmdLostFocus:
		if e.sensors != nil {
			e.sensors.Suspend()
		}
		e.hasFocus = false
		e.Draw()
	case CmdLowMemory:
		e.TrimMemory()
	case CmdConfigChanged:
		e.arbiter.SetConfiguration(e.config)
	}
	return nil
}

func (e *Engine) initDisplay(win surface.Window) error {
	switch {
	case !e.started:
		if err := e.surface.Init(win); err != nil {
			return err
		}
		e.loadResources()
		e.started = true
	case win != e.surface.Window():
		logger().Info("window changed", "from", e.surface.Window(), "to", win)
		e.unloadResources()
		e.surface.Invalidate()
		if err := e.surface.Init(win); err != nil {
			return err
		}
		e.loadResources()
	default:
		if code := e.surface.Resume(win); code != surface.Success {
			// Resume has already rebuilt what it could; the renderer
			// reloads against whatever context is now current.
			logger().Error("resume failed", "code", code)
		}
		e.unloadResources()
		e.loadResources()
	}
	e.window = win
	e.hasWindow = true
	return nil
}

func (e *Engine) loadResources() {
	if err := e.renderer.Init(e.assets); err != nil {
		logger().Error("renderer init failed", "err", err)
	}
	if b, ok := e.renderer.(SensorBinder); ok && e.sensors != nil {
		b.BindSensors(e.sensors)
	}
	e.loaded = true
	e.stats.Loads++
}

func (e *Engine) unloadResources() {
	if !e.loaded {
		return
	}
	e.renderer.Unload()
	e.loaded = false
	e.stats.Unloads++
}

// Draw renders and presents one frame. Any presentation failure makes the
// renderer reload its resources. Draw does nothing while no surface exists.
//
// After TrimMemory released the surface while the window is still shown,
// Draw rebuilds the surface first.
func (e *Engine) Draw() {
	if !e.surface.Initialized() && e.hasWindow {
		if code := e.surface.Resume(e.window); code != surface.Success {
			return
		}
		e.unloadResources()
		e.loadResources()
	}
	if !e.surface.HasSurface() {
		return
	}

	e.renderer.Render()
	e.stats.Frames++

	code := e.surface.Swap()
	if code == surface.Success {
		return
	}
	e.stats.SwapFailures++
	if code.IsContextLoss() {
		e.stats.ContextRecoveries++
	}
	logger().Warn("swap failed, reloading resources", "code", code)
	e.unloadResources()
	e.loadResources()
}

// HandleInput feeds a motion event to the gesture arbiter and dispatches the
// result. It reports whether a gesture was recognized.
func (e *Engine) HandleInput(ev gesture.MotionEvent) bool {
	current := e.arbiter.Detect(ev)
	if ev.IsPointer() {
		e.dispatch(&ev, current)
	}
	if current == gesture.TypeNone {
		return false
	}
	e.stats.Gestures++
	return true
}

// SetConfiguration stores display metrics and applies them to the gesture
// thresholds. CmdConfigChanged re-applies the stored value.
func (e *Engine) SetConfiguration(c gesture.Configuration) {
	e.config = c
	e.arbiter.SetConfiguration(c)
}

// Configuration returns the display metrics in use.
func (e *Engine) Configuration() gesture.Configuration {
	return e.config
}

// IsReady reports whether the host loop should keep drawing.
func (e *Engine) IsReady() bool {
	if e.hasFocus {
		return true
	}
	return e.runUnfocused && e.surface.HasSurface()
}

// Update runs the per-frame work that precedes drawing: the attached test
// runner, one frame of injected input and sensor processing.
func (e *Engine) Update() {
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	e.processInjectedInput()
	if e.sensors != nil {
		e.sensors.Process()
	}
}

// Tick runs Update and draws a frame when the engine is ready.
func (e *Engine) Tick() {
	e.Update()
	if e.IsReady() {
		e.Draw()
	}
}

// Terminate releases the window surface. The context is kept for a cheap
// resume.
func (e *Engine) Terminate() {
	e.surface.Suspend()
	e.hasWindow = false
}

// TrimMemory releases every GPU resource in response to memory pressure.
func (e *Engine) TrimMemory() {
	logger().Info("trim memory")
	e.unloadResources()
	e.surface.TrimMemory()
}

// Close unloads the renderer and releases the surface for good.
func (e *Engine) Close() {
	e.unloadResources()
	e.surface.Invalidate()
	e.hasWindow = false
	e.hasFocus = false
	if e.sensors != nil {
		e.sensors.Suspend()
	}
}

// Surface returns the surface lifecycle the engine drives.
func (e *Engine) Surface() *surface.Context { return e.surface }

// Arbiter returns the gesture arbiter.
func (e *Engine) Arbiter() *gesture.Arbiter { return e.arbiter }

// Renderer returns the render collaborator.
func (e *Engine) Renderer() Renderer { return e.renderer }

// Sensors returns the attached sensor source, or nil.
func (e *Engine) Sensors() SensorSource { return e.sensors }

// HasFocus reports whether the app has input focus.
func (e *Engine) HasFocus() bool { return e.hasFocus }

// ResourcesLoaded reports whether the renderer currently holds resources.
func (e *Engine) ResourcesLoaded() bool { return e.loaded }

// LastGesture returns the most recent arbitrated gesture.
func (e *Engine) LastGesture() GestureEvent { return e.last }

// Stats returns the activity counters.
func (e *Engine) Stats() Stats { return e.stats }
