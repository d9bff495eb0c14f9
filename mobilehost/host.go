package mobilehost

import (
	"time"

	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/exp/sensor"

	"github.com/phanxgames/nativeshell"
	"github.com/phanxgames/nativeshell/gesture"
	"github.com/phanxgames/nativeshell/surface"
)

// ptPerInch converts size.Event.PixelsPerPt to dots per inch.
const ptPerInch = 72

// Source is the part of app.App the host reads events from.
type Source interface {
	Events() <-chan any
	Filter(event any) any
	Send(event any)
}

// Option configures a Host.
type Option func(*Host)

// WithWindow sets the function that returns the native window handle once
// the app becomes visible. The default returns surface.Window(1), which
// suits drivers that ignore the handle.
func WithWindow(fn func() surface.Window) Option {
	return func(h *Host) { h.window = fn }
}

// WithPublish sets the function called after every drawn frame, usually
// app.App.Publish.
func WithPublish(fn func()) Option {
	return func(h *Host) { h.publish = fn }
}

// WithClock sets the nanosecond clock used to stamp touch events.
func WithClock(now func() int64) Option {
	return func(h *Host) { h.now = now }
}

// Host translates x/mobile events for an Engine.
type Host struct {
	engine  *nativeshell.Engine
	synth   gesture.Synthesizer
	window  func() surface.Window
	publish func()
	now     func() int64

	visible  bool
	density  float32
	widthPx  int
	heightPx int
}

// New creates a Host for e.
func New(e *nativeshell.Engine, opts ...Option) *Host {
	start := time.Now()
	h := &Host{
		engine: e,
		synth:  gesture.Synthesizer{Source: gesture.SourceTouch},
		window: func() surface.Window { return 1 },
		now:    func() int64 { return int64(time.Since(start)) },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Engine returns the driven engine.
func (h *Host) Engine() *nativeshell.Engine { return h.engine }

// Visible reports whether the app is at least in the visible stage.
func (h *Host) Visible() bool { return h.visible }

// Size returns the window size in pixels from the last size event.
func (h *Host) Size() (widthPx, heightPx int) { return h.widthPx, h.heightPx }

// accelerometer returns the engine's sensor source when it is an
// Accelerometer.
func (h *Host) accelerometer() (*Accelerometer, bool) {
	a, ok := h.engine.Sensors().(*Accelerometer)
	return a, ok
}

// Run consumes events until the app dies. An Accelerometer attached to the
// engine receives its readings through src.
func (h *Host) Run(src Source) {
	if a, ok := h.accelerometer(); ok {
		a.bind(src)
	}
	for ev := range src.Events() {
		ev = src.Filter(ev)
		if !h.HandleEvent(ev) {
			return
		}
		if _, ok := ev.(paint.Event); ok && h.visible {
			src.Send(paint.Event{})
		}
	}
}

// HandleEvent applies one event. It returns false once the app is dead.
func (h *Host) HandleEvent(ev any) bool {
	switch e := ev.(type) {
	case lifecycle.Event:
		return h.handleLifecycle(e)
	case size.Event:
		h.handleSize(e)
	case touch.Event:
		h.handleTouch(e)
	case sensor.Event:
		if a, ok := h.accelerometer(); ok {
			a.Queue(e)
		}
	case paint.Event:
		if e.External || !h.visible {
			break
		}
		h.engine.Tick()
		if h.publish != nil {
			h.publish()
		}
	}
	return true
}

func (h *Host) handleLifecycle(e lifecycle.Event) bool {
	logger().Debug("lifecycle", "from", e.From, "to", e.To)
	if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
		h.command(nativeshell.CmdLostFocus, surface.NoWindow)
	}
	switch e.Crosses(lifecycle.StageVisible) {
	case lifecycle.CrossOn:
		h.visible = true
		h.command(nativeshell.CmdInitWindow, h.window())
	case lifecycle.CrossOff:
		h.visible = false
		h.cancelTouches()
		h.command(nativeshell.CmdSaveState, surface.NoWindow)
		h.command(nativeshell.CmdTermWindow, surface.NoWindow)
		h.command(nativeshell.CmdStop, surface.NoWindow)
	}
	if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOn {
		h.command(nativeshell.CmdGainedFocus, surface.NoWindow)
	}
	if e.Crosses(lifecycle.StageDead) == lifecycle.CrossOn || e.To == lifecycle.StageDead {
		h.engine.Close()
		return false
	}
	return true
}

func (h *Host) command(cmd nativeshell.Command, win surface.Window) {
	if err := h.engine.HandleCommand(cmd, win); err != nil {
		logger().Error("command failed", "cmd", cmd, "err", err)
	}
}

func (h *Host) handleSize(e size.Event) {
	h.widthPx, h.heightPx = e.WidthPx, e.HeightPx
	density := e.PixelsPerPt * ptPerInch
	if density <= 0 || density == h.density {
		return
	}
	h.density = density
	h.engine.SetConfiguration(gesture.Configuration{Density: density})
	h.command(nativeshell.CmdConfigChanged, surface.NoWindow)
}

func (h *Host) handleTouch(e touch.Event) {
	if h.engine.PendingInjections() > 0 {
		return
	}
	id := int32(e.Sequence)
	now := h.now()
	var (
		ev gesture.MotionEvent
		ok bool
	)
	switch e.Type {
	case touch.TypeBegin:
		ev, ok = h.synth.Press(id, e.X, e.Y, now), true
	case touch.TypeMove:
		ev, ok = h.synth.Move(id, e.X, e.Y, now)
	case touch.TypeEnd:
		ev, ok = h.synth.Release(id, e.X, e.Y, now)
	}
	if ok {
		h.engine.HandleInput(ev)
	}
}

func (h *Host) cancelTouches() {
	if ev, ok := h.synth.Cancel(h.now()); ok {
		h.engine.HandleInput(ev)
	}
}
