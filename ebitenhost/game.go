package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/nativeshell"
	"github.com/phanxgames/nativeshell/gesture"
	"github.com/phanxgames/nativeshell/surface"
)

// MousePointerID is the pointer id of the left mouse button. Touch ids are
// offset by one so they never collide with it.
const MousePointerID int32 = 0

// window is the handle passed to the engine. The headless driver only needs
// it to be non-zero.
const window surface.Window = 1

// Target is implemented by renderers that draw into the Ebitengine screen.
type Target interface {
	SetScreen(screen *ebiten.Image)
}

type touchPoint struct {
	id   ebiten.TouchID
	x, y float32
}

// frameInput is the platform state sampled once per tick.
type frameInput struct {
	focused bool
	closing bool
	scale   float64

	mouseDown      bool
	mouseX, mouseY float32

	touches  []touchPoint
	released []touchPoint
}

// Game adapts an Engine to ebiten.Game.
type Game struct {
	// ScreenshotDir is where Screenshot writes; empty means
	// DefaultScreenshotDir.
	ScreenshotDir string

	engine *nativeshell.Engine
	drv    *surface.Headless
	synth  gesture.Synthesizer
	now    func() int64

	started bool
	focused bool
	scale   float64
	width   int
	height  int

	in       frameInput
	touchIDs []ebiten.TouchID
	liveIDs  []int32
	shots    []string
}

// New builds the engine described by cfg on a headless driver and wraps it
// in a Game.
func New(cfg nativeshell.Config, r nativeshell.Renderer, opts ...nativeshell.Option) *Game {
	drv := surface.NewHeadless()
	if cfg.Width > 0 && cfg.Height > 0 {
		drv.SetWindowSize(window, int32(cfg.Width), int32(cfg.Height))
	}
	return NewGame(nativeshell.NewEngineFromConfig(cfg, r, drv, opts...), drv)
}

// NewGame wraps an existing engine. drv must be the driver under the
// engine's surface.
func NewGame(e *nativeshell.Engine, drv *surface.Headless) *Game {
	start := time.Now()
	return &Game{
		engine: e,
		drv:    drv,
		now:    func() int64 { return int64(time.Since(start)) },
	}
}

// Run opens a window as described by cfg and blocks until it is closed.
func Run(cfg nativeshell.Config, r nativeshell.Renderer, opts ...nativeshell.Option) error {
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(cfg.RunUnfocused)
	return ebiten.RunGame(New(cfg, r, opts...))
}

// Engine returns the driven engine.
func (g *Game) Engine() *nativeshell.Engine { return g.engine }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.readInput()
	return g.apply(&g.in)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if t, ok := g.engine.Renderer().(Target); ok {
		t.SetScreen(screen)
	}
	if g.engine.IsReady() {
		g.engine.Draw()
	}
	if screen != nil {
		g.flushScreenshots(screen)
	}
}

// Layout implements ebiten.Game. A new size recreates the engine's surface
// at that size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.drv.SetWindowSize(window, int32(w), int32(h))
	if !g.started {
		return
	}
	logger().Debug("window resized", "width", w, "height", h)
	// Re-entering the window rebuilds the surface against the new size.
	g.command(nativeshell.CmdTermWindow)
	g.command(nativeshell.CmdInitWindow)
	if !g.focused {
		g.command(nativeshell.CmdLostFocus)
	}
}

func (g *Game) readInput() {
	in := &g.in
	in.focused = ebiten.IsFocused()
	in.closing = ebiten.IsWindowBeingClosed()
	in.scale = ebiten.Monitor().DeviceScaleFactor()

	in.mouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mx, my := ebiten.CursorPosition()
	in.mouseX, in.mouseY = float32(mx), float32(my)

	in.touches = in.touches[:0]
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.touches = append(in.touches, touchPoint{id: id, x: float32(x), y: float32(y)})
	}
	in.released = in.released[:0]
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		in.released = append(in.released, touchPoint{id: id, x: float32(x), y: float32(y)})
	}
}

// apply feeds one tick of sampled input to the engine. It returns
// ebiten.Termination once the window closes.
func (g *Game) apply(in *frameInput) error {
	if !g.started {
		g.started = true
		g.focused = true
		g.command(nativeshell.CmdInitWindow)
	}
	if in.closing {
		g.close()
		return ebiten.Termination
	}
	if in.focused != g.focused {
		g.focused = in.focused
		if in.focused {
			g.command(nativeshell.CmdGainedFocus)
		} else {
			g.command(nativeshell.CmdLostFocus)
		}
	}
	if in.scale > 0 && in.scale != g.scale {
		g.scale = in.scale
		g.engine.SetConfiguration(gesture.Configuration{
			Density: float32(in.scale) * gesture.BaselineDensity,
		})
		g.command(nativeshell.CmdConfigChanged)
	}

	// Injected frames replace real input.
	if g.engine.PendingInjections() == 0 {
		g.applyTouches(in)
		g.applyMouse(in)
	}
	g.engine.Update()
	return nil
}

func touchPointerID(id ebiten.TouchID) int32 {
	return int32(id) + 1
}

func (g *Game) applyTouches(in *frameInput) {
	now := g.now()
	for _, tp := range in.released {
		if ev, ok := g.synth.Release(touchPointerID(tp.id), tp.x, tp.y, now); ok {
			g.engine.HandleInput(ev)
		}
	}

	// Touches that vanished without a release notification.
	g.liveIDs = g.synth.LiveIDs(g.liveIDs[:0])
	for _, id := range g.liveIDs {
		if id == MousePointerID || hasTouch(in.touches, id) {
			continue
		}
		x, y, _ := g.synth.Position(id)
		if ev, ok := g.synth.Release(id, x, y, now); ok {
			g.engine.HandleInput(ev)
		}
	}

	for _, tp := range in.touches {
		id := touchPointerID(tp.id)
		if !g.synth.IsDown(id) {
			g.press(id, tp.x, tp.y, gesture.SourceTouch, now)
			continue
		}
		if x, y, _ := g.synth.Position(id); x == tp.x && y == tp.y {
			continue
		}
		if ev, ok := g.synth.Move(id, tp.x, tp.y, now); ok {
			g.engine.HandleInput(ev)
		}
	}
}

func hasTouch(touches []touchPoint, id int32) bool {
	for _, tp := range touches {
		if touchPointerID(tp.id) == id {
			return true
		}
	}
	return false
}

func (g *Game) applyMouse(in *frameInput) {
	now := g.now()
	down := g.synth.IsDown(MousePointerID)
	switch {
	case in.mouseDown && !down:
		g.press(MousePointerID, in.mouseX, in.mouseY, gesture.SourceMouse, now)
	case in.mouseDown && down:
		if x, y, _ := g.synth.Position(MousePointerID); x == in.mouseX && y == in.mouseY {
			return
		}
		if ev, ok := g.synth.Move(MousePointerID, in.mouseX, in.mouseY, now); ok {
			g.engine.HandleInput(ev)
		}
	case !in.mouseDown && down:
		if ev, ok := g.synth.Release(MousePointerID, in.mouseX, in.mouseY, now); ok {
			g.engine.HandleInput(ev)
		}
	}
}

// press starts a pointer. The source of a stream is fixed by its first
// pointer.
func (g *Game) press(id int32, x, y float32, src gesture.Source, now int64) {
	if g.synth.Live() == 0 {
		g.synth.Source = src
	}
	g.engine.HandleInput(g.synth.Press(id, x, y, now))
}

func (g *Game) close() {
	if ev, ok := g.synth.Cancel(g.now()); ok {
		g.engine.HandleInput(ev)
	}
	g.command(nativeshell.CmdSaveState)
	g.command(nativeshell.CmdTermWindow)
	g.command(nativeshell.CmdStop)
	g.engine.Close()
}

func (g *Game) command(cmd nativeshell.Command) {
	win := surface.NoWindow
	if cmd == nativeshell.CmdInitWindow {
		win = window
	}
	if err := g.engine.HandleCommand(cmd, win); err != nil {
		logger().Error("command failed", "cmd", cmd, "err", err)
	}
}

// SetTestRunner attaches r to the engine and points its fault and
// screenshot steps at this game.
func (g *Game) SetTestRunner(r *nativeshell.TestRunner) {
	g.engine.SetTestRunner(r)
	if r != nil {
		r.SetFaultInjector(g.drv)
		r.SetScreenshotter(g)
	}
}
