package ebitenhost

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/nativeshell"
	"github.com/phanxgames/nativeshell/surface"
)

func newViewEngine(t *testing.T) (*nativeshell.Engine, *View) {
	t.Helper()
	e := nativeshell.NewEngine(&screenRenderer{}, surface.New(surface.NewHeadless()), nil)
	v := NewView(800, 600)
	v.Attach(e)
	return e, v
}

func drain(e *nativeshell.Engine) {
	for e.PendingInjections() > 0 {
		e.Update()
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestViewHomeIsIdentity(t *testing.T) {
	v := NewView(800, 600)
	sx, sy := v.WorldToScreen(10, 20)
	if !near(sx, 10) || !near(sy, 20) {
		t.Errorf("WorldToScreen(10, 20) = %v, %v", sx, sy)
	}
}

func TestViewScreenToWorldRoundTrip(t *testing.T) {
	v := NewView(800, 600)
	v.X, v.Y, v.Zoom = 100, -50, 2.5
	sx, sy := v.WorldToScreen(37, 81)
	wx, wy := v.ScreenToWorld(sx, sy)
	if !near(wx, 37) || !near(wy, 81) {
		t.Errorf("round trip = %v, %v; want 37, 81", wx, wy)
	}
}

func TestViewDragPans(t *testing.T) {
	e, v := newViewEngine(t)
	v.Zoom = 2
	e.InjectDrag(100, 100, 200, 160, 5)
	drain(e)

	// Content follows the finger: 100px right at zoom 2 is 50 world units.
	if !near(v.X, 400-50) || !near(v.Y, 300-30) {
		t.Errorf("view center = %v, %v; want 350, 270", v.X, v.Y)
	}
}

func TestViewPinchZooms(t *testing.T) {
	e, v := newViewEngine(t)
	e.InjectPinch(400, 300, 100, 200, 6)
	drain(e)

	if !near(v.Zoom, 2) {
		t.Errorf("zoom = %v, want 2", v.Zoom)
	}
	if !near(v.X, 400) || !near(v.Y, 300) {
		t.Errorf("pinch panned the view to %v, %v", v.X, v.Y)
	}
}

func TestViewPinchClamps(t *testing.T) {
	e, v := newViewEngine(t)
	v.MaxZoom = 1.5
	e.InjectPinch(400, 300, 50, 400, 6)
	drain(e)
	if !near(v.Zoom, 1.5) {
		t.Errorf("zoom = %v, want 1.5", v.Zoom)
	}
}

func TestViewDoubleTapResets(t *testing.T) {
	e, v := newViewEngine(t)
	v.X, v.Y, v.Zoom = 10, 10, 3
	e.InjectDoubleTap(50, 50)
	drain(e)

	if !v.Animating() {
		t.Fatal("double tap did not start a reset")
	}
	for i := 0; i < 10 && v.Animating(); i++ {
		v.Update(0.1)
	}
	if v.Animating() {
		t.Fatal("reset never finished")
	}
	if !near(v.X, 400) || !near(v.Y, 300) || !near(v.Zoom, 1) {
		t.Errorf("view = %v, %v x%v; want home", v.X, v.Y, v.Zoom)
	}
}

func TestViewResetTo(t *testing.T) {
	v := NewView(800, 600)
	v.ResetTo(0, 0, 4, 1, ease.Linear)
	v.Update(0.5)
	if !near(v.Zoom, 2.5) {
		t.Errorf("zoom at half time = %v, want 2.5", v.Zoom)
	}
	v.Update(0.5)
	if v.Animating() || !near(v.Zoom, 4) {
		t.Errorf("zoom = %v animating=%v", v.Zoom, v.Animating())
	}
}

func TestViewDetach(t *testing.T) {
	e, v := newViewEngine(t)
	v.Detach()
	e.InjectDrag(0, 0, 100, 0, 4)
	drain(e)
	if !near(v.X, 400) {
		t.Errorf("detached view moved to %v", v.X)
	}
}

func TestViewSetViewport(t *testing.T) {
	v := NewView(800, 600)
	v.Zoom = 2
	before, _ := v.ScreenToWorld(0, 0)

	v.SetViewport(1000, 700)
	after, _ := v.ScreenToWorld(0, 0)
	if !near(before, after) {
		t.Errorf("top-left world x moved from %v to %v", before, after)
	}
	if v.Width != 1000 || v.Height != 700 {
		t.Errorf("viewport = %vx%v, want 1000x700", v.Width, v.Height)
	}

	v.Zoom = 1
	v.X, v.Y = v.homeX, v.homeY
	sx, sy := v.WorldToScreen(10, 20)
	if !near(sx, 10) || !near(sy, 20) {
		t.Errorf("home after resize maps (10, 20) to %v, %v", sx, sy)
	}
}
