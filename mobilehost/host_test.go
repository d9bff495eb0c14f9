package mobilehost

import (
	"io/fs"
	"testing"
	"time"

	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/phanxgames/nativeshell"
	"github.com/phanxgames/nativeshell/gesture"
	"github.com/phanxgames/nativeshell/surface"
)

type countingRenderer struct {
	inits, renders, unloads int
}

func (r *countingRenderer) Init(fs.FS) error {
	r.inits++
	return nil
}

func (r *countingRenderer) Render()          { r.renders++ }
func (r *countingRenderer) Unload()          { r.unloads++ }
func (r *countingRenderer) TextureType() int { return 0x0DE1 }

type fakeApp struct {
	events chan any
	sent   []any
}

func (a *fakeApp) Events() <-chan any   { return a.events }
func (a *fakeApp) Filter(event any) any { return event }
func (a *fakeApp) Send(event any)       { a.sent = append(a.sent, event) }

func newHost(t *testing.T, opts ...Option) (*Host, *surface.Headless, *countingRenderer) {
	t.Helper()
	drv := surface.NewHeadless()
	r := &countingRenderer{}
	e := nativeshell.NewEngine(r, surface.New(drv), nil)
	var now int64
	clock := func() int64 {
		now += int64(10 * time.Millisecond)
		return now
	}
	return New(e, append([]Option{WithClock(clock)}, opts...)...), drv, r
}

func TestHostLifecycle(t *testing.T) {
	h, drv, r := newHost(t)

	h.HandleEvent(lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageFocused})
	e := h.Engine()
	if !h.Visible() || !e.HasFocus() || !e.Surface().HasSurface() {
		t.Fatalf("visible=%v focus=%v surface=%v", h.Visible(), e.HasFocus(), e.Surface().HasSurface())
	}
	if r.inits != 1 {
		t.Errorf("inits = %d, want 1", r.inits)
	}

	h.HandleEvent(lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageVisible})
	if e.HasFocus() || !e.Surface().HasSurface() {
		t.Error("losing focus should keep the surface")
	}

	h.HandleEvent(lifecycle.Event{From: lifecycle.StageVisible, To: lifecycle.StageAlive})
	if h.Visible() || e.Surface().HasSurface() {
		t.Error("surface kept after the app was hidden")
	}
	if drv.LiveContexts() != 1 {
		t.Errorf("live contexts = %d, want 1", drv.LiveContexts())
	}

	if !h.HandleEvent(lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageVisible}) {
		t.Fatal("HandleEvent returned false")
	}
	if !e.Surface().HasSurface() || !e.HasFocus() {
		t.Error("surface not restored")
	}

	if h.HandleEvent(lifecycle.Event{From: lifecycle.StageVisible, To: lifecycle.StageDead}) {
		t.Error("HandleEvent should stop on death")
	}
	if drv.LiveContexts() != 0 || drv.LiveDisplays() != 0 {
		t.Errorf("leaked contexts=%d displays=%d", drv.LiveContexts(), drv.LiveDisplays())
	}
}

func TestHostPaintTicks(t *testing.T) {
	published := 0
	h, _, r := newHost(t, WithPublish(func() { published++ }))

	h.HandleEvent(paint.Event{})
	if r.renders != 0 || published != 0 {
		t.Error("painted while hidden")
	}

	h.HandleEvent(lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageFocused})
	before := r.renders
	h.HandleEvent(paint.Event{})
	h.HandleEvent(paint.Event{External: true})
	if r.renders != before+1 || published != 1 {
		t.Errorf("renders=%d published=%d", r.renders-before, published)
	}
}

func TestHostSizeSetsDensity(t *testing.T) {
	h, _, _ := newHost(t)
	h.HandleEvent(size.Event{WidthPx: 1080, HeightPx: 1920, PixelsPerPt: 6})

	if w, hh := h.Size(); w != 1080 || hh != 1920 {
		t.Errorf("Size() = %d, %d", w, hh)
	}
	if got := h.Engine().Configuration().Density; got != 432 {
		t.Errorf("density = %v, want 432", got)
	}
}

func TestHostTouchGestures(t *testing.T) {
	h, _, _ := newHost(t)
	h.HandleEvent(lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageFocused})

	var taps []nativeshell.GestureEvent
	h.Engine().OnTap(func(ev nativeshell.GestureEvent) { taps = append(taps, ev) })

	h.HandleEvent(touch.Event{X: 100, Y: 100, Sequence: 7, Type: touch.TypeBegin})
	h.HandleEvent(touch.Event{X: 100, Y: 100, Sequence: 7, Type: touch.TypeEnd})
	if len(taps) != 1 || taps[0].PointerID != 7 || taps[0].State != gesture.StateAction {
		t.Fatalf("taps = %+v, want one tap of pointer 7", taps)
	}

	h.HandleEvent(touch.Event{X: 100, Y: 100, Sequence: 8, Type: touch.TypeBegin})
	h.HandleEvent(touch.Event{X: 300, Y: 100, Sequence: 8, Type: touch.TypeMove})
	h.HandleEvent(touch.Event{X: 300, Y: 100, Sequence: 8, Type: touch.TypeEnd})
	last := h.Engine().LastGesture()
	if last.Type != gesture.TypeDrag || last.State != gesture.StateEnd {
		t.Errorf("last gesture = %v %v, want drag end", last.Type, last.State)
	}
}

func TestHostTouchIgnoredWhileInjecting(t *testing.T) {
	h, _, _ := newHost(t)
	h.HandleEvent(lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageFocused})
	h.Engine().InjectTap(10, 10)

	h.HandleEvent(touch.Event{X: 100, Y: 100, Sequence: 1, Type: touch.TypeBegin})
	if h.synth.Live() != 0 {
		t.Error("real touch accepted while injections are pending")
	}
}

func TestHostRun(t *testing.T) {
	h, _, r := newHost(t)
	a := &fakeApp{events: make(chan any, 4)}
	a.events <- lifecycle.Event{From: lifecycle.StageDead, To: lifecycle.StageFocused}
	a.events <- paint.Event{}
	a.events <- lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead}
	a.events <- paint.Event{}

	h.Run(a)

	if len(a.sent) != 1 {
		t.Errorf("sent %d paint requests, want 1", len(a.sent))
	}
	if len(a.events) != 1 {
		t.Error("Run kept reading after death")
	}
	if r.unloads == 0 {
		t.Error("renderer not unloaded on death")
	}
}
