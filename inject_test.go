package nativeshell

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phanxgames/nativeshell/gesture"
)

func recordStates(e *Engine, register func(*Engine, func(GestureEvent)) CallbackHandle) *[]gesture.State {
	var states []gesture.State
	register(e, func(ev GestureEvent) { states = append(states, ev.State) })
	return &states
}

func drain(e *Engine) int {
	frames := 0
	for e.processInjectedInput() {
		frames++
	}
	return frames
}

func TestInjectTap(t *testing.T) {
	e, _, _ := startEngine(t)

	var taps int
	e.OnTap(func(GestureEvent) { taps++ })

	e.InjectTap(50, 50)
	if e.PendingInjections() != 2 {
		t.Fatalf("queued frames = %d, want 2", e.PendingInjections())
	}

	// Frame 1: press
	e.Update()
	if e.PendingInjections() != 1 || taps != 0 {
		t.Fatalf("after press: pending=%d taps=%d", e.PendingInjections(), taps)
	}

	// Frame 2: release, tap fires
	e.Update()
	if e.PendingInjections() != 0 || taps != 1 {
		t.Fatalf("after release: pending=%d taps=%d", e.PendingInjections(), taps)
	}
}

func TestInjectDoubleTap(t *testing.T) {
	e, _, _ := startEngine(t)

	var doubles int
	e.OnDoubleTap(func(GestureEvent) { doubles++ })

	e.InjectDoubleTap(20, 30)
	if got := drain(e); got != 4 {
		t.Errorf("frames = %d, want 4", got)
	}
	if doubles != 1 {
		t.Errorf("double taps = %d, want 1", doubles)
	}
}

func TestInjectDrag(t *testing.T) {
	e, _, _ := startEngine(t)
	states := recordStates(e, (*Engine).OnDrag)

	var last GestureEvent
	e.OnDrag(func(ev GestureEvent) { last = ev })

	e.InjectDrag(0, 0, 100, 40, 5)
	if got := drain(e); got != 5 {
		t.Errorf("frames = %d, want 5", got)
	}

	want := []gesture.State{
		gesture.StateStart,
		gesture.StateMove,
		gesture.StateMove,
		gesture.StateMove,
		gesture.StateEnd,
	}
	if diff := cmp.Diff(want, *states); diff != "" {
		t.Errorf("drag states mismatch (-want +got):\n%s", diff)
	}
	if last.X != 100 || last.Y != 40 {
		t.Errorf("drag end at (%v, %v), want (100, 40)", last.X, last.Y)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	e, _, _ := startEngine(t)
	e.InjectDrag(0, 0, 10, 10, 0)
	if e.PendingInjections() != 2 {
		t.Errorf("queued frames = %d, want 2", e.PendingInjections())
	}
}

func TestInjectPinch(t *testing.T) {
	e, _, _ := startEngine(t)
	pinch := recordStates(e, (*Engine).OnPinch)
	drag := recordStates(e, (*Engine).OnDrag)

	var spans []float32
	e.OnPinch(func(ev GestureEvent) {
		if ev.State == gesture.StateMove {
			spans = append(spans, ev.X2-ev.X)
		}
	})

	e.InjectPinch(200, 200, 100, 200, 6)
	if got := drain(e); got != 6 {
		t.Errorf("frames = %d, want 6", got)
	}

	wantPinch := []gesture.State{
		gesture.StateStart,
		gesture.StateMove, gesture.StateMove,
		gesture.StateMove, gesture.StateMove,
		gesture.StateAction,
	}
	if diff := cmp.Diff(wantPinch, *pinch); diff != "" {
		t.Errorf("pinch states mismatch (-want +got):\n%s", diff)
	}
	// Drag starts with the first finger, restarts when the second lifts and
	// ends with the last one.
	wantDrag := []gesture.State{gesture.StateStart, gesture.StateStart, gesture.StateEnd}
	if diff := cmp.Diff(wantDrag, *drag); diff != "" {
		t.Errorf("drag states mismatch (-want +got):\n%s", diff)
	}
	if len(spans) != 4 || spans[3] != 200 {
		t.Errorf("spans = %v, want four values ending at 200", spans)
	}
}

func TestInjectCancel(t *testing.T) {
	e, _, _ := startEngine(t)
	e.InjectPress(7, 1, 1)
	e.InjectCancel()
	e.InjectCancel()
	drain(e)
	if e.synth.Live() != 0 {
		t.Errorf("live pointers after cancel = %d", e.synth.Live())
	}
	if tr := e.Arbiter().Detector(gesture.TypeDrag).(*gesture.DragDetector).Tracker(); tr.Len() != 0 {
		t.Errorf("drag tracker len = %d after cancel", tr.Len())
	}
}

func TestInjectMoveUnknownPointer(t *testing.T) {
	e, _, _ := startEngine(t)
	var calls int
	e.OnGesture(func(GestureEvent) { calls++ })

	e.InjectMove(3, 10, 10)
	e.InjectRelease(3, 10, 10)
	drain(e)
	if calls != 0 {
		t.Errorf("gestures for a pointer that never went down: %d", calls)
	}
}
