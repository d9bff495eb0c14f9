package nativeshell

import "github.com/phanxgames/nativeshell/gesture"

// InjectPointerBase is the first pointer id used by InjectTap, InjectDrag and
// InjectPinch. It keeps synthetic pointers apart from real ones.
const InjectPointerBase int32 = 1000

type opKind uint8

const (
	opPress opKind = iota
	opMove
	opRelease
	opCancel
)

// pointerOp is a single synthetic pointer change.
type pointerOp struct {
	kind opKind
	id   int32
	x, y float32
}

// injectFrame holds the pointer changes applied during one Update.
type injectFrame []pointerOp

func (e *Engine) enqueue(ops ...pointerOp) {
	e.injectQueue = append(e.injectQueue, injectFrame(ops))
}

// InjectPress queues a pointer press. Every Inject call below consumes one
// frame per queued entry on the following Update calls.
func (e *Engine) InjectPress(id int32, x, y float32) {
	e.enqueue(pointerOp{kind: opPress, id: id, x: x, y: y})
}

// InjectMove queues a move of a pressed pointer.
func (e *Engine) InjectMove(id int32, x, y float32) {
	e.enqueue(pointerOp{kind: opMove, id: id, x: x, y: y})
}

// InjectRelease queues a pointer release.
func (e *Engine) InjectRelease(id int32, x, y float32) {
	e.enqueue(pointerOp{kind: opRelease, id: id, x: x, y: y})
}

// InjectCancel queues a cancel of every injected pointer.
func (e *Engine) InjectCancel() {
	e.enqueue(pointerOp{kind: opCancel})
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two frames.
func (e *Engine) InjectTap(x, y float32) {
	e.InjectPress(InjectPointerBase, x, y)
	e.InjectRelease(InjectPointerBase, x, y)
}

// InjectDoubleTap queues two taps at the same point. Consumes four frames.
func (e *Engine) InjectDoubleTap(x, y float32) {
	e.InjectTap(x, y)
	e.InjectTap(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), moves linearly
// interpolated over frames-2 intermediate frames, and release at (toX, toY).
// The sequence consumes frames frames, at least 2.
func (e *Engine) InjectDrag(fromX, fromY, toX, toY float32, frames int) {
	if frames < 2 {
		frames = 2
	}
	id := InjectPointerBase
	e.InjectPress(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps+1)
		e.InjectMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(id, toX, toY)
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy)
// whose finger distance goes from fromSpan to toSpan. Both fingers move in
// the same frame. The sequence consumes frames frames, at least 4.
func (e *Engine) InjectPinch(cx, cy, fromSpan, toSpan float32, frames int) {
	if frames < 4 {
		frames = 4
	}
	a, b := InjectPointerBase, InjectPointerBase+1
	e.InjectPress(a, cx-fromSpan/2, cy)
	e.InjectPress(b, cx+fromSpan/2, cy)
	steps := frames - 4
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps)
		span := fromSpan + (toSpan-fromSpan)*t
		e.enqueue(
			pointerOp{kind: opMove, id: a, x: cx - span/2, y: cy},
			pointerOp{kind: opMove, id: b, x: cx + span/2, y: cy},
		)
	}
	e.InjectRelease(b, cx+toSpan/2, cy)
	e.InjectRelease(a, cx-toSpan/2, cy)
}

// PendingInjections returns the number of queued frames.
func (e *Engine) PendingInjections() int {
	return len(e.injectQueue)
}

// processInjectedInput pops one frame from the inject queue and feeds its
// events through HandleInput. Returns true if a frame was consumed; hosts
// skip real input for that frame.
func (e *Engine) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	frame := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue[len(e.injectQueue)-1] = nil
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	now := e.now()
	for _, op := range frame {
		var (
			ev gesture.MotionEvent
			ok bool
		)
		switch op.kind {
		case opPress:
			ev, ok = e.synth.Press(op.id, op.x, op.y, now), true
		case opMove:
			ev, ok = e.synth.Move(op.id, op.x, op.y, now)
		case opRelease:
			ev, ok = e.synth.Release(op.id, op.x, op.y, now)
		case opCancel:
			ev, ok = e.synth.Cancel(now)
		}
		if ok {
			e.HandleInput(ev)
		}
	}
	return true
}
