package nativeshell

import "github.com/phanxgames/nativeshell/gesture"

// GestureEvent describes a recognized gesture.
//
// For one-pointer gestures X and Y hold the pointer position. For pinch, (X,
// Y) and (X2, Y2) hold the two pointers in the order they went down.
type GestureEvent struct {
	Type      gesture.Type
	State     gesture.State
	PointerID int32
	X, Y      float32
	X2, Y2    float32
	// Time is the event time in nanoseconds.
	Time int64
}

type gestureHandler struct {
	id uint32
	fn func(GestureEvent)
}

type handlerRegistry struct {
	tap       []gestureHandler
	doubleTap []gestureHandler
	drag      []gestureHandler
	pinch     []gestureHandler
	any       []gestureHandler
	nextID    uint32
}

func (r *handlerRegistry) slot(t gesture.Type) *[]gestureHandler {
	switch t {
	case gesture.TypeTap:
		return &r.tap
	case gesture.TypeDoubleTap:
		return &r.doubleTap
	case gesture.TypeDrag:
		return &r.drag
	case gesture.TypePinch:
		return &r.pinch
	default:
		return &r.any
	}
}

func (r *handlerRegistry) add(t gesture.Type, fn func(GestureEvent)) CallbackHandle {
	r.nextID++
	s := r.slot(t)
	*s = append(*s, gestureHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, typ: t}
}

// CallbackHandle allows removing a registered gesture callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
	typ gesture.Type
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.slot(h.typ)
	*s = removeHandler(*s, h.id)
}

func removeHandler(s []gestureHandler, id uint32) []gestureHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = gestureHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Engine-level registration ---

// OnTap registers fn for every event on which the tap detector fires, even
// when a higher priority gesture is current.
func (e *Engine) OnTap(fn func(GestureEvent)) CallbackHandle {
	return e.handlers.add(gesture.TypeTap, fn)
}

// OnDoubleTap registers fn for every event on which the double-tap detector
// fires.
func (e *Engine) OnDoubleTap(fn func(GestureEvent)) CallbackHandle {
	return e.handlers.add(gesture.TypeDoubleTap, fn)
}

// OnDrag registers fn for every drag start, move and end.
func (e *Engine) OnDrag(fn func(GestureEvent)) CallbackHandle {
	return e.handlers.add(gesture.TypeDrag, fn)
}

// OnPinch registers fn for every pinch start, move and end.
func (e *Engine) OnPinch(fn func(GestureEvent)) CallbackHandle {
	return e.handlers.add(gesture.TypePinch, fn)
}

// OnGesture registers fn for the single gesture the arbiter selects per
// event.
func (e *Engine) OnGesture(fn func(GestureEvent)) CallbackHandle {
	return e.handlers.add(gesture.TypeNone, fn)
}

// dispatch fires the per-type handlers of every detector that reported a
// state for the last event, then the arbitrated handlers.
func (e *Engine) dispatch(ev *gesture.MotionEvent, current gesture.Type) {
	for _, t := range gesture.Types() {
		st := e.arbiter.StateOf(t)
		if st == gesture.StateNone {
			continue
		}
		hs := *e.handlers.slot(t)
		if len(hs) == 0 {
			continue
		}
		fire(hs, e.describe(t, st, ev))
	}

	if current == gesture.TypeNone {
		return
	}
	ge := e.describe(current, e.arbiter.State(), ev)
	e.last = ge
	fire(e.handlers.any, ge)
	if e.sink != nil {
		e.sink.EmitGesture(ge)
	}
}

// fire calls every handler registered when it starts. Handlers may remove
// callbacks of the same slot while it runs.
func fire(hs []gestureHandler, ge GestureEvent) {
	if len(hs) == 0 {
		return
	}
	for _, h := range append([]gestureHandler(nil), hs...) {
		h.fn(ge)
	}
}

// describe resolves the pointers of the detector for t. When the detector no
// longer tracks a live pointer, as on a final UP, the pointer that changed
// state in ev is used.
func (e *Engine) describe(t gesture.Type, st gesture.State, ev *gesture.MotionEvent) GestureEvent {
	ge := GestureEvent{Type: t, State: st, Time: ev.EventTime}
	d := e.arbiter.Detector(t)
	if t == gesture.TypePinch {
		if p1, p2, ok := d.Pointers(); ok {
			ge.PointerID = p1.ID
			ge.X, ge.Y = p1.X, p1.Y
			ge.X2, ge.Y2 = p2.X, p2.Y
			return ge
		}
	} else if p, ok := d.Pointer(); ok {
		ge.PointerID = p.ID
		ge.X, ge.Y = p.X, p.Y
		return ge
	}
	if p, ok := ev.ActionPointer(); ok {
		ge.PointerID = p.ID
		ge.X, ge.Y = p.X, p.Y
	} else if len(ev.Pointers) > 0 {
		p := ev.Pointers[0]
		ge.PointerID = p.ID
		ge.X, ge.Y = p.X, p.Y
	}
	return ge
}
