// Package gesture recognizes tap, double-tap, drag and pinch gestures from a
// raw multi-pointer motion event stream.
//
// Each recognizer is a small state machine that consumes one [MotionEvent] at
// a time. An [Arbiter] owns one detector per [Type], feeds every event to all
// of them in priority order and decides which single gesture is current for
// that event:
//
//	arb := gesture.NewArbiter()
//	arb.SetConfiguration(gesture.Configuration{Density: 320})
//
//	switch arb.Detect(ev) {
//	case gesture.TypeDrag:
//		if p, ok := arb.Pointer(); ok {
//			// move something to p.X, p.Y
//		}
//	case gesture.TypePinch:
//		if p1, p2, ok := arb.Pointers(); ok {
//			// scale by the distance between p1 and p2
//		}
//	}
//
// Timeouts are purely data driven: detectors compare event timestamps against
// fixed thresholds and never start timers. Events must therefore be delivered
// in platform order from a single goroutine.
//
// Hosts that only see per-pointer press, move and release notifications can
// build well-formed events with a [Synthesizer].
package gesture
