package gesture

// PinchDetector follows the first two pointers of a multi-pointer stream.
type PinchDetector struct {
	tracker PointerTracker
	live    []Pointer
}

// NewPinchDetector returns an idle PinchDetector.
func NewPinchDetector() *PinchDetector {
	return &PinchDetector{}
}

// SetConfiguration is a no-op: pinching has no slop.
func (d *PinchDetector) SetConfiguration(Configuration) {}

// Detect reports StateStart when a second pointer goes down, StateMove while
// more than one pointer moves and StateStart|StateEnd when one of the two
// pinching pointers lifts and the pinch cannot continue.
func (d *PinchDetector) Detect(ev MotionEvent) State {
	d.live = append(d.live[:0], ev.Pointers...)

	switch ev.Action {
	case ActionDown:
		// Pinching needs a second pointer; only remember the first.
		if p, ok := ev.ActionPointer(); ok {
			d.tracker.Reset()
			d.tracker.Push(p.ID)
		}
	case ActionPointerDown:
		p, ok := ev.ActionPointer()
		if !ok {
			return StateNone
		}
		d.tracker.Push(p.ID)
		if ev.Count() == 2 {
			return StateStart
		}
	case ActionUp:
		d.tracker.PopBack()
	case ActionPointerUp:
		p, ok := ev.ActionPointer()
		if !ok {
			return StateNone
		}
		i := d.tracker.Remove(p.ID)
		if i >= 0 && i <= 1 && ev.Remaining() != 2 {
			return StateStart | StateEnd
		}
	case ActionMove:
		if ev.Count() > 1 {
			return StateMove
		}
	case ActionCancel:
		d.tracker.Reset()
	}
	return StateNone
}

// Pointer always fails: a pinch has two pointers.
func (d *PinchDetector) Pointer() (Pointer, bool) {
	return Pointer{}, false
}

// Pointers resolves the two pinching pointers against the most recent event.
func (d *PinchDetector) Pointers() (Pointer, Pointer, bool) {
	if d.tracker.Len() < 2 {
		return Pointer{}, Pointer{}, false
	}
	id1, _ := d.tracker.At(0)
	id2, _ := d.tracker.At(1)
	p1, ok := findLive(d.live, id1)
	if !ok {
		return Pointer{}, Pointer{}, false
	}
	p2, ok := findLive(d.live, id2)
	if !ok {
		return Pointer{}, Pointer{}, false
	}
	return p1, p2, true
}

// Tracker exposes the ids the detector is following.
func (d *PinchDetector) Tracker() *PointerTracker {
	return &d.tracker
}

func (*PinchDetector) gestureType() Type { return TypePinch }
