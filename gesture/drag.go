package gesture

// DragDetector follows single-pointer drags. When a second pointer joins the
// drag it stays silent and leaves multi-pointer movement to PinchDetector.
type DragDetector struct {
	tracker PointerTracker
	live    []Pointer
}

// NewDragDetector returns an idle DragDetector.
func NewDragDetector() *DragDetector {
	return &DragDetector{}
}

// SetConfiguration is a no-op: dragging has no slop.
func (d *DragDetector) SetConfiguration(Configuration) {}

// Detect reports StateStart on the initial DOWN and when a POINTER_UP leaves
// a single pointer down, StateMove while exactly one pointer moves and
// StateEnd on the final UP.
func (d *DragDetector) Detect(ev MotionEvent) State {
	d.live = append(d.live[:0], ev.Pointers...)

	switch ev.Action {
	case ActionDown:
		p, ok := ev.ActionPointer()
		if !ok {
			return StateNone
		}
		// A DOWN always opens a fresh stream.
		d.tracker.Reset()
		d.tracker.Push(p.ID)
		return StateStart
	case ActionPointerDown:
		if p, ok := ev.ActionPointer(); ok {
			d.tracker.Push(p.ID)
		}
	case ActionUp:
		d.tracker.PopBack()
		return StateEnd
	case ActionPointerUp:
		p, ok := ev.ActionPointer()
		if !ok {
			return StateNone
		}
		d.tracker.Remove(p.ID)
		if d.tracker.Len() <= 1 && ev.Count() == 2 {
			return StateStart
		}
	case ActionMove:
		if ev.Count() == 1 {
			return StateMove
		}
	case ActionCancel:
		d.tracker.Reset()
	}
	return StateNone
}

// Pointer resolves the primary tracked pointer against the most recent event.
func (d *DragDetector) Pointer() (Pointer, bool) {
	id, ok := d.tracker.Primary()
	if !ok {
		return Pointer{}, false
	}
	return findLive(d.live, id)
}

// Pointers always fails: a drag has a single pointer.
func (d *DragDetector) Pointers() (Pointer, Pointer, bool) {
	return Pointer{}, Pointer{}, false
}

// Tracker exposes the ids the detector is following.
func (d *DragDetector) Tracker() *PointerTracker {
	return &d.tracker
}

func (*DragDetector) gestureType() Type { return TypeDrag }

func findLive(live []Pointer, id int32) (Pointer, bool) {
	for _, p := range live {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}
