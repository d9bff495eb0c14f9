package gesture

// TapDetector recognizes a single-pointer press and release that stays
// within TouchSlop and completes within TapTimeout.
type TapDetector struct {
	slop    slop
	down    bool
	multi   bool
	downID  int32
	downX   float32
	downY   float32
	timeout int64
}

// NewTapDetector returns a TapDetector configured for BaselineDensity.
func NewTapDetector() *TapDetector {
	return &TapDetector{
		slop:    newSlop(TouchSlop),
		timeout: int64(TapTimeout),
	}
}

// SetConfiguration rescales the touch slop for the display density.
func (d *TapDetector) SetConfiguration(c Configuration) {
	d.slop.scale(c.Factor())
}

// Detect reports StateAction on the UP that completes a tap. A second
// pointer anywhere in the stream disqualifies the whole stream.
func (d *TapDetector) Detect(ev MotionEvent) State {
	if ev.Action == ActionCancel {
		d.down, d.multi = false, false
		return StateNone
	}
	if ev.Count() > 1 {
		d.multi = true
	}
	if ev.Count() != 1 {
		return StateNone
	}
	p := ev.Pointers[0]
	switch ev.Action {
	case ActionDown:
		d.down = true
		d.multi = false
		d.downID = p.ID
		d.downX, d.downY = p.X, p.Y
	case ActionUp:
		if !d.down || d.multi || ev.EventTime-ev.DownTime > d.timeout {
			return StateNone
		}
		if d.downID != p.ID {
			return StateNone
		}
		if d.slop.within(p.X-d.downX, p.Y-d.downY) {
			logger().Debug("tap detected", "x", p.X, "y", p.Y)
			return StateAction
		}
	}
	return StateNone
}

// Pointer returns where the last tap went down.
func (d *TapDetector) Pointer() (Pointer, bool) {
	if !d.down {
		return Pointer{}, false
	}
	return Pointer{ID: d.downID, X: d.downX, Y: d.downY}, true
}

// Pointers always fails: a tap has a single pointer.
func (d *TapDetector) Pointers() (Pointer, Pointer, bool) {
	return Pointer{}, Pointer{}, false
}

func (*TapDetector) gestureType() Type { return TypeTap }
