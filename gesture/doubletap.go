package gesture

// DoubleTapDetector recognizes a DOWN that lands within DoubleTapSlop of a
// tap completed no more than DoubleTapTimeout earlier.
type DoubleTapDetector struct {
	tap     *TapDetector
	slop    slop
	timeout int64

	hasLast  bool
	lastTime int64
	lastX    float32
	lastY    float32

	hit Pointer
	ok  bool
}

// NewDoubleTapDetector returns a DoubleTapDetector configured for
// BaselineDensity.
func NewDoubleTapDetector() *DoubleTapDetector {
	return &DoubleTapDetector{
		tap:     NewTapDetector(),
		slop:    newSlop(DoubleTapSlop),
		timeout: int64(DoubleTapTimeout),
	}
}

// SetConfiguration rescales both the double-tap slop and the slop of the
// embedded tap detector.
func (d *DoubleTapDetector) SetConfiguration(c Configuration) {
	d.slop.scale(c.Factor())
	d.tap.SetConfiguration(c)
}

// Detect reports StateAction on the DOWN of the second tap.
func (d *DoubleTapDetector) Detect(ev MotionEvent) State {
	tapped := d.tap.Detect(ev) != StateNone
	if ev.Count() != 1 {
		return StateNone
	}
	p := ev.Pointers[0]

	switch ev.Action {
	case ActionDown:
		if !d.hasLast || ev.EventTime-d.lastTime > d.timeout {
			break
		}
		if d.slop.within(p.X-d.lastX, p.Y-d.lastY) {
			d.hit, d.ok = p, true
			logger().Debug("double tap detected", "x", p.X, "y", p.Y)
			return StateAction
		}
	case ActionUp:
		if tapped {
			d.hasLast = true
			d.lastTime = ev.EventTime
			d.lastX, d.lastY = p.X, p.Y
		}
	}
	return StateNone
}

// Pointer returns where the second tap of the last double tap went down.
func (d *DoubleTapDetector) Pointer() (Pointer, bool) {
	return d.hit, d.ok
}

// Pointers always fails: a double tap has a single pointer.
func (d *DoubleTapDetector) Pointers() (Pointer, Pointer, bool) {
	return Pointer{}, Pointer{}, false
}

func (*DoubleTapDetector) gestureType() Type { return TypeDoubleTap }
