package gesture

// Detector is a gesture-specific state machine. The set of implementations is
// closed: TapDetector, DoubleTapDetector, DragDetector and PinchDetector.
type Detector interface {
	// Detect consumes one event and returns the detector's state for it.
	Detect(ev MotionEvent) State
	// Pointer returns the single pointer of a one-pointer gesture.
	Pointer() (Pointer, bool)
	// Pointers returns the pointer pair of a two-pointer gesture.
	Pointers() (Pointer, Pointer, bool)
	// SetConfiguration applies display metrics to the detector's thresholds.
	SetConfiguration(c Configuration)

	gestureType() Type
}

var (
	_ Detector = (*TapDetector)(nil)
	_ Detector = (*DoubleTapDetector)(nil)
	_ Detector = (*DragDetector)(nil)
	_ Detector = (*PinchDetector)(nil)
)

// NewDetector creates the detector for t, or nil for TypeNone and unknown
// types.
func NewDetector(t Type) Detector {
	switch t {
	case TypeDoubleTap:
		return NewDoubleTapDetector()
	case TypeDrag:
		return NewDragDetector()
	case TypePinch:
		return NewPinchDetector()
	case TypeTap:
		return NewTapDetector()
	default:
		return nil
	}
}

// TypeOf returns the gesture type a detector recognizes.
func TypeOf(d Detector) Type {
	if d == nil {
		return TypeNone
	}
	return d.gestureType()
}
