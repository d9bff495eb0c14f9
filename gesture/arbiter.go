package gesture

// Arbitration selects how the Arbiter picks the current gesture when more
// than one detector fires for the same event.
type Arbitration uint8

const (
	// ArbitrateFirst makes the first firing detector, in Type order, current.
	ArbitrateFirst Arbitration = iota
	// ArbitrateCompat records only the second and later detectors to fire
	// in a pass, each overwriting the previous candidate, so the last of
	// them wins. A lone firing detector yields TypeNone.
	ArbitrateCompat
)

func (a Arbitration) String() string {
	switch a {
	case ArbitrateFirst:
		return "first"
	case ArbitrateCompat:
		return "compat"
	default:
		return "unknown"
	}
}

// ParseArbitration maps "first" and "compat" to their Arbitration values.
func ParseArbitration(s string) (Arbitration, bool) {
	switch s {
	case "", "first":
		return ArbitrateFirst, true
	case "compat":
		return ArbitrateCompat, true
	default:
		return ArbitrateFirst, false
	}
}

// ArbiterOption configures an Arbiter.
type ArbiterOption func(*Arbiter)

// WithArbitration selects the arbitration rule.
func WithArbitration(a Arbitration) ArbiterOption {
	return func(arb *Arbiter) { arb.policy = a }
}

// WithConfiguration applies display metrics at construction time.
func WithConfiguration(c Configuration) ArbiterOption {
	return func(arb *Arbiter) { arb.SetConfiguration(c) }
}

// Arbiter owns one detector per gesture type and decides which single
// gesture is authoritative for each event.
//
// The detector set is built once by NewArbiter and never rebuilt; only the
// detectors' own state changes afterwards. An Arbiter is not safe for
// concurrent use.
type Arbiter struct {
	detectors [typeCount]Detector
	current   Type
	state     State
	policy    Arbitration
	fired     int
	results   [typeCount]State
}

// NewArbiter creates an Arbiter with a detector for every gesture type.
func NewArbiter(opts ...ArbiterOption) *Arbiter {
	a := &Arbiter{}
	for _, t := range Types() {
		a.detectors[t] = NewDetector(t)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Detect feeds ev to every detector in Type order and returns the gesture
// that is current for it. Non-pointer events are ignored and return TypeNone
// without touching the previous result.
func (a *Arbiter) Detect(ev MotionEvent) Type {
	if !ev.IsPointer() {
		return TypeNone
	}

	a.current = TypeNone
	a.state = StateNone
	a.fired = 0
	a.results = [typeCount]State{}

	for _, t := range Types() {
		d := a.detectors[t]
		if d == nil {
			continue
		}
		st := d.Detect(ev)
		a.results[t] = st
		if st == StateNone {
			continue
		}
		a.fired++

		switch a.policy {
		case ArbitrateCompat:
			if a.fired > 1 {
				a.current = t
				a.state = st
			}
		default:
			if a.current == TypeNone {
				a.current = t
				a.state = st
			}
		}
	}

	if a.current != TypeNone {
		logger().Debug("gesture", "type", a.current, "state", a.state, "action", ev.Action)
	}
	return a.current
}

// Current returns the gesture selected by the last Detect call.
func (a *Arbiter) Current() Type {
	return a.current
}

// State returns the state of the current gesture.
func (a *Arbiter) State() State {
	return a.state
}

// Fired returns how many detectors reported something other than StateNone
// during the last Detect call.
func (a *Arbiter) Fired() int {
	return a.fired
}

// StateOf returns what the detector for t reported during the last Detect
// call, whether or not it became current.
func (a *Arbiter) StateOf(t Type) State {
	if t >= typeCount {
		return StateNone
	}
	return a.results[t]
}

// Arbitration returns the rule in use.
func (a *Arbiter) Arbitration() Arbitration {
	return a.policy
}

// Pointer returns the primary pointer of the current gesture. It fails when
// no gesture is current or the current gesture is not a one-pointer gesture.
func (a *Arbiter) Pointer() (Pointer, bool) {
	d := a.active()
	if d == nil {
		return Pointer{}, false
	}
	return d.Pointer()
}

// Pointers returns the pointer pair of the current gesture. It fails when no
// gesture is current or the current gesture is not a two-pointer gesture.
func (a *Arbiter) Pointers() (Pointer, Pointer, bool) {
	d := a.active()
	if d == nil {
		return Pointer{}, Pointer{}, false
	}
	return d.Pointers()
}

// SetConfiguration applies display metrics to every detector.
func (a *Arbiter) SetConfiguration(c Configuration) {
	for _, d := range a.detectors {
		if d != nil {
			d.SetConfiguration(c)
		}
	}
}

// Detector returns the detector registered for t.
func (a *Arbiter) Detector(t Type) Detector {
	if t >= typeCount {
		return nil
	}
	return a.detectors[t]
}

func (a *Arbiter) active() Detector {
	if a.current == TypeNone || a.state == StateNone {
		return nil
	}
	return a.detectors[a.current]
}
