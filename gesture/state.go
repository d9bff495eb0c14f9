package gesture

import "strings"

// State is the per-event result of a detector. It is a bit set so that a
// gesture which starts and ends within a single event can report both.
type State uint8

const (
	StateNone   State = 0
	StateStart  State = 1
	StateMove   State = 2
	StateEnd    State = 4
	StateAction       = StateStart | StateEnd
)

// Has reports whether every bit of f is set in s.
func (s State) Has(f State) bool {
	return f != 0 && s&f == f
}

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateAction:
		return "action"
	}
	var parts []string
	if s&StateStart != 0 {
		parts = append(parts, "start")
	}
	if s&StateMove != 0 {
		parts = append(parts, "move")
	}
	if s&StateEnd != 0 {
		parts = append(parts, "end")
	}
	return strings.Join(parts, "|")
}

// Type identifies a gesture. Declaration order is evaluation and priority
// order, highest first.
type Type uint8

const (
	TypeNone Type = iota
	TypeDoubleTap
	TypeDrag
	TypePinch
	TypeTap

	typeCount
)

// Types returns every gesture type in evaluation order.
func Types() []Type {
	return []Type{TypeDoubleTap, TypeDrag, TypePinch, TypeTap}
}

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeDoubleTap:
		return "double-tap"
	case TypeDrag:
		return "drag"
	case TypePinch:
		return "pinch"
	case TypeTap:
		return "tap"
	default:
		return "unknown"
	}
}

// ParseType maps a name produced by Type.String back to the Type. "doubletap"
// is accepted for TypeDoubleTap.
func ParseType(s string) (Type, bool) {
	if s == "doubletap" {
		return TypeDoubleTap, true
	}
	for t := TypeNone; t < typeCount; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return TypeNone, false
}
