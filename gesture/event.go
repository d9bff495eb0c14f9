package gesture

import "time"

// Source identifies the device class that produced an event.
type Source uint8

const (
	SourceTouch Source = iota // finger or stylus
	SourceMouse               // mouse treated as a single pointer
	SourceKey                 // non-pointer input; ignored by gesture detection
)

// Action is the kind of change a MotionEvent reports.
type Action uint8

const (
	ActionDown        Action = iota // first pointer went down
	ActionUp                        // last pointer went up
	ActionMove                      // one or more pointers moved
	ActionCancel                    // the platform aborted the gesture
	ActionPointerDown               // an additional pointer went down
	ActionPointerUp                 // a non-last pointer went up
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	case ActionMove:
		return "move"
	case ActionCancel:
		return "cancel"
	case ActionPointerDown:
		return "pointer-down"
	case ActionPointerUp:
		return "pointer-up"
	default:
		return "unknown"
	}
}

// Pointer is one pointer sample inside a MotionEvent.
type Pointer struct {
	ID   int32
	X, Y float32
}

// MotionEvent is a snapshot of every pointer that is down at the moment the
// event is delivered.
//
// For ActionUp and ActionPointerUp the lifted pointer is still part of
// Pointers, at position Index. For ActionPointerDown the new pointer is at
// Index. EventTime and DownTime are monotonic nanoseconds; DownTime is the
// time of the ActionDown that started the stream.
type MotionEvent struct {
	Source    Source
	Action    Action
	Index     int
	Pointers  []Pointer
	EventTime int64
	DownTime  int64
}

// IsPointer reports whether the event comes from a pointer device.
func (e *MotionEvent) IsPointer() bool {
	return e.Source != SourceKey
}

// Count returns the number of pointers reported by the event.
func (e *MotionEvent) Count() int {
	return len(e.Pointers)
}

// Remaining returns the number of pointers still down once the event has
// been applied. It differs from Count only for up actions.
func (e *MotionEvent) Remaining() int {
	switch e.Action {
	case ActionUp, ActionPointerUp:
		if e.Index >= 0 && e.Index < len(e.Pointers) {
			return len(e.Pointers) - 1
		}
	}
	return len(e.Pointers)
}

// ActionPointer returns the pointer that changed state in a DOWN, UP,
// POINTER_DOWN or POINTER_UP event.
func (e *MotionEvent) ActionPointer() (Pointer, bool) {
	i := e.Index
	if e.Action == ActionDown || e.Action == ActionUp {
		if len(e.Pointers) == 1 {
			i = 0
		}
	}
	if i < 0 || i >= len(e.Pointers) {
		return Pointer{}, false
	}
	return e.Pointers[i], true
}

// FindIndex returns the position of the pointer with the given id, or -1.
func (e *MotionEvent) FindIndex(id int32) int {
	for i := range e.Pointers {
		if e.Pointers[i].ID == id {
			return i
		}
	}
	return -1
}

// Elapsed returns the time since the stream's initial DOWN.
func (e *MotionEvent) Elapsed() time.Duration {
	return time.Duration(e.EventTime - e.DownTime)
}
