package gesture

// Synthesizer builds well-formed MotionEvents from per-pointer press, move
// and release notifications. It keeps the live pointer set so that each
// event carries every pointer that is down, chooses between DOWN and
// POINTER_DOWN (UP and POINTER_UP) and stamps the stream's down time.
//
// Every returned event owns its Pointers slice.
type Synthesizer struct {
	// Source is copied into every synthesized event.
	Source Source

	live     []Pointer
	downTime int64
}

// Press reports a pointer going down. Pressing an id that is already down
// is treated as a move.
func (s *Synthesizer) Press(id int32, x, y float32, now int64) MotionEvent {
	if i := s.index(id); i >= 0 {
		ev, _ := s.Move(id, x, y, now)
		return ev
	}
	action := ActionPointerDown
	if len(s.live) == 0 {
		action = ActionDown
		s.downTime = now
	}
	s.live = append(s.live, Pointer{ID: id, X: x, Y: y})
	return s.event(action, len(s.live)-1, now)
}

// Move reports a new position for a pointer that is down.
func (s *Synthesizer) Move(id int32, x, y float32, now int64) (MotionEvent, bool) {
	i := s.index(id)
	if i < 0 {
		return MotionEvent{}, false
	}
	s.live[i].X, s.live[i].Y = x, y
	return s.event(ActionMove, i, now), true
}

// Release reports a pointer going up at (x, y).
func (s *Synthesizer) Release(id int32, x, y float32, now int64) (MotionEvent, bool) {
	i := s.index(id)
	if i < 0 {
		return MotionEvent{}, false
	}
	s.live[i].X, s.live[i].Y = x, y
	action := ActionPointerUp
	if len(s.live) == 1 {
		action = ActionUp
	}
	ev := s.event(action, i, now)
	copy(s.live[i:], s.live[i+1:])
	s.live = s.live[:len(s.live)-1]
	return ev, true
}

// Cancel aborts the stream and forgets every pointer.
func (s *Synthesizer) Cancel(now int64) (MotionEvent, bool) {
	if len(s.live) == 0 {
		return MotionEvent{}, false
	}
	ev := s.event(ActionCancel, 0, now)
	s.live = s.live[:0]
	return ev, true
}

// Position returns the last known position of a pointer that is down.
func (s *Synthesizer) Position(id int32) (x, y float32, ok bool) {
	i := s.index(id)
	if i < 0 {
		return 0, 0, false
	}
	return s.live[i].X, s.live[i].Y, true
}

// IsDown reports whether id is currently down.
func (s *Synthesizer) IsDown(id int32) bool {
	return s.index(id) >= 0
}

// Live returns the number of pointers that are down.
func (s *Synthesizer) Live() int {
	return len(s.live)
}

// LiveIDs appends the ids of every pointer that is down to buf.
func (s *Synthesizer) LiveIDs(buf []int32) []int32 {
	for _, p := range s.live {
		buf = append(buf, p.ID)
	}
	return buf
}

func (s *Synthesizer) index(id int32) int {
	for i := range s.live {
		if s.live[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Synthesizer) event(action Action, index int, now int64) MotionEvent {
	ptrs := make([]Pointer, len(s.live))
	copy(ptrs, s.live)
	return MotionEvent{
		Source:    s.Source,
		Action:    action,
		Index:     index,
		Pointers:  ptrs,
		EventTime: now,
		DownTime:  s.downTime,
	}
}
