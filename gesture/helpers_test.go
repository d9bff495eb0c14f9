package gesture

import "time"

func ms(d int) int64 { return int64(time.Duration(d) * time.Millisecond) }

func single(action Action, id int32, x, y float32, downAt, at int64) MotionEvent {
	return MotionEvent{
		Source:    SourceTouch,
		Action:    action,
		Pointers:  []Pointer{{ID: id, X: x, Y: y}},
		EventTime: at,
		DownTime:  downAt,
	}
}

// feed runs evs through detect and collects the per-event states.
func feed(detect func(MotionEvent) State, evs ...MotionEvent) []State {
	out := make([]State, 0, len(evs))
	for _, ev := range evs {
		out = append(out, detect(ev))
	}
	return out
}
