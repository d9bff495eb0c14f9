package gesture

import "time"

// Recognition thresholds. Slop values are in density-independent pixels and
// are scaled by Configuration.Factor before use.
const (
	TapTimeout       = 180 * time.Millisecond
	DoubleTapTimeout = 300 * time.Millisecond
	TouchSlop        = 8
	DoubleTapSlop    = 100
)

// BaselineDensity is the display density, in dots per inch, at which one
// density-independent pixel equals one physical pixel.
const BaselineDensity = 160

// Configuration carries the platform display metrics that affect gesture
// thresholds. It is re-applied whenever the platform configuration changes.
type Configuration struct {
	// Density is the display density in dots per inch. Zero or negative
	// values are treated as BaselineDensity.
	Density float32
}

// Factor returns the multiplier that converts density-independent pixels to
// physical pixels.
func (c Configuration) Factor() float32 {
	if c.Density <= 0 {
		return 1
	}
	return c.Density / BaselineDensity
}

// slop holds a squared distance threshold in physical pixels.
type slop struct {
	dp     float32
	factor float32
	sq     float32
}

func newSlop(dp float32) slop {
	s := slop{dp: dp}
	s.scale(1)
	return s
}

func (s *slop) scale(factor float32) {
	s.factor = factor
	px := s.dp * factor
	s.sq = px * px
}

// within reports whether the displacement (dx, dy) is strictly inside the slop.
func (s *slop) within(dx, dy float32) bool {
	return dx*dx+dy*dy < s.sq
}
