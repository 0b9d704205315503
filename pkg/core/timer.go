package core

import "time"

// Throttle gates simulation steps to at most one per elapsed interval.
// Unlike an accumulator it never owes ticks: a long gap between calls
// still yields a single step.
type Throttle struct {
	interval time.Duration
	last     time.Time
}

// NewThrottle constructs a Throttle with the given minimum interval.
func NewThrottle(interval time.Duration) *Throttle {
	t := &Throttle{}
	t.SetInterval(interval)
	return t
}

// SetInterval changes the minimum time between steps. Negative values are
// treated as zero.
func (t *Throttle) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	t.interval = interval
}

// Interval returns the configured minimum time between steps.
func (t *Throttle) Interval() time.Duration { return t.interval }

// Ready reports whether a step may run at now. When it returns true the
// throttle records now as the last step time.
func (t *Throttle) Ready(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) <= t.interval {
		return false
	}
	t.last = now
	return true
}

// Reset forgets the last step so the next Ready call succeeds.
func (t *Throttle) Reset() { t.last = time.Time{} }

// SpeedRange maps a slider fraction onto a step interval. Fraction 0 selects
// Slowest and fraction 1 selects Fastest.
type SpeedRange struct {
	Slowest time.Duration
	Fastest time.Duration
}

// DefaultSpeedRange spans 500ms down to 1ms per generation.
func DefaultSpeedRange() SpeedRange {
	return SpeedRange{Slowest: 500 * time.Millisecond, Fastest: time.Millisecond}
}

// Interval returns the step interval for the slider fraction f, clamped to [0,1].
// The result is truncated to whole milliseconds.
func (s SpeedRange) Interval(f float64) time.Duration {
	f = clamp01(f)
	slow := s.Slowest.Milliseconds()
	fast := s.Fastest.Milliseconds()
	delta := int64(float64(slow-fast) * f)
	return time.Duration(slow-delta) * time.Millisecond
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
