package layout

import "lifeviz/pkg/geom"

// Slider is a horizontal speed control. Track is the painted bar, Area the
// taller region that accepts presses.
type Slider struct {
	Track geom.Rect
	Area  geom.Rect
	Knob  int
}

// Fraction maps a pointer x coordinate to a position in [0, 1] along the track.
func (s Slider) Fraction(x int) float64 {
	span := s.Track.W - 1
	if span <= 0 {
		return 1
	}
	f := float64(x-s.Track.X) / float64(span)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// KnobRect returns the knob drawn at fraction f.
func (s Slider) KnobRect(f float64) geom.Rect {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	travel := s.Track.W - s.Knob
	if travel < 0 {
		travel = 0
	}
	return geom.Rect{X: s.Track.X + int(f*float64(travel)), Y: s.Area.Y, W: s.Knob, H: s.Area.H}
}

// Filled returns the part of the track left of fraction f.
func (s Slider) Filled(f float64) geom.Rect {
	r := s.Track
	r.W = int(float64(r.W) * max(0, min(1, f)))
	return r
}
