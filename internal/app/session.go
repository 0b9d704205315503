package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"lifeviz/internal/pattern"
	"lifeviz/pkg/core"
	"lifeviz/pkg/geom"
	"lifeviz/pkg/layout"
	"lifeviz/pkg/life"
)

// ErrNoPattern reports an upload request without a configured pattern file.
var ErrNoPattern = errors.New("app: no pattern file configured")

type loader interface {
	Load(g life.Grid) error
}

// Session is the driver-side state shared by the GUI and terminal front
// ends: the live simulation, play state and speed.
type Session struct {
	sim      core.Sim
	speed    core.SpeedRange
	throttle *core.Throttle
	fraction float64

	playing  bool
	stepOnce bool

	pattern string
	seed    int64
}

// NewSession wraps sim. The board starts empty unless cfg asks for a
// random board or a pattern.
func NewSession(sim core.Sim, cfg *Config) (*Session, error) {
	s := &Session{
		sim:      sim,
		speed:    core.DefaultSpeedRange(),
		throttle: core.NewThrottle(0),
		pattern:  cfg.Pattern,
		seed:     cfg.Seed,
	}
	s.SetFraction(cfg.Speed)
	switch {
	case cfg.Pattern != "":
		if err := s.Reload(); err != nil {
			return nil, err
		}
	case cfg.Random:
		sim.Reset(cfg.Seed)
	default:
		s.Clear()
	}
	return s, nil
}

// Sim returns the wrapped simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Playing reports whether generations advance on Tick.
func (s *Session) Playing() bool { return s.playing }

// SetPlaying starts or stops the simulation.
func (s *Session) SetPlaying(on bool) {
	if on && !s.playing {
		s.throttle.Reset()
	}
	s.playing = on
}

// TogglePlaying flips the play state.
func (s *Session) TogglePlaying() { s.SetPlaying(!s.playing) }

// StepOnce requests a single generation on the next Tick, even when paused.
func (s *Session) StepOnce() { s.stepOnce = true }

// Fraction returns the speed slider position.
func (s *Session) Fraction() float64 { return s.fraction }

// SetFraction moves the speed slider and updates the step interval.
func (s *Session) SetFraction(f float64) {
	s.fraction = max(0, min(1, f))
	s.throttle.SetInterval(s.speed.Interval(s.fraction))
}

// Interval returns the current minimum time between generations.
func (s *Session) Interval() time.Duration { return s.throttle.Interval() }

// Generation returns the generation counter when the sim tracks one.
func (s *Session) Generation() int {
	if g, ok := s.sim.(interface{ Generation() int }); ok {
		return g.Generation()
	}
	return 0
}

// Tick advances at most one generation. It steps when a single step was
// requested, or when playing and the throttle interval has elapsed.
func (s *Session) Tick(now time.Time) (bool, error) {
	switch {
	case s.stepOnce:
		s.stepOnce = false
	case s.playing && s.throttle.Ready(now):
	default:
		return false, nil
	}
	if err := s.sim.Step(); err != nil {
		s.playing = false
		return false, err
	}
	return true, nil
}

// Toggle flips the board cell at Point{X: col, Y: row}.
func (s *Session) Toggle(cell geom.Point) {
	if ed, ok := s.sim.(core.Editor); ok {
		ed.Toggle(cell.X, cell.Y)
	}
}

// Clear kills every cell and pauses.
func (s *Session) Clear() {
	s.playing = false
	if ed, ok := s.sim.(core.Editor); ok {
		ed.Clear()
		return
	}
	s.sim.Reset(s.seed)
}

// Randomize fills the board from seed and remembers it for later resets.
func (s *Session) Randomize(seed int64) {
	s.seed = seed
	s.sim.Reset(seed)
}

// Reload loads the configured pattern file onto the board and pauses.
func (s *Session) Reload() error {
	if s.pattern == "" {
		return ErrNoPattern
	}
	size := s.sim.Size()
	g, err := pattern.Load(s.pattern, size.H, size.W)
	if err != nil {
		return err
	}
	return s.load(g)
}

// LoadFS loads the named pattern from fsys, as delivered by drag and drop.
func (s *Session) LoadFS(fsys fs.FS, name string) error {
	size := s.sim.Size()
	g, err := pattern.LoadFS(fsys, name, size.H, size.W)
	if err != nil {
		return err
	}
	return s.load(g)
}

func (s *Session) load(g life.Grid) error {
	l, ok := s.sim.(loader)
	if !ok {
		return fmt.Errorf("app: sim %q cannot load patterns", s.sim.Name())
	}
	if err := l.Load(g); err != nil {
		return err
	}
	s.playing = false
	return nil
}

// Apply performs the logical action of a hit test result.
func (s *Session) Apply(hit layout.Hit) error {
	switch hit.Action {
	case layout.ActionToggleCell:
		s.Toggle(hit.Cell)
	case layout.ActionPlay:
		s.SetPlaying(true)
	case layout.ActionPause:
		s.SetPlaying(false)
	case layout.ActionUpload:
		return s.Reload()
	}
	return nil
}
