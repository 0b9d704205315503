package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"lifeviz/pkg/core"
	"lifeviz/pkg/layout"
)

// Config represents the command-line parameters shared by every driver.
type Config struct {
	Sim     string
	Rows    int
	Cols    int
	Policy  string
	Seed    int64
	Random  bool
	Pattern string

	// Speed is the initial slider fraction: 0 is slowest, 1 fastest.
	Speed float64
	TPS   int

	Width    int
	Height   int
	CellSize int
	Margin   int

	Sets KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := layout.DefaultConfig()
	return &Config{
		Sim:      "life",
		Rows:     60,
		Cols:     60,
		Policy:   "toroidal",
		Seed:     42,
		Speed:    1,
		TPS:      60,
		Width:    1280,
		Height:   720,
		CellSize: d.CellSize,
		Margin:   d.Margin,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run ("+strings.Join(core.Names(), ", ")+")")
	fs.IntVar(&c.Rows, "rows", c.Rows, "simulated board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "simulated board columns")
	fs.StringVar(&c.Policy, "policy", c.Policy, "boundary policy: toroidal or bounded")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random board instead of an empty one")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plaintext pattern file loaded at start and by the upload button")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "initial speed slider position in [0,1]")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the GUI loop")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Margin, "margin", c.Margin, "border margin in pixels")
	fs.Var(&c.Sets, "set", "simulation or layout override in key=value form (repeatable)")
}

// SimOptions returns the factory options for the selected simulation.
func (c *Config) SimOptions() map[string]string {
	opts := c.Sets.Map()
	opts["rows"] = strconv.Itoa(c.Rows)
	opts["cols"] = strconv.Itoa(c.Cols)
	opts["policy"] = c.Policy
	return opts
}

// Layout returns the layout configuration with flag and -set overrides applied.
func (c *Config) Layout() layout.Config {
	lc := layout.FromMap(c.Sets.Map())
	lc.CellSize = c.CellSize
	lc.Margin = c.Margin
	return lc
}

// NewSim builds the selected simulation.
func (c *Config) NewSim() (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %s)", c.Sim, strings.Join(core.Names(), ", "))
	}
	return factory(c.SimOptions()), nil
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later pairs win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
