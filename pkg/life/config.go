package life

import "strconv"

// Config controls the dimensions and rules of a Life simulation.
type Config struct {
	Rows int
	Cols int

	Rules Rules

	// Density is the live-cell probability used by Reset.
	Density float64
}

// DefaultConfig returns a 60x60 toroidal board with Moore rules.
func DefaultConfig() Config {
	return Config{
		Rows:    60,
		Cols:    60,
		Rules:   DefaultRules(Toroidal),
		Density: 0.5,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["policy"]; ok {
		if parsed, err := ParsePolicy(v); err == nil {
			c.Rules.Policy = parsed
		}
	}
	if v, ok := cfg["neighborhood"]; ok {
		if parsed, err := ParseNeighborhood(v); err == nil {
			c.Rules.Neighborhood = parsed
		}
	}
	if v, ok := cfg["skip_quiescent"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Rules.SkipQuiescent = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}
