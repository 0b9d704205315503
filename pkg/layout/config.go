package layout

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidConfig reports layout values that cannot produce a usable view.
var ErrInvalidConfig = errors.New("layout: invalid config")

// Config holds every size the view is built from. The margin band around
// the grid hosts the controls.
type Config struct {
	// CellSize is the side of one grid cell in pixels.
	CellSize int
	// Margin is the empty band on every side of the grid.
	Margin int
	// CellPadding insets live cells from the grid lines.
	CellPadding int

	// ButtonHeight is the height of the play and pause buttons. Zero means Margin/2.
	ButtonHeight int

	SliderWidth  int
	SliderHeight int
	KnobWidth    int

	// IconSize is the side of the square upload button. Zero means Margin/2.
	IconSize int
}

// DefaultConfig returns the stock 30px cells inside a 60px margin.
func DefaultConfig() Config {
	return Config{
		CellSize:     30,
		Margin:       60,
		CellPadding:  2,
		SliderWidth:  200,
		SliderHeight: 6,
		KnobWidth:    8,
	}
}

// Validate checks that the sizes are positive and the controls fit in the margin.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	if c.Margin < 0 {
		return fmt.Errorf("%w: margin %d must not be negative", ErrInvalidConfig, c.Margin)
	}
	if c.CellPadding < 0 || 2*c.CellPadding > c.CellSize {
		return fmt.Errorf("%w: cell padding %d does not fit cell size %d", ErrInvalidConfig, c.CellPadding, c.CellSize)
	}
	if c.buttonHeight() > c.Margin || c.iconSize() > c.Margin || c.SliderHeight > c.Margin {
		return fmt.Errorf("%w: controls taller than margin %d", ErrInvalidConfig, c.Margin)
	}
	return nil
}

func (c Config) buttonHeight() int {
	if c.ButtonHeight > 0 {
		return c.ButtonHeight
	}
	return c.Margin / 2
}

func (c Config) iconSize() int {
	if c.IconSize > 0 {
		return c.IconSize
	}
	return c.Margin / 2
}

// Mapper returns the coordinate mapper for this configuration.
func (c Config) Mapper() Mapper { return Mapper{CellSize: c.CellSize, Margin: c.Margin} }

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	ints := map[string]*int{
		"cell_size":     &c.CellSize,
		"margin":        &c.Margin,
		"cell_padding":  &c.CellPadding,
		"button_height": &c.ButtonHeight,
		"slider_width":  &c.SliderWidth,
		"slider_height": &c.SliderHeight,
		"knob_width":    &c.KnobWidth,
		"icon_size":     &c.IconSize,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	return c
}
