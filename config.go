package stencil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunables of a GUI and its canvas.
type Config struct {
	VerticalSpacing   int    `toml:"vertical_spacing"`   // rows between children of a vertical block
	HorizontalSpacing int    `toml:"horizontal_spacing"` // columns between children of a horizontal block
	LabelWidth        int    `toml:"label_width"`        // label column of field widgets
	TextAreaHeight    int    `toml:"text_area_height"`   // default rows of a text area
	MaxPassesPerFrame int    `toml:"max_passes_per_frame"`
	Relayout          string `toml:"relayout"` // "width" or "geometry"
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		VerticalSpacing:   0,
		HorizontalSpacing: 1,
		LabelWidth:        16,
		TextAreaHeight:    3,
		MaxPassesPerFrame: 4,
		Relayout:          "width",
	}
}

// ParseConfig decodes TOML over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, cfg.validate()
}

// LoadConfig reads a TOML config file. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func (c Config) validate() error {
	if c.VerticalSpacing < 0 || c.HorizontalSpacing < 0 {
		return fmt.Errorf("spacing must not be negative")
	}
	if c.MaxPassesPerFrame < 2 {
		return fmt.Errorf("max_passes_per_frame must be at least 2, got %d", c.MaxPassesPerFrame)
	}
	if _, ok := relayoutPolicies[c.Relayout]; !ok {
		return fmt.Errorf("unknown relayout policy %q", c.Relayout)
	}
	return nil
}
