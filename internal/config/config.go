package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load builds the configuration from defaults, an optional YAML file,
// and SVGCOMPARE_* environment overrides, in that order. An empty path
// or a missing file is not an error; the defaults stand.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// SVGCOMPARE_WINDOW_WIDTH -> window.width, etc.
	if err := k.Load(env.Provider("SVGCOMPARE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SVGCOMPARE_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validAccents is the set of recognized panel accent values.
var validAccents = map[Accent]bool{
	AccentBlue:   true,
	AccentOrange: true,
}

// Validate checks that the configuration contains valid values. The
// log level is not checked here; applog parses it at startup.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: both dimensions must be positive", c.Window.Width, c.Window.Height)
	}

	panels := []struct {
		name  string
		panel *PanelConfig
	}{
		{"vector", &c.Vector},
		{"raster", &c.Raster},
	}
	for _, p := range panels {
		if p.panel.Title == "" {
			return fmt.Errorf("%s panel: title is required", p.name)
		}
		if !validAccents[p.panel.Accent] {
			return fmt.Errorf("%s panel: invalid accent %q: must be one of blue, orange", p.name, p.panel.Accent)
		}
	}

	return nil
}
