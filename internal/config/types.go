package config

// Accent selects the chrome color of a viewer panel. Exactly two
// values exist; panels use them for styling only, never for behavior.
type Accent string

const (
	AccentBlue   Accent = "blue"
	AccentOrange Accent = "orange"
)

// PanelConfig describes one viewer panel: its heading, accent color,
// the comparison copy rendered beneath the viewport, and an optional
// content override. A panel with no disadvantages omits that section
// entirely.
type PanelConfig struct {
	Title         string   `yaml:"title" koanf:"title"`
	Accent        Accent   `yaml:"accent" koanf:"accent"`
	Advantages    []string `yaml:"advantages" koanf:"advantages"`
	Disadvantages []string `yaml:"disadvantages" koanf:"disadvantages"`
	// Asset points at a file to show instead of the embedded artwork:
	// an SVG document for the vector panel, an image file or a
	// directory of images for the raster panel.
	Asset string `yaml:"asset" koanf:"asset"`
}

// WindowConfig sizes the application window.
type WindowConfig struct {
	Width      int  `yaml:"width" koanf:"width"`
	Height     int  `yaml:"height" koanf:"height"`
	Fullscreen bool `yaml:"fullscreen" koanf:"fullscreen"`
}

// Config is the top-level svgcompare configuration, corresponding to
// svgcompare.yml. Key names contain no underscores so that every
// underscore in an SVGCOMPARE_* environment variable reads as a
// nesting separator.
type Config struct {
	Window   WindowConfig `yaml:"window" koanf:"window"`
	LogLevel string       `yaml:"loglevel" koanf:"loglevel"`
	Vector   PanelConfig  `yaml:"vector" koanf:"vector"`
	Raster   PanelConfig  `yaml:"raster" koanf:"raster"`
}
