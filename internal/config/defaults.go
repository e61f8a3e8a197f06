package config

// DefaultConfig returns the stock comparison setup: the embedded
// artwork in both panels and the standard vector-versus-raster talking
// points. The vector panel carries no disadvantages list, so its
// footer omits that section.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
		},
		LogLevel: "info",
		Vector: PanelConfig{
			Title:  "SVG (Vector)",
			Accent: AccentBlue,
			Advantages: []string{
				"Stays crisp at every zoom level",
				"Compact for flat, geometric artwork",
				"Shapes, strokes and fills stay editable",
			},
		},
		Raster: PanelConfig{
			Title:  "PNG (Raster)",
			Accent: AccentOrange,
			Advantages: []string{
				"Handles photographic detail well",
				"Decodes fast with predictable cost",
				"Supported by effectively every tool",
			},
			Disadvantages: []string{
				"Blurs when scaled past its native size",
				"Large files at high resolutions",
				"Pixels are baked in; no re-editing",
			},
		},
	}
}
