package ui

import (
	"image/color"

	"github.com/enumura1/svg-comparison/internal/config"
)

// Layout constants for the comparison chrome.
const (
	panelGap     = 16
	headerHeight = 28
	borderWidth  = 2
	footerPad    = 10
	lineHeight   = 18
	titleSize    = 16
	bodySize     = 12
)

var (
	colorBackground   = color.RGBA{R: 0x1e, G: 0x20, B: 0x26, A: 0xff}
	colorViewportBack = color.RGBA{R: 0x14, G: 0x16, B: 0x1a, A: 0xff}
	colorTitleText    = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	colorInfoText     = color.RGBA{R: 0x8a, G: 0x90, B: 0x9c, A: 0xff}
	colorAdvantage    = color.RGBA{R: 0x7f, G: 0xc8, B: 0x7f, A: 0xff}
	colorDisadvantage = color.RGBA{R: 0xd8, G: 0x7f, B: 0x7f, A: 0xff}
	colorAccentBlue   = color.RGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff}
	colorAccentOrange = color.RGBA{R: 0xe0, G: 0x8a, B: 0x3c, A: 0xff}
)

// accentColor maps the two config accent values onto the palette.
func accentColor(a config.Accent) color.RGBA {
	if a == config.AccentOrange {
		return colorAccentOrange
	}
	return colorAccentBlue
}
