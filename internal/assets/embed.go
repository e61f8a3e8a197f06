// Package assets carries the artwork compiled into the binary.
package assets

import _ "embed"

//go:embed artwork.svg
var artwork []byte

// Artwork returns the default comparison scene: a 240x180 unit SVG
// with curves and thin strokes that degrade visibly once rasterized
// and scaled.
func Artwork() []byte {
	return artwork
}
