package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	etext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// faces bundles the text faces used by the panel chrome. One set is
// shared by both panels.
type faces struct {
	title etext.Face
	body  etext.Face
}

func newFaces() (*faces, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing builtin font: %w", err)
	}
	title, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: titleSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("building title face: %w", err)
	}
	body, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: bodySize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("building body face: %w", err)
	}
	return &faces{
		title: etext.NewGoXFace(title),
		body:  etext.NewGoXFace(body),
	}, nil
}

// drawText renders s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, face etext.Face, x, y float64, clr color.Color) {
	op := &etext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	etext.Draw(dst, s, face, op)
}
