package service

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

// VectorDoc is a parsed SVG document, ready for rasterization at any
// scale.
type VectorDoc struct {
	c *canvas.Canvas
}

// Width returns the document's intrinsic width in document units. At a
// rasterization factor of 1.0, one unit maps to one pixel.
func (d *VectorDoc) Width() float64 {
	return d.c.W
}

// Height returns the document's intrinsic height in document units.
func (d *VectorDoc) Height() float64 {
	return d.c.H
}

// VectorService parses and rasterizes SVG documents.
type VectorService struct{}

// NewVectorService creates a new VectorService.
func NewVectorService() *VectorService {
	return &VectorService{}
}

// Parse reads an SVG document from a byte slice. Documents without a
// positive intrinsic size are rejected; the panels cannot place them.
func (vs *VectorService) Parse(data []byte) (*VectorDoc, error) {
	c, err := canvas.ParseSVG(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	if c.W <= 0 || c.H <= 0 {
		return nil, fmt.Errorf("svg has no intrinsic size (%gx%g)", c.W, c.H)
	}
	return &VectorDoc{c: c}, nil
}

// ParseFile reads an SVG document from disk.
func (vs *VectorService) ParseFile(path string) (*VectorDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading svg: %w", err)
	}
	doc, err := vs.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Rasterize renders the document at the given scale factor, 1.0 being
// natural size. The output covers the full document, factor times its
// intrinsic dimensions. Rasterization cost grows with the square of
// the factor, so callers run it off the game loop.
func (vs *VectorService) Rasterize(doc *VectorDoc, factor float64) (image.Image, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("rasterize factor %v: must be positive", factor)
	}
	return rasterizer.Draw(doc.c, canvas.DPMM(factor), canvas.DefaultColorSpace), nil
}
