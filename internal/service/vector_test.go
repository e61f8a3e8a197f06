package service

import (
	"image"
	"math"
	"testing"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="40mm" height="30mm" viewBox="0 0 40 30">
  <rect x="0" y="0" width="40" height="30" fill="#204060"/>
  <circle cx="20" cy="15" r="10" fill="#e08020"/>
</svg>`

func TestParseIntrinsicSize(t *testing.T) {
	doc, err := NewVectorService().Parse([]byte(testSVG))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if math.Abs(doc.Width()-40) > 0.5 || math.Abs(doc.Height()-30) > 0.5 {
		t.Fatalf("intrinsic size = %gx%g, want 40x30", doc.Width(), doc.Height())
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	vs := NewVectorService()
	for _, data := range []string{"", "not an svg at all", "<svg></svg>"} {
		if _, err := vs.Parse([]byte(data)); err == nil {
			t.Errorf("Parse(%q) succeeded, expected an error", data)
		}
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := NewVectorService().ParseFile("no/such/file.svg"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRasterizeResolution(t *testing.T) {
	vs := NewVectorService()
	doc, err := vs.Parse([]byte(testSVG))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		name   string
		factor float64
		wantW  int
		wantH  int
	}{
		{"natural size", 1.0, 40, 30},
		{"double size", 2.0, 80, 60},
		{"half size", 0.5, 20, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := vs.Rasterize(doc, tt.factor)
			if err != nil {
				t.Fatalf("Rasterize failed: %v", err)
			}
			b := img.Bounds()
			if dx, dy := b.Dx(), b.Dy(); absInt(dx-tt.wantW) > 1 || absInt(dy-tt.wantH) > 1 {
				t.Fatalf("rasterized to %dx%d, want about %dx%d", dx, dy, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRasterizeDrawsContent(t *testing.T) {
	vs := NewVectorService()
	doc, err := vs.Parse([]byte(testSVG))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	img, err := vs.Rasterize(doc, 2.0)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	b := img.Bounds()
	center := image.Pt(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)
	if _, _, _, a := img.At(center.X, center.Y).RGBA(); a == 0 {
		t.Fatal("center pixel is fully transparent; nothing was drawn")
	}
}

func TestRasterizeRejectsNonPositiveFactor(t *testing.T) {
	vs := NewVectorService()
	doc, err := vs.Parse([]byte(testSVG))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for _, factor := range []float64{0, -1} {
		if _, err := vs.Rasterize(doc, factor); err == nil {
			t.Errorf("Rasterize(%v) succeeded, expected an error", factor)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
