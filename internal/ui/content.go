package ui

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/enumura1/svg-comparison/internal/service"
	"github.com/enumura1/svg-comparison/internal/viewport"
)

// Content is what a panel shows inside its viewport.
type Content interface {
	// Update runs on the game loop once per frame. target is the pose
	// the panel is heading toward; content may react to it, e.g. by
	// requesting a sharper rasterization.
	Update(target viewport.View)
	// Draw renders the content into dst under the displayed view.
	// origin is the screen position of the viewport area's top-left
	// corner; dst shares the screen's coordinate space.
	Draw(dst *ebiten.Image, view viewport.View, origin image.Point)
	// Info returns the footer info line.
	Info() string
	// Dispose releases GPU resources. The content must not be drawn
	// afterwards.
	Dispose()
}

// vectorRaster is a finished background rasterization.
type vectorRaster struct {
	factor float64
	img    image.Image
}

// VectorContent renders an SVG document, re-rasterized in the
// background whenever the target zoom changes so the displayed image
// is always pixel-exact once the loader catches up. In between, the
// previous rasterization is drawn scaled, which reads as a brief
// softness before the content snaps crisp.
type VectorContent struct {
	svc *service.VectorService
	doc *service.VectorDoc
	log *slog.Logger

	jobQueue    chan float64
	resultQueue chan vectorRaster

	current       *ebiten.Image
	currentFactor float64
	pendingFactor float64 // 0 when no rasterization is in flight
	toDispose     *ebiten.Image
}

// NewVectorContent builds the content and renders the document at
// natural size so the panel has something to show on the first frame.
func NewVectorContent(svc *service.VectorService, doc *service.VectorDoc, log *slog.Logger) (*VectorContent, error) {
	img, err := svc.Rasterize(doc, 1.0)
	if err != nil {
		return nil, fmt.Errorf("initial rasterization: %w", err)
	}
	vc := &VectorContent{
		svc:           svc,
		doc:           doc,
		log:           log,
		jobQueue:      make(chan float64, 1),
		resultQueue:   make(chan vectorRaster, 1),
		current:       ebiten.NewImageFromImage(img),
		currentFactor: 1.0,
	}
	go vc.loader()
	return vc, nil
}

// loader is a background worker that rasterizes the document at
// requested scale factors.
func (vc *VectorContent) loader() {
	for factor := range vc.jobQueue {
		img, err := vc.svc.Rasterize(vc.doc, factor)
		if err != nil {
			vc.log.Error("rasterizing svg", "factor", factor, "err", err)
			vc.resultQueue <- vectorRaster{factor: factor}
			continue
		}
		vc.resultQueue <- vectorRaster{factor: factor, img: img}
	}
}

// Update integrates finished rasterizations and requests a new one
// when the target scale has moved away from the cached factor. At most
// one job is in flight; a changed target is picked up again once the
// current job lands.
func (vc *VectorContent) Update(target viewport.View) {
	// Deallocate an image that was replaced in the previous frame, so
	// it is no longer referenced by Draw.
	if vc.toDispose != nil {
		vc.toDispose.Deallocate()
		vc.toDispose = nil
	}

	select {
	case result := <-vc.resultQueue:
		vc.pendingFactor = 0
		if result.img != nil {
			// ebiten.Image creation is not thread-safe; convert on the
			// game loop, never in the loader.
			vc.toDispose = vc.current
			vc.current = ebiten.NewImageFromImage(result.img)
			vc.currentFactor = result.factor
		}
	default:
	}

	want := target.Scale / 100
	if want != vc.currentFactor && vc.pendingFactor == 0 {
		vc.pendingFactor = want
		vc.jobQueue <- want
	}
}

// Draw renders the cached rasterization, compensating its resolution
// against the displayed scale so the content occupies the same screen
// area whether or not the loader has caught up.
func (vc *VectorContent) Draw(dst *ebiten.Image, view viewport.View, origin image.Point) {
	if vc.current == nil {
		return
	}
	s := view.Scale / 100 / vc.currentFactor
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(origin.X)+view.Offset.X, float64(origin.Y)+view.Offset.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(vc.current, op)
}

// Info describes the document and its current rasterization.
func (vc *VectorContent) Info() string {
	w, h := vc.current.Bounds().Dx(), vc.current.Bounds().Dy()
	return fmt.Sprintf("%.0fx%.0f units, rendered at %dx%d px", vc.doc.Width(), vc.doc.Height(), w, h)
}

// Dispose stops the loader and releases the cached images.
func (vc *VectorContent) Dispose() {
	close(vc.jobQueue)
	if vc.toDispose != nil {
		vc.toDispose.Deallocate()
		vc.toDispose = nil
	}
	if vc.current != nil {
		vc.current.Deallocate()
		vc.current = nil
	}
}

// RasterContent shows a fixed-resolution image. Zooming scales the
// bitmap through the transform with linear filtering, so magnification
// past the native size blurs. That degradation is the point of the
// comparison.
type RasterContent struct {
	img  *ebiten.Image
	info string
}

// NewRasterContent wraps a decoded image for panel display. A nil src
// leaves the content hidden: the panel keeps its chrome, copy and
// controls but draws no image.
func NewRasterContent(src image.Image, info string) *RasterContent {
	rc := &RasterContent{info: info}
	if src != nil {
		rc.img = ebiten.NewImageFromImage(src)
	}
	return rc
}

// Update is a no-op; a raster never re-renders.
func (rc *RasterContent) Update(viewport.View) {}

// Draw renders the bitmap under the displayed view.
func (rc *RasterContent) Draw(dst *ebiten.Image, view viewport.View, origin image.Point) {
	if rc.img == nil {
		return
	}
	s := view.Scale / 100
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(origin.X)+view.Offset.X, float64(origin.Y)+view.Offset.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(rc.img, op)
}

// Info returns the footer info line.
func (rc *RasterContent) Info() string {
	return rc.info
}

// Hidden reports whether the content has no image to draw.
func (rc *RasterContent) Hidden() bool {
	return rc.img == nil
}

// Dispose releases the bitmap.
func (rc *RasterContent) Dispose() {
	if rc.img != nil {
		rc.img.Deallocate()
		rc.img = nil
	}
}
