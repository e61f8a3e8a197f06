package ui

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"honnef.co/go/curve"

	"github.com/enumura1/svg-comparison/internal/assets"
	"github.com/enumura1/svg-comparison/internal/config"
	"github.com/enumura1/svg-comparison/internal/scan"
	"github.com/enumura1/svg-comparison/internal/service"
	"github.com/enumura1/svg-comparison/internal/viewport"
)

// Game runs the side-by-side comparison: a vector panel on the left, a
// raster panel on the right, each with its own pan/zoom viewport.
type Game struct {
	cfg *config.Config
	log *slog.Logger

	faces *faces

	vectorPanel *Panel
	rasterPanel *Panel

	// Gallery state for the raster panel.
	rasterList    *RasterList
	rasterJobs    chan string
	rasterResults chan rasterResult
	shownPath     string // path of the file backing the panel's content
	loadingPath   string // path of the file currently being loaded

	ScannerService *service.ScannerService
	RasterService  *service.RasterService
	VectorService  *service.VectorService

	// The panel that owns the active drag, if any.
	dragPanel *Panel

	showDebug        bool
	screenW, screenH int
}

// rasterResult holds the result of a background raster loading operation.
type rasterResult struct {
	img     image.Image
	info    string
	path    string
	preview bool
	err     error
}

// NewGame builds the comparison scene from the loaded configuration.
func NewGame(cfg *config.Config, log *slog.Logger) (*Game, error) {
	f, err := newFaces()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	g := &Game{
		cfg:           cfg,
		log:           log,
		faces:         f,
		rasterList:    NewRasterList(),
		rasterJobs:    make(chan string, 1),
		rasterResults: make(chan rasterResult, 2),
	}
	g.initServices()

	doc, vectorContent, err := g.vectorSetup()
	if err != nil {
		return nil, err
	}
	g.vectorPanel = NewPanel(cfg.Vector, vectorContent, f)
	g.rasterPanel = NewPanel(cfg.Raster, g.initRasterContent(doc), f)

	// Start the background worker for loading raster files.
	go g.rasterLoader()

	return g, nil
}

// initServices wires up the backend services.
func (g *Game) initServices() {
	g.ScannerService = service.NewScannerService(scan.FileScannerImpl{})
	g.RasterService = service.NewRasterService()
	g.VectorService = service.NewVectorService()
}

// vectorSetup parses the configured SVG and builds the vector panel's
// content. A user-supplied document that fails to parse is logged and
// leaves the panel hidden, with its controls live; the embedded artwork
// failing to parse aborts startup, since without it the program has
// nothing to compare.
func (g *Game) vectorSetup() (*service.VectorDoc, Content, error) {
	if path := g.cfg.Vector.Asset; path != "" {
		doc, err := g.VectorService.ParseFile(path)
		if err != nil {
			g.log.Error("load vector asset", "path", path, "error", err)
			return nil, NewRasterContent(nil, "failed to load "+filepath.Base(path)), nil
		}
		vc, err := NewVectorContent(g.VectorService, doc, g.log)
		if err != nil {
			return nil, nil, fmt.Errorf("prepare vector content: %w", err)
		}
		return doc, vc, nil
	}
	doc, err := g.VectorService.Parse(assets.Artwork())
	if err != nil {
		return nil, nil, fmt.Errorf("embedded artwork: %w", err)
	}
	vc, err := NewVectorContent(g.VectorService, doc, g.log)
	if err != nil {
		return nil, nil, fmt.Errorf("prepare vector content: %w", err)
	}
	return doc, vc, nil
}

// initRasterContent picks the raster panel's starting content based on
// the configured asset: a single image file, a directory to scan, or,
// with nothing configured, a fixed-resolution capture of the vector
// artwork so both panels show the same motif. A scanned directory also
// starts on the capture; it stands until the first file loads, and
// stays if the scan finds nothing. Load failures leave the picture
// hidden; the panel chrome and its controls keep working.
func (g *Game) initRasterContent(doc *service.VectorDoc) Content {
	if asset := g.cfg.Raster.Asset; asset != "" {
		st, err := os.Stat(asset)
		if err != nil {
			g.log.Error("raster asset unavailable", "path", asset, "error", err)
			return NewRasterContent(nil, "failed to load "+filepath.Base(asset))
		}
		if st.IsDir() {
			go g.collectScan(asset)
		} else {
			g.rasterList.Append(scan.FileItem{Path: asset})
			return NewRasterContent(nil, "loading "+filepath.Base(asset))
		}
	}
	if doc == nil {
		return NewRasterContent(nil, "no raster available")
	}
	img, err := g.VectorService.Rasterize(doc, 1.0)
	if err != nil {
		g.log.Error("capture artwork for raster panel", "error", err)
		return NewRasterContent(nil, "no raster available")
	}
	b := img.Bounds()
	return NewRasterContent(img, fmt.Sprintf("captured at 100%%, %dx%d px", b.Dx(), b.Dy()))
}

// collectScan drains the scanner into the gallery list. The first file
// to arrive is picked up by the per-frame load check.
func (g *Game) collectScan(dir string) {
	for item := range g.ScannerService.Scan(dir, g.log) {
		g.rasterList.Append(item)
	}
}

func (g *Game) Update() error {
	// 1. Poll all input at the beginning of the frame.
	input := PollInput()

	// 2. Handle inputs that do not depend on game state.
	if input.Quit {
		return ebiten.Termination
	}
	if input.ToggleFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if input.ToggleDebug {
		g.showDebug = !g.showDebug
	}

	// 3. Re-split the screen so window resizes take effect immediately.
	left, right := splitPanels(g.screenW, g.screenH)
	g.vectorPanel.SetBounds(left)
	g.rasterPanel.SetBounds(right)

	// 4. Apply results from the background raster loader.
	g.drainRasterResults()

	// 5. Request the gallery's current file if it is not the one shown.
	g.requestCurrentRaster()

	// 6. Handle state-dependent input.
	if input.Reset {
		g.vectorPanel.ResetView()
		g.rasterPanel.ResetView()
	}
	if input.ActualSize {
		g.vectorPanel.ActualSize()
		g.rasterPanel.ActualSize()
	}
	if g.rasterList.Count() > 0 {
		if input.NextImage {
			g.rasterList.Advance(1)
		}
		if input.PrevImage {
			g.rasterList.Advance(-1)
		}
	}
	g.routePointer(input)

	// 7. Advance the panels.
	dt := 1 / float32(ebiten.TPS())
	g.vectorPanel.Update(dt)
	g.rasterPanel.Update(dt)

	return nil
}

// routePointer delivers this frame's pointer input to the panels. The
// wheel goes to the panel under the cursor only, so zooming one viewer
// never disturbs the other. A drag stays bound to the panel it started
// in and ends when the button is released or the cursor leaves that
// panel's viewport.
func (g *Game) routePointer(input InputState) {
	pos := curve.Pt(float64(input.MouseX), float64(input.MouseY))
	hovered := g.panelAt(input.MouseX, input.MouseY)

	if input.WheelY != 0 && hovered != nil {
		hovered.Wheel(input.WheelY)
	}

	if g.dragPanel != nil {
		switch {
		case !input.PrimaryHeld:
			g.dragPanel.PointerUp()
			g.dragPanel = nil
		case !g.dragPanel.Hit(input.MouseX, input.MouseY):
			g.dragPanel.PointerLeave()
			g.dragPanel = nil
		default:
			g.dragPanel.PointerMove(pos)
		}
		return
	}

	if hovered == nil {
		return
	}
	if input.PrimaryJustPressed {
		hovered.PointerDown(viewport.ButtonPrimary, pos)
		if hovered.Dragging() {
			g.dragPanel = hovered
		}
	}
	// Other buttons are forwarded too; the viewport ignores them.
	if input.SecondaryJustPressed {
		hovered.PointerDown(viewport.ButtonSecondary, pos)
	}
	if input.MiddleJustPressed {
		hovered.PointerDown(viewport.ButtonMiddle, pos)
	}
}

// panelAt returns the panel whose viewport contains the position, or
// nil when the cursor is over chrome or background.
func (g *Game) panelAt(x, y int) *Panel {
	if g.vectorPanel.Hit(x, y) {
		return g.vectorPanel
	}
	if g.rasterPanel.Hit(x, y) {
		return g.rasterPanel
	}
	return nil
}

// requestCurrentRaster asks the loader for the gallery's current file
// when it is neither shown nor already being loaded. Deriving the need
// from the list state every frame means rapid navigation settles on
// the newest position without queueing every intermediate file.
func (g *Game) requestCurrentRaster() {
	item, ok := g.rasterList.Current()
	if !ok || item.Path == g.shownPath || item.Path == g.loadingPath {
		return
	}
	select {
	case g.rasterJobs <- item.Path:
		g.loadingPath = item.Path
	default:
		// Loader is still busy; try again next frame.
	}
}

// drainRasterResults applies at most one loader result per frame.
// Results for a file we no longer want are dropped.
func (g *Game) drainRasterResults() {
	select {
	case res := <-g.rasterResults:
		if res.path != g.loadingPath {
			return
		}
		if res.err != nil {
			g.log.Error("load raster image", "path", res.path, "error", res.err)
			g.rasterPanel.SetContent(NewRasterContent(nil, "failed to load "+filepath.Base(res.path)))
			// Remember the failure so the load is not retried every frame.
			g.shownPath = res.path
			g.loadingPath = ""
			return
		}
		g.rasterPanel.SetContent(NewRasterContent(res.img, res.info))
		g.rasterPanel.ResetView()
		if res.preview {
			// The full decode is still in flight.
			return
		}
		g.shownPath = res.path
		g.loadingPath = ""
	default:
	}
}

// rasterLoader is a background worker that decodes gallery files. For
// files with an embedded EXIF thumbnail it sends that first, so the
// panel has something to show while the full decode runs.
func (g *Game) rasterLoader() {
	for path := range g.rasterJobs {
		if pre, err := g.RasterService.LoadPreview(path); err == nil {
			g.rasterResults <- rasterResult{img: pre, info: filepath.Base(path) + " (preview)", path: path, preview: true}
		}
		img, err := g.RasterService.Load(path)
		if err != nil {
			g.rasterResults <- rasterResult{path: path, err: err}
			continue
		}
		res := rasterResult{img: img, path: path}
		if info, err := g.RasterService.Info(path); err == nil {
			res.info = formatRasterInfo(path, info)
		} else {
			res.info = filepath.Base(path)
		}
		g.rasterResults <- res
	}
}

// formatRasterInfo builds the footer info line for a loaded file.
func formatRasterInfo(path string, info *service.RasterInfo) string {
	s := fmt.Sprintf("%s, %dx%d px, %s",
		filepath.Base(path), info.Width, info.Height, humanizeBytes(info.Size))
	if model, ok := info.EXIFData["Camera Model"]; ok {
		s += ", " + model
	}
	return s
}

// humanizeBytes renders a byte count with a binary unit prefix.
func humanizeBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// splitPanels divides the screen into two equal panel rectangles with
// a gap between and around them.
func splitPanels(w, h int) (left, right image.Rectangle) {
	pw := (w - 3*panelGap) / 2
	left = image.Rect(panelGap, panelGap, panelGap+pw, h-panelGap)
	right = image.Rect(left.Max.X+panelGap, panelGap, left.Max.X+panelGap+pw, h-panelGap)
	return left, right
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.vectorPanel.Draw(screen)
	g.rasterPanel.Draw(screen)

	if g.showDebug {
		v := g.vectorPanel.View()
		r := g.rasterPanel.View()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"vector: %.0f%% (%.0f, %.0f)\nraster: %.0f%% (%.0f, %.0f)\ngallery: %s\ntps: %.1f fps: %.1f",
			v.Scale, v.Offset.X, v.Offset.Y,
			r.Scale, r.Offset.X, r.Offset.Y,
			g.rasterList.Dump(),
			ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// Matching the logical screen to the window gives a 1:1 pixel
	// mapping, so pointer coordinates line up with panel rectangles.
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
