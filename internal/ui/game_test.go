package ui

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/enumura1/svg-comparison/internal/config"
	"github.com/enumura1/svg-comparison/internal/scan"
	"github.com/enumura1/svg-comparison/internal/service"
	"github.com/enumura1/svg-comparison/internal/viewport"
)

// newTestGame assembles a game around stub contents, skipping fonts,
// services and the loader goroutine.
func newTestGame() (*Game, *stubContent, *stubContent) {
	vstub := &stubContent{info: "vector"}
	rstub := &stubContent{info: "raster"}
	g := &Game{
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		rasterList:    NewRasterList(),
		rasterJobs:    make(chan string, 1),
		rasterResults: make(chan rasterResult, 2),
	}
	g.vectorPanel = NewPanel(config.PanelConfig{Title: "Vector", Accent: config.AccentBlue}, vstub, nil)
	g.rasterPanel = NewPanel(config.PanelConfig{Title: "Raster", Accent: config.AccentOrange}, rstub, nil)
	left, right := splitPanels(800, 600)
	g.vectorPanel.SetBounds(left)
	g.rasterPanel.SetBounds(right)
	return g, vstub, rstub
}

func TestSplitPanels(t *testing.T) {
	left, right := splitPanels(800, 600)

	if left.Dx() != right.Dx() {
		t.Errorf("panel widths differ: %d vs %d", left.Dx(), right.Dx())
	}
	if left.Min.X != panelGap || left.Min.Y != panelGap {
		t.Errorf("left panel not inset by the gap: %v", left)
	}
	if got := right.Min.X - left.Max.X; got != panelGap {
		t.Errorf("gap between panels = %d, want %d", got, panelGap)
	}
	if right.Max.X != 800-panelGap {
		t.Errorf("right panel does not end at the margin: %v", right)
	}
	if left.Max.Y != 600-panelGap {
		t.Errorf("panels do not reach the bottom margin: %v", left)
	}
}

func TestPanelAt(t *testing.T) {
	g, _, _ := newTestGame()

	if got := g.panelAt(200, 300); got != g.vectorPanel {
		t.Error("point in the left viewport did not resolve to the vector panel")
	}
	if got := g.panelAt(500, 300); got != g.rasterPanel {
		t.Error("point in the right viewport did not resolve to the raster panel")
	}
	if got := g.panelAt(400, 300); got != nil {
		t.Error("point in the gap resolved to a panel")
	}
	if got := g.panelAt(200, 20); got != nil {
		t.Error("point in the header band resolved to a panel")
	}
}

func TestWheelReachesHoveredPanelOnly(t *testing.T) {
	g, _, _ := newTestGame()

	g.routePointer(InputState{WheelY: 1, MouseX: 200, MouseY: 300})
	if got := g.vectorPanel.View().Scale; got != 220 {
		t.Errorf("vector scale = %v, want 220", got)
	}
	if got := g.rasterPanel.View().Scale; got != 200 {
		t.Errorf("raster scale changed to %v; zooming one viewer must not disturb the other", got)
	}

	g.routePointer(InputState{WheelY: -1, MouseX: 500, MouseY: 300})
	if got := g.rasterPanel.View().Scale; got != 180 {
		t.Errorf("raster scale = %v, want 180", got)
	}
	if got := g.vectorPanel.View().Scale; got != 220 {
		t.Errorf("vector scale = %v after zooming the raster panel, want 220", got)
	}
}

func TestWheelOverBackgroundIsIgnored(t *testing.T) {
	g, _, _ := newTestGame()

	g.routePointer(InputState{WheelY: 1, MouseX: 400, MouseY: 300})
	if g.vectorPanel.View().Scale != 200 || g.rasterPanel.View().Scale != 200 {
		t.Error("wheel over the background changed a panel's scale")
	}
}

func TestDragLifecycleThroughRouting(t *testing.T) {
	g, _, _ := newTestGame()

	g.routePointer(InputState{PrimaryJustPressed: true, PrimaryHeld: true, MouseX: 200, MouseY: 300})
	if g.dragPanel != g.vectorPanel {
		t.Fatal("press in the left viewport did not bind the drag to the vector panel")
	}

	g.routePointer(InputState{PrimaryHeld: true, MouseX: 250, MouseY: 340})
	if off := g.vectorPanel.View().Offset; off.X != 50 || off.Y != 40 {
		t.Fatalf("vector offset = %v, want {50 40}", off)
	}
	if off := g.rasterPanel.View().Offset; off.X != 0 || off.Y != 0 {
		t.Fatalf("raster offset = %v; dragging one viewer must not pan the other", off)
	}

	g.routePointer(InputState{MouseX: 250, MouseY: 340})
	if g.dragPanel != nil || g.vectorPanel.Dragging() {
		t.Error("drag still bound after the button was released")
	}
	if off := g.vectorPanel.View().Offset; off.X != 50 || off.Y != 40 {
		t.Errorf("release moved the pan to %v", off)
	}
}

func TestDragEndsWhenCursorLeavesPanel(t *testing.T) {
	g, _, _ := newTestGame()

	g.routePointer(InputState{PrimaryJustPressed: true, PrimaryHeld: true, MouseX: 200, MouseY: 300})
	// Still holding, but the cursor is over the gap now.
	g.routePointer(InputState{PrimaryHeld: true, MouseX: 400, MouseY: 300})

	if g.dragPanel != nil || g.vectorPanel.Dragging() {
		t.Error("drag survived the cursor leaving the viewport")
	}
	if off := g.vectorPanel.View().Offset; off.X != 0 || off.Y != 0 {
		t.Errorf("leaving the viewport panned the view to %v", off)
	}
}

func TestNonPrimaryPressDoesNotDrag(t *testing.T) {
	g, _, _ := newTestGame()

	g.routePointer(InputState{SecondaryJustPressed: true, MouseX: 200, MouseY: 300})
	g.routePointer(InputState{MiddleJustPressed: true, MouseX: 200, MouseY: 300})
	if g.dragPanel != nil || g.vectorPanel.Dragging() {
		t.Error("non-primary press started a drag")
	}
}

func TestWheelDuringDragStaysInstant(t *testing.T) {
	g, _, _ := newTestGame()

	g.routePointer(InputState{PrimaryJustPressed: true, PrimaryHeld: true, MouseX: 200, MouseY: 300})
	g.routePointer(InputState{WheelY: 1, PrimaryHeld: true, MouseX: 210, MouseY: 310})

	v := g.vectorPanel.View()
	if v.Scale != 220 {
		t.Errorf("Scale = %v after wheel during drag, want 220", v.Scale)
	}
	if v.Offset.X != 10 || v.Offset.Y != 10 {
		t.Errorf("Offset = %v, want {10 10}", v.Offset)
	}
}

func TestRequestCurrentRaster(t *testing.T) {
	t.Run("requests a new file once", func(t *testing.T) {
		g, _, _ := newTestGame()
		g.rasterList.Append(scan.FileItem{Path: "a.png"})

		g.requestCurrentRaster()
		select {
		case path := <-g.rasterJobs:
			if path != "a.png" {
				t.Fatalf("job = %q, want a.png", path)
			}
		default:
			t.Fatal("no job sent for the new file")
		}
		if g.loadingPath != "a.png" {
			t.Fatalf("loadingPath = %q, want a.png", g.loadingPath)
		}

		// The same file must not be requested again while loading.
		g.requestCurrentRaster()
		select {
		case path := <-g.rasterJobs:
			t.Fatalf("duplicate job %q sent while loading", path)
		default:
		}
	})

	t.Run("empty list sends nothing", func(t *testing.T) {
		g, _, _ := newTestGame()
		g.requestCurrentRaster()
		if len(g.rasterJobs) != 0 || g.loadingPath != "" {
			t.Error("request issued with no gallery files")
		}
	})

	t.Run("busy loader defers the request", func(t *testing.T) {
		g, _, _ := newTestGame()
		g.rasterJobs <- "stuck.png" // fill the queue; no worker is draining it
		g.rasterList.Append(scan.FileItem{Path: "a.png"})

		g.requestCurrentRaster()
		if g.loadingPath != "" {
			t.Errorf("loadingPath = %q; a deferred request must leave it unset", g.loadingPath)
		}
	})
}

func TestDrainRasterResults(t *testing.T) {
	t.Run("applies a finished load", func(t *testing.T) {
		g, _, rstub := newTestGame()
		g.loadingPath = "a.png"
		g.rasterPanel.Wheel(1) // move the view so the reset is observable

		g.rasterResults <- rasterResult{info: "a.png, 8x8 px", path: "a.png"}
		g.drainRasterResults()

		if g.rasterPanel.Content() == rstub {
			t.Fatal("content not swapped for the loaded file")
		}
		if got := g.rasterPanel.Content().Info(); got != "a.png, 8x8 px" {
			t.Errorf("Info() = %q", got)
		}
		if got := g.rasterPanel.View(); got != viewport.DefaultView() {
			t.Errorf("view = %+v; a new file should reset the pose", got)
		}
		if g.shownPath != "a.png" || g.loadingPath != "" {
			t.Errorf("bookkeeping: shownPath = %q, loadingPath = %q", g.shownPath, g.loadingPath)
		}
	})

	t.Run("failure hides the picture and keeps controls live", func(t *testing.T) {
		g, _, _ := newTestGame()
		g.loadingPath = "broken.png"

		g.rasterResults <- rasterResult{path: "broken.png", err: errors.New("decode failed")}
		g.drainRasterResults()

		rc, ok := g.rasterPanel.Content().(*RasterContent)
		if !ok {
			t.Fatal("failure did not install raster content")
		}
		if !rc.Hidden() {
			t.Error("failed load still shows a picture")
		}
		if got := rc.Info(); got != "failed to load broken.png" {
			t.Errorf("Info() = %q", got)
		}
		if g.shownPath != "broken.png" {
			t.Error("failure not recorded; the load would retry every frame")
		}

		// The viewport must keep responding.
		g.routePointer(InputState{WheelY: 1, MouseX: 500, MouseY: 300})
		if got := g.rasterPanel.View().Scale; got != 220 {
			t.Errorf("raster scale = %v after failure, want 220", got)
		}
	})

	t.Run("stale results are dropped", func(t *testing.T) {
		g, _, rstub := newTestGame()
		g.loadingPath = "b.png"

		g.rasterResults <- rasterResult{info: "a.png", path: "a.png"}
		g.drainRasterResults()

		if g.rasterPanel.Content() != rstub {
			t.Error("stale result replaced the content")
		}
		if g.loadingPath != "b.png" {
			t.Errorf("loadingPath = %q, want b.png", g.loadingPath)
		}
	})

	t.Run("preview keeps the load in flight", func(t *testing.T) {
		g, _, _ := newTestGame()
		g.loadingPath = "a.png"

		g.rasterResults <- rasterResult{info: "a.png (preview)", path: "a.png", preview: true}
		g.drainRasterResults()

		if got := g.rasterPanel.Content().Info(); got != "a.png (preview)" {
			t.Errorf("Info() = %q", got)
		}
		if g.loadingPath != "a.png" {
			t.Error("preview cleared loadingPath; the full decode result would be dropped as stale")
		}
		if g.shownPath == "a.png" {
			t.Error("preview marked the file as fully shown")
		}
	})
}

func TestFormatRasterInfo(t *testing.T) {
	info := &service.RasterInfo{Width: 800, Height: 600, Size: 2048, EXIFData: map[string]string{}}
	if got := formatRasterInfo("/tmp/pic.png", info); got != "pic.png, 800x600 px, 2.0 KiB" {
		t.Errorf("formatRasterInfo() = %q", got)
	}

	info.EXIFData["Camera Model"] = "NIKON D90"
	if got := formatRasterInfo("/tmp/pic.jpg", info); got != "pic.jpg, 800x600 px, 2.0 KiB, NIKON D90" {
		t.Errorf("formatRasterInfo() with model = %q", got)
	}
}

func TestHumanizeBytes(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1536, "1.5 KiB"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}
	for _, tc := range cases {
		if got := humanizeBytes(tc.n); got != tc.want {
			t.Errorf("humanizeBytes(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
