package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/enumura1/svg-comparison/internal/applog"
	"github.com/enumura1/svg-comparison/internal/config"
	"github.com/enumura1/svg-comparison/internal/ui"
)

func main() {
	// Define command-line flags
	configPath := flag.String("config", "", "Path to a YAML config file.")
	svgPath := flag.String("svg", "", "SVG file for the vector panel. Defaults to the embedded artwork.")
	rasterPath := flag.String("raster", "", "Image file or directory for the raster panel. Can also be provided as a positional argument.")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen mode.")
	verbose := flag.Bool("v", false, "Enable debug logging.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags set on the command line override the config file.
	rasterFlagIsSet := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "svg":
			cfg.Vector.Asset = *svgPath
		case "raster":
			cfg.Raster.Asset = *rasterPath
			rasterFlagIsSet = true
		case "fullscreen":
			cfg.Window.Fullscreen = *fullscreen
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})

	// If -raster is not used, check for a positional argument.
	if !rasterFlagIsSet && flag.NArg() > 0 {
		cfg.Raster.Asset = flag.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	rootLog, err := applog.Init(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	game, err := ui.NewGame(cfg, applog.WithComponent("game"))
	if err != nil {
		rootLog.Error("startup failed", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Vector vs Raster")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Window.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	rootLog.Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := ebiten.RunGame(game); err != nil {
		rootLog.Error("game loop aborted", "error", err)
		os.Exit(1)
	}
}
