// viewer displays a depth-displaced mesh with pointer-driven parallax.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/relievo/relievo/internal/assets"
	"github.com/relievo/relievo/internal/config"
	"github.com/relievo/relievo/internal/host"
	"github.com/relievo/relievo/internal/logger"
	"github.com/relievo/relievo/internal/mesh"
	"github.com/relievo/relievo/internal/viewer"
	"github.com/relievo/relievo/internal/viewer/glbackend"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	assetID := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, assetID); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, assetID string) error {
	window, err := host.NewWindow(host.WindowConfig{
		Title:      "Relievo - " + assetID,
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer window.Close()

	width, height := window.Size()
	backend, err := glbackend.New(width, height)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer backend.Close()

	// Input exists before the session starts so no early frame can run
	// ahead of pointer state.
	input := host.NewInput()

	catalog := assets.NewCatalog(cfg.Assets.Dir)
	session, err := viewer.NewSession(viewer.Config{
		FetchMesh:    func() (*mesh.Data, error) { return catalog.FetchMesh(assetID) },
		FetchTexture: func() (image.Image, error) { return catalog.FetchTexture(assetID) },
		Renderer:     backend,
		Sensitivity:  cfg.Viewer.Sensitivity,
		Smoothing:    cfg.Viewer.Smoothing,
		Width:        width,
		Height:       height,
	})
	if err != nil {
		return err
	}

	if err := session.Start(context.Background()); err != nil {
		return err
	}

	logger.Info("entering render loop")
	for {
		if input.Update() {
			return nil
		}

		for _, event := range input.Events() {
			switch event.Type {
			case host.EventWindowResize:
				width, height = event.Width, event.Height
				session.Resize(width, height)
			case host.EventMouseMove:
				// Offset from the viewport center drives the parallax.
				session.SetPointer(
					float32(event.MouseX-width/2),
					float32(event.MouseY-height/2),
				)
			case host.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					return nil
				}
			}
		}

		session.Update()
		if err := session.Render(); err != nil {
			return err
		}
		window.SwapBuffers()
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `viewer - interactive parallax viewer for depth-displaced meshes

Usage:
  viewer [options] <asset-id>

The asset directory must contain <asset-id>_mesh.json and a matching
texture image (<asset-id>.png, .jpg or .bmp).

Options:
  -assets <dir>    Asset directory (default "assets")
  -width <n>       Window width
  -height <n>      Window height
  -fullscreen      Run in fullscreen mode
  -config <path>   Path to config file
  -debug           Enable debug logging

Example:
  viewer -assets ./scenes sunset`)
}
