// viewsgen generates horizontally shifted parallax views of an image
// using its depth map.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/relievo/relievo/internal/config"
	"github.com/relievo/relievo/internal/depth"
	"github.com/relievo/relievo/internal/logger"
	"github.com/relievo/relievo/internal/views"
)

var flagShifts = flag.String("shifts", "-20,-10,0,10,20", "Comma-separated horizontal shift amounts")

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	if flag.NArg() != 3 {
		printUsage()
		os.Exit(1)
	}
	imagePath := flag.Arg(0)
	depthPath := flag.Arg(1)
	outputDir := flag.Arg(2)

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

	shifts, err := parseShifts(*flagShifts)
	if err != nil {
		logger.Error("invalid shifts", zap.Error(err))
		os.Exit(1)
	}

	if err := run(imagePath, depthPath, outputDir, shifts); err != nil {
		logger.Error("view generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(imagePath, depthPath, outputDir string, shifts []float64) error {
	logger.Info("loading image", zap.String("path", imagePath))
	f, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("opening image %s: %w", imagePath, err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decoding image %s: %w", imagePath, err)
	}

	logger.Info("loading depth map", zap.String("path", depthPath))
	df, err := os.Open(depthPath)
	if err != nil {
		return fmt.Errorf("opening depth map %s: %w", depthPath, err)
	}
	dm, err := depth.Decode(df)
	df.Close()
	if err != nil {
		return fmt.Errorf("depth map %s: %w", depthPath, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	logger.Info("generating shifted views", zap.Int("count", len(shifts)))
	for i, shift := range shifts {
		view, err := views.Shift(img, dm, shift)
		if err != nil {
			return err
		}

		name := fmt.Sprintf("view_%03d_shift_%g.png", i, shift)
		path := filepath.Join(outputDir, name)
		if err := writePNG(path, view); err != nil {
			return err
		}
		logger.Debug("wrote view", zap.String("path", path), zap.Float64("shift", shift))
	}

	logger.Info("view generation complete", zap.String("dir", outputDir))
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

func parseShifts(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	shifts := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing shift %q: %w", p, err)
		}
		shifts = append(shifts, v)
	}
	return shifts, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `viewsgen - generate shifted parallax views from an image and its depth map

Usage:
  viewsgen [options] <image> <depth-map> <output-dir>

Options:
  -shifts <list>   Comma-separated horizontal shift amounts (default -20,-10,0,10,20)
  -config <path>   Path to config file
  -debug           Enable debug logging

Example:
  viewsgen -shifts -30,0,30 photo.png photo_depth.png ./views`)
}
