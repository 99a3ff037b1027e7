// meshgen generates displaced mesh interchange data from an image and
// its depth map.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/relievo/relievo/internal/config"
	"github.com/relievo/relievo/internal/depth"
	"github.com/relievo/relievo/internal/logger"
	"github.com/relievo/relievo/internal/mesh"
)

var (
	flagOutput      = flag.String("o", "", "Output mesh path (default <image>_mesh.json)")
	flagResizeDepth = flag.Bool("resize-depth", false, "Resize a mismatched depth map to the image dimensions")
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	if flag.NArg() != 2 {
		printUsage()
		os.Exit(1)
	}
	imagePath := flag.Arg(0)
	depthPath := flag.Arg(1)

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

	outputPath := *flagOutput
	if outputPath == "" {
		base := strings.TrimSuffix(imagePath, filepath.Ext(imagePath))
		outputPath = base + "_mesh.json"
	}

	if err := run(cfg, imagePath, depthPath, outputPath); err != nil {
		logger.Error("mesh generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, imagePath, depthPath, outputPath string) error {
	logger.Info("loading image", zap.String("path", imagePath))
	img, err := loadImage(imagePath)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logger.Info("image dimensions", zap.Int("width", b.Dx()), zap.Int("height", b.Dy()))

	logger.Info("loading depth map", zap.String("path", depthPath))
	dm, err := loadDepth(depthPath)
	if err != nil {
		return err
	}
	if dm.IsFlat() {
		logger.Warn("depth map is all black, mesh will be flat")
	}

	if (*flagResizeDepth || cfg.Synthesis.ResizeDepth) && (dm.W != b.Dx() || dm.H != b.Dy()) {
		logger.Warn("resizing depth map to image dimensions",
			zap.Int("from_w", dm.W), zap.Int("from_h", dm.H),
			zap.Int("to_w", b.Dx()), zap.Int("to_h", b.Dy()))
		dm = dm.ResizeTo(b.Dx(), b.Dy())
	}

	sampler, err := depth.ParseSampler(cfg.Synthesis.Sampler)
	if err != nil {
		return err
	}

	opts := mesh.Options{
		GridDensity: cfg.Synthesis.GridDensity,
		DepthScale:  cfg.Synthesis.DepthScale,
		Sampler:     sampler,
	}
	logger.Info("synthesizing mesh",
		zap.Int("density", opts.GridDensity),
		zap.Float64("scale", opts.DepthScale),
		zap.Stringer("sampler", opts.Sampler))

	d, err := mesh.Synthesize(img, dm, opts)
	if err != nil {
		return err
	}

	logger.Info("writing mesh data", zap.String("path", outputPath))
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer f.Close()

	if err := d.Encode(f); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	logger.Info("mesh generated",
		zap.Int("vertices", len(d.Vertices)),
		zap.Int("faces", len(d.Faces)))
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return img, nil
}

func loadDepth(path string) (*depth.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening depth map %s: %w", path, err)
	}
	defer f.Close()

	dm, err := depth.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("depth map %s: %w", path, err)
	}
	return dm, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `meshgen - generate 3D mesh data from an image and its depth map

Usage:
  meshgen [options] <image> <depth-map>

Options:
  -o <path>        Output mesh path (default <image>_mesh.json)
  -density <n>     Grid density, vertices per lattice dimension (default 150)
  -scale <f>       Depth scale factor for Z displacement (default 0.1)
  -sampler <name>  Depth sampling strategy: nearest or bilinear
  -resize-depth    Resize a mismatched depth map to the image dimensions
  -config <path>   Path to config file
  -debug           Enable debug logging

Examples:
  meshgen photo.png photo_depth.png
  meshgen -density 200 -scale 0.15 -o scene_mesh.json photo.jpg depth.png`)
}
