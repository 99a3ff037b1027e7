// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Synthesis SynthesisConfig `yaml:"synthesis"`
	Viewer    ViewerConfig    `yaml:"viewer"`
	Assets    AssetsConfig    `yaml:"assets"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SynthesisConfig holds mesh synthesis settings.
type SynthesisConfig struct {
	GridDensity int     `yaml:"grid_density"` // Vertices along each lattice dimension
	DepthScale  float64 `yaml:"depth_scale"`  // Z displacement factor, may be negative
	Sampler     string  `yaml:"sampler"`      // "nearest" or "bilinear"
	ResizeDepth bool    `yaml:"resize_depth"` // Resize mismatched depth maps to the image
}

// ViewerConfig holds display and interaction settings.
type ViewerConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Fullscreen  bool    `yaml:"fullscreen"`
	VSync       bool    `yaml:"vsync"`
	Sensitivity float32 `yaml:"sensitivity"` // Pointer offset to target rotation
	Smoothing   float32 `yaml:"smoothing"`   // Per-frame blend toward target rotation
}

// AssetsConfig holds asset lookup settings.
type AssetsConfig struct {
	Dir string `yaml:"dir"` // Root directory for mesh/texture pairs
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Synthesis: SynthesisConfig{
			GridDensity: 150,
			DepthScale:  0.1,
			Sampler:     "nearest",
			ResizeDepth: false,
		},
		Viewer: ViewerConfig{
			Width:       1280,
			Height:      720,
			Fullscreen:  false,
			VSync:       true,
			Sensitivity: 0.001,
			Smoothing:   0.05,
		},
		Assets: AssetsConfig{
			Dir: "assets",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
