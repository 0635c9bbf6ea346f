package config

import (
	"image/png"

	"github.com/kkyr/fig"
	"github.com/nvr-ai/appicon/images"
	"github.com/pkg/errors"
)

const (
	// EnvPrefix prefixes every environment override, e.g. APPICON_INPUT.
	EnvPrefix = "APPICON"
	// FileName is the optional config file looked up in the working directory.
	FileName = "appicon.yaml"
	// DefaultIconPath is the asset catalog icon that is fixed in place.
	DefaultIconPath = "Minds Flow/Assets.xcassets/AppIcon.appiconset/AppIcon-1024.png"
)

// Color modes for console output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds everything the entry point passes to the flattener.
type Config struct {
	// Input is the PNG to read.
	Input string `fig:"input" default:"Minds Flow/Assets.xcassets/AppIcon.appiconset/AppIcon-1024.png"`
	// Output is the PNG to write; the default overwrites Input.
	Output string `fig:"output" default:"Minds Flow/Assets.xcassets/AppIcon.appiconset/AppIcon-1024.png"`
	// Compression is one of best, default, speed, none.
	Compression string `fig:"compression" default:"best"`
	// Size, when positive, resamples the flattened icon to Size×Size.
	Size int `fig:"size"`
	// Debug enables debug log lines.
	Debug bool `fig:"debug"`
	// Color is auto, always or never.
	Color string `fig:"color" default:"auto"`
}

// Load reads FileName from dir (the working directory when empty), then
// applies APPICON_* environment overrides. A missing file is not an error.
func Load(dir string) (Config, error) {
	if dir == "" {
		dir = "."
	}

	var cfg Config
	err := fig.Load(&cfg, fig.File(FileName), fig.Dirs(dir), fig.UseEnv(EnvPrefix))
	if errors.Is(err, fig.ErrFileNotFound) {
		cfg = Config{}
		err = fig.Load(&cfg, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
	}
	if err != nil {
		return Config{}, errors.Wrap(err, "config load failed")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values fig cannot express as tags.
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("input path is empty")
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if c.Size < 0 {
		return errors.Errorf("size must not be negative: %d", c.Size)
	}
	if _, err := images.CompressionLevel(c.Compression); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("unknown color mode: %q", c.Color)
	}
	return nil
}

// CompressionLevel returns the PNG encoder level for Compression.
func (c Config) CompressionLevel() png.CompressionLevel {
	level, err := images.CompressionLevel(c.Compression)
	if err != nil {
		return png.BestCompression
	}
	return level
}
