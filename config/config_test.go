package config

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err, "a missing config file falls back to defaults")

	assert.Equal(t, DefaultIconPath, cfg.Input)
	assert.Equal(t, DefaultIconPath, cfg.Output)
	assert.Equal(t, cfg.Input, cfg.Output, "the icon is overwritten in place")
	assert.Equal(t, "best", cfg.Compression)
	assert.Equal(t, png.BestCompression, cfg.CompressionLevel())
	assert.Equal(t, 0, cfg.Size)
	assert.False(t, cfg.Debug)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "input: in.png\noutput: out.png\ncompression: speed\nsize: 1024\ndebug: true\ncolor: never\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "in.png", cfg.Input)
	assert.Equal(t, "out.png", cfg.Output)
	assert.Equal(t, png.BestSpeed, cfg.CompressionLevel())
	assert.Equal(t, 1024, cfg.Size)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("APPICON_INPUT", "env-in.png")
	t.Setenv("APPICON_DEBUG", "true")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-in.png", cfg.Input)
	assert.Equal(t, DefaultIconPath, cfg.Output)
	assert.True(t, cfg.Debug)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("APPICON_COMPRESSION", "ultra")

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{Input: "a.png", Output: "a.png", Compression: "best", Color: ColorAuto}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty input", mutate: func(c *Config) { c.Input = "" }},
		{name: "empty output", mutate: func(c *Config) { c.Output = "" }},
		{name: "negative size", mutate: func(c *Config) { c.Size = -1 }},
		{name: "bad compression", mutate: func(c *Config) { c.Compression = "zip" }},
		{name: "bad color", mutate: func(c *Config) { c.Color = "sometimes" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
