package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/nvr-ai/appicon/config"
	"github.com/nvr-ai/appicon/images"
	"github.com/nvr-ai/appicon/logger"
	"github.com/nvr-ai/appicon/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(path string) config.Config {
	return config.Config{Input: path, Output: path, Compression: "best", Color: config.ColorNever}
}

func TestRun(t *testing.T) {
	gen := test.NewMockIconGenerator(6, 6)
	path := test.WriteFixture(t, "AppIcon-1024.png", gen.MustEncode(t, gen.Uniform(color.NRGBA{R: 1, A: 100})))

	var buf bytes.Buffer
	ok := run(testConfig(path), logger.NewConsole(&buf, false, true))
	require.True(t, ok)

	out := buf.String()
	assert.Contains(t, out, "Fixing App Icon")
	assert.Contains(t, out, "Icon fixed")
	assert.Contains(t, out, "mode=RGB")
	assert.Contains(t, out, "(6, 6)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, images.ModeRGB, images.DetectMode(data))
}

func TestRunFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")

	var buf bytes.Buffer
	ok := run(testConfig(path), logger.NewConsole(&buf, false, true))
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "Failed to fix app icon")
}

func TestColorEnabled(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, colorEnabled(config.ColorAlways, f))
	assert.False(t, colorEnabled(config.ColorNever, f))
	assert.False(t, colorEnabled(config.ColorAuto, f), "a regular file is not a terminal")
}
