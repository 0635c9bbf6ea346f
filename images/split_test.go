package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/nvr-ai/appicon/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRGBA(t *testing.T) {
	gen := test.NewMockIconGenerator(3, 2)
	src := gen.Uniform(color.NRGBA{R: 200, G: 100, B: 50, A: 60})

	bands, err := Split(src, ModeRGBA)
	require.NoError(t, err)
	require.Len(t, bands, 4)

	for _, band := range bands {
		assert.Equal(t, src.Bounds(), band.Bounds())
	}
	// Straight values survive even though alpha is low.
	assert.Equal(t, uint8(200), bands[0].GrayAt(1, 1).Y)
	assert.Equal(t, uint8(100), bands[1].GrayAt(1, 1).Y)
	assert.Equal(t, uint8(50), bands[2].GrayAt(1, 1).Y)
	assert.Equal(t, uint8(60), bands[RGBAAlphaChannel].GrayAt(1, 1).Y)
}

func TestSplitLA(t *testing.T) {
	gen := test.NewMockIconGenerator(2, 1)
	data, err := gen.GrayAlpha([]uint8{90, 255, 30, 0})
	require.NoError(t, err)

	img, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, ModeLA, img.Mode)

	bands, err := Split(img.Pixels, img.Mode)
	require.NoError(t, err)
	require.Len(t, bands, 2)

	assert.Equal(t, uint8(90), bands[0].GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), bands[LAAlphaChannel].GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), bands[LAAlphaChannel].GrayAt(1, 0).Y)
}

func TestSplitUnsupportedMode(t *testing.T) {
	bands, err := Split(image.NewRGBA(image.Rect(0, 0, 1, 1)), ModeP)
	assert.Error(t, err)
	assert.Nil(t, bands)
}
