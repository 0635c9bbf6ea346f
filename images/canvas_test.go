package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCanvasIsOpaqueWhite(t *testing.T) {
	canvas := NewCanvas(image.Rect(0, 0, 5, 3))

	assert.Equal(t, 5, canvas.Bounds().Dx())
	assert.Equal(t, 3, canvas.Bounds().Dy())
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			require.Equal(t, White, canvas.RGBAAt(x, y))
		}
	}
}

func gray(r image.Rectangle, v uint8) *image.Gray {
	g := image.NewGray(r)
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

// TestPasteBlend validates the per-pixel blend against white for the alpha
// values that matter to store icons.
func TestPasteBlend(t *testing.T) {
	r := image.Rect(0, 0, 1, 1)

	tests := []struct {
		name  string
		rgb   [3]uint8
		alpha uint8
		want  color.RGBA
	}{
		{name: "opaque keeps color", rgb: [3]uint8{12, 34, 56}, alpha: 255, want: color.RGBA{12, 34, 56, 255}},
		{name: "transparent is white", rgb: [3]uint8{12, 34, 56}, alpha: 0, want: White},
		{name: "half black is mid gray", rgb: [3]uint8{0, 0, 0}, alpha: 128, want: color.RGBA{127, 127, 127, 255}},
		{name: "quarter red", rgb: [3]uint8{255, 0, 0}, alpha: 64, want: color.RGBA{255, 191, 191, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := NewCanvas(r)
			bands := []*image.Gray{gray(r, tt.rgb[0]), gray(r, tt.rgb[1]), gray(r, tt.rgb[2])}

			require.NoError(t, Paste(canvas, bands, gray(r, tt.alpha)))
			assert.Equal(t, tt.want, canvas.RGBAAt(0, 0))
		})
	}
}

func TestPasteSingleBandWritesGray(t *testing.T) {
	r := image.Rect(0, 0, 2, 2)
	canvas := NewCanvas(r)

	require.NoError(t, Paste(canvas, []*image.Gray{gray(r, 40)}, gray(r, 255)))
	assert.Equal(t, color.RGBA{40, 40, 40, 255}, canvas.RGBAAt(1, 1))
}

func TestPasteRejectsBadInput(t *testing.T) {
	r := image.Rect(0, 0, 2, 2)
	canvas := NewCanvas(r)

	assert.Error(t, Paste(canvas, []*image.Gray{gray(r, 0), gray(r, 0)}, gray(r, 0)), "two bands")
	assert.Error(t, Paste(canvas, []*image.Gray{gray(r, 0)}, nil), "nil mask")
	assert.Error(t, Paste(canvas, []*image.Gray{gray(r, 0)}, gray(image.Rect(0, 0, 3, 3), 0)), "mask size")
	assert.Error(t, Paste(canvas, []*image.Gray{gray(image.Rect(0, 0, 1, 1), 0)}, gray(r, 0)), "band size")
}

func TestBlendBounds(t *testing.T) {
	assert.Equal(t, uint8(255), blend(0, 255, 0))
	assert.Equal(t, uint8(0), blend(0, 255, 1))
	assert.Equal(t, uint8(255), blend(255, 255, 0.5))
}
