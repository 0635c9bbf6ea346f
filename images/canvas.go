package images

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// White is the opaque background icons are flattened onto.
var White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// NewCanvas allocates an RGB canvas covering r with every pixel set to opaque
// white.
func NewCanvas(r image.Rectangle) *image.RGBA {
	canvas := image.NewRGBA(r)
	draw.Draw(canvas, r, &image.Uniform{C: White}, image.Point{}, draw.Src)
	return canvas
}

// Paste blends the color bands onto dst using mask as the per-pixel weight:
//
//	out = src*a + dst*(1-a), a = mask/255
//
// A single band is treated as gray and written to R, G and B; three bands are
// taken as R, G, B. The alpha of dst is left opaque.
//
// Arguments:
//   - dst: The destination canvas, modified in place.
//   - bands: One gray band or three color bands.
//   - mask: The alpha band.
//
// Returns:
//   - error: An error if the band count is wrong or bounds differ.
func Paste(dst *image.RGBA, bands []*image.Gray, mask *image.Gray) error {
	if len(bands) != 1 && len(bands) != 3 {
		return errors.Errorf("paste needs 1 or 3 color bands, got %d", len(bands))
	}
	if mask == nil {
		return errors.New("paste mask is nil")
	}

	b := dst.Bounds()
	if !mask.Bounds().Eq(b) {
		return errors.Errorf("mask bounds %v do not match canvas %v", mask.Bounds(), b)
	}
	for i, band := range bands {
		if band == nil || !band.Bounds().Eq(b) {
			return errors.Errorf("band %d does not match canvas %v", i, b)
		}
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := float32(mask.Pix[mask.PixOffset(x, y)]) / 255
			off := dst.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				band := bands[0]
				if len(bands) == 3 {
					band = bands[c]
				}
				dst.Pix[off+c] = blend(band.Pix[band.PixOffset(x, y)], dst.Pix[off+c], a)
			}
			dst.Pix[off+3] = 0xff
		}
	}

	return nil
}

// blend interpolates between dst and src by a in [0,1], rounding to nearest.
func blend(src, dst uint8, a float32) uint8 {
	v := float32(src)*a + float32(dst)*(1-a)
	v = math32.Max(0, math32.Min(255, math32.Floor(v+0.5)))
	return uint8(v)
}
