package images

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Split separates img into one 8-bit band per channel of mode, in mode order:
// R, G, B, A for RGBA; L, A for LA; R, G, B for RGB; L for L. Color bands hold
// straight (non-premultiplied) values.
//
// Arguments:
//   - img: The decoded image.
//   - mode: The color mode img was stored with.
//
// Returns:
//   - []*image.Gray: One band per channel, each with the bounds of img.
//   - error: An error if the mode cannot be split.
func Split(img image.Image, mode Mode) ([]*image.Gray, error) {
	n := mode.Channels()
	if n == 0 {
		return nil, errors.Errorf("cannot split mode %s", mode)
	}

	b := img.Bounds()
	bands := make([]*image.Gray, n)
	for i := range bands {
		bands[i] = image.NewGray(b)
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			off := bands[0].PixOffset(x, y)

			switch mode {
			case ModeRGBA:
				bands[0].Pix[off] = c.R
				bands[1].Pix[off] = c.G
				bands[2].Pix[off] = c.B
				bands[3].Pix[off] = c.A
			case ModeRGB:
				bands[0].Pix[off] = c.R
				bands[1].Pix[off] = c.G
				bands[2].Pix[off] = c.B
			case ModeLA:
				bands[0].Pix[off] = luma(c)
				bands[1].Pix[off] = c.A
			case ModeL:
				bands[0].Pix[off] = luma(c)
			}
		}
	}

	return bands, nil
}

// luma returns the gray level of the straight color c, ignoring its alpha.
func luma(c color.NRGBA) uint8 {
	return color.GrayModel.Convert(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}).(color.Gray).Y
}
