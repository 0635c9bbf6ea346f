package images

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
)

// Checksum generates a deterministic checksum over the straight 8-bit RGBA
// values of img, used to verify that a pass left pixels untouched.
//
// Arguments:
// - img: The image to compute checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string.
//
// Example:
//
// ```go
//
//	before := Checksum(src)
//	fmt.Printf("Icon checksum: %s\n", before)
//
// ```
func Checksum(img image.Image) string {
	b := img.Bounds()
	if b.Empty() {
		return "empty"
	}

	hash := md5.New()
	px := make([]byte, 4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
			hash.Write(px)
		}
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}
