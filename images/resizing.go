package images

import (
	"image"

	"github.com/nfnt/resize"
)

// Conform resamples img to a size×size square with Lanczos3. Images already
// at that size, and non-positive sizes, are returned unchanged.
//
// Arguments:
//   - img: The flattened image.
//   - size: The target edge length in pixels.
//
// Returns:
//   - image.Image: The resampled image.
func Conform(img image.Image, size int) image.Image {
	b := img.Bounds()
	if size <= 0 || (b.Dx() == size && b.Dy() == size) {
		return img
	}
	return resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
}
