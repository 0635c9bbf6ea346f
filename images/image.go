// Package images - decoding, inspection and alpha flattening of icon bitmaps.
package images

import "image"

// Image represents a decoded bitmap together with the color mode it was
// stored with.
type Image struct {
	// Pixels is the decoded bitmap.
	Pixels image.Image `json:"-" yaml:"-"`
	// Mode is the color mode of the source file.
	Mode Mode `json:"mode" yaml:"mode"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
}

// Bounds returns the pixel bounds of the decoded bitmap.
func (i *Image) Bounds() image.Rectangle {
	return i.Pixels.Bounds()
}

// IsOpaque reports whether every pixel of img is fully opaque. Images that
// cannot answer cheaply are scanned.
func IsOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
