package images

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"
)

// Decode decodes PNG data and records the color mode from its header.
//
// Arguments:
//   - data: The PNG file bytes.
//
// Returns:
//   - *Image: The decoded image.
//   - error: An error if data is empty or not a valid PNG.
func Decode(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, errors.New("image data is empty")
	}

	mode := DetectMode(data)
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode PNG")
	}

	b := img.Bounds()
	return &Image{
		Pixels: img,
		Mode:   mode,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// Encode writes img to w as PNG with the given compression level.
func Encode(w io.Writer, img image.Image, level png.CompressionLevel) error {
	enc := &png.Encoder{CompressionLevel: level}
	if err := enc.Encode(w, img); err != nil {
		return errors.Wrap(err, "failed to encode PNG")
	}
	return nil
}

// CompressionLevel maps a configuration name onto a png.CompressionLevel.
// "best" is the lossless size optimisation used for store assets.
func CompressionLevel(name string) (png.CompressionLevel, error) {
	switch name {
	case "", "best":
		return png.BestCompression, nil
	case "default":
		return png.DefaultCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "none":
		return png.NoCompression, nil
	default:
		return 0, fmt.Errorf("unknown compression level: %q", name)
	}
}
