package images

import "bytes"

// Mode is the color representation of a source image, named after the PNG
// color type it was stored with.
type Mode string

const (
	// ModeRGB is 8-bit truecolor without an alpha channel.
	ModeRGB Mode = "RGB"
	// ModeRGBA is truecolor with an alpha channel.
	ModeRGBA Mode = "RGBA"
	// ModeL is 8-bit (or lower) grayscale.
	ModeL Mode = "L"
	// ModeLA is grayscale with an alpha channel.
	ModeLA Mode = "LA"
	// ModeP is palette-indexed color.
	ModeP Mode = "P"
	// ModeI16 is 16-bit grayscale.
	ModeI16 Mode = "I;16"
	// ModeOther is anything that is not a recognised PNG color type.
	ModeOther Mode = "other"
)

// Alpha mask positions within the channels returned by Split. Channels are
// split in mode order, so alpha is last for RGBA and second for LA.
const (
	RGBAAlphaChannel = 3
	LAAlphaChannel   = 1
)

// PNG IHDR color types.
const (
	colorTypeGray           = 0
	colorTypeTrueColor      = 2
	colorTypePaletted       = 3
	colorTypeGrayAlpha      = 4
	colorTypeTrueColorAlpha = 6
)

const pngSignature = "\x89PNG\r\n\x1a\n"

// The IHDR chunk always comes first: signature, chunk length and type, then
// width, height, bit depth and color type.
const (
	ihdrTypeOffset      = 12
	ihdrBitDepthOffset  = 24
	ihdrColorTypeOffset = 25
	ihdrMinLength       = 26
)

// DetectMode reads the color mode from the PNG header in data.
//
// Arguments:
//   - data: The raw file bytes.
//
// Returns:
//   - Mode: The color mode, or ModeOther if data is not a PNG.
func DetectMode(data []byte) Mode {
	if len(data) < ihdrMinLength || !bytes.HasPrefix(data, []byte(pngSignature)) {
		return ModeOther
	}
	if string(data[ihdrTypeOffset:ihdrTypeOffset+4]) != "IHDR" {
		return ModeOther
	}

	depth := data[ihdrBitDepthOffset]
	switch data[ihdrColorTypeOffset] {
	case colorTypeGray:
		if depth == 16 {
			return ModeI16
		}
		return ModeL
	case colorTypeTrueColor:
		return ModeRGB
	case colorTypePaletted:
		return ModeP
	case colorTypeGrayAlpha:
		return ModeLA
	case colorTypeTrueColorAlpha:
		return ModeRGBA
	default:
		return ModeOther
	}
}

// Channels returns the number of bands Split produces for the mode, or 0 if
// the mode cannot be split.
func (m Mode) Channels() int {
	switch m {
	case ModeL:
		return 1
	case ModeLA:
		return 2
	case ModeRGB:
		return 3
	case ModeRGBA:
		return 4
	default:
		return 0
	}
}

// HasAlpha reports whether the mode carries a dedicated alpha channel.
func (m Mode) HasAlpha() bool {
	return m == ModeRGBA || m == ModeLA
}

func (m Mode) String() string {
	return string(m)
}
