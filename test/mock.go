package test

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// MockIconGenerator creates deterministic PNG fixtures in each color mode the
// flattener handles.
//
// @example
// gen := NewMockIconGenerator(4, 4)
// data := gen.MustEncode(t, gen.Uniform(color.NRGBA{A: 128}))
type MockIconGenerator struct {
	width  int
	height int
}

// NewMockIconGenerator creates a new generator for icons of the given size.
//
// Arguments:
// - width: Icon width in pixels.
// - height: Icon height in pixels.
//
// Returns:
// - A configured MockIconGenerator instance.
func NewMockIconGenerator(width, height int) *MockIconGenerator {
	return &MockIconGenerator{width: width, height: height}
}

// Bounds returns the rectangle every generated icon covers.
func (g *MockIconGenerator) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// Uniform creates an NRGBA icon filled with c. Encoded, it is an RGBA PNG
// unless c is opaque.
func (g *MockIconGenerator) Uniform(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(g.Bounds())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Gradient creates an NRGBA icon whose alpha rises left to right from 0 to
// 255 and whose color varies with position.
func (g *MockIconGenerator) Gradient() *image.NRGBA {
	img := image.NewNRGBA(g.Bounds())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(g.width-1, 1)),
				G: uint8(y * 255 / max(g.height-1, 1)),
				B: 0x40,
				A: uint8(x * 255 / max(g.width-1, 1)),
			})
		}
	}
	return img
}

// Opaque creates an RGB icon with a position-dependent color. Encoded, it is
// an 8-bit truecolor PNG without alpha.
func (g *MockIconGenerator) Opaque() *image.RGBA {
	img := image.NewRGBA(g.Bounds())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 31), G: uint8(y * 17), B: uint8((x + y) * 7), A: 0xff})
		}
	}
	return img
}

// Gray creates an 8-bit grayscale icon.
func (g *MockIconGenerator) Gray() *image.Gray {
	img := image.NewGray(g.Bounds())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) * 13)})
		}
	}
	return img
}

// Paletted creates a palette icon alternating between the given colors.
func (g *MockIconGenerator) Paletted(palette color.Palette) *image.Paletted {
	img := image.NewPaletted(g.Bounds(), palette)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.SetColorIndex(x, y, uint8((x+y)%len(palette)))
		}
	}
	return img
}

// GrayAlpha encodes a grayscale-with-alpha PNG (color type 4). The standard
// encoder never writes this color type, so the file is assembled by hand.
//
// Arguments:
// - pix: Interleaved L, A pairs, row by row.
//
// Returns:
// - The PNG bytes.
// - error if pix does not cover the icon.
func (g *MockIconGenerator) GrayAlpha(pix []uint8) ([]byte, error) {
	if len(pix) != g.width*g.height*2 {
		return nil, fmt.Errorf("need %d LA bytes, got %d", g.width*g.height*2, len(pix))
	}

	return g.encodeRaw(4, pix, 2, nil)
}

// TrueColorKeyed encodes an 8-bit RGB PNG (color type 2) with a tRNS chunk
// marking key as the transparent color.
//
// Arguments:
// - pix: Interleaved R, G, B triples, row by row.
// - key: The color made transparent.
//
// Returns:
// - The PNG bytes.
// - error if pix does not cover the icon.
func (g *MockIconGenerator) TrueColorKeyed(pix []uint8, key color.RGBA) ([]byte, error) {
	if len(pix) != g.width*g.height*3 {
		return nil, fmt.Errorf("need %d RGB bytes, got %d", g.width*g.height*3, len(pix))
	}
	// tRNS for truecolor holds three 16-bit samples.
	trns := []byte{0, key.R, 0, key.G, 0, key.B}
	return g.encodeRaw(2, pix, 3, trns)
}

// encodeRaw assembles an 8-bit PNG of the given color type from unfiltered
// samples, with an optional tRNS chunk.
func (g *MockIconGenerator) encodeRaw(colorType uint8, pix []uint8, channels int, trns []byte) ([]byte, error) {
	var raw bytes.Buffer
	stride := g.width * channels
	for y := 0; y < g.height; y++ {
		raw.WriteByte(0) // filter: none
		raw.Write(pix[y*stride : (y+1)*stride])
	}

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(g.width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(g.height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = colorType

	var out bytes.Buffer
	out.WriteString("\x89PNG\r\n\x1a\n")
	writeChunk(&out, "IHDR", ihdr)
	if trns != nil {
		writeChunk(&out, "tRNS", trns)
	}
	writeChunk(&out, "IDAT", idat.Bytes())
	writeChunk(&out, "IEND", nil)
	return out.Bytes(), nil
}

func writeChunk(w *bytes.Buffer, typ string, data []byte) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(data)))
	w.Write(n[:])
	w.WriteString(typ)
	w.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	binary.BigEndian.PutUint32(n[:], crc.Sum32())
	w.Write(n[:])
}

// MustEncode encodes img as PNG, failing the test on error.
func (g *MockIconGenerator) MustEncode(t testing.TB, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

// WriteFixture writes data to name inside a fresh temp dir and returns the
// full path.
func WriteFixture(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
