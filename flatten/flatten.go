// Package flatten removes the alpha channel from app icons by compositing
// them onto an opaque white background.
package flatten

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nvr-ai/appicon/images"
	"github.com/nvr-ai/appicon/logger"
	"github.com/nvr-ai/appicon/util"
	"github.com/pkg/errors"
)

// Result describes a flattened icon.
type Result struct {
	// Mode is the mode of the written image, always RGB.
	Mode images.Mode
	// SourceMode is the mode the input was stored with.
	SourceMode images.Mode
	// Width and Height are the output dimensions in pixels.
	Width  int
	Height int
	// Bytes is the size of the encoded PNG.
	Bytes int
}

// Size formats the dimensions as (width, height).
func (r Result) Size() string {
	return fmt.Sprintf("(%d, %d)", r.Width, r.Height)
}

type options struct {
	size  int
	level png.CompressionLevel
	log   *logger.Logger
}

// Option configures a Flatten call.
type Option func(*options)

// WithSize resamples the flattened icon to size×size. Zero keeps the source
// dimensions.
func WithSize(size int) Option {
	return func(o *options) { o.size = size }
}

// WithCompression sets the PNG compression level. The default is
// png.BestCompression.
func WithCompression(level png.CompressionLevel) Option {
	return func(o *options) { o.level = level }
}

// WithLogger routes debug lines to log.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Flatten reads the PNG at inputPath, removes any alpha channel by
// compositing onto white, and writes the RGB result to outputPath.
// inputPath and outputPath may be the same file.
//
// Arguments:
//   - inputPath: A readable PNG file.
//   - outputPath: A writable location.
//   - opts: Optional resampling, compression and logging settings.
//
// Returns:
//   - Result: The final mode and dimensions.
//   - error: A *Error naming the failed stage.
func Flatten(inputPath, outputPath string, opts ...Option) (res Result, err error) {
	o := options{level: png.BestCompression, log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.Extend(o.log.With().Str("path", inputPath))

	// The lock spans read to write so a concurrent pass cannot replace the
	// output between our decode and our rename.
	lock, err := util.LockFile(outputPath)
	if err != nil {
		return Result{}, &Error{Stage: StageEncode, Path: outputPath, Err: err}
	}
	defer func() {
		if uerr := lock.Unlock(); uerr != nil && err == nil {
			res, err = Result{}, &Error{Stage: StageEncode, Path: outputPath, Err: uerr}
		}
	}()

	file, err := util.LoadImageFile(inputPath)
	if err != nil {
		return Result{}, &Error{Stage: StageDecode, Path: inputPath, Err: err}
	}
	src, err := images.Decode(file.Data)
	if err != nil {
		return Result{}, &Error{Stage: StageDecode, Path: inputPath, Err: err}
	}
	if e := log.Debug(); e.Enabled() {
		e.Str("mode", src.Mode.String()).
			Int("width", src.Width).
			Int("height", src.Height).
			Str("checksum", images.Checksum(src.Pixels)).
			Msg("decoded")
	}

	rgb, err := flattenImage(src, o.size)
	if err != nil {
		return Result{}, &Error{Stage: StageComposite, Path: inputPath, Err: err}
	}

	var buf bytes.Buffer
	if err := images.Encode(&buf, rgb, o.level); err != nil {
		return Result{}, &Error{Stage: StageEncode, Path: outputPath, Err: err}
	}

	// An in-place pass keeps the permissions of the icon it replaces.
	var perm os.FileMode
	if filepath.Clean(inputPath) == filepath.Clean(outputPath) {
		perm = file.Perm
	}
	if err := util.AtomicWrite(outputPath, buf.Bytes(), perm); err != nil {
		return Result{}, &Error{Stage: StageEncode, Path: outputPath, Err: err}
	}

	if e := log.Debug(); e.Enabled() {
		e.Int("bytes", buf.Len()).Str("checksum", images.Checksum(rgb)).Msg("encoded")
	}

	b := rgb.Bounds()
	return Result{
		Mode:       images.ModeRGB,
		SourceMode: src.Mode,
		Width:      b.Dx(),
		Height:     b.Dy(),
		Bytes:      buf.Len(),
	}, nil
}

// flattenImage turns src into an opaque RGB bitmap according to its mode.
// Panics from malformed pixel data are reported as errors.
func flattenImage(src *images.Image, size int) (out *image.RGBA, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, errors.Errorf("flatten %s image: %v", src.Mode, r)
		}
	}()

	switch {
	case src.Mode.HasAlpha():
		alpha := images.RGBAAlphaChannel
		if src.Mode == images.ModeLA {
			alpha = images.LAAlphaChannel
		}
		out, err = composite(src, alpha)
	case src.Mode == images.ModeRGB:
		if rgba, ok := src.Pixels.(*image.RGBA); ok && images.IsOpaque(rgba) {
			out = rgba
		} else {
			// 16-bit samples or a tRNS color key.
			out = images.ToRGB(src.Pixels)
		}
	default:
		out = images.ToRGB(src.Pixels)
	}
	if err != nil {
		return nil, err
	}

	if size > 0 {
		if resized := images.Conform(out, size); resized != image.Image(out) {
			out = images.ToRGB(resized)
		}
	}
	return out, nil
}

// composite pastes the color bands of src onto a white canvas, using the band
// at alpha as the mask. Bands before alpha are the color.
func composite(src *images.Image, alpha int) (*image.RGBA, error) {
	bands, err := images.Split(src.Pixels, src.Mode)
	if err != nil {
		return nil, err
	}
	if alpha >= len(bands) {
		return nil, errors.Errorf("alpha band %d out of range for %s", alpha, src.Mode)
	}

	canvas := images.NewCanvas(src.Bounds())
	if err := images.Paste(canvas, bands[:alpha], bands[alpha]); err != nil {
		return nil, errors.Wrap(err, "composite")
	}
	return canvas, nil
}
