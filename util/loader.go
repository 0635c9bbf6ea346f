package util

import (
	"os"

	"github.com/pkg/errors"
)

// ImageFile represents an image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
	// Perm is the permission of the file on disk.
	Perm os.FileMode
}

// LoadImageFile reads a single image file. The content is not checked here;
// the decoder recognises PNG by its signature, whatever the file is named.
//
// Arguments:
// - path: Path to the image file.
//
// Returns:
// - ImageFile: The raw bytes and permissions of the file.
// - error: Error if the path is missing, a directory or unreadable.
func LoadImageFile(path string) (ImageFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ImageFile{}, errors.Wrap(err, "stat image")
	}
	if info.IsDir() {
		return ImageFile{}, errors.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ImageFile{}, errors.Wrap(err, "read image")
	}

	return ImageFile{
		Path: path,
		Data: data,
		Perm: info.Mode().Perm(),
	}, nil
}
