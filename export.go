package backdrop

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// EncodeOption sets an optional parameter for the Write and Save
// functions.
// https://github.com/disintegration/imaging
type EncodeOption = imaging.EncodeOption

// JPEGQuality returns an EncodeOption that sets the output JPEG quality.
// Quality ranges from 1 to 100 inclusive, higher is better.
func JPEGQuality(quality int) EncodeOption {
	return imaging.JPEGQuality(quality)
}

// Write writes a rendered canvas to w in the format named by ext
// (e.g. "png", "jpg").
func Write(w io.Writer, img image.Image, ext string, opts ...EncodeOption) error {
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, format, opts...)
}

// Save saves a rendered canvas to a file, choosing the format from the
// file extension.
func Save(output string, img image.Image, opts ...EncodeOption) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, img, strings.TrimPrefix(filepath.Ext(output), "."), opts...)
}
