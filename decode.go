package backdrop

import (
	"fmt"
	"image"
	_ "image/gif"  // decode gif format
	_ "image/jpeg" // decode jpeg format
	_ "image/png"  // decode png format
	"io"
	"os"

	_ "github.com/sunshineplan/pdf"  // decode pdf format
	_ "github.com/sunshineplan/tiff" // decode tiff format
	_ "golang.org/x/image/bmp"       // decode bmp format
	_ "golang.org/x/image/webp"      // decode webp format
)

// Decode reads an image from r and converts it to a canonical Surface.
// If want to use custom image format packages which were registered in
// image package, please make sure these custom packages imported before
// importing backdrop package.
func Decode(r io.Reader) (*Surface, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode background image: %w", err)
	}
	return FromImage(img), nil
}

// Open loads a background image from file.
func Open(file string) (*Surface, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
