// Package images - image loading and preprocessing for model input.
package images

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
	"github.com/pkg/errors"
)

// Format identifies a supported image encoding.
type Format string

const (
	// FormatPNG is the PNG image format.
	FormatPNG Format = "png"
	// FormatJPEG is the JPEG image format.
	FormatJPEG Format = "jpeg"
	// FormatWebP is the WebP image format.
	FormatWebP Format = "webp"
)

// Decode decodes raw PNG, JPEG or WebP bytes into an image.
func Decode(data []byte) (image.Image, Format, error) {
	if len(data) == 0 {
		return nil, "", errors.New("empty image data")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to decode image")
	}

	return img, Format(format), nil
}
