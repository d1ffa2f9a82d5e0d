package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 8)))
	require.NoError(t, err, "PNG encoding should succeed")

	img, format, err := Decode(buf.Bytes())
	require.NoError(t, err, "Decode should succeed for valid PNG bytes")
	assert.Equal(t, FormatPNG, format)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestDecodeInvalidData(t *testing.T) {
	_, _, err := Decode([]byte("not an image"))
	assert.Error(t, err, "Decode should error for invalid bytes")

	_, _, err = Decode(nil)
	assert.Error(t, err, "Decode should error for empty input")
}
