package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestProcessRGBTensorLayout(t *testing.T) {
	pre, err := NewPreprocessor(Config{Width: 320, Height: 180, Channels: 3})
	require.NoError(t, err)

	red := solidImage(64, 32, color.RGBA{R: 255, A: 255})
	result, err := pre.Process(red)
	require.NoError(t, err, "preprocessing a valid image should succeed")

	assert.Equal(t, []int64{1, 3, 180, 320}, result.Shape, "tensor shape should be [1, C, H, W]")
	assert.Len(t, result.Data, 3*180*320, "tensor data size should match shape")
	assert.Equal(t, 64, result.OriginalWidth, "original width should be preserved")
	assert.Equal(t, 32, result.OriginalHeight, "original height should be preserved")

	plane := 320 * 180
	assert.InDelta(t, 1.0, result.Data[0], 0.01, "red plane should be near 1 for a red image")
	assert.InDelta(t, 0.0, result.Data[plane], 0.01, "green plane should be near 0 for a red image")
	assert.InDelta(t, 0.0, result.Data[2*plane], 0.01, "blue plane should be near 0 for a red image")

	for _, v := range result.Data {
		assert.GreaterOrEqual(t, v, float32(0), "values should be normalized to [0, 1]")
		assert.LessOrEqual(t, v, float32(1), "values should be normalized to [0, 1]")
	}
}

func TestProcessGrayscaleTensor(t *testing.T) {
	pre, err := NewPreprocessor(Config{Width: 320, Height: 180, Channels: 1})
	require.NoError(t, err)

	red := solidImage(64, 32, color.RGBA{R: 255, A: 255})
	result, err := pre.Process(red)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 1, 180, 320}, result.Shape, "grayscale tensor should be single channel")
	assert.Len(t, result.Data, 180*320)
	assert.InDelta(t, 0.299, result.Data[0], 0.01, "grayscale value should be BT.601 luma")
}

func TestNewPreprocessorRejectsBadConfig(t *testing.T) {
	_, err := NewPreprocessor(Config{Width: 0, Height: 180, Channels: 3})
	assert.Error(t, err, "zero width should be rejected")

	_, err = NewPreprocessor(Config{Width: 320, Height: 180, Channels: 4})
	assert.Error(t, err, "unsupported channel count should be rejected")
}

func TestProcessNilImage(t *testing.T) {
	pre, err := NewPreprocessor(Config{Width: 320, Height: 180, Channels: 3})
	require.NoError(t, err)

	_, err = pre.Process(nil)
	assert.Error(t, err, "nil image should be rejected")
}
