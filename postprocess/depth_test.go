package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadsight-ai/go-predict/images"
)

func TestDepthImageNormalizes(t *testing.T) {
	// 2x2 gradient from 1 to 4.
	img, err := DepthImage([]float32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err, "valid depth output should succeed")

	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, images.PlasmaColormap(0), img.RGBAAt(0, 0), "minimum depth maps to the low end")
	assert.Equal(t, images.PlasmaColormap(1), img.RGBAAt(1, 1), "maximum depth maps to the high end")
}

func TestDepthImageConstantMap(t *testing.T) {
	img, err := DepthImage([]float32{7, 7, 7, 7}, 2, 2)
	require.NoError(t, err)

	low := images.PlasmaColormap(0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, low, img.RGBAAt(x, y), "a constant map renders at the low end")
		}
	}
}

func TestDepthImageShapeMismatch(t *testing.T) {
	_, err := DepthImage([]float32{1, 2, 3}, 2, 2)
	assert.Error(t, err, "length mismatch should be rejected")

	_, err = DepthImage(nil, 0, 2)
	assert.Error(t, err, "zero height should be rejected")
}
