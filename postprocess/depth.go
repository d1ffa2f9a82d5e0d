package postprocess

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/roadsight-ai/go-predict/images"
)

// DepthImage renders a single channel depth map as a plasma pseudocolor
// image. Depth values are normalized to [0, 1] over their observed
// range; a constant map renders as the low end of the colormap.
func DepthImage(output []float32, height, width int) (*image.RGBA, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Errorf("invalid depth shape: (%d, %d)", height, width)
	}
	if len(output) != height*width {
		return nil, errors.Errorf("output length %d does not match shape (%d, %d)",
			len(output), height, width)
	}

	lo, hi := output[0], output[0]
	for _, v := range output[1:] {
		lo = math32.Min(lo, v)
		hi = math32.Max(hi, v)
	}
	span := hi - lo

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := float32(0)
			if span > 0 {
				t = (output[y*width+x] - lo) / span
			}
			img.SetRGBA(x, y, images.PlasmaColormap(t))
		}
	}

	return img, nil
}
