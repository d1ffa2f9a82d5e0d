// Package postprocess - interpretation of raw model outputs.
package postprocess

import (
	"image"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// SegmentationImage reduces per-pixel class scores to an 8-bit label
// image by taking the argmax over the class dimension. The output slice
// is interpreted as a (classes, height, width) tensor.
func SegmentationImage(output []float32, classes, height, width int) (*image.Gray, error) {
	if classes <= 0 || height <= 0 || width <= 0 {
		return nil, errors.Errorf("invalid segmentation shape: (%d, %d, %d)", classes, height, width)
	}
	if len(output) != classes*height*width {
		return nil, errors.Errorf("output length %d does not match shape (%d, %d, %d)",
			len(output), classes, height, width)
	}

	scores := tensor.New(
		tensor.WithShape(classes, height*width),
		tensor.WithBacking(output),
	)

	labels, err := tensor.Argmax(scores, 0)
	if err != nil {
		return nil, errors.Wrap(err, "argmax over class scores failed")
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for i, class := range labels.Data().([]int) {
		img.Pix[i] = uint8(class)
	}

	return img, nil
}
