package images

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Canny hysteresis thresholds for the edge preprocessing step.
const (
	cannyLowThreshold  = 100
	cannyHighThreshold = 200
)

// ToEdges replaces the image with its Canny edge map. The result is a
// single channel grayscale image.
func ToEdges(img image.Image) (image.Image, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert image to Mat")
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorRGBToGray)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, cannyLowThreshold, cannyHighThreshold)

	out, err := edges.ToImage()
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert edge map to image")
	}

	return out, nil
}
