package postprocess

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Grid line colors and thickness for the vanishing point overlay.
var (
	gridColor      = color.RGBA{R: 255, A: 255}
	highlightColor = color.RGBA{G: 255, A: 255}
)

const gridThickness = 2

// ArgmaxIndex returns the index of the largest value in output.
func ArgmaxIndex(output []float32) int {
	best := 0
	for i, v := range output {
		if v > output[best] {
			best = i
		}
	}
	return best
}

// GridSize returns n for an n×n grid covering count cells. Counts that
// are not perfect squares are rejected.
func GridSize(count int) (int, error) {
	if count <= 0 {
		return 0, errors.Errorf("grid requires a positive cell count, got %d", count)
	}

	n := int(math.Sqrt(float64(count)))
	if n*n != count {
		return 0, errors.Errorf("cell count %d is not a perfect square", count)
	}

	return n, nil
}

// CellRect returns the pixel rectangle of grid cell idx for an n×n grid
// over a width×height image. Cells are indexed row by row.
func CellRect(idx, n, width, height int) image.Rectangle {
	cellW := width / n
	cellH := height / n
	col := idx % n
	row := idx / n
	return image.Rect(col*cellW, row*cellH, (col+1)*cellW, (row+1)*cellH)
}

// DrawVanishingGrid overlays a uniform grid on the original input image,
// highlights the cell containing the vanishing point, and writes the
// annotated image to outputPath. The output keeps the input's original
// dimensions.
func DrawVanishingGrid(inputPath string, output []float32, outputPath string) error {
	img := gocv.IMRead(inputPath, gocv.IMReadColor)
	if img.Empty() {
		return errors.Errorf("failed to read image: %s", inputPath)
	}
	defer img.Close()

	n, err := GridSize(len(output))
	if err != nil {
		return err
	}

	vp := ArgmaxIndex(output)
	width := img.Cols()
	height := img.Rows()

	for idx := 0; idx < n*n; idx++ {
		if idx == vp {
			continue
		}
		gocv.Rectangle(&img, CellRect(idx, n, width, height), gridColor, gridThickness)
	}

	// Drawn last so the highlight stays on top of neighboring cell edges.
	gocv.Rectangle(&img, CellRect(vp, n, width, height), highlightColor, gridThickness)

	if ok := gocv.IMWrite(outputPath, img); !ok {
		return errors.Errorf("failed to write image: %s", outputPath)
	}

	return nil
}
