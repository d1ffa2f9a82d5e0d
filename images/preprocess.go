package images

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Config defines preprocessing for a model input.
type Config struct {
	// Width and Height are the fixed resolution the input is resized to.
	Width  int
	Height int
	// Channels is 1 for grayscale input, 3 for RGB.
	Channels int
}

// Result contains the preprocessed tensor data and metadata.
type Result struct {
	// Data is the normalized float32 tensor in CHW layout.
	Data []float32
	// Shape is the tensor shape [1, C, H, W].
	Shape []int64
	// OriginalWidth and OriginalHeight are the input dimensions before
	// resizing.
	OriginalWidth  int
	OriginalHeight int
}

// Preprocessor converts images into fixed-size normalized tensors.
type Preprocessor struct {
	config Config
}

// NewPreprocessor creates a preprocessor for the given configuration.
func NewPreprocessor(config Config) (*Preprocessor, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, errors.Errorf("invalid input resolution: %dx%d", config.Width, config.Height)
	}
	if config.Channels != 1 && config.Channels != 3 {
		return nil, errors.Errorf("unsupported channel count: %d", config.Channels)
	}

	return &Preprocessor{config: config}, nil
}

// Process resizes the image to the configured resolution and converts it
// to a [0, 1] normalized CHW float32 tensor with a leading batch
// dimension.
func (p *Preprocessor) Process(img image.Image) (*Result, error) {
	if img == nil {
		return nil, errors.New("nil input image")
	}

	bounds := img.Bounds()
	resized := resize.Resize(uint(p.config.Width), uint(p.config.Height), img, resize.Bilinear)

	width := p.config.Width
	height := p.config.Height
	channels := p.config.Channels
	plane := width * height
	data := make([]float32, channels*plane)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			idx := y*width + x

			if channels == 1 {
				// ITU-R BT.601 luma for single channel inputs.
				data[idx] = (0.299*float32(r) + 0.587*float32(g) + 0.114*float32(b)) / 65535.0
				continue
			}

			data[idx] = float32(r) / 65535.0
			data[plane+idx] = float32(g) / 65535.0
			data[2*plane+idx] = float32(b) / 65535.0
		}
	}

	return &Result{
		Data:           data,
		Shape:          []int64{1, int64(channels), int64(height), int64(width)},
		OriginalWidth:  bounds.Dx(),
		OriginalHeight: bounds.Dy(),
	}, nil
}
