package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/roadsight-ai/go-predict/benchmark"
	"github.com/roadsight-ai/go-predict/images"
	"github.com/roadsight-ai/go-predict/inference/providers"
	"github.com/roadsight-ai/go-predict/models"
	"github.com/roadsight-ai/go-predict/postprocess"
	"github.com/roadsight-ai/go-predict/util"
)

// Options holds the resolved configuration for one prediction run.
type Options struct {
	InputPath   string
	Edges       bool
	Model       string
	Channels    int
	WeightsPath string
	OutputPath  string
	Vanishing   bool
	Backend     string
}

// Predict runs the full pipeline: load and preprocess the input image,
// create an inference session for the selected model variant, run the
// forward pass (benchmarked on accelerated hardware), and export the
// visualization for the variant's output kind.
func Predict(opts Options) error {
	backend, err := providers.Select(opts.Backend)
	if err != nil {
		return err
	}
	logrus.Infof("Device: %s", backend)

	variant := models.Resolve(opts.Model)
	logrus.Infof("Model: %s", variant.Name)

	// Input
	data, err := util.ReadImageFile(opts.InputPath)
	if err != nil {
		return err
	}

	img, format, err := images.Decode(data)
	if err != nil {
		return err
	}
	logrus.Debugf("Decoded %s input: %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())

	if opts.Edges {
		img, err = images.ToEdges(img)
		if err != nil {
			return err
		}
	}

	pre, err := images.NewPreprocessor(variant.PreprocessConfig(opts.Edges))
	if err != nil {
		return err
	}

	input, err := pre.Process(img)
	if err != nil {
		return err
	}

	// Session
	session, err := providers.NewSession(providers.SessionArgs{
		ModelPath:   variant.ModelPath(opts.WeightsPath),
		Backend:     backend,
		InputName:   variant.InputName,
		OutputName:  variant.OutputName,
		InputShape:  input.Shape,
		OutputShape: variant.OutputShape(int64(opts.Channels)),
	})
	if err != nil {
		return err
	}
	defer session.Close()

	logrus.Infof("Model size: %d bytes", session.ModelSize())

	copy(session.InputData(), input.Data)

	// Prediction
	if backend.Accelerated() {
		result, err := benchmark.Run(benchmark.DefaultScenario(), session.Run)
		if err != nil {
			return err
		}
		logrus.Infof("Inference time (mean): %v", result.Mean)
		logrus.Infof("Inference time (std): %v", result.StdDev)
		logrus.Debugf("Throughput: %.1f passes/s", result.PassesPerSecond)
	} else {
		if err := session.Run(); err != nil {
			return err
		}
	}

	output := session.OutputData()

	// Exportation
	switch variant.Kind {
	case models.KindSegmentation:
		mask, err := postprocess.SegmentationImage(output, opts.Channels, variant.InputHeight, variant.InputWidth)
		if err != nil {
			return err
		}
		if err := images.SavePNG(opts.OutputPath, mask); err != nil {
			return err
		}
		logrus.Infof("Wrote segmentation mask to %s", opts.OutputPath)
	case models.KindDepth:
		depth, err := postprocess.DepthImage(output, variant.InputHeight, variant.InputWidth)
		if err != nil {
			return err
		}
		if err := images.SavePNG(opts.OutputPath, depth); err != nil {
			return err
		}
		logrus.Infof("Wrote depth map to %s", opts.OutputPath)
	default:
		fmt.Printf("Output: %s\n", postprocess.FormatTensor(output, variant.OutputShape(int64(opts.Channels))))
	}

	// Vanishing point overlay replaces any earlier write to the output path.
	if opts.Vanishing {
		if err := postprocess.DrawVanishingGrid(opts.InputPath, output, opts.OutputPath); err != nil {
			return errors.Wrap(err, "vanishing point overlay failed")
		}
		logrus.Infof("Wrote vanishing point overlay to %s", opts.OutputPath)
	}

	return nil
}
