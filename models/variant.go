// Package models - registry of runnable model variants.
package models

import (
	"github.com/roadsight-ai/go-predict/images"
)

// Kind identifies how a variant's output tensor is interpreted.
type Kind string

const (
	// KindClassifier is a flat per-cell score vector, e.g. the vanishing
	// point grid classifiers.
	KindClassifier Kind = "classifier"
	// KindSegmentation is a per-pixel class score map.
	KindSegmentation Kind = "segmentation"
	// KindDepth is a single channel per-pixel depth map.
	KindDepth Kind = "depth"
)

// Name is the unique identifier of a model variant.
type Name string

const (
	// NameDenseNet121 is the DenseNet backbone with 121 layers.
	NameDenseNet121 Name = "densenet121"
	// NameDenseNet161 is the DenseNet backbone with 161 layers.
	NameDenseNet161 Name = "densenet161"
	// NameSmallConvNet is the small convolutional classifier.
	NameSmallConvNet Name = "small"
	// NameUNet is the U-Net segmentation model.
	NameUNet Name = "unet"
	// NameMiDaS is the pretrained MiDaS depth estimator.
	NameMiDaS Name = "midas"
)

// DefaultName is the variant used when no model is specified.
const DefaultName = NameDenseNet161

// Variant describes one runnable model: its fixed input resolution, how
// its output tensor is shaped and interpreted, and where its serialized
// model comes from.
type Variant struct {
	Name Name
	Kind Kind
	// InputHeight and InputWidth are the fixed resolution inputs are
	// resized to before inference.
	InputHeight int
	InputWidth  int
	// RequiresWeights is false for variants that ship pretrained and
	// resolve their own model path, ignoring the weights flag.
	RequiresWeights bool
	// PretrainedPath is the bundled model path for variants with
	// RequiresWeights false.
	PretrainedPath string
	// InputName and OutputName are the graph node names bound at session
	// creation.
	InputName  string
	OutputName string
}

// ModelPath returns the serialized model path for this variant: the
// weights flag value, or the bundled pretrained path when the variant
// does not take external weights.
func (v Variant) ModelPath(weightsPath string) string {
	if !v.RequiresWeights {
		return v.PretrainedPath
	}
	return weightsPath
}

// OutputShape returns the output tensor shape for the given channel
// count. Classifiers produce a flat score vector, segmentation a class
// score map, depth a single channel map.
func (v Variant) OutputShape(channels int64) []int64 {
	switch v.Kind {
	case KindSegmentation:
		return []int64{1, channels, int64(v.InputHeight), int64(v.InputWidth)}
	case KindDepth:
		return []int64{1, int64(v.InputHeight), int64(v.InputWidth)}
	default:
		return []int64{1, channels}
	}
}

// PreprocessConfig returns the preprocessing configuration for this
// variant. Edge inputs are single channel.
func (v Variant) PreprocessConfig(grayscale bool) images.Config {
	channels := 3
	if grayscale {
		channels = 1
	}
	return images.Config{
		Width:    v.InputWidth,
		Height:   v.InputHeight,
		Channels: channels,
	}
}
