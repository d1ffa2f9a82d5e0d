package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownVariants(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		height int
		width  int
	}{
		{"densenet121", KindClassifier, 180, 320},
		{"densenet161", KindClassifier, 180, 320},
		{"small", KindClassifier, 180, 320},
		{"unet", KindSegmentation, 180, 320},
		{"midas", KindDepth, 224, 384},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Resolve(tt.name)
			assert.Equal(t, Name(tt.name), v.Name, "resolved variant should keep its name")
			assert.Equal(t, tt.kind, v.Kind, "variant kind should match")
			assert.Equal(t, tt.height, v.InputHeight, "input height should match")
			assert.Equal(t, tt.width, v.InputWidth, "input width should match")
		})
	}
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	v := Resolve("resnet50")
	assert.Equal(t, DefaultName, v.Name, "unknown names should resolve to the default variant")
}

func TestMiDaSRequiresNoWeights(t *testing.T) {
	v := Resolve("midas")
	assert.False(t, v.RequiresWeights, "midas ships pretrained")
	assert.NotEmpty(t, v.PretrainedPath, "midas should carry a pretrained model path")
	assert.Equal(t, v.PretrainedPath, v.ModelPath("weights.onnx"),
		"the weights flag should be ignored for pretrained variants")
}

func TestModelPathUsesWeightsFlag(t *testing.T) {
	v := Resolve("unet")
	assert.Equal(t, "trained.onnx", v.ModelPath("trained.onnx"))
}

func TestOutputShapes(t *testing.T) {
	assert.Equal(t, []int64{1, 2}, Resolve("densenet161").OutputShape(2),
		"classifier output is a flat score vector")
	assert.Equal(t, []int64{1, 2, 180, 320}, Resolve("unet").OutputShape(2),
		"segmentation output is a class score map")
	assert.Equal(t, []int64{1, 224, 384}, Resolve("midas").OutputShape(2),
		"depth output is a single channel map")
}

func TestPreprocessConfig(t *testing.T) {
	v := Resolve("densenet161")

	rgb := v.PreprocessConfig(false)
	assert.Equal(t, 3, rgb.Channels)
	assert.Equal(t, 320, rgb.Width)
	assert.Equal(t, 180, rgb.Height)

	gray := v.PreprocessConfig(true)
	assert.Equal(t, 1, gray.Channels, "edge inputs are single channel")
}

func TestNamesCoversRegistry(t *testing.T) {
	assert.Len(t, Names(), 5, "the variant set is closed at five models")
}
