package models

// registry is the closed set of model variants.
var registry = map[Name]Variant{
	NameDenseNet121: {
		Name:            NameDenseNet121,
		Kind:            KindClassifier,
		InputHeight:     180,
		InputWidth:      320,
		RequiresWeights: true,
		InputName:       "input",
		OutputName:      "output",
	},
	NameDenseNet161: {
		Name:            NameDenseNet161,
		Kind:            KindClassifier,
		InputHeight:     180,
		InputWidth:      320,
		RequiresWeights: true,
		InputName:       "input",
		OutputName:      "output",
	},
	NameSmallConvNet: {
		Name:            NameSmallConvNet,
		Kind:            KindClassifier,
		InputHeight:     180,
		InputWidth:      320,
		RequiresWeights: true,
		InputName:       "input",
		OutputName:      "output",
	},
	NameUNet: {
		Name:            NameUNet,
		Kind:            KindSegmentation,
		InputHeight:     180,
		InputWidth:      320,
		RequiresWeights: true,
		InputName:       "input",
		OutputName:      "output",
	},
	NameMiDaS: {
		Name:            NameMiDaS,
		Kind:            KindDepth,
		InputHeight:     224,
		InputWidth:      384,
		RequiresWeights: false,
		PretrainedPath:  "midas_v21_small.onnx",
		InputName:       "input",
		OutputName:      "output",
	},
}

// Resolve returns the variant registered under name. Unknown names fall
// back to the default variant rather than failing.
func Resolve(name string) Variant {
	if v, ok := registry[Name(name)]; ok {
		return v
	}
	return registry[DefaultName]
}

// Names returns the registered variant names.
func Names() []Name {
	names := make([]Name, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
