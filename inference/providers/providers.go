// Package providers - compute backends and ONNX Runtime inference sessions.
package providers

import (
	"sync"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// Backend identifies a compute backend for inference.
type Backend string

const (
	// BackendCPU runs inference on the default CPU execution provider.
	BackendCPU Backend = "cpu"
	// BackendCUDA runs inference on NVIDIA CUDA.
	BackendCUDA Backend = "cuda"
	// BackendAuto probes for accelerated hardware and degrades to CPU.
	BackendAuto Backend = "auto"
)

// Accelerated reports whether the backend runs on accelerated hardware.
func (b Backend) Accelerated() bool {
	return b == BackendCUDA
}

var (
	ortOnce    sync.Once
	ortInitErr error
)

// initEnvironment initializes the ONNX Runtime environment once per
// process.
func initEnvironment() error {
	ortOnce.Do(func() {
		ort.SetSharedLibraryPath(GetSharedLibPath())
		ortInitErr = ort.InitializeEnvironment()
	})
	return ortInitErr
}

// Select resolves a backend request. "auto" probes for a usable CUDA
// execution provider and falls back to CPU when none is available.
func Select(requested string) (Backend, error) {
	switch Backend(requested) {
	case BackendCPU:
		return BackendCPU, nil
	case BackendCUDA:
		return BackendCUDA, nil
	case BackendAuto:
		return detect(), nil
	default:
		return "", errors.Errorf("unknown backend: %s", requested)
	}
}

// detect probes for CUDA. Any failure, including a missing ONNX Runtime
// library, selects the CPU backend.
func detect() Backend {
	if err := initEnvironment(); err != nil {
		return BackendCPU
	}

	opts, err := ort.NewCUDAProviderOptions()
	if err != nil {
		return BackendCPU
	}
	opts.Destroy()

	return BackendCUDA
}
