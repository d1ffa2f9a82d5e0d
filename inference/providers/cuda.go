package providers

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"
)

// CUDAOptions contains arguments for the CUDA execution provider.
// See:
// https://onnxruntime.ai/docs/execution-providers/CUDA-ExecutionProvider.html#configuration-options
type CUDAOptions struct {
	// The device ID.
	DeviceID int `json:"deviceID" yaml:"deviceID"`
	// The size limit of the device memory arena in bytes. Zero leaves the
	// runtime default in place.
	GPUMemLimit int64 `json:"gpuMemLimit" yaml:"gpuMemLimit"`
	// Whether to do copies in the default stream or use separate streams.
	// The recommended setting is true.
	DoCopyInDefaultStream bool `json:"doCopyInDefaultStream" yaml:"doCopyInDefaultStream"`
}

// DefaultCUDAOptions returns options for device 0 with default-stream
// copies.
func DefaultCUDAOptions() CUDAOptions {
	return CUDAOptions{
		DeviceID:              0,
		DoCopyInDefaultStream: true,
	}
}

// ToNativeProviderOptions converts the CUDA options to native provider
// options for session configuration.
func (o *CUDAOptions) ToNativeProviderOptions() (*ort.CUDAProviderOptions, error) {
	opts, err := ort.NewCUDAProviderOptions()
	if err != nil {
		return nil, err
	}

	settings := map[string]string{
		"device_id":                 fmt.Sprintf("%d", o.DeviceID),
		"do_copy_in_default_stream": fmt.Sprintf("%d", boolToInt(o.DoCopyInDefaultStream)),
	}
	if o.GPUMemLimit > 0 {
		settings["gpu_mem_limit"] = fmt.Sprintf("%d", o.GPUMemLimit)
	}

	if err := opts.Update(settings); err != nil {
		opts.Destroy()
		return nil, err
	}

	return opts, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
