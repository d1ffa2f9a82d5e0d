package providers

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	ort "github.com/yalue/onnxruntime_go"
)

// Session wraps an ONNX Runtime session with preallocated input and
// output tensors.
type Session struct {
	session   *ort.AdvancedSession
	input     *ort.Tensor[float32]
	output    *ort.Tensor[float32]
	modelSize int64
}

// SessionArgs represents the arguments for creating an inference session.
type SessionArgs struct {
	// ModelPath is the path to the serialized ONNX model file.
	ModelPath string
	// Backend selects the execution provider.
	Backend Backend
	// InputName and OutputName are the graph node names to bind.
	InputName  string
	OutputName string
	// InputShape and OutputShape are the fixed tensor shapes, including
	// the batch dimension.
	InputShape  []int64
	OutputShape []int64
	// CUDA overrides the CUDA provider options. Nil uses the defaults.
	CUDA *CUDAOptions
}

// NewSession loads the model and creates an ONNX Runtime session with
// preallocated input and output tensors. Tensor cleanup is handled by
// Close.
func NewSession(args SessionArgs) (*Session, error) {
	info, err := os.Stat(args.ModelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "model file not found: %s", args.ModelPath)
	}

	if err := initEnvironment(); err != nil {
		return nil, fmt.Errorf("error initializing ORT environment: %w", err)
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(args.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("error creating input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(args.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("error creating output tensor: %w", err)
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("error creating ORT session options: %w", err)
	}
	defer options.Destroy()

	options.SetIntraOpNumThreads(0)
	options.SetInterOpNumThreads(0)
	options.SetGraphOptimizationLevel(ort.GraphOptimizationLevelEnableExtended)

	if args.Backend == BackendCUDA {
		if err := appendCUDA(options, args.CUDA); err != nil {
			// CUDA is best effort; the session still runs on CPU.
			logrus.Warnf("CUDA unavailable, falling back to CPU: %v", err)
		}
	}

	session, err := ort.NewAdvancedSession(
		args.ModelPath,
		[]string{args.InputName},
		[]string{args.OutputName},
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{outputTensor},
		options,
	)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("error creating ORT session: %w", err)
	}

	return &Session{
		session:   session,
		input:     inputTensor,
		output:    outputTensor,
		modelSize: info.Size(),
	}, nil
}

// appendCUDA attaches the CUDA execution provider to the session options.
func appendCUDA(options *ort.SessionOptions, opts *CUDAOptions) error {
	cudaOpts := DefaultCUDAOptions()
	if opts != nil {
		cudaOpts = *opts
	}

	native, err := cudaOpts.ToNativeProviderOptions()
	if err != nil {
		return fmt.Errorf("error converting CUDA options: %w", err)
	}
	defer native.Destroy()

	if err := options.AppendExecutionProviderCUDA(native); err != nil {
		return fmt.Errorf("error enabling CUDA: %w", err)
	}

	return nil
}

// Run executes one forward pass over the bound tensors.
func (s *Session) Run() error {
	if err := s.session.Run(); err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}
	return nil
}

// InputData returns the input tensor buffer. Callers copy the
// preprocessed image into it before Run.
func (s *Session) InputData() []float32 {
	return s.input.GetData()
}

// OutputData returns a copy of the output tensor contents.
func (s *Session) OutputData() []float32 {
	data := s.output.GetData()
	out := make([]float32, len(data))
	copy(out, data)
	return out
}

// ModelSize returns the size in bytes of the loaded model file.
func (s *Session) ModelSize() int64 {
	return s.modelSize
}

// Close releases the session and its tensors.
func (s *Session) Close() error {
	if s.input != nil {
		s.input.Destroy()
		s.input = nil
	}

	if s.output != nil {
		s.output.Destroy()
		s.output = nil
	}

	if s.session != nil {
		if err := s.session.Destroy(); err != nil {
			return fmt.Errorf("error destroying ORT session: %w", err)
		}
		s.session = nil
	}

	return nil
}
