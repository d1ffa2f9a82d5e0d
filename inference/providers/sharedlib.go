package providers

import "runtime"

// GetSharedLibPath returns the ONNX Runtime shared library name for the
// current platform. The dynamic loader resolves it through the standard
// library search path.
func GetSharedLibPath() string {
	switch runtime.GOOS {
	case "windows":
		return "onnxruntime.dll"
	case "darwin":
		return "libonnxruntime.dylib"
	default:
		return "libonnxruntime.so"
	}
}
