// Package util - file loading helpers.
package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// supportedImageExtensions lists the file extensions accepted as image
// inputs.
var supportedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// ReadImageFile validates the extension of path and reads its contents.
func ReadImageFile(path string) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))

	supported := false
	for _, e := range supportedImageExtensions {
		if ext == e {
			supported = true
			break
		}
	}
	if !supported {
		return nil, errors.Errorf("unsupported file extension: %s (supported: %v)",
			ext, supportedImageExtensions)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image file")
	}

	return data, nil
}
