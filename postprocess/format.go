package postprocess

import (
	"fmt"
	"strings"
)

// FormatTensor renders a raw output vector for terminal display.
func FormatTensor(output []float32, shape []int64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "tensor(shape=%v, [", shape)
	for i, v := range output {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.4f", v)
	}
	b.WriteString("])")

	return b.String()
}
