package tensor

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Fprint writes a nested-bracket rendering of the tensor's logical contents
// to w. Elements are read through the current strides, so views print in
// logical order regardless of storage layout. Integral values print bare,
// otherwise four decimal places are used throughout.
func Fprint(w io.Writer, t *Tensor) error {
	format := "%g"
	for _, v := range t.data {
		if v != float32(math.Trunc(float64(v))) {
			format = "%.4f"
			break
		}
	}

	var sb strings.Builder
	idx := make([]int, t.Ndim())
	writeDim(&sb, t, idx, 0, format)
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// Sprint returns the rendering produced by Fprint as a string.
func Sprint(t *Tensor) string {
	var sb strings.Builder
	_ = Fprint(&sb, t)
	return sb.String()
}

func writeDim(sb *strings.Builder, t *Tensor, idx []int, dim int, format string) {
	if dim == t.Ndim()-1 {
		sb.WriteString("[")
		for i := 0; i < t.shape[dim]; i++ {
			if i > 0 {
				sb.WriteString(" ")
			}
			idx[dim] = i
			fmt.Fprintf(sb, format, t.At(idx...))
		}
		sb.WriteString("]")
		idx[dim] = 0
		return
	}

	sb.WriteString("[")
	for i := 0; i < t.shape[dim]; i++ {
		if i > 0 {
			sb.WriteString("\n")
			// Blank lines between blocks grow with the nesting distance.
			for j := 0; j < t.Ndim()-dim-2; j++ {
				sb.WriteString("\n")
			}
			sb.WriteString(strings.Repeat(" ", dim+1))
		}
		idx[dim] = i
		writeDim(sb, t, idx, dim+1, format)
	}
	sb.WriteString("]")
	idx[dim] = 0
}
