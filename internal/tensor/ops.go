package tensor

import "fmt"

// Add performs element-wise addition with NumPy-style broadcasting.
// The result is a freshly allocated tensor with the broadcast shape; neither
// operand is mutated and the output never aliases an input buffer.
func Add(a, b *Tensor) (*Tensor, error) {
	out, err := binaryOp(a, b, func(x, y float32) float32 { return x + y })
	if err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	return out, nil
}

// Mul performs element-wise multiplication with NumPy-style broadcasting.
func Mul(a, b *Tensor) (*Tensor, error) {
	out, err := binaryOp(a, b, func(x, y float32) float32 { return x * y })
	if err != nil {
		return nil, fmt.Errorf("mul: %w", err)
	}
	return out, nil
}

func binaryOp(a, b *Tensor, op func(x, y float32) float32) (*Tensor, error) {
	outShape, needsBroadcast, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}

	out, err := New(outShape)
	if err != nil {
		return nil, err
	}

	// Fast path: identical shapes over packed buffers walk storage directly.
	if !needsBroadcast && a.IsContiguous() && b.IsContiguous() {
		for i := range out.data {
			out.data[i] = op(a.data[i], b.data[i])
		}
		return out, nil
	}

	// Broadcast path: enumerate output multi-indices in row-major order and
	// gather each operand through its own strides, so transposed and other
	// non-contiguous views read correctly.
	idx := make([]int, len(outShape))
	for i := range out.data {
		out.data[i] = op(a.data[broadcastOffset(idx, a.shape, a.stride)],
			b.data[broadcastOffset(idx, b.shape, b.stride)])
		advance(idx, outShape)
	}
	return out, nil
}

// broadcastOffset maps an output multi-index to an operand's flat offset.
// The operand's shape is right-aligned against the index; size-1 dimensions
// pin their index to 0.
func broadcastOffset(idx []int, shape Shape, stride []int) int {
	offset := 0
	diff := len(idx) - len(shape)
	for i := range shape {
		dimIdx := idx[diff+i]
		if shape[i] == 1 {
			dimIdx = 0
		}
		offset += dimIdx * stride[i]
	}
	return offset
}
