package tensor

import "fmt"

// Transpose swaps two dimensions by exchanging their shape and stride
// entries. No data is copied; the tensor generally becomes non-contiguous.
// Transposing a dimension with itself is a no-op. Returns the receiver.
func (t *Tensor) Transpose(dim1, dim2 int) (*Tensor, error) {
	ndim := t.Ndim()

	d1, err := ResolveDim(dim1, ndim)
	if err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}
	d2, err := ResolveDim(dim2, ndim)
	if err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}

	if d1 == d2 {
		return t, nil
	}

	t.shape[d1], t.shape[d2] = t.shape[d2], t.shape[d1]
	t.stride[d1], t.stride[d2] = t.stride[d2], t.stride[d1]
	return t, nil
}

// IsContiguous reports whether the tensor's strides describe a packed
// row-major layout: scanning from the last dimension backward, each stride
// must equal the running product of the shapes behind it.
func (t *Tensor) IsContiguous() bool {
	expected := 1
	for i := t.Ndim() - 1; i >= 0; i-- {
		if t.stride[i] != expected {
			return false
		}
		expected *= t.shape[i]
	}
	return true
}

// Contiguous materializes the tensor into a packed row-major buffer.
// Already-contiguous tensors are returned unchanged without copying.
//
// The copy walks every multi-index in row-major enumeration order while
// tracking the source offset with a carry-propagating odometer: the fastest
// index advances by its stride, and on reaching its bound the offset is
// pulled back to the dimension's base and the next-slower index carries.
// Returns the receiver.
func (t *Tensor) Contiguous() *Tensor {
	if t.IsContiguous() {
		return t
	}

	ndim := t.Ndim()
	packed := make([]float32, t.NumElements())
	idx := make([]int, ndim)
	offset := 0

	for i := range packed {
		packed[i] = t.data[offset]

		for d := ndim - 1; d >= 0; d-- {
			idx[d]++
			offset += t.stride[d]
			if idx[d] < t.shape[d] {
				break
			}
			idx[d] = 0
			offset -= t.shape[d] * t.stride[d]
		}
	}

	t.data = packed
	t.stride = t.shape.ComputeStrides()
	return t
}

// Squeeze removes the given dimension when its size is 1. Tensors of one
// dimension, and dimensions of size other than 1, are returned unchanged.
// Returns the receiver.
func (t *Tensor) Squeeze(dim int) (*Tensor, error) {
	ndim := t.Ndim()

	d, err := ResolveDim(dim, ndim)
	if err != nil {
		return nil, fmt.Errorf("squeeze: %w", err)
	}

	if ndim <= 1 || t.shape[d] != 1 {
		return t, nil
	}

	t.shape = append(t.shape[:d], t.shape[d+1:]...)
	t.stride = append(t.stride[:d], t.stride[d+1:]...)
	return t, nil
}

// Unsqueeze inserts a dimension of size 1 at the given position, which is
// resolved against the post-insertion dimension count (so dim may equal the
// current Ndim to append a trailing axis). The inserted stride is derived
// from the following dimension when one exists; a size-1 axis contributes no
// addressing, so the value only has to stay consistent with its neighbors.
// Returns the receiver.
func (t *Tensor) Unsqueeze(dim int) (*Tensor, error) {
	ndim := t.Ndim()

	d, err := ResolveDim(dim, ndim+1)
	if err != nil {
		return nil, fmt.Errorf("unsqueeze: %w", err)
	}

	stride := 1
	if d < ndim {
		stride = t.shape[d] * t.stride[d]
	}

	t.shape = append(t.shape[:d], append(Shape{1}, t.shape[d:]...)...)
	t.stride = append(t.stride[:d], append([]int{stride}, t.stride[d:]...)...)
	return t, nil
}

// resolveViewStrides attempts to express newShape as a reinterpretation of
// the existing strided layout without copying.
//
// Both shapes are walked from the last dimension toward the first. Each
// target dimension consumes source dimensions, accumulating their sizes by
// multiplication until the accumulated size equals the target size; every
// consumed pair must be stride-contiguous with its right neighbor
// (stride[i] == shape[i+1] * stride[i+1]), otherwise the merge needs a copy
// and resolution fails. A size-1 target dimension is unconstrained and gets
// stride 1. Leftover source dimensions of size greater than 1 fail.
func resolveViewStrides(oldShape Shape, oldStride []int, newShape Shape) ([]int, bool) {
	newStride := make([]int, len(newShape))
	si := len(oldShape) - 1

	for ti := len(newShape) - 1; ti >= 0; ti-- {
		size := newShape[ti]
		if size == 1 {
			newStride[ti] = 1
			continue
		}
		if si < 0 {
			return nil, false
		}

		acc := oldShape[si]
		j := si
		for acc < size {
			if j == 0 {
				return nil, false
			}
			if oldStride[j-1] != oldShape[j]*oldStride[j] {
				return nil, false
			}
			j--
			acc *= oldShape[j]
		}
		if acc != size {
			return nil, false
		}

		// The merged dimension advances by the innermost stride of the group.
		newStride[ti] = oldStride[si]
		si = j - 1
	}

	for ; si >= 0; si-- {
		if oldShape[si] != 1 {
			return nil, false
		}
	}
	return newStride, true
}

// Reshape changes the tensor's shape to newShape, which may contain a single
// -1 wildcard inferred from the element count. The element count must not
// change.
//
// Contiguous tensors receive freshly computed row-major strides. For
// non-contiguous tensors a stride-preserving view is attempted first; only
// when no compatible view exists is the tensor materialized before the
// row-major strides are computed. Returns the receiver.
func (t *Tensor) Reshape(newShape Shape) (*Tensor, error) {
	numel := t.NumElements()

	resolved, _, err := inferShape(numel, newShape)
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if resolved.NumElements() != numel {
		return nil, fmt.Errorf("reshape: cannot reshape %d elements to shape %v (%d elements)",
			numel, resolved, resolved.NumElements())
	}

	if t.IsContiguous() {
		t.shape = resolved
		t.stride = resolved.ComputeStrides()
		return t, nil
	}

	if stride, ok := resolveViewStrides(t.shape, t.stride, resolved); ok {
		t.shape = resolved
		t.stride = stride
		return t, nil
	}

	t.Contiguous()
	t.shape = resolved
	t.stride = resolved.ComputeStrides()
	return t, nil
}
