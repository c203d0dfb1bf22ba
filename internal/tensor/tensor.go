package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense float32 buffer with a logical shape and per-dimension
// strides. Each tensor exclusively owns its shape, stride, and data slices;
// no two live tensors share a buffer. View operations (Transpose, Reshape,
// Squeeze, Unsqueeze) mutate the shape/stride metadata in place without
// touching the data.
type Tensor struct {
	shape  Shape
	stride []int
	data   []float32
}

// New allocates a contiguous row-major tensor of the given shape.
// The buffer is zero-initialized.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float32, shape.NumElements()),
	}, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Stride returns the tensor's per-dimension element strides.
func (t *Tensor) Stride() []int {
	return t.stride
}

// Ndim returns the number of dimensions.
func (t *Tensor) Ndim() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the flat backing buffer.
// The buffer is in storage order, which matches logical order only for
// contiguous tensors.
//
// WARNING: Modifications to the returned slice modify the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// At returns the element at the given multi-index, addressed through the
// current strides. Panics if the number of indices or any index is out of
// bounds.
func (t *Tensor) At(indices ...int) float32 {
	return t.data[t.offsetOf(indices)]
}

// Set sets the element at the given multi-index.
// Panics if the number of indices or any index is out of bounds.
func (t *Tensor) Set(value float32, indices ...int) {
	t.data[t.offsetOf(indices)] = value
}

func (t *Tensor) offsetOf(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.stride[i]
	}
	return offset
}

// Item returns the value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor) Item() float32 {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// Clone creates a deep copy of the tensor, including its buffer and layout.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
		data:   append([]float32(nil), t.data...),
	}
}

// Equal reports whether two tensors have the same shape and the same value
// at every logical position. Layout is not compared: a transposed tensor and
// its materialized copy are equal.
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}

	idx := make([]int, len(t.shape))
	for i := 0; i < t.NumElements(); i++ {
		if t.At(idx...) != other.At(idx...) {
			return false
		}
		advance(idx, t.shape)
	}
	return true
}

// advance steps a multi-index to the next position in row-major order,
// wrapping each dimension at its shape bound.
func advance(idx []int, shape Shape) {
	for d := len(shape) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < shape[d] {
			return
		}
		idx[d] = 0
	}
}

// String returns a short description of the tensor.
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor(shape=%v, stride=%v", t.shape, t.stride)
	if !t.IsContiguous() {
		sb.WriteString(", non-contiguous")
	}
	sb.WriteString(")")
	return sb.String()
}
