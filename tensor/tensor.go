package tensor

import (
	"io"

	"github.com/loom-ml/loom/internal/tensor"
)

// Tensor is a dense float32 buffer with a logical shape and per-dimension
// strides. See the package documentation for the view semantics.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// New allocates a contiguous row-major tensor of the given shape.
func New(shape Shape) (*Tensor, error) {
	return tensor.New(shape)
}

// FromSlice creates a tensor from a Go slice, copied in row-major order.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float32) (*Tensor, error) {
	return tensor.Full(shape, value)
}

// Arange creates a 1-D tensor with values from start to end (exclusive),
// advancing by step.
func Arange(start, end, step float32) (*Tensor, error) {
	return tensor.Arange(start, end, step)
}

// Add performs element-wise addition with NumPy-style broadcasting.
func Add(a, b *Tensor) (*Tensor, error) {
	return tensor.Add(a, b)
}

// Mul performs element-wise multiplication with NumPy-style broadcasting.
func Mul(a, b *Tensor) (*Tensor, error) {
	return tensor.Mul(a, b)
}

// BroadcastShapes computes the NumPy-style broadcast of two shapes.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// ResolveDim maps a possibly negative dimension index into [0, ndim).
func ResolveDim(dim, ndim int) (int, error) {
	return tensor.ResolveDim(dim, ndim)
}

// Fprint writes a nested-bracket rendering of the tensor to w.
func Fprint(w io.Writer, t *Tensor) error {
	return tensor.Fprint(w, t)
}

// Sprint returns a nested-bracket rendering of the tensor.
func Sprint(t *Tensor) string {
	return tensor.Sprint(t)
}
