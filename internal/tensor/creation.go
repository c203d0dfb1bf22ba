package tensor

import (
	"fmt"
	"math"
)

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's buffer in row-major order.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return New(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float32) (*Tensor, error) {
	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Arange creates a 1-D tensor with values from start to end (exclusive),
// advancing by step. It produces ceil((end-start)/step) elements by repeated
// accumulation, so float rounding follows the running sum.
func Arange(start, end, step float32) (*Tensor, error) {
	if step <= 0 {
		return nil, fmt.Errorf("arange: step must be positive, got %v", step)
	}
	if start >= end {
		return nil, fmt.Errorf("arange: start %v must be less than end %v", start, end)
	}

	n := int(math.Ceil(float64(end-start) / float64(step)))
	t, err := New(Shape{n})
	if err != nil {
		return nil, err
	}

	v := start
	for i := range t.data {
		t.data[i] = v
		v += step
	}
	return t, nil
}
