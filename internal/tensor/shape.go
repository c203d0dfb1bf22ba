// Package tensor provides the core strided float32 tensor engine for loom.
package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one dimension and that every
// dimension is positive.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("shape must have at least one dimension")
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// stride[i] is the number of elements to advance in the flat buffer to move
// one step along dimension i: stride[last] = 1, stride[i] = stride[i+1] * s[i+1].
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// ResolveDim maps a possibly negative dimension index into [0, ndim).
// Negative values count from the end: -1 is the last dimension.
func ResolveDim(dim, ndim int) (int, error) {
	d := dim
	if d < 0 {
		d += ndim
	}
	if d < 0 || d >= ndim {
		return 0, fmt.Errorf("dimension %d out of range [-%d, %d)", dim, ndim, ndim)
	}
	return d, nil
}

// inferShape resolves at most one -1 wildcard entry against the given element
// count. It returns the resolved shape, the index of the inferred dimension
// (-1 when the shape had no wildcard), and an error when more than one
// wildcard is present, another entry is invalid, or the element count is not
// evenly divisible by the product of the known dimensions.
func inferShape(numel int, shape Shape) (Shape, int, error) {
	inferIdx := -1
	product := 1
	for i, dim := range shape {
		switch {
		case dim == -1:
			if inferIdx >= 0 {
				return nil, 0, fmt.Errorf("shape %v has more than one inferred dimension", shape)
			}
			inferIdx = i
		case dim <= 0:
			return nil, 0, fmt.Errorf("invalid dimension at index %d: %d (must be > 0 or -1)", i, dim)
		default:
			product *= dim
		}
	}

	resolved := shape.Clone()
	if inferIdx >= 0 {
		if product == 0 || numel%product != 0 {
			return nil, 0, fmt.Errorf("cannot infer dimension for shape %v from %d elements", shape, numel)
		}
		resolved[inferIdx] = numel / product
	}
	return resolved, inferIdx, nil
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Shapes are compared element-wise from right to left; aligned dimensions are
// compatible when they are equal or one of them is 1, and missing dimensions
// are treated as 1. Returns the broadcast shape, a flag indicating whether
// any dimension actually broadcasts, and an error for incompatible shapes.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := false

	for i := 0; i < maxLen; i++ {
		aDim, bDim := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}
