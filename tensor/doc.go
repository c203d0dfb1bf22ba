// Package tensor is the public API of loom, a minimal strided tensor engine.
//
// # Overview
//
// A Tensor is a dense float32 buffer with a logical shape and per-dimension
// strides. Transform operations (Transpose, Reshape, Squeeze, Unsqueeze)
// rewrite the shape/stride metadata in place and copy data only when a shape
// change cannot be expressed over the existing memory.
//
// # Basic Usage
//
//	import "github.com/loom-ml/loom/tensor"
//
//	func main() {
//	    t, _ := tensor.Arange(1, 7, 1)        // [1 2 3 4 5 6]
//	    t.Reshape(tensor.Shape{2, 3})         // 2x3 view of the same buffer
//	    t.Transpose(0, 1)                     // zero-copy stride swap
//	    s, _ := t.Sum(0, false)               // reduce the leading dimension
//	}
//
// # Views and Materialization
//
// Transpose never copies: it swaps shape and stride entries, usually leaving
// the tensor non-contiguous. Reshape first tries to express the new shape as
// strides over the existing buffer and falls back to Contiguous (a packed
// copy in logical order) only when no compatible view exists. IsContiguous
// reports which case applies.
//
// # Broadcasting
//
// Add and Mul follow NumPy broadcasting rules: shapes align from the right
// and size-1 dimensions expand to match their peer.
//
//	a, _ := tensor.FromSlice([]float32{10, 20}, tensor.Shape{2, 1})
//	b, _ := tensor.Ones(tensor.Shape{2, 3})
//	c, _ := tensor.Add(a, b) // shape (2, 3)
//
// # Errors
//
// Operations with preconditions (malformed shapes, out-of-range dimensions,
// non-broadcastable operands, mismatched reshape element counts) return
// errors. Accessors like At and Item panic on misuse, as indexing a slice
// out of range would.
package tensor
