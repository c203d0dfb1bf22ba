package tensor

import "fmt"

// Sum reduces the tensor along the given dimension. The result keeps the
// reduced dimension with size 1 when keepdim is true and drops it otherwise
// (a 1-D input stays rank-1 size-1 either way).
//
// The flat index space decomposes into outer (product of sizes before dim),
// the reduced size itself, and inner (product of sizes after dim); element
// (o, j, i) lives at o*dimsz*inner + j*inner + i in row-major storage. The
// walk therefore requires packed addressing, so a non-contiguous receiver is
// materialized into a working copy first; the receiver itself is never
// mutated.
func (t *Tensor) Sum(dim int, keepdim bool) (*Tensor, error) {
	d, err := ResolveDim(dim, t.Ndim())
	if err != nil {
		return nil, fmt.Errorf("sum: %w", err)
	}

	src := t
	if !t.IsContiguous() {
		src = t.Clone().Contiguous()
	}

	outer, inner := 1, 1
	for i := 0; i < d; i++ {
		outer *= src.shape[i]
	}
	for i := d + 1; i < src.Ndim(); i++ {
		inner *= src.shape[i]
	}
	dimsz := src.shape[d]

	outShape := src.shape.Clone()
	outShape[d] = 1
	out, err := New(outShape)
	if err != nil {
		return nil, fmt.Errorf("sum: %w", err)
	}

	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			var acc float32
			base := o*dimsz*inner + i
			for j := 0; j < dimsz; j++ {
				acc += src.data[base+j*inner]
			}
			out.data[o*inner+i] = acc
		}
	}

	if !keepdim {
		if _, err := out.Squeeze(d); err != nil {
			return nil, fmt.Errorf("sum: %w", err)
		}
	}
	return out, nil
}

// SumAll accumulates every element into a rank-1 size-1 tensor.
// The accumulation order follows the buffer, which is irrelevant to the
// result: a view's buffer holds exactly its elements.
func (t *Tensor) SumAll() *Tensor {
	var acc float32
	for _, v := range t.data {
		acc += v
	}
	return scalar(acc)
}

// Min returns the smallest element as a rank-1 size-1 tensor.
func (t *Tensor) Min() *Tensor {
	m := t.data[0]
	for _, v := range t.data[1:] {
		if v < m {
			m = v
		}
	}
	return scalar(m)
}

// Max returns the largest element as a rank-1 size-1 tensor.
func (t *Tensor) Max() *Tensor {
	m := t.data[0]
	for _, v := range t.data[1:] {
		if v > m {
			m = v
		}
	}
	return scalar(m)
}

func scalar(v float32) *Tensor {
	return &Tensor{
		shape:  Shape{1},
		stride: []int{1},
		data:   []float32{v},
	}
}
