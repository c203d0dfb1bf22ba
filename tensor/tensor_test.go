package tensor_test

import (
	"testing"

	"github.com/loom-ml/loom/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end flow over the public API: build, view, materialize, reduce.
func TestViewReduceFlow(t *testing.T) {
	tn, err := tensor.Arange(1, 7, 1)
	require.NoError(t, err)

	_, err = tn.Reshape(tensor.Shape{2, 3})
	require.NoError(t, err)
	_, err = tn.Transpose(0, 1)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{3, 2}, tn.Shape())
	assert.Equal(t, []int{1, 3}, tn.Stride())
	assert.False(t, tn.IsContiguous())

	tn.Contiguous()
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, tn.Data())
	assert.Equal(t, []int{2, 1}, tn.Stride())

	total := tn.SumAll()
	assert.Equal(t, float32(21), total.Item())
}

func TestBroadcastArithmetic(t *testing.T) {
	row, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)
	col, err := tensor.FromSlice([]float32{10, 20}, tensor.Shape{2, 1})
	require.NoError(t, err)

	sum, err := tensor.Add(col, row)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, sum.Shape())
	assert.Equal(t, []float32{11, 12, 13, 21, 22, 23}, sum.Data())

	prod, err := tensor.Mul(col, row)
	require.NoError(t, err)
	assert.Equal(t, []float32{10, 20, 30, 20, 40, 60}, prod.Data())
}

func TestSprintRendering(t *testing.T) {
	tn, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, "[[1 2]\n [3 4]]\n", tensor.Sprint(tn))
}
