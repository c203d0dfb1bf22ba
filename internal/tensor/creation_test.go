package tensor

import "testing"

func TestZerosAndOnes(t *testing.T) {
	z, err := Zeros(Shape{2, 2})
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	assertFloatSliceEqual(t, []float32{0, 0, 0, 0}, z.Data(), "Zeros contents")

	o, err := Ones(Shape{2, 2})
	if err != nil {
		t.Fatalf("Ones failed: %v", err)
	}
	assertFloatSliceEqual(t, []float32{1, 1, 1, 1}, o.Data(), "Ones contents")
}

func TestFull(t *testing.T) {
	f, err := Full(Shape{3}, 2.5)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	assertFloatSliceEqual(t, []float32{2.5, 2.5, 2.5}, f.Data(), "Full contents")

	if _, err := Full(Shape{0}, 1); err == nil {
		t.Error("Full with invalid shape should fail")
	}
}

func TestArange(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step float32
		expected         []float32
	}{
		{"unit step", 0, 5, 1, []float32{0, 1, 2, 3, 4}},
		{"offset start", 2, 6, 1, []float32{2, 3, 4, 5}},
		{"fractional step", 0, 1, 0.25, []float32{0, 0.25, 0.5, 0.75}},
		{"partial last step", 0, 5, 2, []float32{0, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Arange(tt.start, tt.end, tt.step)
			if err != nil {
				t.Fatalf("Arange(%v, %v, %v) failed: %v", tt.start, tt.end, tt.step, err)
			}
			if !got.Shape().Equal(Shape{len(tt.expected)}) {
				t.Fatalf("Arange shape = %v, want (%d)", got.Shape(), len(tt.expected))
			}
			assertFloatSliceEqual(t, tt.expected, got.Data(), "Arange contents")
		})
	}
}

func TestArangeInvalid(t *testing.T) {
	if _, err := Arange(5, 5, 1); err == nil {
		t.Error("Arange with start == end should fail")
	}
	if _, err := Arange(6, 5, 1); err == nil {
		t.Error("Arange with start > end should fail")
	}
	if _, err := Arange(0, 5, 0); err == nil {
		t.Error("Arange with zero step should fail")
	}
	if _, err := Arange(0, 5, -1); err == nil {
		t.Error("Arange with negative step should fail")
	}
}
