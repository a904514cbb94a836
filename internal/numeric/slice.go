package numeric

import "math"

// SliceOps implements Ops with plain per-element loops.
type SliceOps struct{}

func NewSliceOps() *SliceOps { return &SliceOps{} }

func (*SliceOps) Name() string { return "slice" }

func (*SliceOps) Min(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	m := xs[0]
	for _, v := range xs[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

func (*SliceOps) Max(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	m := xs[0]
	for _, v := range xs[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

func (*SliceOps) Round(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = math.Round(v)
	}
	return out
}

func (*SliceOps) Apply(xs []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = fn(v)
	}
	return out
}

func (*SliceOps) ToInt(xs []float64) []int {
	out := make([]int, len(xs))
	for i, v := range xs {
		out[i] = int(v)
	}
	return out
}
