package numeric

import "runtime"

// Ops is the elementwise numeric capability. All methods return fresh
// slices and never mutate their input.
type Ops interface {
	Name() string

	// Min and Max reduce a sequence; both fail with ErrEmpty on empty input.
	Min(xs []float64) (float64, error)
	Max(xs []float64) (float64, error)

	// Round rounds elementwise, half away from zero.
	Round(xs []float64) []float64

	// Apply maps fn over every element.
	Apply(xs []float64, fn func(float64) float64) []float64

	// ToInt truncates each element to an integer.
	ToInt(xs []float64) []int
}

// AutoSelect returns the preferred backend for this machine: parallel when
// more than one CPU is available, plain slice loops otherwise.
func AutoSelect() Ops {
	if runtime.NumCPU() > 1 {
		return NewParallelOps()
	}
	return NewSliceOps()
}
