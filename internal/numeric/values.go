package numeric

import "fmt"

// Values converts loosely typed sequence data to []float64. Supported
// inputs are float64/float32/int/int64 slices and []interface{} holding
// any mix of those element types (the shape JSON decoding produces).
// Anything else fails with ErrNotNumeric.
func Values(v interface{}) ([]float64, error) {
	switch s := v.(type) {
	case []float64:
		out := make([]float64, len(s))
		copy(out, s)
		return out, nil
	case []float32:
		out := make([]float64, len(s))
		for i, x := range s {
			out[i] = float64(x)
		}
		return out, nil
	case []int:
		out := make([]float64, len(s))
		for i, x := range s {
			out[i] = float64(x)
		}
		return out, nil
	case []int64:
		out := make([]float64, len(s))
		for i, x := range s {
			out[i] = float64(x)
		}
		return out, nil
	case []interface{}:
		out := make([]float64, len(s))
		for i, e := range s {
			f, err := scalar(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}

func scalar(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
}
