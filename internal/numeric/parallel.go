package numeric

import (
	"math"
	"runtime"
	"sync"
)

// Inputs below this length are processed serially; goroutine dispatch
// costs more than the loop itself.
const parallelThreshold = 4096

// ParallelOps implements Ops by chunking large inputs across worker
// goroutines. Results are elementwise identical to SliceOps.
type ParallelOps struct {
	workers int
	serial  SliceOps
}

func NewParallelOps() *ParallelOps {
	return &ParallelOps{workers: runtime.NumCPU()}
}

func (p *ParallelOps) Name() string { return "parallel" }

func (p *ParallelOps) Min(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	if len(xs) < parallelThreshold {
		return p.serial.Min(xs)
	}
	partials := p.reduce(xs, func(chunk []float64) float64 {
		m := chunk[0]
		for _, v := range chunk[1:] {
			if v < m {
				m = v
			}
		}
		return m
	})
	m := partials[0]
	for _, v := range partials[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

func (p *ParallelOps) Max(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	if len(xs) < parallelThreshold {
		return p.serial.Max(xs)
	}
	partials := p.reduce(xs, func(chunk []float64) float64 {
		m := chunk[0]
		for _, v := range chunk[1:] {
			if v > m {
				m = v
			}
		}
		return m
	})
	m := partials[0]
	for _, v := range partials[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

func (p *ParallelOps) Round(xs []float64) []float64 {
	return p.Apply(xs, math.Round)
}

func (p *ParallelOps) Apply(xs []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	if len(xs) < parallelThreshold {
		for i, v := range xs {
			out[i] = fn(v)
		}
		return out
	}
	p.chunks(len(xs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = fn(xs[i])
		}
	})
	return out
}

func (p *ParallelOps) ToInt(xs []float64) []int {
	out := make([]int, len(xs))
	if len(xs) < parallelThreshold {
		for i, v := range xs {
			out[i] = int(v)
		}
		return out
	}
	p.chunks(len(xs), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = int(xs[i])
		}
	})
	return out
}

// chunks splits [0,n) into one contiguous range per worker and runs fn
// on each range concurrently.
func (p *ParallelOps) chunks(n int, fn func(lo, hi int)) {
	workers := p.workers
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

func (p *ParallelOps) reduce(xs []float64, fn func(chunk []float64) float64) []float64 {
	var mu sync.Mutex
	partials := make([]float64, 0, p.workers)
	p.chunks(len(xs), func(lo, hi int) {
		v := fn(xs[lo:hi])
		mu.Lock()
		partials = append(partials, v)
		mu.Unlock()
	})
	return partials
}
