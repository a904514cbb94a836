package numeric

import "sync"

// FloatPool recycles float64 scratch buffers between batch operations.
// Callers must Put buffers back once done; buffers obtained from Get are
// zero-length with at least the requested capacity.
type FloatPool struct {
	pool sync.Pool
}

func NewFloatPool() *FloatPool {
	return &FloatPool{
		pool: sync.Pool{
			New: func() interface{} {
				b := make([]float64, 0, 64)
				return &b
			},
		},
	}
}

func (p *FloatPool) Get(n int) []float64 {
	b := *p.pool.Get().(*[]float64)
	if cap(b) < n {
		b = make([]float64, 0, n)
	}
	return b[:0]
}

func (p *FloatPool) Put(b []float64) {
	b = b[:0]
	p.pool.Put(&b)
}
