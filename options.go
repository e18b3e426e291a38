package uvmap

import "github.com/gogpu/uvmap/internal/parallel"

// Option configures Generate, GenerateReverse and Remap.
//
// Example:
//
//	// Expand a 4K map on every core
//	f, err := uvmap.Generate(seed, g, uvmap.WithWorkers(0))
type Option func(*options)

type options struct {
	workers  int
	parallel bool
}

func defaultOptions() options {
	return options{workers: 1}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers expands rows on n goroutines. n <= 0 uses GOMAXPROCS.
// The result is bit-identical to the single-threaded path; only the
// per-pixel expansion is split, the shuffle always runs once.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
		o.parallel = n != 1
	}
}

// forEachRowBand runs fn over [0, rows) according to o, starting and
// stopping a worker pool when more than one worker is requested.
func (o options) forEachRowBand(rows int, fn func(start, end int)) {
	var pool *parallel.WorkerPool
	if o.parallel {
		pool = parallel.NewWorkerPool(o.workers)
		defer pool.Close()
	}
	parallel.ForEachBand(pool, rows, func(b parallel.Band) {
		fn(b.Start, b.End)
	})
}
