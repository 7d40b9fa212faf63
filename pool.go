package colortransform

import "github.com/gogpu/colortransform/internal/parallel"

// Pool is a set of worker goroutines shared by bulk conversions.
//
// Pass it to a conversion with WithPool. A Pool may serve any number of
// concurrent conversions. Close it when it is no longer needed.
type Pool struct {
	wp *parallel.WorkerPool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	p := &Pool{wp: parallel.NewWorkerPool(workers)}
	Logger().Debug("colortransform: pool started", "workers", p.wp.Workers())
	return p
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.wp.Workers()
}

// Close stops the workers after queued bands finish. Conversions that use a
// closed pool run serially. Close is safe to call multiple times.
func (p *Pool) Close() {
	if p.wp.IsRunning() {
		Logger().Debug("colortransform: pool closed", "workers", p.wp.Workers())
	}
	p.wp.Close()
}

// rows runs fn over row bands of [0, height), on the pool when one is
// configured.
func (o *options) rows(height int, fn func(y0, y1 int)) {
	var wp *parallel.WorkerPool
	if o.pool != nil {
		wp = o.pool.wp
	}
	bands := parallel.ForEachBand(wp, height, fn)
	if wp != nil && len(bands) > 1 {
		o.logger.Debug("colortransform: parallel conversion", "rows", height, "bands", len(bands))
	}
}
