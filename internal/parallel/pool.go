// Package parallel runs independent jobs on a fixed set of goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines with per-worker queues.
//
// Each worker pulls from its own queue first and steals from the others when
// it runs dry, so one slow file does not hold back the jobs queued behind it.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			fn()
			continue
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}

		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			fn()
		}
	}
}

// drain runs whatever is left in q.
func (p *Pool) drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// Run calls fn(ctx, i) for every i in [0, n) across the workers and waits
// for all calls to return. Once ctx is done, jobs that have not started are
// skipped and Run returns ctx.Err(). Run on a closed pool returns
// ErrClosed without calling fn.
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int)) error {
	if !p.running.Load() {
		return ErrClosed
	}
	if n <= 0 {
		return ctx.Err()
	}

	var pending sync.WaitGroup
	pending.Add(n)

	submitted := 0
submit:
	for i := range n {
		job := func() {
			defer pending.Done()
			if ctx.Err() != nil {
				return
			}
			fn(ctx, i)
		}
		select {
		case p.queues[i%p.workers] <- job:
			submitted++
		case <-ctx.Done():
			break submit
		case <-p.done:
			break submit
		}
	}
	for range n - submitted {
		pending.Done()
	}

	pending.Wait()
	return ctx.Err()
}

// Close stops the workers after the queued jobs have run.
// Close is safe to call multiple times but must not race with Run.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Queued returns an approximate count of jobs waiting in the queues.
func (p *Pool) Queued() int {
	total := 0
	for _, q := range p.queues {
		total += len(q)
	}
	return total
}
