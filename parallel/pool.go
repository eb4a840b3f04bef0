// Package parallel runs independent jobs on a fixed set of workers.
package parallel

import (
	"runtime"
	"sync"
)

type Pool struct {
	wg    sync.WaitGroup
	jobs  chan func()
	close func()
}

// Start spins up numWorkers goroutines; anything below 1 means one worker
// per CPU. With a single worker jobs run inline on the submitting
// goroutine.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{}
	if numWorkers < 2 {
		return pool
	}

	pool.jobs = make(chan func(), numWorkers)
	pool.close = sync.OnceFunc(func() { close(pool.jobs) })
	for i := 0; i < numWorkers; i++ {
		pool.wg.Add(1)
		go func() {
			defer pool.wg.Done()
			for f := range pool.jobs {
				f()
			}
		}()
	}

	return pool
}

// Do submits a job, blocking while all workers are busy.
func (p *Pool) Do(f func()) {
	if p.jobs == nil {
		f()
		return
	}
	p.jobs <- f
}

// Wait blocks until every submitted job has finished. No more jobs may be
// submitted afterwards.
func (p *Pool) Wait() {
	if p.jobs == nil {
		return
	}
	p.close()
	p.wg.Wait()
}
