package extractor

import (
	"runtime"
	"sync"
)

// workerPool runs compositing jobs on a bounded set of goroutines. Avatars
// are independent and the source buffer is read-only, so jobs need no
// coordination beyond completion tracking.
type workerPool struct {
	jobs chan func()
	wg   sync.WaitGroup
}

// newWorkerPool starts a pool with the given number of workers, defaulting
// to one per CPU when workers is not positive.
func newWorkerPool(workers int) *workerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &workerPool{jobs: make(chan func(), workers*2)}
	for i := 0; i < workers; i++ {
		go func() {
			for job := range p.jobs {
				job()
				p.wg.Done()
			}
		}()
	}
	return p
}

// Submit queues a job. Blocks when the queue is full.
func (p *workerPool) Submit(job func()) {
	p.wg.Add(1)
	p.jobs <- job
}

// Wait blocks until every submitted job has completed.
func (p *workerPool) Wait() {
	p.wg.Wait()
}

// Close shuts the pool down. No jobs may be submitted afterwards.
func (p *workerPool) Close() {
	close(p.jobs)
}
