// Package worker provides the bounded queue that per-link fetch jobs run on,
// keeping slow Trello requests off the Discord event dispatch goroutine.
package worker

import (
	"log"
	"sync"
	"time"
)

// Pool runs submitted jobs on a fixed number of workers fed from a single
// bounded queue. Jobs carry no ordering guarantee relative to each other.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPool starts the workers. queueSize bounds how many jobs may be waiting;
// further submissions are dropped rather than blocking the caller.
func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{jobs: make(chan func(), queueSize)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		job()
	}
}

// Submit enqueues a job. It reports false when the queue is full or the pool
// has been stopped; the job is dropped in both cases.
func (p *Pool) Submit(job func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop closes the queue and waits up to grace for queued jobs to finish.
// Jobs still queued or running after the grace period are abandoned.
func (p *Pool) Stop(grace time.Duration) {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(grace):
		log.Printf("Worker shutdown grace period elapsed, abandoning remaining jobs")
	}
}
