package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines.
// Audit writes and last-login updates go through here so the
// request path never waits on them.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop drains pending tasks and waits for the workers to exit.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
