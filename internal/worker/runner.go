// Package worker runs fire-and-forget background jobs where only the
// most recent submission matters.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of background work. It should return promptly once
// its context is cancelled.
type Job func(ctx context.Context)

// Runner executes at most one job at a time with latest-wins
// semantics: submitting a new job cancels the context of any job
// still in flight. Submit never blocks the caller.
type Runner struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewRunner creates an idle Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Submit starts job on its own goroutine, first cancelling whatever
// was submitted before it.
func (r *Runner) Submit(job Job) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.mu.Unlock()

	go func() {
		defer cancel()
		job(ctx)
	}()
}

// Stop cancels the in-flight job, if any.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
