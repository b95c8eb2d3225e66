// Package tasks runs periodic background maintenance jobs alongside
// the HTTP server. Jobs are interval-driven, run one at a time per
// job, and stop when the runner's context is canceled at shutdown.
package tasks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a named periodic task.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Runner owns a set of jobs and their goroutines.
type Runner struct {
	log    *zap.Logger
	jobs   []Job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRunner creates an empty Runner.
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{log: logger}
}

// Add registers a job. Must be called before Start.
func (r *Runner) Add(j Job) {
	r.jobs = append(r.jobs, j)
}

// Start launches one goroutine per job. Each job runs once immediately,
// then on every interval tick. Job errors are logged, never fatal.
func (r *Runner) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	r.cancel = cancel

	for _, job := range r.jobs {
		job := job
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			r.runJob(ctx, job)

			ticker := time.NewTicker(job.Interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					r.runJob(ctx, job)
				}
			}
		}()
	}

	if len(r.jobs) > 0 {
		r.log.Info("background jobs started", zap.Int("count", len(r.jobs)))
	}
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Runner) runJob(ctx context.Context, job Job) {
	if err := job.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return // shutting down
		}
		r.log.Warn("background job failed",
			zap.String("job", job.Name),
			zap.Error(err))
	}
}
