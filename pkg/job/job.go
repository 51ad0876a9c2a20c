package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// Func is one run of a periodic job.
type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       Func
}

// Runner runs registered jobs on their own tickers until the context ends.
type Runner struct {
	l    *slog.Logger
	jobs []job
	wg   sync.WaitGroup
}

func NewRunner(l *slog.Logger) *Runner {
	return &Runner{l: l}
}

// Register adds a job. A non-positive interval disables it.
func (r *Runner) Register(name string, interval time.Duration, fn Func) *Runner {
	if interval <= 0 {
		r.l.Warn("job disabled", "job", name)
		return r
	}

	r.jobs = append(r.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return r
}

func (r *Runner) Start(ctx context.Context) {
	for _, j := range r.jobs {
		r.wg.Add(1)

		go r.run(ctx, j)
	}
}

// Wait blocks until every job has stopped.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) run(ctx context.Context, j job) {
	defer r.wg.Done()

	l := r.l.With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Debug("job stopped by ctx")
			return
		case <-ticker.C:
		}

		l.Debug("job started")

		err := runSafe(ctx, j.fn)
		if err != nil {
			l.Error(fmt.Sprintf("job failed: %s", err))
		} else {
			l.Debug("job finished")
		}
	}
}

func runSafe(ctx context.Context, fn Func) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	return fn(ctx)
}
