package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pos-client/internal/logger"
)

// DefaultPeriodicInterval is used when a job is created with a
// non-positive interval.
const DefaultPeriodicInterval = time.Minute

// PeriodicJob calls a task on a ticker. It is idle until Start is called.
type PeriodicJob struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context) error
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ Worker = (*PeriodicJob)(nil)

// NewPeriodicJob creates a job running task every interval. Task errors are
// logged and do not stop the job.
func NewPeriodicJob(name string, interval time.Duration, task func(ctx context.Context) error, log *logger.Logger) *PeriodicJob {
	if interval <= 0 {
		interval = DefaultPeriodicInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PeriodicJob{name: name, interval: interval, task: task, logger: log}
}

// Start stops any previous run, then launches a goroutine that runs the
// task every interval until ctx is cancelled or Stop is called.
func (j *PeriodicJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.task(jobCtx); err != nil {
					j.logger.Warn().Err(err).
						Str("func", "PeriodicJob.Start").
						Str("job", j.name).
						Msg("periodic task failed")
				}
			}
		}
	}()
}

// Stop cancels the job and waits for its goroutine to exit.
func (j *PeriodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
