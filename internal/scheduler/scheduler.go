package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/SceneIt_Go/internal/logger"
	"github.com/osse101/SceneIt_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool Enqueuer
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. A non-positive interval
// leaves the job unscheduled. A tick that finds the queue full is skipped.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	if interval <= 0 {
		logger.Info("Scheduled job disabled", "job", job.Name())
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.pool.Enqueue(job) {
					logger.Warn("Skipped scheduled run", "job", job.Name())
				}
			case <-s.quit:
				return
			}
		}
	}()
	logger.Info("Job scheduled", "job", job.Name(), "interval", interval)
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
