package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SceneIt_Go/internal/testing/leaktest"
	"github.com/osse101/SceneIt_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	runs atomic.Int32
	Done chan struct{}
}

func (m *MockJob) Name() string { return "mock" }

func (m *MockJob) Process(ctx context.Context) error {
	m.runs.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 10)
	pool.Start()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	sched.Stop()
	sched.Stop()
	pool.Stop()

	assert.GreaterOrEqual(t, int(job.runs.Load()), 2)
	checker.Check(0)
}

type rejectingPool struct{ attempts atomic.Int32 }

func (p *rejectingPool) Enqueue(worker.Job) bool {
	p.attempts.Add(1)
	return false
}

func TestScheduler_SkipsTickWhenQueueFull(t *testing.T) {
	pool := &rejectingPool{}
	sched := New(pool)
	sched.Schedule(5*time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})

	assert.Eventually(t, func() bool { return pool.attempts.Load() >= 3 }, time.Second, 5*time.Millisecond)
	sched.Stop()
}

func TestScheduler_ZeroIntervalDisabled(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	pool := &rejectingPool{}

	sched := New(pool)
	sched.Schedule(0, &MockJob{})
	time.Sleep(20 * time.Millisecond)
	sched.Stop()

	assert.Equal(t, int32(0), pool.attempts.Load())
	checker.Check(0)
}
