package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SceneIt_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	block    chan struct{}
}

func (j *testJob) Name() string { return "test" }

func (j *testJob) Process(ctx context.Context) error {
	if j.block != nil {
		select {
		case <-j.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	require.True(t, pool.Enqueue(job))
	require.True(t, pool.Enqueue(job))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == TestExpectedJobCount
	}, time.Second, 5*time.Millisecond)

	pool.Stop()
	checker.Check(0)
}

func TestPool_EnqueueDoesNotBlockWhenFull(t *testing.T) {
	var executed int32
	block := make(chan struct{})
	pool := NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	job := &testJob{executed: &executed, block: block}
	require.True(t, pool.Enqueue(job))

	// Wait for the worker to pick up the first job so the queue is empty again
	assert.Eventually(t, func() bool { return len(pool.jobQueue) == 0 }, time.Second, time.Millisecond)

	require.True(t, pool.Enqueue(job))
	assert.False(t, pool.Enqueue(job), "queue of one should reject a second waiting job")

	close(block)
}

func TestPool_StopCancelsRunningJobs(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed int32
	pool := NewPool(1, 1)
	pool.Start()

	require.True(t, pool.Enqueue(&testJob{executed: &executed, block: make(chan struct{})}))
	time.Sleep(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not cancel the blocked job")
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&executed))
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}), "stopped pool accepts no jobs")
	checker.Check(0)
}

type stubReconciler struct {
	fixed int
	err   error
	calls int32
}

func (s *stubReconciler) ReconcileCounters(context.Context) (int, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.fixed, s.err
}

func TestCounterReconcileJob(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := &stubReconciler{fixed: 3}
		job := NewCounterReconcileJob(r)

		assert.NoError(t, job.Process(context.Background()))
		assert.Equal(t, int32(1), r.calls)
		assert.Equal(t, JobNameCounterReconcile, job.Name())
	})

	t.Run("Error Propagates", func(t *testing.T) {
		r := &stubReconciler{err: errors.New("db down")}

		assert.EqualError(t, NewCounterReconcileJob(r).Process(context.Background()), "db down")
	})
}
