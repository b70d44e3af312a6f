package worker

import (
	"context"

	"github.com/osse101/SceneIt_Go/internal/logger"
)

// CounterReconciler repairs profile counters that drifted from the true counts
type CounterReconciler interface {
	ReconcileCounters(ctx context.Context) (int, error)
}

// CounterReconcileJob runs counter reconciliation on the pool
type CounterReconcileJob struct {
	reconciler CounterReconciler
}

// NewCounterReconcileJob creates the reconciliation job
func NewCounterReconcileJob(reconciler CounterReconciler) *CounterReconcileJob {
	return &CounterReconcileJob{reconciler: reconciler}
}

func (j *CounterReconcileJob) Name() string { return JobNameCounterReconcile }

func (j *CounterReconcileJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgReconcileStarting)

	fixed, err := j.reconciler.ReconcileCounters(ctx)
	if err != nil {
		return err
	}

	log.Info(LogMsgReconcileCompleted, "profiles_fixed", fixed)
	return nil
}
