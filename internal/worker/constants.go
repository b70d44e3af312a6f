package worker

import "time"

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerQueueFull   = "Worker queue full, dropping job"
	LogMsgWorkerPoolStopped = "Worker pool stopped"
)

// Log messages for the counter reconciliation job
const (
	LogMsgReconcileStarting  = "Counter reconciliation starting"
	LogMsgReconcileCompleted = "Counter reconciliation completed"
)

// Job names
const (
	JobNameCounterReconcile = "counter_reconcile"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 2 * time.Minute

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
