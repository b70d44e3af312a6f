package repository

import (
	"context"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/logger"
)

// Tx is a unit of work that is either committed or rolled back
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback is meant to be deferred right after Begin. Rolling back a
// committed transaction is a no-op, anything else gets logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || err.Error() == domain.ErrMsgTxClosed {
		return
	}
	logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
}
