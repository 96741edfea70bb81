package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bvanacker/bestelportaal-api/internal/application/usecase"
	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

var _ usecase.UpdateRequestTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction, so the
// replace-pending-request flow (delete then insert) commits or rolls back
// as a unit.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner with the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunUpdateRequest starts a transaction, runs fn with a request repo bound
// to the tx, and commits or rolls back.
func (r *TxRunner) RunUpdateRequest(ctx context.Context, fn func(reqRepo repository.UpdateRequestRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUpdateRequestRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
