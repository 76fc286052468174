package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/movement"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

var _ movement.TxRunner = (*TxRunner)(nil)

// TxRunner callback'leri tek PostgreSQL transaction'ı içinde çalıştırır.
// Hareket motorunun kilit + bakiye kontrolü + append atomikliği buradan gelir.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner runner'ı havuzla kurar.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run transaction başlatır, fn'i tx'e bağlı repository'lerle çalıştırır ve
// Commit ya da Rollback yapar.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	balanceRepo repository.BalanceRepository,
	assetRepo repository.AssetRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: transaction başlatılamadı: %v", domain.ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovementRepository(tx)
	balanceRepo := NewBalanceRepository(tx)
	assetRepo := NewAssetRepository(tx)

	if err := fn(movRepo, balanceRepo, assetRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit başarısız: %v", domain.ErrUnavailable, err)
	}
	return nil
}
