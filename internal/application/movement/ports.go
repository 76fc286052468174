package movement

import (
	"context"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

// TxRunner fn'i tek bir veritabanı transaction'ı içinde, o tx'e bağlı
// repository'lerle çalıştırır. fn hata dönerse Rollback, dönmezse Commit.
// Hareket motorunun atomiklik garantisi buradan gelir: bakiye kontrolü,
// defter append'i ve türetilmiş demirbaş indeksi ya birlikte görünür
// ya hiç görünmez.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		balanceRepo repository.BalanceRepository,
		assetRepo repository.AssetRepository,
	) error) error
}
