package repository

import (
	"context"
	"time"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
)

// MovementFilter hareket defteri sorgu filtreleri. Aynı filtreyle iki sorgu,
// arada yazma yoksa aynı sonucu döner (restartable/idempotent okuma).
type MovementFilter struct {
	From      *time.Time
	To        *time.Time
	ProductID string
	Type      string
	// LocationID hem kaynak hem hedef bacakta aranır.
	LocationID string
	PartyID    string
	AssetID    string
}

// MovementRepository append-only hareket defterinin persistence portu.
// Append iş kuralı uygulamaz; kurallar validator'da (application/movement) yaşar.
// Satırlar asla güncellenmez veya silinmez.
type MovementRepository interface {
	// Append kaydı ekler; ID (monoton) ve CreatedAt insert sırasında atanır ve
	// movement üzerine geri yazılır.
	Append(ctx context.Context, movement *entity.Movement) error
	// List filtreye uyan hareketleri ID'ye göre azalan sırada döner.
	List(ctx context.Context, filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
	// LatestByAsset demirbaşa referans veren son hareketi döner; yoksa nil, nil.
	LatestByAsset(ctx context.Context, assetID string) (*entity.Movement, error)
	// CountByAsset demirbaşın defterdeki satır sayısını döner (testler ve raporlar için).
	CountByAsset(ctx context.Context, assetID string) (int64, error)
	// AcquireKeyLock (urun, lokasyon) anahtarı için transaction ömürlü advisory
	// lock alır: bakiye kontrolü + append aynı anahtar üzerinde sıraya girer,
	// farklı anahtarlar tam paralel çalışır. Transaction dışında çağrılmaz.
	AcquireKeyLock(ctx context.Context, productID, locationID string) error
}
