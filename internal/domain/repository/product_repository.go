package repository

import (
	"context"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
)

// ProductRepository ürün kataloğunun persistence portu.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// List aktif ürünleri döner; includeInactive true ise pasifler de gelir.
	List(ctx context.Context, includeInactive bool, limit, offset int) ([]*entity.Product, error)
	// Deactivate soft delete: geçmişe dokunmaz, sadece aktif listelerden düşürür.
	Deactivate(ctx context.Context, id string) error
}
