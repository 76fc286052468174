package repository

import (
	"context"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
)

// AssetFilter demirbaş listeleme filtreleri.
type AssetFilter struct {
	ProductID string
	Status    string
	PartyID   string
}

// AssetRepository demirbaş kimliklerinin persistence portu.
// Asset üzerindeki durum alanları türetilmiş indekstir; UpdateDerivedState
// hareket append'i ile aynı transaction içinde çağrılır.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	GetByCode(ctx context.Context, code string) (*entity.Asset, error)
	// GetForUpdate satırı kilitleyerek okur (SELECT FOR UPDATE): aynı demirbaş
	// üzerindeki eşzamanlı zimmet/iade işlemlerini sıraya sokar.
	GetForUpdate(ctx context.Context, id string) (*entity.Asset, error)
	List(ctx context.Context, filter AssetFilter, limit, offset int) ([]*entity.Asset, error)
	UpdateDerivedState(ctx context.Context, id, status string, locationID, partyID *string) error
}
