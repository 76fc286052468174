package repository

import (
	"context"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
)

// LocationRepository depo/bölüm kataloğunun persistence portu.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	GetByName(ctx context.Context, name string) (*entity.Location, error)
	List(ctx context.Context, includeInactive bool, limit, offset int) ([]*entity.Location, error)
	Deactivate(ctx context.Context, id string) error
}
