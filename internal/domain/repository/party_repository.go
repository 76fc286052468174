package repository

import (
	"context"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
)

// PartyRepository personel kataloğunun persistence portu.
type PartyRepository interface {
	Create(ctx context.Context, party *entity.Party) error
	GetByID(ctx context.Context, id string) (*entity.Party, error)
	List(ctx context.Context, includeInactive bool, limit, offset int) ([]*entity.Party, error)
	Deactivate(ctx context.Context, id string) error
}
