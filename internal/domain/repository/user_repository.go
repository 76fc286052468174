package repository

import (
	"context"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
)

// UserRepository kullanıcıların persistence portu.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
