package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/dto"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

// LocationUseCase depo ve bölüm lokasyonları için kullanım durumları.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase kullanım durumunu kurar.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create yeni lokasyon oluşturur. İsim benzersizdir; çakışmada domain.ErrDuplicate döner.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidLocationKind(in.Kind) {
		return nil, domain.Validationf("geçersiz lokasyon türü: %s", in.Kind)
	}
	location := &entity.Location{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Kind:      in.Kind,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID lokasyonu ID ile getirir.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lokasyonları sayfalı listeler.
func (uc *LocationUseCase) List(ctx context.Context, includeInactive bool, page dto.PageRequest) ([]dto.LocationResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, includeInactive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// Deactivate lokasyonu pasife çeker; defterdeki referanslar kalır.
func (uc *LocationUseCase) Deactivate(ctx context.Context, id string) error {
	return uc.repo.Deactivate(ctx, id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Kind:      l.Kind,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
	}
}
