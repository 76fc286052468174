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

// PartyUseCase zimmet alabilen personel kaydı için kullanım durumları.
type PartyUseCase struct {
	repo         repository.PartyRepository
	locationRepo repository.LocationRepository
}

// NewPartyUseCase kullanım durumunu kurar.
func NewPartyUseCase(repo repository.PartyRepository, locationRepo repository.LocationRepository) *PartyUseCase {
	return &PartyUseCase{repo: repo, locationRepo: locationRepo}
}

// Create yeni personel oluşturur. LocationID verilmişse BOLUM türünde ve
// aktif bir lokasyon olmalıdır.
func (uc *PartyUseCase) Create(ctx context.Context, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	if in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.LocationID != "" {
		loc, err := uc.locationRepo.GetByID(ctx, in.LocationID)
		if err != nil {
			return nil, err
		}
		if loc.Kind != entity.LocationKindBOLUM {
			return nil, domain.Validationf("personel yalnizca bolume baglanabilir")
		}
		if !loc.Active {
			return nil, domain.Validationf("pasif bolume personel baglanamaz")
		}
	}
	party := &entity.Party{
		ID:         uuid.New().String(),
		FullName:   in.FullName,
		LocationID: in.LocationID,
		Active:     true,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// GetByID personeli ID ile getirir.
func (uc *PartyUseCase) GetByID(ctx context.Context, id string) (*dto.PartyResponse, error) {
	party, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// List personelleri sayfalı listeler.
func (uc *PartyUseCase) List(ctx context.Context, includeInactive bool, page dto.PageRequest) ([]dto.PartyResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, includeInactive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartyResponse(p))
	}
	return items, nil
}

// Deactivate personeli pasife çeker. Üzerinde zimmet olup olmadığına
// bakılmaz; açık zimmetler zimmet raporunda görünmeye devam eder.
func (uc *PartyUseCase) Deactivate(ctx context.Context, id string) error {
	return uc.repo.Deactivate(ctx, id)
}

func toPartyResponse(p *entity.Party) *dto.PartyResponse {
	if p == nil {
		return nil
	}
	return &dto.PartyResponse{
		ID:         p.ID,
		FullName:   p.FullName,
		LocationID: p.LocationID,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
	}
}
