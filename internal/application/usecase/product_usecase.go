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

// ProductUseCase katalog ürünleri için kullanım durumları. Stok bakiyesi
// burada tutulmaz; hareket defterinden türetilir.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase kullanım durumunu kurar.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create yeni ürün oluşturur. SKU benzersizdir; çakışmada domain.ErrDuplicate döner.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	if in.SKU == "" || in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.Validationf("geçersiz kategori: %s", in.Category)
	}
	if in.ReorderThreshold.IsNegative() {
		return nil, domain.Validationf("guvenlik stogu negatif olamaz")
	}
	if in.Category == entity.CategoryDEMIRBAS && !in.ReorderThreshold.IsZero() {
		return nil, domain.Validationf("demirbas urunde guvenlik stogu tanimlanamaz")
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		SKU:              in.SKU,
		Name:             in.Name,
		Unit:             in.Unit,
		Category:         in.Category,
		ReorderThreshold: in.ReorderThreshold,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID ürünü ID ile getirir.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetBySKU ürünü SKU ile getirir.
func (uc *ProductUseCase) GetBySKU(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List ürünleri sayfalı listeler. includeInactive=false iken pasifler gizlenir.
func (uc *ProductUseCase) List(ctx context.Context, includeInactive bool, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, includeInactive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Deactivate ürünü pasife çeker. Hareket geçmişi silinmez; pasif ürün yeni
// harekete konu olamaz ama eski satırlar deftere dokunulmadan kalır.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) error {
	return uc.repo.Deactivate(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		SKU:              p.SKU,
		Name:             p.Name,
		Unit:             p.Unit,
		Category:         p.Category,
		ReorderThreshold: p.ReorderThreshold,
		Active:           p.Active,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
