package report

import (
	"context"
	"strings"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/dto"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

// UseCase raporlama akışları: stok durumu, kritik stok, hareket geçmişi,
// zimmet ve demirbaş listeleri. Tümü salt okunurdur; bakiyeler her çağrıda
// defterden türetilir.
type UseCase struct {
	balanceRepo  repository.BalanceRepository
	movementRepo repository.MovementRepository
	assetRepo    repository.AssetRepository
	reportRepo   repository.ReportRepository
	formGen      CustodyFormGenerator
}

// NewUseCase rapor kullanım durumunu kurar.
func NewUseCase(
	balanceRepo repository.BalanceRepository,
	movementRepo repository.MovementRepository,
	assetRepo repository.AssetRepository,
	reportRepo repository.ReportRepository,
	formGen CustodyFormGenerator,
) *UseCase {
	return &UseCase{
		balanceRepo:  balanceRepo,
		movementRepo: movementRepo,
		assetRepo:    assetRepo,
		reportRepo:   reportRepo,
		formGen:      formGen,
	}
}

// StockStatus filtreye uyan tüm (ürün, lokasyon) bakiyelerini döner.
func (uc *UseCase) StockStatus(ctx context.Context, filter repository.StockFilter) (*dto.StockStatusResponse, error) {
	rows, err := uc.balanceRepo.StockStatus(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.StockStatusResponse{Items: ToStockRows(rows)}, nil
}

// LowStock güvenlik stoğunun altına düşen sarf malzemeleri döner.
func (uc *UseCase) LowStock(ctx context.Context, locationID string) (*dto.StockStatusResponse, error) {
	rows, err := uc.balanceRepo.LowStock(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return &dto.StockStatusResponse{Items: ToStockRows(rows)}, nil
}

// Movements hareket geçmişini filtreli ve sayfalı döner (en yeni önce).
func (uc *UseCase) Movements(ctx context.Context, filter repository.MovementFilter, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	list, err := uc.movementRepo.List(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// CustodyList şu an zimmette olan demirbaşları döner; holderName verilirse
// elinde bulunduranın adına göre filtreler.
func (uc *UseCase) CustodyList(ctx context.Context, holderName string) (*dto.CustodyListResponse, error) {
	rows, err := uc.reportRepo.CustodyList(ctx, holderName)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustodyRowResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.CustodyRowResponse{
			AssetID:     r.AssetID,
			Code:        r.Code,
			SerialNo:    r.SerialNo,
			SKU:         r.SKU,
			ProductName: r.ProductName,
			HolderKind:  r.HolderKind,
			HolderName:  r.HolderName,
			AssignedAt:  r.AssignedAt,
		})
	}
	return &dto.CustodyListResponse{Items: items}, nil
}

// CustodyForm verilen kişi/bölüm için imzaya hazır zimmet formu PDF'i üretir.
// Ad boşsa veya adla eşleşen açık zimmet yoksa hata döner.
func (uc *UseCase) CustodyForm(ctx context.Context, holderName string) ([]byte, error) {
	holderName = strings.TrimSpace(holderName)
	if holderName == "" {
		return nil, domain.Validationf("zimmet formu için ad gerekli")
	}
	rows, err := uc.reportRepo.CustodyList(ctx, holderName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.formGen.GenerateCustodyForm(ctx, holderName, rows)
}

// Asset tek demirbaşın türetilmiş durumunu döner.
func (uc *UseCase) Asset(ctx context.Context, id string) (*dto.AssetResponse, error) {
	a, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toAssetResponse(a)
	return &resp, nil
}

// Assets demirbaş listesini filtreli ve sayfalı döner.
func (uc *UseCase) Assets(ctx context.Context, filter repository.AssetFilter, page dto.PageRequest) (*dto.AssetListResponse, error) {
	page.DefaultPage()
	list, err := uc.assetRepo.List(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, toAssetResponse(a))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ToStockRows repository satırlarını API çıktısına çevirir. Importer'ın
// mutabakat raporu da aynı dönüşümü kullanır.
func ToStockRows(rows []repository.StockRow) []dto.StockRowResponse {
	items := make([]dto.StockRowResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockRowResponse{
			ProductID:        r.ProductID,
			SKU:              r.SKU,
			ProductName:      r.ProductName,
			Unit:             r.Unit,
			Category:         r.Category,
			ReorderThreshold: r.ReorderThreshold,
			LocationID:       r.LocationID,
			LocationName:     r.LocationName,
			Balance:          r.Balance,
			Critical:         r.Critical,
		})
	}
	return items
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	resp := dto.MovementResponse{
		ID:        m.ID,
		Type:      m.Type,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Note:      m.Note,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
	if m.AssetID != nil {
		resp.AssetID = *m.AssetID
	}
	if m.FromLocationID != nil {
		resp.FromLocationID = *m.FromLocationID
	}
	if m.ToLocationID != nil {
		resp.ToLocationID = *m.ToLocationID
	}
	if m.PartyID != nil {
		resp.PartyID = *m.PartyID
	}
	if m.Condition != nil {
		resp.Condition = *m.Condition
	}
	return resp
}

func toAssetResponse(a *entity.Asset) dto.AssetResponse {
	resp := dto.AssetResponse{
		ID:        a.ID,
		ProductID: a.ProductID,
		Code:      a.Code,
		SerialNo:  a.SerialNo,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.LocationID != nil {
		resp.LocationID = *a.LocationID
	}
	if a.PartyID != nil {
		resp.PartyID = *a.PartyID
	}
	return resp
}
