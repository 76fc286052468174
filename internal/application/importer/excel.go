package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/dto"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/movement"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/report"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

// Beklenen sütun başlıkları (Türkçe küçük harfe indirgenmiş).
const (
	colLocation  = "bölüm"
	colSKU       = "sku"
	colName      = "ürün adı"
	colUnit      = "birim"
	colCategory  = "tür"
	colThreshold = "güvenlik stoğu"
	colQuantity  = "miktar"
)

// lowerTR Türkçe büyük/küçük katlaması: "TÜR" → "tür", "I" → "ı".
var lowerTR = cases.Lower(language.Turkish)

// Row Excel'den ayrıştırılmış tek satır.
type Row struct {
	LocationName     string
	SKU              string
	ProductName      string
	Unit             string
	Category         string
	ReorderThreshold decimal.Decimal
	Quantity         decimal.Decimal
}

// UseCase Excel toplu içe aktarma: eldeki envanter dökümünü katalog kayıtlarına
// ve açılış RECEIPT satırlarına çevirir. Ayrıcalıklı bir yoldur: bakiye
// doğrulaması atlanır (negatif açılış düzeltmeleri dahil), bunun yerine iş
// bitiminde negatif bakiye mutabakatı raporlanır.
type UseCase struct {
	txRunner     movement.TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	balanceRepo  repository.BalanceRepository
}

// NewUseCase içe aktarma kullanım durumunu kurar.
func NewUseCase(
	txRunner movement.TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	balanceRepo repository.BalanceRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		balanceRepo:  balanceRepo,
	}
}

// Import xlsx dökümünü okur, eksik lokasyon/ürünleri oluşturur ve tüm açılış
// hareketlerini tek transaction içinde deftere yazar. Bozuk satırlar işlemi
// durdurmaz, atlanır ve nedenleriyle raporlanır.
func (uc *UseCase) Import(ctx context.Context, userID string, r io.Reader) (*dto.ImportResponse, error) {
	rows, skipped, err := ParseWorkbook(r)
	if err != nil {
		return nil, err
	}

	resp := &dto.ImportResponse{SkippedRows: skipped}
	locations := map[string]string{} // isim -> id
	type productInfo struct {
		id       string
		category string
	}
	products := map[string]productInfo{} // sku -> bilgi

	for _, row := range rows {
		if _, ok := locations[row.LocationName]; !ok {
			id, created, err := uc.ensureLocation(ctx, row.LocationName)
			if err != nil {
				return nil, err
			}
			locations[row.LocationName] = id
			if created {
				resp.LocationsCreated++
			}
		}
		if _, ok := products[row.SKU]; !ok {
			id, category, created, err := uc.ensureProduct(ctx, row)
			if err != nil {
				return nil, err
			}
			products[row.SKU] = productInfo{id: id, category: category}
			if created {
				resp.ProductsCreated++
			}
		}
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.BalanceRepository,
		assetRepo repository.AssetRepository,
	) error {
		for _, row := range rows {
			locationID := locations[row.LocationName]
			product := products[row.SKU]

			if product.category == entity.CategoryDEMIRBAS {
				count := int(row.Quantity.IntPart())
				for i := 0; i < count; i++ {
					asset := &entity.Asset{
						ID:         uuid.New().String(),
						ProductID:  product.id,
						Code:       "DMB-" + strings.ToUpper(uuid.New().String()[:8]),
						Status:     entity.AssetStatusInStock,
						LocationID: &locationID,
					}
					if err := assetRepo.Create(ctx, asset); err != nil {
						return err
					}
					mov := &entity.Movement{
						Type:         entity.MovementTypeRECEIPT,
						ProductID:    product.id,
						AssetID:      &asset.ID,
						Quantity:     decimal.NewFromInt(1),
						ToLocationID: &locationID,
						Note:         "excel içe aktarma",
						CreatedBy:    userID,
					}
					if err := movRepo.Append(ctx, mov); err != nil {
						return err
					}
					resp.MovementsWritten++
				}
				continue
			}

			locID := locationID
			mov := &entity.Movement{
				Type:         entity.MovementTypeRECEIPT,
				ProductID:    product.id,
				Quantity:     row.Quantity,
				ToLocationID: &locID,
				Note:         "excel içe aktarma",
				CreatedBy:    userID,
			}
			if err := movRepo.Append(ctx, mov); err != nil {
				return err
			}
			resp.MovementsWritten++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Mutabakat: içe aktarma doğrulamayı atladığı için negatif bakiyeler
	// yanıtla birlikte açıkça raporlanır.
	negatives, err := uc.balanceRepo.NegativeBalances(ctx)
	if err != nil {
		return nil, err
	}
	resp.NegativeBalances = report.ToStockRows(negatives)
	return resp, nil
}

func (uc *UseCase) ensureLocation(ctx context.Context, name string) (id string, created bool, err error) {
	loc, err := uc.locationRepo.GetByName(ctx, name)
	if err == nil {
		return loc.ID, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", false, err
	}
	loc = &entity.Location{
		ID:     uuid.New().String(),
		Name:   name,
		Kind:   entity.LocationKindDEPO,
		Active: true,
	}
	if err := uc.locationRepo.Create(ctx, loc); err != nil {
		return "", false, err
	}
	return loc.ID, true, nil
}

func (uc *UseCase) ensureProduct(ctx context.Context, row Row) (id, category string, created bool, err error) {
	p, err := uc.productRepo.GetBySKU(ctx, row.SKU)
	if err == nil {
		return p.ID, p.Category, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", "", false, err
	}
	p = &entity.Product{
		ID:               uuid.New().String(),
		SKU:              row.SKU,
		Name:             row.ProductName,
		Unit:             row.Unit,
		Category:         row.Category,
		ReorderThreshold: row.ReorderThreshold,
		Active:           true,
	}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		return "", "", false, err
	}
	return p.ID, p.Category, true, nil
}

// ParseWorkbook xlsx dosyasının ilk sayfasını ayrıştırır. İlk satır başlıktır;
// başlık eşlemesi Türkçe küçük harf katlamasıyla yapılır. Bozuk satırlar
// nedenleriyle birlikte ayrıca döner.
func ParseWorkbook(r io.Reader) ([]Row, []dto.ImportRowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, domain.Validationf("xlsx dosyası açılamadı: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, domain.Validationf("xlsx dosyasında sayfa yok")
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, domain.Validationf("xlsx satırları okunamadı: %v", err)
	}
	if len(raw) < 2 {
		return nil, nil, domain.Validationf("xlsx dosyasında veri satırı yok")
	}

	cols := map[string]int{}
	for i, h := range raw[0] {
		cols[lowerTR.String(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{colLocation, colSKU, colName, colUnit, colCategory, colQuantity} {
		if _, ok := cols[required]; !ok {
			return nil, nil, domain.Validationf("eksik sütun: %s", required)
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var rows []Row
	var skipped []dto.ImportRowError
	for i, rawRow := range raw[1:] {
		rowNo := i + 2 // 1 tabanlı, başlık satırından sonra
		row := Row{
			LocationName: cell(rawRow, colLocation),
			SKU:          cell(rawRow, colSKU),
			ProductName:  cell(rawRow, colName),
			Unit:         cell(rawRow, colUnit),
		}
		if row.LocationName == "" && row.SKU == "" && row.ProductName == "" {
			continue // boş satır
		}
		if row.LocationName == "" || row.SKU == "" || row.ProductName == "" || row.Unit == "" {
			skipped = append(skipped, dto.ImportRowError{Row: rowNo, Reason: "zorunlu alan boş"})
			continue
		}

		category, err := parseCategory(cell(rawRow, colCategory))
		if err != nil {
			skipped = append(skipped, dto.ImportRowError{Row: rowNo, Reason: err.Error()})
			continue
		}
		row.Category = category

		qty, err := decimal.NewFromString(strings.ReplaceAll(cell(rawRow, colQuantity), ",", "."))
		if err != nil || qty.IsZero() {
			skipped = append(skipped, dto.ImportRowError{Row: rowNo, Reason: "geçersiz miktar"})
			continue
		}
		if category == entity.CategoryDEMIRBAS && (!qty.IsInteger() || qty.IsNegative()) {
			skipped = append(skipped, dto.ImportRowError{Row: rowNo, Reason: "demirbaş miktarı pozitif tam sayı olmalı"})
			continue
		}
		row.Quantity = qty

		if raw := cell(rawRow, colThreshold); raw != "" {
			threshold, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
			if err != nil || threshold.IsNegative() {
				skipped = append(skipped, dto.ImportRowError{Row: rowNo, Reason: "geçersiz güvenlik stoğu"})
				continue
			}
			row.ReorderThreshold = threshold
		}

		rows = append(rows, row)
	}
	return rows, skipped, nil
}

// parseCategory "Tür" hücresini kapalı kategori kümesine çevirir.
func parseCategory(raw string) (string, error) {
	switch lowerTR.String(raw) {
	case "sarf":
		return entity.CategorySARF, nil
	case "demirbaş", "demirbas":
		return entity.CategoryDEMIRBAS, nil
	}
	return "", fmt.Errorf("tanınmayan tür: %s", raw)
}
