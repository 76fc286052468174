package movement

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/dto"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/ledger"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

// UseCase hareket motorudur: her operasyonu doğrular ve deftere atomik olarak
// işler. Katalog doğrulamaları transaction dışında yapılır; kilit + bakiye
// kontrolü + append dizisi transaction içinde koşar. Kısmi yazma yoktur:
// transfer iki satırıyla ya tamamen görünür ya hiç görünmez.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	partyRepo    repository.PartyRepository

	// allowAssignFaulty ARIZALI demirbaşın yeniden zimmetlenmesine izin verir
	// (POLICY_ASSIGN_FAULTY).
	allowAssignFaulty bool
}

// NewUseCase hareket motorunu kurar.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	partyRepo repository.PartyRepository,
	allowAssignFaulty bool,
) *UseCase {
	return &UseCase{
		txRunner:          txRunner,
		productRepo:       productRepo,
		locationRepo:      locationRepo,
		partyRepo:         partyRepo,
		allowAssignFaulty: allowAssignFaulty,
	}
}

// Receipt depo girişini işler. SARF: tek RECEIPT satırı. DEMIRBAS: Quantity
// tam sayı olmalıdır; her birey için yeni bir demirbaş kaydı (DMB-XXXXXXXX)
// ve ayrı bir RECEIPT satırı üretilir, hepsi tek transaction içinde.
func (uc *UseCase) Receipt(ctx context.Context, userID string, in dto.ReceiptRequest) (*dto.ReceiptResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.Validationf("miktar pozitif olmalı")
	}
	product, err := uc.activeProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.activeLocation(ctx, in.ToLocationID, entity.LocationKindDEPO); err != nil {
		return nil, err
	}

	if product.Category == entity.CategorySARF {
		if len(in.SerialNos) > 0 {
			return nil, domain.Validationf("sarf malzemeye seri no verilemez")
		}
		mov := &entity.Movement{
			Type:         entity.MovementTypeRECEIPT,
			ProductID:    product.ID,
			Quantity:     in.Quantity,
			ToLocationID: &in.ToLocationID,
			Note:         in.Note,
			CreatedBy:    userID,
		}
		err := uc.txRunner.Run(ctx, func(
			movRepo repository.MovementRepository,
			_ repository.BalanceRepository,
			_ repository.AssetRepository,
		) error {
			return movRepo.Append(ctx, mov)
		})
		if err != nil {
			return nil, err
		}
		return &dto.ReceiptResponse{Movements: []dto.MovementResponse{toMovementResponse(mov)}}, nil
	}

	// DEMIRBAS: birey bazlı takip.
	if !in.Quantity.IsInteger() {
		return nil, domain.Validationf("demirbaş miktarı tam sayı olmalı")
	}
	count := int(in.Quantity.IntPart())
	if len(in.SerialNos) > 0 && len(in.SerialNos) != count {
		return nil, domain.Validationf("seri no sayısı (%d) miktarla (%d) eşleşmiyor", len(in.SerialNos), count)
	}

	assets := make([]*entity.Asset, 0, count)
	movs := make([]*entity.Movement, 0, count)
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.BalanceRepository,
		assetRepo repository.AssetRepository,
	) error {
		for i := 0; i < count; i++ {
			serial := ""
			if len(in.SerialNos) > 0 {
				serial = in.SerialNos[i]
			}
			asset := &entity.Asset{
				ID:         uuid.New().String(),
				ProductID:  product.ID,
				Code:       newAssetCode(),
				SerialNo:   serial,
				Status:     entity.AssetStatusInStock,
				LocationID: &in.ToLocationID,
			}
			if err := assetRepo.Create(ctx, asset); err != nil {
				return err
			}
			mov := &entity.Movement{
				Type:         entity.MovementTypeRECEIPT,
				ProductID:    product.ID,
				AssetID:      &asset.ID,
				Quantity:     decimal.NewFromInt(1),
				ToLocationID: &in.ToLocationID,
				Note:         in.Note,
				CreatedBy:    userID,
			}
			if err := movRepo.Append(ctx, mov); err != nil {
				return err
			}
			assets = append(assets, asset)
			movs = append(movs, mov)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.ReceiptResponse{}
	for _, m := range movs {
		resp.Movements = append(resp.Movements, toMovementResponse(m))
	}
	for _, a := range assets {
		resp.Assets = append(resp.Assets, toAssetResponse(a))
	}
	return resp, nil
}

// Issue sarf tüketim çıkışını işler. Yalnızca SARF ürünler; kaynak depodaki
// türetilmiş bakiye yetmiyorsa domain.ErrInsufficientStock döner ve deftere
// hiçbir satır yazılmaz.
func (uc *UseCase) Issue(ctx context.Context, userID string, in dto.IssueRequest) (*dto.MovementResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.Validationf("miktar pozitif olmalı")
	}
	product, err := uc.activeProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Category != entity.CategorySARF {
		return nil, domain.Validationf("demirbaş sarf çıkışıyla verilemez, zimmet kullanın")
	}
	if _, err := uc.activeLocation(ctx, in.FromLocationID, entity.LocationKindDEPO); err != nil {
		return nil, err
	}
	mov := &entity.Movement{
		Type:           entity.MovementTypeISSUE,
		ProductID:      product.ID,
		Quantity:       in.Quantity,
		FromLocationID: &in.FromLocationID,
		Note:           in.Note,
		CreatedBy:      userID,
	}
	if in.ToLocationID != "" {
		// Tüketen bölüm opsiyoneldir; verilmişse BOLUM türünde olmalıdır.
		if _, err := uc.activeLocation(ctx, in.ToLocationID, entity.LocationKindBOLUM); err != nil {
			return nil, err
		}
		mov.ToLocationID = &in.ToLocationID
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		balanceRepo repository.BalanceRepository,
		_ repository.AssetRepository,
	) error {
		if err := movRepo.AcquireKeyLock(ctx, product.ID, in.FromLocationID); err != nil {
			return err
		}
		balance, err := balanceRepo.ConsumableBalance(ctx, product.ID, in.FromLocationID)
		if err != nil {
			return err
		}
		if balance.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		return movRepo.Append(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	resp := toMovementResponse(mov)
	return &resp, nil
}

// Transfer depolar arası sarf taşımasını işler: TRANSFER_OUT + TRANSFER_IN
// çifti tek transaction içinde yazılır, defterde ya iki satır görünür ya hiç.
func (uc *UseCase) Transfer(ctx context.Context, userID string, in dto.TransferRequest) ([]dto.MovementResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.Validationf("miktar pozitif olmalı")
	}
	if in.FromLocationID == in.ToLocationID {
		return nil, domain.Validationf("kaynak ve hedef depo aynı olamaz")
	}
	product, err := uc.activeProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Category != entity.CategorySARF {
		return nil, domain.Validationf("demirbaş transferle taşınamaz, zimmet kullanın")
	}
	if _, err := uc.activeLocation(ctx, in.FromLocationID, entity.LocationKindDEPO); err != nil {
		return nil, err
	}
	if _, err := uc.activeLocation(ctx, in.ToLocationID, entity.LocationKindDEPO); err != nil {
		return nil, err
	}

	out := &entity.Movement{
		Type:           entity.MovementTypeTransferOut,
		ProductID:      product.ID,
		Quantity:       in.Quantity,
		FromLocationID: &in.FromLocationID,
		ToLocationID:   &in.ToLocationID,
		Note:           in.Note,
		CreatedBy:      userID,
	}
	inMov := &entity.Movement{
		Type:           entity.MovementTypeTransferIn,
		ProductID:      product.ID,
		Quantity:       in.Quantity,
		FromLocationID: &in.FromLocationID,
		ToLocationID:   &in.ToLocationID,
		Note:           in.Note,
		CreatedBy:      userID,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		balanceRepo repository.BalanceRepository,
		_ repository.AssetRepository,
	) error {
		// Kilitler deadlock'a düşmemek için sabit sırayla alınır.
		first, second := in.FromLocationID, in.ToLocationID
		if strings.Compare(first, second) > 0 {
			first, second = second, first
		}
		if err := movRepo.AcquireKeyLock(ctx, product.ID, first); err != nil {
			return err
		}
		if err := movRepo.AcquireKeyLock(ctx, product.ID, second); err != nil {
			return err
		}
		balance, err := balanceRepo.ConsumableBalance(ctx, product.ID, in.FromLocationID)
		if err != nil {
			return err
		}
		if balance.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		if err := movRepo.Append(ctx, out); err != nil {
			return err
		}
		return movRepo.Append(ctx, inMov)
	})
	if err != nil {
		return nil, err
	}
	return []dto.MovementResponse{toMovementResponse(out), toMovementResponse(inMov)}, nil
}

// Assign demirbaşı personele veya bölüme zimmetler. PartyID ve ToLocationID'den
// tam biri dolu olmalıdır. Demirbaş satırı kilitlenir, güncel durum defterden
// türetilir ve zimmet verilebilirlik kontrol edilir.
func (uc *UseCase) Assign(ctx context.Context, userID string, in dto.AssignRequest) (*dto.MovementResponse, error) {
	if (in.PartyID == "") == (in.ToLocationID == "") {
		return nil, domain.Validationf("personel veya bölümden tam biri seçilmeli")
	}
	mov := &entity.Movement{
		Type:      entity.MovementTypeASSIGN,
		AssetID:   &in.AssetID,
		Quantity:  decimal.NewFromInt(1),
		Note:      in.Note,
		CreatedBy: userID,
	}
	if in.PartyID != "" {
		party, err := uc.partyRepo.GetByID(ctx, in.PartyID)
		if err != nil {
			return nil, err
		}
		if !party.Active {
			return nil, domain.Validationf("pasif personele zimmet verilemez")
		}
		mov.PartyID = &in.PartyID
	} else {
		if _, err := uc.activeLocation(ctx, in.ToLocationID, entity.LocationKindBOLUM); err != nil {
			return nil, err
		}
		mov.ToLocationID = &in.ToLocationID
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.BalanceRepository,
		assetRepo repository.AssetRepository,
	) error {
		asset, err := assetRepo.GetForUpdate(ctx, in.AssetID)
		if err != nil {
			return err
		}
		mov.ProductID = asset.ProductID
		last, err := movRepo.LatestByAsset(ctx, asset.ID)
		if err != nil {
			return err
		}
		state, err := ledger.AssetStateFrom(last)
		if err != nil {
			return err
		}
		if !state.Assignable(uc.allowAssignFaulty) {
			return domain.Validationf("demirbaş zimmete uygun değil, durum: %s", state.Status)
		}
		// Çıkış bacağı demirbaşın bulunduğu depodur.
		mov.FromLocationID = state.LocationID
		if err := movRepo.Append(ctx, mov); err != nil {
			return err
		}
		newState, err := ledger.AssetStateFrom(mov)
		if err != nil {
			return err
		}
		return assetRepo.UpdateDerivedState(ctx, asset.ID, newState.Status, newState.LocationID, newState.PartyID)
	})
	if err != nil {
		return nil, err
	}
	resp := toMovementResponse(mov)
	return &resp, nil
}

// Return zimmetteki demirbaşın depoya iadesini işler. Condition INTACT ise
// demirbaş stoğa döner, FAULTY ise arızalı işaretlenir, SCRAPPED ise hurdaya
// ayrılır. Yalnızca ASSIGNED durumdaki demirbaş iade edilebilir.
func (uc *UseCase) Return(ctx context.Context, userID string, in dto.ReturnRequest) (*dto.MovementResponse, error) {
	if !entity.ValidCondition(in.Condition) {
		return nil, domain.Validationf("geçersiz iade koşulu: %s", in.Condition)
	}
	if _, err := uc.activeLocation(ctx, in.ToLocationID, entity.LocationKindDEPO); err != nil {
		return nil, err
	}
	cond := in.Condition
	mov := &entity.Movement{
		Type:         entity.MovementTypeRETURN,
		AssetID:      &in.AssetID,
		Quantity:     decimal.NewFromInt(1),
		ToLocationID: &in.ToLocationID,
		Condition:    &cond,
		Note:         in.Note,
		CreatedBy:    userID,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.BalanceRepository,
		assetRepo repository.AssetRepository,
	) error {
		asset, err := assetRepo.GetForUpdate(ctx, in.AssetID)
		if err != nil {
			return err
		}
		mov.ProductID = asset.ProductID
		last, err := movRepo.LatestByAsset(ctx, asset.ID)
		if err != nil {
			return err
		}
		state, err := ledger.AssetStateFrom(last)
		if err != nil {
			return err
		}
		if state.Status != entity.AssetStatusAssigned {
			return domain.Validationf("yalnızca zimmetteki demirbaş iade edilebilir, durum: %s", state.Status)
		}
		// İade bacağında elinde bulunduran kaydedilir.
		mov.PartyID = state.PartyID
		if err := movRepo.Append(ctx, mov); err != nil {
			return err
		}
		newState, err := ledger.AssetStateFrom(mov)
		if err != nil {
			return err
		}
		return assetRepo.UpdateDerivedState(ctx, asset.ID, newState.Status, newState.LocationID, newState.PartyID)
	})
	if err != nil {
		return nil, err
	}
	resp := toMovementResponse(mov)
	return &resp, nil
}

// activeProduct ürünü getirir ve aktifliğini doğrular.
func (uc *UseCase) activeProduct(ctx context.Context, id string) (*entity.Product, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, domain.Validationf("pasif ürün harekete konu olamaz")
	}
	return product, nil
}

// activeLocation lokasyonu getirir; tür ve aktiflik doğrular.
func (uc *UseCase) activeLocation(ctx context.Context, id, kind string) (*entity.Location, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc.Kind != kind {
		return nil, domain.Validationf("lokasyon türü %s olmalı: %s", kind, loc.Name)
	}
	if !loc.Active {
		return nil, domain.Validationf("pasif lokasyon harekete konu olamaz: %s", loc.Name)
	}
	return loc, nil
}

// newAssetCode benzersiz demirbaş etiket numarası üretir: DMB-7F3A21C4.
func newAssetCode() string {
	return "DMB-" + strings.ToUpper(uuid.New().String()[:8])
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
