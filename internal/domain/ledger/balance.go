// Package ledger hareket defterinden türetilen durumun saf çekirdeğidir.
//
// Tüm miktar durumu (bir sarf malzemenin depodaki bakiyesi, bir demirbaşın
// depoda/zimmette/hurdada oluşu) değiştirilebilir sayaçlarda değil, append-only
// hareket defterinin tekrar oynatılmasıyla türetilir. Buradaki fonksiyonların
// SQL ikizi postgres.BalanceRepo içindedir; ikisi aynı semantiği uygular ve
// testler bu paketi referans alır.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
)

// ConsumableBalance bir sarf ürünün bir lokasyondaki güncel bakiyesini hesaplar:
// Σ(giriş miktarları: RECEIPT, TRANSFER_IN hedefi bu lokasyon)
// − Σ(çıkış miktarları: ISSUE, TRANSFER_OUT, ASSIGN kaynağı bu lokasyon).
// Hareketler herhangi bir sırada verilebilir; toplama sıradan bağımsızdır.
func ConsumableBalance(movs []entity.Movement, productID, locationID string) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movs {
		if m.ProductID != productID {
			continue
		}
		balance = balance.Add(Delta(m, locationID))
	}
	return balance
}

// Delta tek bir hareketin verilen lokasyonun bakiyesine katkısını döner.
func Delta(m entity.Movement, locationID string) decimal.Decimal {
	switch m.Type {
	case entity.MovementTypeRECEIPT, entity.MovementTypeTransferIn:
		if m.ToLocationID != nil && *m.ToLocationID == locationID {
			return m.Quantity
		}
	case entity.MovementTypeISSUE, entity.MovementTypeTransferOut, entity.MovementTypeASSIGN:
		if m.FromLocationID != nil && *m.FromLocationID == locationID {
			return m.Quantity.Neg()
		}
	case entity.MovementTypeRETURN:
		// İade bakiyeyi etkilemez: demirbaş miktarla değil kimlikle takip edilir.
	}
	return decimal.Zero
}

// AssetState bir demirbaşın güncel durumunu ve elinde bulunduranı temsil eder.
// LocationID ve PartyID'den en fazla biri doludur; SCRAPPED son bilinen
// lokasyonu korur.
type AssetState struct {
	Status     string
	LocationID *string
	PartyID    *string
}

// AssetStateFrom demirbaşın durumunu, ona referans veren SON hareketten türetir.
// last nil ise demirbaş hiç hareket görmemiştir: ErrUnknownAsset.
func AssetStateFrom(last *entity.Movement) (AssetState, error) {
	if last == nil {
		return AssetState{}, domain.ErrUnknownAsset
	}
	switch last.Type {
	case entity.MovementTypeRECEIPT, entity.MovementTypeTransferIn:
		return AssetState{Status: entity.AssetStatusInStock, LocationID: last.ToLocationID}, nil
	case entity.MovementTypeASSIGN:
		// Zimmet personele (PartyID) veya bölüme (ToLocationID) verilmiş olabilir.
		if last.PartyID != nil {
			return AssetState{Status: entity.AssetStatusAssigned, PartyID: last.PartyID}, nil
		}
		return AssetState{Status: entity.AssetStatusAssigned, LocationID: last.ToLocationID}, nil
	case entity.MovementTypeRETURN:
		cond := entity.ConditionIntact
		if last.Condition != nil {
			cond = *last.Condition
		}
		switch cond {
		case entity.ConditionFaulty:
			return AssetState{Status: entity.AssetStatusFaulty, LocationID: last.ToLocationID}, nil
		case entity.ConditionScrapped:
			return AssetState{Status: entity.AssetStatusScrapped, LocationID: last.ToLocationID}, nil
		default:
			return AssetState{Status: entity.AssetStatusInStock, LocationID: last.ToLocationID}, nil
		}
	case entity.MovementTypeISSUE, entity.MovementTypeTransferOut:
		// Demirbaş için üretilmez (validator engeller); defterde görülürse son
		// çare olarak kaynak lokasyon üzerinden stokta sayılır.
		return AssetState{Status: entity.AssetStatusInStock, LocationID: last.FromLocationID}, nil
	}
	return AssetState{}, domain.Validationf("tanınmayan hareket tipi: %s", last.Type)
}

// Assignable durumun zimmet verilebilir olup olmadığını döner.
// ARIZALI demirbaşın tekrar zimmetlenebilirliği politikaya bağlıdır
// (POLICY_ASSIGN_FAULTY); HURDA hiçbir koşulda zimmetlenemez.
func (s AssetState) Assignable(allowFaulty bool) bool {
	switch s.Status {
	case entity.AssetStatusInStock:
		return true
	case entity.AssetStatusFaulty:
		return allowFaulty
	}
	return false
}
