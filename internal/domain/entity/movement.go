package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hareket tipleri (kapalı küme). Validator bu kümeyi exhaustive switch ile işler;
// tanınmayan bir tip sessizce yutulmaz, ErrInvalidInput üretir.
const (
	MovementTypeRECEIPT     = "RECEIPT"      // satın alma / ilk giriş
	MovementTypeISSUE       = "ISSUE"        // sarf tüketim çıkışı
	MovementTypeTransferOut = "TRANSFER_OUT" // depolar arası transfer, kaynak bacağı
	MovementTypeTransferIn  = "TRANSFER_IN"  // depolar arası transfer, hedef bacağı
	MovementTypeASSIGN      = "ASSIGN"       // demirbaşın personele/bölüme zimmetlenmesi
	MovementTypeRETURN      = "RETURN"       // zimmetten depoya iade
)

// ValidMovementType kapalı hareket tipi kümesini doğrular.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeRECEIPT, MovementTypeISSUE,
		MovementTypeTransferOut, MovementTypeTransferIn,
		MovementTypeASSIGN, MovementTypeRETURN:
		return true
	}
	return false
}

// Movement append-only hareket defterinin tek satırıdır: sistemin kayıt kaynağı.
// Asla güncellenmez veya silinmez. ID (BIGSERIAL) insert sırasında atanır ve
// defter içi toplam sıralamayı verir; CreatedAt da insert anında atanır.
//
// SARF hareketlerinde Quantity dolu, AssetID boştur. DEMIRBAS hareketlerinde
// AssetID dolu, Quantity örtük olarak 1'dir. FromLocationID nil ise kaynak
// "dış dünya/tedarikçi"dir. Condition yalnızca RETURN satırlarında dolar.
type Movement struct {
	ID             int64
	Type           string
	ProductID      string
	AssetID        *string
	Quantity       decimal.Decimal
	FromLocationID *string
	ToLocationID   *string
	PartyID        *string
	Condition      *string // INTACT | FAULTY | SCRAPPED (sadece RETURN)
	Note           string
	CreatedBy      string
	CreatedAt      time.Time
}
