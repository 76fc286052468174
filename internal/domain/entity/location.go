package entity

import "time"

// Lokasyon türleri: DEPO fiziksel depo, BOLUM tüketimin/zimmetin gittiği birim.
const (
	LocationKindDEPO  = "DEPO"
	LocationKindBOLUM = "BOLUM"
)

// ValidLocationKind kapalı lokasyon türü kümesini doğrular.
func ValidLocationKind(k string) bool {
	switch k {
	case LocationKindDEPO, LocationKindBOLUM:
		return true
	}
	return false
}

// Location bir depo veya bölümü temsil eder. Adı benzersizdir.
// Hareketlerce referans alındıktan sonra silinmez; pasife alınır.
type Location struct {
	ID        string
	Name      string
	Kind      string // DEPO | BOLUM
	Active    bool
	CreatedAt time.Time
}
