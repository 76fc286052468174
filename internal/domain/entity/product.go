package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ürün kategorileri. SARF miktarla takip edilir ve tükenir; DEMIRBAS tekil
// kimlikle takip edilir, zimmetlenir, tükenmez.
const (
	CategorySARF     = "SARF"
	CategoryDEMIRBAS = "DEMIRBAS"
)

// ValidCategory kapalı kategori kümesini doğrular.
func ValidCategory(c string) bool {
	switch c {
	case CategorySARF, CategoryDEMIRBAS:
		return true
	}
	return false
}

// Product depodaki bir ürünü (SKU) temsil eder.
// Hareket kayıtlarınca referans alındıktan sonra silinmez, sadece pasife alınır.
// ReorderThreshold yalnızca SARF için anlamlıdır (kritik stok uyarısı).
type Product struct {
	ID               string
	SKU              string // barkod / stok kodu, benzersiz
	Name             string
	Unit             string // Adet, Kg, Metre, Koli
	Category         string // SARF | DEMIRBAS
	ReorderThreshold decimal.Decimal
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
