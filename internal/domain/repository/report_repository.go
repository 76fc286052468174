package repository

import (
	"context"
	"time"
)

// CustodyRow sahada (zimmette) olan bir demirbaşın rapor satırı.
type CustodyRow struct {
	AssetID     string
	Code        string
	SerialNo    string
	SKU         string
	ProductName string
	HolderKind  string // PERSONEL | BOLUM
	HolderName  string
	AssignedAt  time.Time
}

// ReportRepository isim çözümlemeli, salt-okunur rapor sorgularının portu.
// Çekirdeğin dışındaki ince raporlama yüzeyini besler.
type ReportRepository interface {
	// CustodyList şu an ASSIGNED durumdaki demirbaşları, elinde bulunduranın
	// adıyla döner. holderName boş değilse ada göre (Türkçe duyarsız) filtreler.
	CustodyList(ctx context.Context, holderName string) ([]CustodyRow, error)
}
