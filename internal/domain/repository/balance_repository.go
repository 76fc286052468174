package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockRow bir (ürün, lokasyon) çiftinin defterden türetilmiş bakiyesi.
type StockRow struct {
	ProductID        string
	SKU              string
	ProductName      string
	Unit             string
	Category         string
	ReorderThreshold decimal.Decimal
	LocationID       string
	LocationName     string
	Balance          decimal.Decimal
	Critical         bool // SARF ve bakiye <= güvenlik stoğu
}

// StockFilter stok durumu raporu filtreleri.
type StockFilter struct {
	LocationID string
	ProductID  string
	Category   string
}

// BalanceRepository defterden türetilen bakiyelerin okuma portu.
// Kendi mutable durumu yoktur: her çağrı hareket tablosu üzerinde toplamadır.
// Aynı store'a commit edilmiş bir append'den sonra başlayan sorgu o hareketi görür.
type BalanceRepository interface {
	// ConsumableBalance = Σ(RECEIPT+TRANSFER_IN) − Σ(ISSUE+TRANSFER_OUT+ASSIGN)
	// (urun, lokasyon) çifti için. Transaction içinde çağrıldığında advisory
	// lock ile birlikte okuma-kontrol-append dizisini linearize eder.
	ConsumableBalance(ctx context.Context, productID, locationID string) (decimal.Decimal, error)
	// StockStatus filtreye uyan tüm (ürün, lokasyon) bakiyelerini döner.
	StockStatus(ctx context.Context, filter StockFilter) ([]StockRow, error)
	// LowStock güvenlik stoğu tanımlı SARF ürünlerde bakiye <= eşik olan çiftleri döner.
	LowStock(ctx context.Context, locationID string) ([]StockRow, error)
	// NegativeBalances bakiyesi negatif çiftleri döner; toplu içe aktarma
	// sonrası mutabakat için (import doğrulamayı atlar, mutabakat açık yapılır).
	NegativeBalances(ctx context.Context) ([]StockRow, error)
}
