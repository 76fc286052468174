package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRowResponse stok durumu raporunda tek (ürün, lokasyon) satırı.
// Balance deftere commit edilmiş hareketlerden türetilir.
type StockRowResponse struct {
	ProductID        string          `json:"product_id"`
	SKU              string          `json:"sku"`
	ProductName      string          `json:"product_name"`
	Unit             string          `json:"unit"`
	Category         string          `json:"category"`
	ReorderThreshold decimal.Decimal `json:"reorder_threshold"`
	LocationID       string          `json:"location_id"`
	LocationName     string          `json:"location_name"`
	Balance          decimal.Decimal `json:"balance"`
	Critical         bool            `json:"critical"`
}

// StockStatusResponse stok durumu raporu.
type StockStatusResponse struct {
	Items []StockRowResponse `json:"items"`
}

// CustodyRowResponse zimmet raporunda tek demirbaş satırı.
type CustodyRowResponse struct {
	AssetID     string    `json:"asset_id"`
	Code        string    `json:"code"`
	SerialNo    string    `json:"serial_no,omitempty"`
	SKU         string    `json:"sku"`
	ProductName string    `json:"product_name"`
	HolderKind  string    `json:"holder_kind"`
	HolderName  string    `json:"holder_name"`
	AssignedAt  time.Time `json:"assigned_at"`
}

// CustodyListResponse zimmet raporu.
type CustodyListResponse struct {
	Items []CustodyRowResponse `json:"items"`
}
