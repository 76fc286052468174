package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptRequest depo girişi (RECEIPT) girdisi.
// SARF: Quantity adet tek satır. DEMIRBAS: Quantity adet birey üretilir,
// SerialNos verilirse uzunluğu Quantity ile eşleşmelidir.
type ReceiptRequest struct {
	ProductID    string          `json:"product_id" validate:"required"`
	ToLocationID string          `json:"to_location_id" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
	SerialNos    []string        `json:"serial_nos"`
	Note         string          `json:"note"`
}

// IssueRequest sarf çıkışı (ISSUE) girdisi. ToLocationID tüketen bölüm, opsiyonel.
type IssueRequest struct {
	ProductID      string          `json:"product_id" validate:"required"`
	FromLocationID string          `json:"from_location_id" validate:"required"`
	ToLocationID   string          `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity" validate:"required"`
	Note           string          `json:"note"`
}

// TransferRequest depolar arası sarf transferi girdisi.
type TransferRequest struct {
	ProductID      string          `json:"product_id" validate:"required"`
	FromLocationID string          `json:"from_location_id" validate:"required"`
	ToLocationID   string          `json:"to_location_id" validate:"required"`
	Quantity       decimal.Decimal `json:"quantity" validate:"required"`
	Note           string          `json:"note"`
}

// AssignRequest zimmet (ASSIGN) girdisi. PartyID ve ToLocationID'den tam biri
// dolu olmalıdır: personele ya da bölüme zimmet.
type AssignRequest struct {
	AssetID      string `json:"asset_id" validate:"required"`
	PartyID      string `json:"party_id"`
	ToLocationID string `json:"to_location_id"`
	Note         string `json:"note"`
}

// ReturnRequest iade (RETURN) girdisi. Condition: INTACT | FAULTY | SCRAPPED.
type ReturnRequest struct {
	AssetID      string `json:"asset_id" validate:"required"`
	ToLocationID string `json:"to_location_id" validate:"required"`
	Condition    string `json:"condition" validate:"required"`
	Note         string `json:"note"`
}

// MovementResponse defterdeki tek hareket satırı.
type MovementResponse struct {
	ID             int64           `json:"id"`
	Type           string          `json:"type"`
	ProductID      string          `json:"product_id"`
	AssetID        string          `json:"asset_id,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	FromLocationID string          `json:"from_location_id,omitempty"`
	ToLocationID   string          `json:"to_location_id,omitempty"`
	PartyID        string          `json:"party_id,omitempty"`
	Condition      string          `json:"condition,omitempty"`
	Note           string          `json:"note,omitempty"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MovementListResponse sayfalı hareket listesi.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ReceiptResponse girişin ürettiği hareketler; DEMIRBAS'ta üretilen demirbaşlar da döner.
type ReceiptResponse struct {
	Movements []MovementResponse `json:"movements"`
	Assets    []AssetResponse    `json:"assets,omitempty"`
}

// AssetResponse demirbaş bireyi çıktısı. Status/LocationID/PartyID defterden
// türetilmiş güncel durumdur.
type AssetResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	Code       string    `json:"code"`
	SerialNo   string    `json:"serial_no,omitempty"`
	Status     string    `json:"status"`
	LocationID string    `json:"location_id,omitempty"`
	PartyID    string    `json:"party_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AssetListResponse sayfalı demirbaş listesi.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
