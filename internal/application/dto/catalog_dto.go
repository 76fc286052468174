package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest ürün oluşturma girdisi.
// Category: SARF | DEMIRBAS. ReorderThreshold yalnızca SARF için anlamlıdır.
type CreateProductRequest struct {
	SKU              string          `json:"sku" validate:"required,min=1,max=100"`
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	Unit             string          `json:"unit" validate:"required,min=1,max=20"`
	Category         string          `json:"category" validate:"required"`
	ReorderThreshold decimal.Decimal `json:"reorder_threshold"`
}

// ProductResponse ürün çıktısı.
type ProductResponse struct {
	ID               string          `json:"id"`
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	Unit             string          `json:"unit"`
	Category         string          `json:"category"`
	ReorderThreshold decimal.Decimal `json:"reorder_threshold"`
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse sayfalı ürün listesi.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateLocationRequest lokasyon oluşturma girdisi. Kind: DEPO | BOLUM.
type CreateLocationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=150"`
	Kind string `json:"kind" validate:"required"`
}

// LocationResponse lokasyon çıktısı.
type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePartyRequest personel oluşturma girdisi. LocationID personelin bağlı
// olduğu bölüm, opsiyonel.
type CreatePartyRequest struct {
	FullName   string `json:"full_name" validate:"required,min=1,max=150"`
	LocationID string `json:"location_id"`
}

// PartyResponse personel çıktısı.
type PartyResponse struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	LocationID string    `json:"location_id,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}
