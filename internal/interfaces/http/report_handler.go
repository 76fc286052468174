package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/dto"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/report"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/repository"
)

// ReportHandler raporlama uçları; tümü salt okunur.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler handler'ı kurar.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockStatus godoc
// @Summary      Stok durumu raporu
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "lokasyon filtresi"
// @Param        product_id   query  string  false  "ürün filtresi"
// @Param        category     query  string  false  "SARF | DEMIRBAS"
// @Success      200  {object}  dto.StockStatusResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockStatus(c *fiber.Ctx) error {
	filter := repository.StockFilter{
		LocationID: c.Query("location_id"),
		ProductID:  c.Query("product_id"),
		Category:   c.Query("category"),
	}
	resp, err := h.uc.StockStatus(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// LowStock godoc
// @Summary      Kritik stok raporu
// @Description  Güvenlik stoğunun altına veya eşiğine düşen sarf malzemeler.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "lokasyon filtresi"
// @Success      200  {object}  dto.StockStatusResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	resp, err := h.uc.LowStock(c.Context(), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Movements godoc
// @Summary      Hareket geçmişi
// @Description  Filtreli defter dökümü, en yeni hareket önce.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  false  "RFC3339 başlangıç"
// @Param        to           query  string  false  "RFC3339 bitiş (hariç)"
// @Param        product_id   query  string  false  "ürün filtresi"
// @Param        type         query  string  false  "hareket tipi"
// @Param        location_id  query  string  false  "kaynak veya hedef lokasyon"
// @Param        party_id     query  string  false  "personel filtresi"
// @Param        asset_id     query  string  false  "demirbaş filtresi"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		ProductID:  c.Query("product_id"),
		Type:       c.Query("type"),
		LocationID: c.Query("location_id"),
		PartyID:    c.Query("party_id"),
		AssetID:    c.Query("asset_id"),
	}
	if raw := c.Query("from"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "from RFC3339 biçiminde olmalı"})
		}
		filter.From = &ts
	}
	if raw := c.Query("to"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "to RFC3339 biçiminde olmalı"})
		}
		filter.To = &ts
	}
	resp, err := h.uc.Movements(c.Context(), filter, pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Custody godoc
// @Summary      Zimmet raporu
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        holder  query  string  false  "ad filtresi (personel veya bölüm)"
// @Success      200  {object}  dto.CustodyListResponse
// @Router       /api/reports/custody [get]
func (h *ReportHandler) Custody(c *fiber.Ctx) error {
	resp, err := h.uc.CustodyList(c.Context(), c.Query("holder"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// CustodyForm godoc
// @Summary      Zimmet formu PDF
// @Description  Verilen kişi/bölümün açık zimmetleri için imzaya hazır form üretir.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        holder  query  string  true  "personel veya bölüm adı"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/custody-form [get]
func (h *ReportHandler) CustodyForm(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.CustodyForm(c.Context(), c.Query("holder"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="zimmet-formu.pdf"`)
	return c.Send(pdfBytes)
}

// GetAsset godoc
// @Summary      Demirbaş durumu
// @Description  Demirbaşın defterden türetilmiş güncel durumunu döner.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "demirbaş ID"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *ReportHandler) GetAsset(c *fiber.Ctx) error {
	resp, err := h.uc.Asset(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Assets godoc
// @Summary      Demirbaş listesi
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "ürün filtresi"
// @Param        status      query  string  false  "IN_STOCK | ASSIGNED | FAULTY | SCRAPPED"
// @Param        party_id    query  string  false  "personel filtresi"
// @Success      200  {object}  dto.AssetListResponse
// @Router       /api/assets [get]
func (h *ReportHandler) Assets(c *fiber.Ctx) error {
	filter := repository.AssetFilter{
		ProductID: c.Query("product_id"),
		Status:    c.Query("status"),
		PartyID:   c.Query("party_id"),
	}
	resp, err := h.uc.Assets(c.Context(), filter, pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
