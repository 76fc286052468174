package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/dto"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/movement"
)

// MovementHandler hareket motoru uçları: giriş, çıkış, transfer, zimmet, iade.
type MovementHandler struct {
	uc *movement.UseCase
}

// NewMovementHandler handler'ı kurar.
func NewMovementHandler(uc *movement.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Receipt godoc
// @Summary      Depo girişi (RECEIPT)
// @Description  SARF için tek satır, DEMIRBAS için her birey ayrı kayıt ve satır.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiptRequest  true  "product_id, to_location_id, quantity, serial_nos (demirbaş, opsiyonel)"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/receipt [post]
func (h *MovementHandler) Receipt(c *fiber.Ctx) error {
	var in dto.ReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "geçersiz istek gövdesi"})
	}
	resp, err := h.uc.Receipt(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Issue godoc
// @Summary      Sarf çıkışı (ISSUE)
// @Description  Türetilmiş bakiye yetmiyorsa 400 döner, deftere satır yazılmaz.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueRequest  true  "product_id, from_location_id, to_location_id (opsiyonel bölüm), quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/issue [post]
func (h *MovementHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "geçersiz istek gövdesi"})
	}
	resp, err := h.uc.Issue(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Transfer godoc
// @Summary      Depolar arası transfer
// @Description  TRANSFER_OUT + TRANSFER_IN çifti atomik yazılır.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, from_location_id, to_location_id, quantity"
// @Success      201   {array}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/transfer [post]
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "geçersiz istek gövdesi"})
	}
	resp, err := h.uc.Transfer(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Assign godoc
// @Summary      Demirbaş zimmetle (ASSIGN)
// @Description  party_id (personel) veya to_location_id (bölüm) alanlarından tam biri dolu olmalı.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignRequest  true  "asset_id, party_id | to_location_id"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/assign [post]
func (h *MovementHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "geçersiz istek gövdesi"})
	}
	resp, err := h.uc.Assign(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Return godoc
// @Summary      Zimmet iadesi (RETURN)
// @Description  condition: INTACT stoğa döner, FAULTY arızalı işaretlenir, SCRAPPED hurdaya ayrılır.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReturnRequest  true  "asset_id, to_location_id, condition, note"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/return [post]
func (h *MovementHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "geçersiz istek gövdesi"})
	}
	resp, err := h.uc.Return(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
