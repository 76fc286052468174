package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/dto"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/usecase"
)

// CatalogHandler ürün, lokasyon ve personel kataloğu uçları.
type CatalogHandler struct {
	productUC  *usecase.ProductUseCase
	locationUC *usecase.LocationUseCase
	partyUC    *usecase.PartyUseCase
}

// NewCatalogHandler handler'ı kurar.
func NewCatalogHandler(productUC *usecase.ProductUseCase, locationUC *usecase.LocationUseCase, partyUC *usecase.PartyUseCase) *CatalogHandler {
	return &CatalogHandler{productUC: productUC, locationUC: locationUC, partyUC: partyUC}
}

func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
}

// CreateProduct godoc
// @Summary      Ürün oluştur
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "sku, name, unit, category (SARF|DEMIRBAS), reorder_threshold"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "geçersiz istek gövdesi"})
	}
	resp, err := h.productUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetProduct godoc
// @Summary      Ürün getir
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ürün ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	resp, err := h.productUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListProducts godoc
// @Summary      Ürünleri listele
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        include_inactive  query  bool  false  "pasifleri de getir"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	resp, err := h.productUC.List(c.Context(), c.QueryBool("include_inactive"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeactivateProduct godoc
// @Summary      Ürünü pasife çek
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ürün ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *CatalogHandler) DeactivateProduct(c *fiber.Ctx) error {
	if err := h.productUC.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateLocation godoc
// @Summary      Lokasyon oluştur (DEPO veya BOLUM)
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "name, kind"
// @Success      201   {object}  dto.LocationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *CatalogHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "geçersiz istek gövdesi"})
	}
	resp, err := h.locationUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListLocations godoc
// @Summary      Lokasyonları listele
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/locations [get]
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	resp, err := h.locationUC.List(c.Context(), c.QueryBool("include_inactive"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeactivateLocation godoc
// @Summary      Lokasyonu pasife çek
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "lokasyon ID"
// @Success      204
// @Router       /api/locations/{id} [delete]
func (h *CatalogHandler) DeactivateLocation(c *fiber.Ctx) error {
	if err := h.locationUC.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateParty godoc
// @Summary      Personel oluştur
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartyRequest  true  "full_name, location_id (opsiyonel bölüm)"
// @Success      201   {object}  dto.PartyResponse
// @Router       /api/parties [post]
func (h *CatalogHandler) CreateParty(c *fiber.Ctx) error {
	var in dto.CreatePartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "geçersiz istek gövdesi"})
	}
	resp, err := h.partyUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListParties godoc
// @Summary      Personelleri listele
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PartyResponse
// @Router       /api/parties [get]
func (h *CatalogHandler) ListParties(c *fiber.Ctx) error {
	resp, err := h.partyUC.List(c.Context(), c.QueryBool("include_inactive"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeactivateParty godoc
// @Summary      Personeli pasife çek
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "personel ID"
// @Success      204
// @Router       /api/parties/{id} [delete]
func (h *CatalogHandler) DeactivateParty(c *fiber.Ctx) error {
	if err := h.partyUC.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
