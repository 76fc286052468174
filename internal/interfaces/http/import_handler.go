package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/dto"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/importer"
)

// ImportHandler Excel toplu içe aktarma ucu.
type ImportHandler struct {
	uc *importer.UseCase
}

// NewImportHandler handler'ı kurar.
func NewImportHandler(uc *importer.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// ImportExcel godoc
// @Summary      Excel envanter dökümünü içe aktar (yalnızca admin)
// @Description  Sütunlar: Bölüm, SKU, Ürün Adı, Birim, Tür, Güvenlik Stoğu, Miktar.
// @Description  Bakiye doğrulaması atlanır; negatif bakiyeler yanıtın mutabakat bölümünde raporlanır.
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "xlsx dosyası"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/import/excel [post]
func (h *ImportHandler) ImportExcel(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "file alanında xlsx dosyası gerekli"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "dosya açılamadı"})
	}
	defer file.Close()

	resp, err := h.uc.Import(c.Context(), GetUserID(c), file)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
