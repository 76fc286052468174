package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/assistant"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/application/dto"
)

// AssistantHandler depo asistanı ucu.
type AssistantHandler struct {
	uc *assistant.UseCase
}

// NewAssistantHandler handler'ı kurar.
func NewAssistantHandler(uc *assistant.UseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Ask godoc
// @Summary      Depo asistanına soru sor
// @Description  Güncel stok ve zimmet bağlamıyla doğal dilde yanıt üretir.
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AskRequest  true  "soru"
// @Success      200   {object}  dto.AskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assistant/ask [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var in dto.AskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "geçersiz istek gövdesi"})
	}
	resp, err := h.uc.Ask(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
