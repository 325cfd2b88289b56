package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Litigios-api/internal/application/dto"
	"github.com/jhoicas/Litigios-api/internal/application/usecase"
)

// AIHandler sugerencias del servicio de IA. Nunca responde error por fallas del
// proveedor: el cuerpo trae el texto fijo con fallback=true.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// SuggestResolution godoc
// @Summary      Sugerencia técnica para una ocorrência
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "protocolo"
// @Success      200  {object}  dto.AITextResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/occurrences/{id}/suggestion [post]
func (h *AIHandler) SuggestResolution(c *fiber.Ctx) error {
	u, err := requireUser(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SuggestResolution(c.UserContext(), u, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AnalyzeDraft godoc
// @Summary      Parecer preliminar del formulario
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AnalyzeDraftRequest  true  "title, description, product_name"
// @Success      200   {object}  dto.AITextResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/analyze [post]
func (h *AIHandler) AnalyzeDraft(c *fiber.Ctx) error {
	var in dto.AnalyzeDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AnalyzeDraft(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
