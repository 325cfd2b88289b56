package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Litigios-api/internal/application/dto"
	"github.com/jhoicas/Litigios-api/internal/application/usecase"
)

// OccurrenceHandler endpoints de ocorrências.
type OccurrenceHandler struct {
	uc *usecase.OccurrenceUseCase
}

// NewOccurrenceHandler construye el handler.
func NewOccurrenceHandler(uc *usecase.OccurrenceUseCase) *OccurrenceHandler {
	return &OccurrenceHandler{uc: uc}
}

// List godoc
// @Summary      Listar ocorrências visibles
// @Tags         occurrences
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "busca en título, produto e id"
// @Param        status  query  string  false  "OPEN | IN_ANALYSIS | APPROVED | REJECTED"
// @Param        limit   query  int     false  "máx. 100"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.OccurrenceListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/occurrences [get]
func (h *OccurrenceHandler) List(c *fiber.Ctx) error {
	u, err := requireUser(c)
	if err != nil {
		return writeError(c, err)
	}
	var f dto.OccurrenceFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), u, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de una ocorrência
// @Tags         occurrences
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "protocolo"
// @Success      200  {object}  dto.OccurrenceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/occurrences/{id} [get]
func (h *OccurrenceHandler) Get(c *fiber.Ctx) error {
	u, err := requireUser(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), u, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar ocorrência en la loja del usuario
// @Tags         occurrences
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOccurrenceRequest  true  "formulario"
// @Success      201   {object}  dto.OccurrenceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/occurrences [post]
func (h *OccurrenceHandler) Create(c *fiber.Ctx) error {
	u, err := requireUser(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateOccurrenceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), u, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Resolve godoc
// @Summary      Decisión del CD
// @Tags         occurrences
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "protocolo"
// @Param        body  body  dto.ResolveOccurrenceRequest  true  "decision y comments"
// @Success      200   {object}  dto.OccurrenceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/occurrences/{id}/resolve [post]
func (h *OccurrenceHandler) Resolve(c *fiber.Ctx) error {
	u, err := requireUser(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ResolveOccurrenceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Resolve(c.UserContext(), u, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
