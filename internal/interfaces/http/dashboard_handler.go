package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Litigios-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve contadores por estado, barras por loja y total reclamado.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO. Se calcula sobre las ocorrências visibles
// para el usuario del token.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	u, err := requireUser(c)
	if err != nil {
		return writeError(c, err)
	}
	summary, err := h.uc.GetSummary(c.UserContext(), u)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
