package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Litigios-api/internal/application/report"
)

// ReportHandler descarga del relatório.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Export godoc
// @Summary      Relatório de ocorrências visibles
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv,application/xml,application/pdf
// @Param        format    query  string  false  "csv (por defecto) | xml | pdf"
// @Param        encoding  query  string  false  "utf-8 | windows-1252 (solo csv)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/occurrences [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	u, err := requireUser(c)
	if err != nil {
		return writeError(c, err)
	}
	f, err := h.uc.Export(c.UserContext(), u, c.Query("format"), c.Query("encoding"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, f.Name))
	return c.Send(f.Content)
}
