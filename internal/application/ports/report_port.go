package ports

import (
	"time"

	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/policy"
)

// ReportData lo que recibe un renderizador: la vista ya filtrada por rol.
type ReportData struct {
	GeneratedAt time.Time
	Occurrences []*entity.Occurrence
	Stats       policy.Statistics
	Encoding    string // solo CSV: "utf-8" (por defecto) o "windows-1252"
}

// ReportRenderer convierte la vista filtrada en un archivo descargable.
type ReportRenderer interface {
	// Format extensión y clave de selección: "csv", "xml", "pdf".
	Format() string
	ContentType() string
	Render(data ReportData) ([]byte, error)
}
