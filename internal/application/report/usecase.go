// Package report exportación del relatório de ocorrências visibles para el usuario.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Litigios-api/internal/application/ports"
	"github.com/jhoicas/Litigios-api/internal/domain"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/policy"
)

// VisibleSource entrega la vista de ocorrências de un usuario.
type VisibleSource interface {
	Visible(ctx context.Context, user entity.User) []*entity.Occurrence
}

// File relatório listo para descargar.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// ReportUseCase elige el renderizador por formato y lo alimenta con la vista del usuario.
type ReportUseCase struct {
	source    VisibleSource
	renderers map[string]ports.ReportRenderer
	now       func() time.Time
}

// NewReportUseCase registra los renderizadores por su Format().
func NewReportUseCase(source VisibleSource, renderers ...ports.ReportRenderer) *ReportUseCase {
	m := make(map[string]ports.ReportRenderer, len(renderers))
	for _, r := range renderers {
		m[r.Format()] = r
	}
	return &ReportUseCase{source: source, renderers: m, now: time.Now}
}

// WithClock reemplaza el reloj (fecha del nombre de archivo).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// Export genera relatorio_litigios_YYYY-MM-DD.<format>. Formato vacío = csv.
func (uc *ReportUseCase) Export(ctx context.Context, user entity.User, format, encoding string) (*File, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrValidation, format)
	}

	now := uc.now().UTC()
	occs := uc.source.Visible(ctx, user)
	content, err := r.Render(ports.ReportData{
		GeneratedAt: now,
		Occurrences: occs,
		Stats:       policy.ComputeStatistics(occs),
		Encoding:    encoding,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	contentType := r.ContentType()
	if format == "csv" && strings.EqualFold(strings.TrimSpace(encoding), "windows-1252") {
		contentType = "text/csv; charset=windows-1252"
	}
	return &File{
		Name:        fmt.Sprintf("relatorio_litigios_%s.%s", now.Format("2006-01-02"), format),
		ContentType: contentType,
		Content:     content,
	}, nil
}
