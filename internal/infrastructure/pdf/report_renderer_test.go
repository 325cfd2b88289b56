package pdf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Litigios-api/internal/application/occurrence"
	"github.com/jhoicas/Litigios-api/internal/application/ports"
	"github.com/jhoicas/Litigios-api/internal/domain/policy"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/pdf"
)

func TestReportRenderer_GeneraPDF(t *testing.T) {
	now := time.Date(2025, 12, 8, 10, 30, 0, 0, time.UTC)
	occs := occurrence.SeedOccurrences(now)

	r := pdf.NewReportRenderer()
	out, err := r.Render(ports.ReportData{GeneratedAt: now, Occurrences: occs, Stats: policy.ComputeStatistics(occs)})
	require.NoError(t, err)

	assert.Equal(t, "pdf", r.Format())
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestReportRenderer_VistaVacia(t *testing.T) {
	out, err := pdf.NewReportRenderer().Render(ports.ReportData{GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
