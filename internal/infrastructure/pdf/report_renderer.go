// Package pdf implementa el relatório de ocorrências en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de Litígios  │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Título | Loja | Produto | Status | Data         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Aberto / Em análise / Procedente / Não procedente  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Litigios-api/internal/application/ports"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/policy"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHeader  = &props.Color{Red: 220, Green: 230, Blue: 241}
)

var _ ports.ReportRenderer = (*ReportRenderer)(nil)

// ── Renderer ──────────────────────────────────────────────────────────────────

// ReportRenderer implementa ports.ReportRenderer usando Maroto v2.
type ReportRenderer struct{}

// NewReportRenderer construye el renderizador.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

func (r *ReportRenderer) Format() string      { return "pdf" }
func (r *ReportRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (r *ReportRenderer) Render(data ports.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Relatório de Litígios", true).
		WithAuthor("Litígios API", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.GeneratedAt, len(data.Occurrences)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(data.Occurrences)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(statsRow(data.Stats))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar relatório: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time, n int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE LITÍGIOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d ocorrência(s)", n), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 2, Left: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 2),
		h("Título", 3),
		h("Loja", 2),
		h("Produto", 2),
		h("Status", 2),
		h("Data", 1),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

// tableRows una fila por ocorrência.
func tableRows(occs []*entity.Occurrence) []core.Row {
	cell := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7, Top: 1, Left: 1}))
	}
	rows := make([]core.Row, 0, len(occs))
	for _, o := range occs {
		rows = append(rows, row.New(7).Add(
			cell(o.ID, 2),
			cell(o.Title, 3),
			cell(o.Store.Label(), 2),
			cell(nonEmpty(o.ProductName, "-"), 2),
			cell(o.Status.Label(), 2),
			cell(o.CreatedAt.Format("02/01/2006"), 1),
		))
	}
	return rows
}

func statsRow(s policy.Statistics) core.Row {
	label := func(l string, v int) core.Col {
		return col.New(3).Add(text.New(fmt.Sprintf("%s: %d", l, v), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(10).Add(
		label(entity.StatusOpen.Label(), s.Open),
		label(entity.StatusInAnalysis.Label(), s.InAnalysis),
		label(entity.StatusApproved.Label(), s.Approved),
		label(entity.StatusRejected.Label(), s.Rejected),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
