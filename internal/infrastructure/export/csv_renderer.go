// Package export renderizadores de texto del relatório de ocorrências (CSV y XML).
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Litigios-api/internal/application/ports"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
)

// Codificaciones aceptadas para el CSV.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

var csvHeader = []string{"ID", "Título", "Loja", "Produto", "Status", "Data"}

var _ ports.ReportRenderer = (*CSVRenderer)(nil)

// CSVRenderer tabla delimitada por comas, cabecera primero, una fila por ocorrência.
type CSVRenderer struct{}

// NewCSVRenderer construye el renderizador.
func NewCSVRenderer() *CSVRenderer { return &CSVRenderer{} }

func (r *CSVRenderer) Format() string      { return "csv" }
func (r *CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

// Render escribe el CSV. Con Encoding windows-1252 los caracteres sin
// representación se reemplazan en vez de fallar (Excel en Windows).
func (r *CSVRenderer) Render(data ports.ReportData) ([]byte, error) {
	var buf bytes.Buffer
	var w io.Writer = &buf

	var tw *transform.Writer
	switch enc := strings.ToLower(strings.TrimSpace(data.Encoding)); enc {
	case "", EncodingUTF8:
	case EncodingWindows1252, "cp1252":
		tw = transform.NewWriter(&buf, encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()))
		w = tw
	default:
		return nil, fmt.Errorf("csv: codificación %q no soportada", data.Encoding)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, o := range data.Occurrences {
		if err := cw.Write(csvRecord(o)); err != nil {
			return nil, fmt.Errorf("csv: ocorrência %s: %w", o.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if tw != nil {
		if err := tw.Close(); err != nil {
			return nil, fmt.Errorf("csv: transcodificar: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func csvRecord(o *entity.Occurrence) []string {
	return []string{
		o.ID,
		o.Title,
		o.Store.Label(),
		o.ProductName,
		o.Status.Label(),
		o.CreatedAt.UTC().Format(time.RFC3339),
	}
}
