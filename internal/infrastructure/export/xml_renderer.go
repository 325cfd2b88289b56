package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Litigios-api/internal/application/ports"
)

var _ ports.ReportRenderer = (*XMLRenderer)(nil)

// XMLRenderer mismo contenido que el CSV como documento XML:
//
//	<relatorio gerado_em="..." total="N">
//	  <ocorrencia id="...">
//	    <titulo/> <loja codigo="ASA_NORTE"/> <produto/> <status codigo="OPEN"/> <data/>
//	  </ocorrencia>
//	</relatorio>
type XMLRenderer struct{}

// NewXMLRenderer construye el renderizador.
func NewXMLRenderer() *XMLRenderer { return &XMLRenderer{} }

func (r *XMLRenderer) Format() string      { return "xml" }
func (r *XMLRenderer) ContentType() string { return "application/xml; charset=utf-8" }

func (r *XMLRenderer) Render(data ports.ReportData) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("relatorio")
	root.CreateAttr("gerado_em", data.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("total", strconv.Itoa(len(data.Occurrences)))

	for _, o := range data.Occurrences {
		el := root.CreateElement("ocorrencia")
		el.CreateAttr("id", o.ID)
		el.CreateElement("titulo").SetText(o.Title)

		loja := el.CreateElement("loja")
		loja.CreateAttr("codigo", string(o.Store))
		loja.SetText(o.Store.Label())

		el.CreateElement("produto").SetText(o.ProductName)

		status := el.CreateElement("status")
		status.CreateAttr("codigo", string(o.Status))
		status.SetText(o.Status.Label())

		el.CreateElement("data").SetText(o.CreatedAt.UTC().Format(time.RFC3339))
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xml: serializar relatório: %w", err)
	}
	return out.Bytes(), nil
}
