// Package pdf genera el reporte imprimible del stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de productos / productos bajo el mínimo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Producto | Descripción | Cantidad | Mínimo     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 46, Green: 139, Blue: 87}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 255, Green: 99, Blue: 71}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStockReportGenerator genera el reporte de stock con Maroto v2.
type MarotoStockReportGenerator struct {
	title string
}

// NewMarotoStockReportGenerator construye el generador. title encabeza cada reporte.
func NewMarotoStockReportGenerator(title string) *MarotoStockReportGenerator {
	return &MarotoStockReportGenerator{title: title}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
// Los productos bajo el mínimo se marcan en color de alerta.
func (g *MarotoStockReportGenerator) GenerateStockReport(
	_ context.Context,
	products []*entity.Product,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(products))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(products)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func summaryRow(products []*entity.Product) core.Row {
	low := 0
	for _, p := range products {
		if p.IsLowStock() {
			low++
		}
	}
	return row.New(10).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("Productos: %d", len(products)),
			props.Text{Size: 9, Top: 2},
		)),
		col.New(6).Add(text.New(
			fmt.Sprintf("Bajo el mínimo: %d", low),
			props.Text{Size: 9, Top: 2, Align: align.Right, Style: fontstyle.Bold, Color: colorAlert},
		)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Descripción", 4, align.Left),
		h("Cantidad", 2, align.Right),
		h("Mínimo", 1, align.Right),
	)
}

func tableRows(products []*entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		style := props.Text{Size: 8, Top: 1}
		if p.IsLowStock() {
			style.Color = colorAlert
			style.Style = fontstyle.Bold
		}
		cell := func(s string, size int, a align.Type) core.Col {
			st := style
			st.Align = a
			st.Left, st.Right = 1, 1
			return col.New(size).Add(text.New(s, st))
		}
		result = append(result, row.New(7).Add(
			cell(strconv.FormatInt(p.ID, 10), 1, align.Center),
			cell(p.Name, 4, align.Left),
			cell(nonEmpty(p.Description, "-"), 4, align.Left),
			cell(formatThousands(p.Quantity), 2, align.Right),
			cell(formatThousands(p.MinimumThreshold), 1, align.Right),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000", -1200 → "-1.200".
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	l := len(s)
	if l <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, l+l/3)
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
