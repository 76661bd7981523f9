// Package pdf implementa la generación del Reporte Diario de Ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  REPORTE DIARIO + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Hora | Precio Total               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL DÍA                                              │
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/polipostres-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 136, Green: 58, Blue: 94} // vinotinto de la marca
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Montos en pesos colombianos, sin centavos y con separador de miles local.
var currencyPrinter = message.NewPrinter(language.MustParse("es-CO"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.SalesReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	shopName string
}

// NewMarotoReportGenerator construye el generador con el nombre de la tienda
// que encabeza cada reporte.
func NewMarotoReportGenerator(shopName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{shopName: shopName}
}

// GenerateDailyReport genera el PDF del día y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDailyReport(
	day time.Time,
	sales []entity.Sale,
	total decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Diario de Ventas", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.shopName, day))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(sales) == 0 {
		m.AddRows(emptyRow())
	}
	for _, r := range tableDetailRows(sales) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(len(sales), total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y título + fecha del reporte (der).
func headerRow(shopName string, day time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DIARIO DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+day.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ventas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Hora", 2, align.Center),
		h("Precio Total", 3, align.Right),
	)
}

// tableDetailRows: una fila por venta del día.
func tableDetailRows(sales []entity.Sale) []core.Row {
	result := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", s.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				s.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				s.Timestamp.Format("15:04"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				formatCOP(s.TotalPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// emptyRow: marcador cuando el día no registró ventas.
func emptyRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(
			"No se registraron ventas en esta fecha.",
			props.Text{Size: 9, Align: align.Center, Top: 2, Color: colorGray},
		)),
	)
}

// totalsRow: conteo de ventas y total del día, alineado a la derecha.
func totalsRow(count int, total decimal.Decimal) core.Row {
	return row.New(12).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("Ventas registradas: %d", count),
			props.Text{Size: 9, Top: 3, Color: colorGray},
		)),
		col.New(6).Add(text.New(
			"TOTAL DEL DÍA: "+formatCOP(total),
			props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			},
		)),
	)
}

// formatCOP formatea un monto como pesos colombianos: $50.000.
func formatCOP(d decimal.Decimal) string {
	f, _ := d.Float64()
	return currencyPrinter.Sprintf("$%v", number.Decimal(f, number.MaxFractionDigits(0)))
}
