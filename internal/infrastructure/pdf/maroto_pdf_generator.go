// Package pdf implementa la generación del reporte financiero mensual.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del usuario  │  Período + Rango de fechas   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ingresos / Gastos / Balance                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Movimientos | Total gastado             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OBJETIVOS: nombre + progreso de ahorro                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/aureum-app/aureum-api/internal/application/usecase"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 94, Blue: 83}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 178, Green: 34, Blue: 34}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.ReportePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ usecase.ReportePDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerarReporte genera el PDF del reporte financiero y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarReporte(_ context.Context, reporte *usecase.ReporteFinanciero) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Financiero", true).
		WithAuthor(reporte.Usuario.NombreCompleto(), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(reporte))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(reporte))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de gastos por categoría
	m.AddRows(tableHeaderRow())
	for _, r := range tableCategoriaRows(reporte.PorCategoria) {
		m.AddRows(r)
	}
	m.AddRows(totalGastosRow(reporte))

	// Objetivos de ahorro
	if len(reporte.Objetivos) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range objetivosRows(reporte.Objetivos) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + nombre del usuario (izq) y período + rango (der).
func headerRow(reporte *usecase.ReporteFinanciero) core.Row {
	rango := reporte.Desde.Format("02/01/2006") + " - " + reporte.Hasta.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("REPORTE FINANCIERO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(reporte.Usuario.NombreCompleto(), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(etiquetaPeriodo(reporte.Periodo), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// kpiRow: ingresos, gastos y balance del período.
func kpiRow(reporte *usecase.ReporteFinanciero) core.Row {
	kpi := func(label, value string, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: color, Top: 7,
			}),
		)
	}
	balanceColor := colorPrimary
	if reporte.Balance.IsNegative() {
		balanceColor = colorRed
	}
	return row.New(16).Add(
		kpi("INGRESOS", "$"+formatMoney(reporte.TotalIngresos.StringFixed(0)), colorPrimary),
		kpi("GASTOS", "$"+formatMoney(reporte.TotalGastos.StringFixed(0)), colorRed),
		kpi("BALANCE", "$"+formatMoney(reporte.Balance.StringFixed(0)), balanceColor),
	)
}

// tableHeaderRow: cabecera de la tabla de gastos por categoría.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 6, align.Left),
		h("Movimientos", 3, align.Center),
		h("Total", 3, align.Right),
	)
}

// tableCategoriaRows: una fila por categoría con gasto en el período.
func tableCategoriaRows(categorias []repository.TotalCategoria) []core.Row {
	result := make([]core.Row, 0, len(categorias))
	for _, c := range categorias {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				c.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%d", c.Conteo),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(c.Total.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalGastosRow: total de gastos del período alineado a la derecha.
func totalGastosRow(reporte *usecase.ReporteFinanciero) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL GASTOS:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+formatMoney(reporte.TotalGastos.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// objetivosRows: título + una fila por objetivo con su progreso.
func objetivosRows(objetivos []*entity.Objetivo) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("OBJETIVOS DE AHORRO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	for _, o := range objetivos {
		progreso := fmt.Sprintf("%.1f%%", o.ProgresoPorcentaje())
		detalle := fmt.Sprintf("$%s de $%s",
			formatMoney(o.AhorroActual.StringFixed(0)),
			formatMoney(o.MetaTotal.StringFixed(0)),
		)
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(o.Nombre, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(detalle, props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: colorGray,
			})),
			col.New(3).Add(text.New(progreso, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func etiquetaPeriodo(periodo string) string {
	switch periodo {
	case "mes_anterior":
		return "MES ANTERIOR"
	case "anio_actual":
		return "AÑO ACTUAL"
	default:
		return "MES ACTUAL"
	}
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if neg {
		return "-" + string(buf)
	}
	return string(buf)
}
