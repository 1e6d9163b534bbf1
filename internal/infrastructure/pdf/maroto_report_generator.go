// Package pdf implementa el reporte imprimible de stock del taller con
// Maroto v2: consolidado por artículo, alertas de stock bajo y valorización.
package pdf

import (
	"fmt"
	"strconv"

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

	appstock "github.com/tallerpro/stock-api/internal/application/stock"
	"github.com/tallerpro/stock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ appstock.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa stock.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// StockReport genera el PDF del reporte de stock y devuelve sus bytes.
func (g *MarotoReportGenerator) StockReport(data appstock.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Consolidado por artículo lógico
	m.AddRows(sectionTitle("Stock consolidado"))
	m.AddRows(consolidatedHeaderRow())
	for _, item := range data.Consolidated {
		m.AddRows(consolidatedRow(item.Detail, item.Total, item.ByLocation))
	}

	// Alertas de stock bajo
	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle(fmt.Sprintf("Stock bajo (umbral %d)", threshold(data))))
	if len(data.Alerts) == 0 {
		m.AddRows(row.New(6).Add(
			col.New(12).Add(text.New("Sin artículos por debajo del umbral", props.Text{Size: 9, Color: colorGray})),
		))
	}
	for _, a := range data.Alerts {
		m.AddRows(consolidatedRow(a.Detail, a.Total, a.ByLocation))
	}

	// Valorización
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(valuationRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func threshold(data appstock.ReportData) int {
	if len(data.Alerts) > 0 {
		return data.Alerts[0].Threshold
	}
	return 0
}

func headerRow(data appstock.ReportData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Stock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(fecha, props.Text{Size: 9, Top: 3, Align: align.Right, Color: colorGray}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
		),
	)
}

func consolidatedHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}
	right := header
	right.Align = align.Right
	return row.New(6).Add(
		col.New(6).Add(text.New("Detalle", header)),
		col.New(2).Add(text.New("Mostrador", right)),
		col.New(2).Add(text.New("Depósito", right)),
		col.New(2).Add(text.New("Total", right)),
	)
}

func consolidatedRow(detail string, total int, byLocation map[entity.Location]int) core.Row {
	cell := props.Text{Size: 8}
	right := props.Text{Size: 8, Align: align.Right}
	if total <= 0 {
		right.Color = colorAlert
	}
	return row.New(5).Add(
		col.New(6).Add(text.New(detail, cell)),
		col.New(2).Add(text.New(strconv.Itoa(byLocation[entity.LocationFront]), right)),
		col.New(2).Add(text.New(strconv.Itoa(byLocation[entity.LocationBack]), right)),
		col.New(2).Add(text.New(strconv.Itoa(total), right)),
	)
}

func valuationRows(data appstock.ReportData) []core.Row {
	label := props.Text{Size: 9, Align: align.Right}
	value := props.Text{Size: 9, Align: align.Right, Style: fontstyle.Bold}
	rows := make([]core.Row, 0, len(entity.Currencies)+1)
	for _, cur := range entity.Currencies {
		amount := data.Valuation.ByCurrency[cur]
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New("Valorizado "+string(cur), label)),
			col.New(3).Add(text.New(amount.StringFixed(2), value)),
		))
	}
	totalValue := props.Text{Size: 11, Align: align.Right, Style: fontstyle.Bold, Color: colorPrimary}
	rows = append(rows, row.New(8).Add(
		col.New(9).Add(text.New(
			fmt.Sprintf("TOTAL %s (cotización %s)", data.Valuation.ReportingCurrency, data.Valuation.ExchangeRate.String()),
			props.Text{Size: 10, Align: align.Right, Style: fontstyle.Bold, Top: 1},
		)),
		col.New(3).Add(text.New(data.Valuation.ReportingTotal.StringFixed(2), totalValue)),
	))
	return rows
}
