package stock

import (
	"time"

	"github.com/tallerpro/stock-api/internal/domain/stock"
)

// ReportData insumos del reporte de stock: las tres vistas de lectura
// evaluadas sobre el mismo set de contenedores.
type ReportData struct {
	CompanyID    string
	GeneratedAt  time.Time
	Consolidated []*stock.ConsolidatedItem
	Alerts       []stock.Alert
	Valuation    stock.Valuation
}

// ReportGenerator puerto de renderizado del reporte (la implementación PDF
// vive en infraestructura; el motor nunca conoce el formato).
type ReportGenerator interface {
	StockReport(data ReportData) ([]byte, error)
}

// ReportUseCase arma el reporte imprimible de stock para el mostrador:
// consolidado completo, alertas vigentes y valorización.
type ReportUseCase struct {
	views *StockViewUseCase
	gen   ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(views *StockViewUseCase, gen ReportGenerator) *ReportUseCase {
	return &ReportUseCase{views: views, gen: gen}
}

// StockReport evalúa las vistas y las entrega al renderer.
func (uc *ReportUseCase) StockReport(companyID string) ([]byte, error) {
	consolidated, err := uc.views.Consolidated(companyID, "")
	if err != nil {
		return nil, err
	}
	alerts, err := uc.views.Alerts(companyID)
	if err != nil {
		return nil, err
	}
	valuation, err := uc.views.Valuation(companyID)
	if err != nil {
		return nil, err
	}
	return uc.gen.StockReport(ReportData{
		CompanyID:    companyID,
		GeneratedAt:  time.Now(),
		Consolidated: consolidated,
		Alerts:       alerts,
		Valuation:    *valuation,
	})
}
