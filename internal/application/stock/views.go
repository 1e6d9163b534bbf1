package stock

import (
	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/repository"
	"github.com/tallerpro/stock-api/internal/domain/stock"
)

// StockViewUseCase vistas de solo lectura sobre el set completo de
// contenedores: consolidado, alertas y valorización. Cada vista relee el set
// desde el repositorio; después de un pase de sincronización el caller debe
// volver a pedir la vista, no parchear la suya en memoria.
type StockViewUseCase struct {
	containers repository.ContainerRepository
	settings   *SettingsUseCase
}

// NewStockViewUseCase construye el caso de uso.
func NewStockViewUseCase(containers repository.ContainerRepository, settings *SettingsUseCase) *StockViewUseCase {
	return &StockViewUseCase{containers: containers, settings: settings}
}

// Consolidated totales por artículo lógico, ordenados por total ascendente
// (candidatos a revisión primero). location vacío = ambas ubicaciones.
func (uc *StockViewUseCase) Consolidated(companyID string, location entity.Location) ([]*stock.ConsolidatedItem, error) {
	containers, err := uc.containers.ListByCompany(companyID, location)
	if err != nil {
		return nil, err
	}
	return stock.SortedByTotal(stock.Consolidate(containers)), nil
}

// Alerts artículos en o por debajo del umbral vigente de la empresa.
func (uc *StockViewUseCase) Alerts(companyID string) ([]stock.Alert, error) {
	settings, err := uc.settings.Resolve(companyID)
	if err != nil {
		return nil, err
	}
	containers, err := uc.containers.ListByCompany(companyID, "")
	if err != nil {
		return nil, err
	}
	return stock.ComputeAlerts(stock.Consolidate(containers), settings.LowStockThreshold), nil
}

// Valuation valorización del inventario con la cotización y moneda de reporte
// vigentes de la empresa.
func (uc *StockViewUseCase) Valuation(companyID string) (*stock.Valuation, error) {
	settings, err := uc.settings.Resolve(companyID)
	if err != nil {
		return nil, err
	}
	containers, err := uc.containers.ListByCompany(companyID, "")
	if err != nil {
		return nil, err
	}
	v := stock.ComputeValuation(containers, settings.ExchangeRate, settings.ReportingCurrency)
	return &v, nil
}
