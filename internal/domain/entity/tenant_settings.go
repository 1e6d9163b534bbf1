package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantSettings configuración de stock por empresa: umbral de stock bajo,
// cotización editable por el usuario y moneda de reporte.
// Los valores por defecto viven en la configuración de la aplicación.
type TenantSettings struct {
	CompanyID         string
	LowStockThreshold int             // alerta cuando total <= umbral (inclusive)
	ExchangeRate      decimal.Decimal // cotización USD -> moneda de reporte
	ReportingCurrency Currency
	UpdatedAt         time.Time
}
