package dto

import "github.com/shopspring/decimal"

// ConsolidatedItemResponse totales de un artículo lógico.
type ConsolidatedItemResponse struct {
	Detail     string         `json:"detail"`
	Total      int            `json:"total"`
	ByLocation map[string]int `json:"by_location"`
}

// AlertResponse artículo en o por debajo del umbral de stock bajo.
type AlertResponse struct {
	Detail     string         `json:"detail"`
	Total      int            `json:"total"`
	ByLocation map[string]int `json:"by_location"`
	Threshold  int            `json:"threshold"`
}

// ValuationResponse valorización del inventario por moneda y total convertido.
type ValuationResponse struct {
	ByCurrency        map[string]decimal.Decimal `json:"by_currency"`
	ReportingCurrency string                     `json:"reporting_currency"`
	ExchangeRate      decimal.Decimal            `json:"exchange_rate"`
	ReportingTotal    decimal.Decimal            `json:"reporting_total"`
}

// ScanRequest descuento por código de barras: código opaco + cantidad a descontar.
type ScanRequest struct {
	Code   string `json:"code"`
	Amount int    `json:"amount"`
}

// ScanResponse ocurrencia afectada por el descuento.
type ScanResponse struct {
	ContainerID   string `json:"container_id"`
	ContainerName string `json:"container_name"`
	ItemID        string `json:"item_id"`
	Detail        string `json:"detail"`
	Quantity      int    `json:"quantity"` // cantidad resultante
}

// SettingsResponse configuración de stock vigente de la empresa
// (con defectos de la aplicación ya aplicados).
type SettingsResponse struct {
	LowStockThreshold int             `json:"low_stock_threshold"`
	ExchangeRate      decimal.Decimal `json:"exchange_rate"`
	ReportingCurrency string          `json:"reporting_currency"`
}

// UpdateSettingsRequest actualización parcial de la configuración de stock.
type UpdateSettingsRequest struct {
	LowStockThreshold *int             `json:"low_stock_threshold,omitempty"`
	ExchangeRate      *decimal.Decimal `json:"exchange_rate,omitempty"`
	ReportingCurrency *string          `json:"reporting_currency,omitempty"`
}
