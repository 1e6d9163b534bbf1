package repository

import "github.com/tallerpro/stock-api/internal/domain/entity"

// SettingsRepository define el puerto para la configuración de stock por
// empresa (umbral de alerta, cotización, moneda de reporte).
type SettingsRepository interface {
	// Get devuelve nil (sin error) si la empresa aún no guardó configuración;
	// el caller aplica los defectos de la aplicación.
	Get(companyID string) (*entity.TenantSettings, error)
	Upsert(settings *entity.TenantSettings) error
}
