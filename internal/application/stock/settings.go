package stock

import (
	"time"

	"github.com/tallerpro/stock-api/internal/application/dto"
	"github.com/tallerpro/stock-api/internal/domain"
	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/repository"
	"github.com/tallerpro/stock-api/pkg/config"
)

// SettingsUseCase lee y actualiza la configuración de stock de la empresa
// (umbral de alerta, cotización, moneda de reporte), aplicando los defectos
// de la aplicación cuando la empresa nunca guardó los suyos.
type SettingsUseCase struct {
	settings repository.SettingsRepository
	cfg      config.StockConfig
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(settings repository.SettingsRepository, cfg config.StockConfig) *SettingsUseCase {
	return &SettingsUseCase{settings: settings, cfg: cfg}
}

// Resolve devuelve la configuración vigente de la empresa, con defectos
// aplicados campo a campo (una fila guardada a medias no anula los demás).
func (uc *SettingsUseCase) Resolve(companyID string) (*entity.TenantSettings, error) {
	saved, err := uc.settings.Get(companyID)
	if err != nil {
		return nil, err
	}

	resolved := &entity.TenantSettings{
		CompanyID:         companyID,
		LowStockThreshold: uc.cfg.DefaultThreshold,
		ExchangeRate:      uc.cfg.DefaultExchangeRate,
		ReportingCurrency: entity.Currency(uc.cfg.ReportingCurrency),
	}
	if !resolved.ReportingCurrency.Valid() {
		resolved.ReportingCurrency = entity.DefaultCurrency
	}
	if saved == nil {
		return resolved, nil
	}

	if saved.LowStockThreshold >= 1 {
		resolved.LowStockThreshold = saved.LowStockThreshold
	}
	if saved.ExchangeRate.IsPositive() {
		resolved.ExchangeRate = saved.ExchangeRate
	}
	if saved.ReportingCurrency.Valid() {
		resolved.ReportingCurrency = saved.ReportingCurrency
	}
	resolved.UpdatedAt = saved.UpdatedAt
	return resolved, nil
}

// Update aplica una actualización parcial y persiste. Umbral < 1, cotización
// no positiva o moneda desconocida se rechazan sin escribir. El cambio de
// umbral solo afecta evaluaciones futuras; no dispara notificaciones
// retroactivas.
func (uc *SettingsUseCase) Update(companyID string, in dto.UpdateSettingsRequest) (*entity.TenantSettings, error) {
	current, err := uc.Resolve(companyID)
	if err != nil {
		return nil, err
	}

	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 1 {
			return nil, domain.ErrInvalidInput
		}
		current.LowStockThreshold = *in.LowStockThreshold
	}
	if in.ExchangeRate != nil {
		if !in.ExchangeRate.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		current.ExchangeRate = *in.ExchangeRate
	}
	if in.ReportingCurrency != nil {
		cur := entity.Currency(*in.ReportingCurrency)
		if !cur.Valid() {
			return nil, domain.ErrInvalidInput
		}
		current.ReportingCurrency = cur
	}

	current.UpdatedAt = time.Now()
	if err := uc.settings.Upsert(current); err != nil {
		return nil, err
	}
	return current, nil
}
