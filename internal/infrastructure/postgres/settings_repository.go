package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
type SettingsRepo struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository construye el adaptador de persistencia para configuración de stock.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// Get obtiene la configuración de la empresa; nil si nunca guardó.
func (r *SettingsRepo) Get(companyID string) (*entity.TenantSettings, error) {
	var s entity.TenantSettings
	var currency string
	err := r.pool.QueryRow(context.Background(), `
		SELECT company_id, low_stock_threshold, exchange_rate, reporting_currency, updated_at
		FROM tenant_settings WHERE company_id = $1`, companyID).Scan(
		&s.CompanyID, &s.LowStockThreshold, &s.ExchangeRate, &currency, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	s.ReportingCurrency = entity.Currency(currency)
	return &s, nil
}

// Upsert crea o reemplaza la configuración de la empresa.
func (r *SettingsRepo) Upsert(settings *entity.TenantSettings) error {
	_, err := r.pool.Exec(context.Background(), `
		INSERT INTO tenant_settings (company_id, low_stock_threshold, exchange_rate, reporting_currency, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id) DO UPDATE SET
			low_stock_threshold = EXCLUDED.low_stock_threshold,
			exchange_rate = EXCLUDED.exchange_rate,
			reporting_currency = EXCLUDED.reporting_currency,
			updated_at = EXCLUDED.updated_at`,
		settings.CompanyID, settings.LowStockThreshold, settings.ExchangeRate,
		string(settings.ReportingCurrency), settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
