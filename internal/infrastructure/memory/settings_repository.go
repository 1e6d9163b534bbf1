package memory

import (
	"sync"

	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository adaptador en memoria del puerto SettingsRepository.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings map[string]*entity.TenantSettings
}

// NewSettingsRepository construye el repositorio vacío.
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{settings: make(map[string]*entity.TenantSettings)}
}

// Get devuelve la configuración guardada o nil si la empresa no guardó nada.
func (r *SettingsRepository) Get(companyID string) (*entity.TenantSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.settings[companyID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// Upsert crea o reemplaza la configuración de la empresa.
func (r *SettingsRepository) Upsert(settings *entity.TenantSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *settings
	r.settings[settings.CompanyID] = &cp
	return nil
}
