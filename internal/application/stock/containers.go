package stock

import (
	"github.com/tallerpro/stock-api/internal/domain"
	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/repository"
)

// ContainerUseCase lecturas y borrado de contenedores. Las ediciones pasan
// siempre por EditContainerUseCase para no saltear el pase de sincronización.
type ContainerUseCase struct {
	containers repository.ContainerRepository
}

// NewContainerUseCase construye el caso de uso.
func NewContainerUseCase(containers repository.ContainerRepository) *ContainerUseCase {
	return &ContainerUseCase{containers: containers}
}

// List contenedores de la empresa; location vacío = ambas ubicaciones.
func (uc *ContainerUseCase) List(companyID string, location entity.Location) ([]*entity.Container, error) {
	if location != "" && !location.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return uc.containers.ListByCompany(companyID, location)
}

// GetByID devuelve el contenedor si pertenece a la empresa.
func (uc *ContainerUseCase) GetByID(companyID, id string) (*entity.Container, error) {
	container, err := uc.containers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, domain.ErrNotFound
	}
	if container.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return container, nil
}

// Delete elimina el contenedor; no cascadea sobre ninguna otra entidad.
func (uc *ContainerUseCase) Delete(companyID, id string) error {
	if _, err := uc.GetByID(companyID, id); err != nil {
		return err
	}
	return uc.containers.Delete(id)
}
