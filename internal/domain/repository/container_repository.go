package repository

import "github.com/tallerpro/stock-api/internal/domain/entity"

// ContainerRepository define el puerto de persistencia para contenedores (DIP).
// El esquema de almacenamiento (columnas, serialización) es asunto exclusivo
// del adaptador.
type ContainerRepository interface {
	Create(container *entity.Container) error
	GetByID(id string) (*entity.Container, error)
	// Update reemplaza metadatos y la lista completa de ítems.
	Update(container *entity.Container) error
	// ListByCompany devuelve todos los contenedores de la empresa;
	// location vacío = ambas ubicaciones.
	ListByCompany(companyID string, location entity.Location) ([]*entity.Container, error)
	Delete(id string) error
}
