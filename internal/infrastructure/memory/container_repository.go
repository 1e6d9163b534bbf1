package memory

import (
	"sort"
	"sync"

	"github.com/tallerpro/stock-api/internal/domain"
	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/repository"
)

var _ repository.ContainerRepository = (*ContainerRepository)(nil)

// ContainerRepository adaptador en memoria del puerto ContainerRepository.
// Guarda y devuelve copias profundas para que las mutaciones del motor no
// toquen el almacén sin pasar por Update. Útil en tests y demos.
type ContainerRepository struct {
	mu         sync.RWMutex
	containers map[string]*entity.Container
}

// NewContainerRepository construye el repositorio vacío.
func NewContainerRepository() *ContainerRepository {
	return &ContainerRepository{containers: make(map[string]*entity.Container)}
}

// Create persiste un contenedor nuevo.
func (r *ContainerRepository) Create(container *entity.Container) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.containers[container.ID]; exists {
		return domain.ErrDuplicate
	}
	r.containers[container.ID] = cloneContainer(container)
	return nil
}

// GetByID devuelve una copia del contenedor o nil si no existe.
func (r *ContainerRepository) GetByID(id string) (*entity.Container, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.containers[id]
	if !ok {
		return nil, nil
	}
	return cloneContainer(c), nil
}

// Update reemplaza metadatos y lista de ítems.
func (r *ContainerRepository) Update(container *entity.Container) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.containers[container.ID]; !ok {
		return domain.ErrNotFound
	}
	r.containers[container.ID] = cloneContainer(container)
	return nil
}

// ListByCompany devuelve los contenedores de la empresa, orden estable por
// fecha de creación y nombre; location vacío = ambas ubicaciones.
func (r *ContainerRepository) ListByCompany(companyID string, location entity.Location) ([]*entity.Container, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Container
	for _, c := range r.containers {
		if c.CompanyID != companyID {
			continue
		}
		if location != "" && c.Location != location {
			continue
		}
		list = append(list, cloneContainer(c))
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

// Delete elimina el contenedor si existe.
func (r *ContainerRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.containers, id)
	return nil
}

func cloneContainer(c *entity.Container) *entity.Container {
	cp := *c
	cp.Items = make([]entity.Item, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}
