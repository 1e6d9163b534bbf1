package stock

import (
	"github.com/tallerpro/stock-api/internal/domain"
	"github.com/tallerpro/stock-api/internal/domain/entity"
)

// Occurrence referencia a una ocurrencia puntual de un ítem: el contenedor
// que la contiene y la posición dentro de su lista.
type Occurrence struct {
	Container *entity.Container
	Index     int
}

// Item devuelve el ítem referenciado.
func (o Occurrence) Item() *entity.Item {
	return &o.Container.Items[o.Index]
}

// FindByCode busca la primera ocurrencia cuyo código externo coincide
// exactamente con el código escaneado. Los códigos se asumen únicos pero no
// se valida unicidad: ante duplicados gana la primera coincidencia. El código
// es una cadena opaca, sin validación de formato.
func FindByCode(containers []*entity.Container, code string) (*Occurrence, error) {
	if code == "" {
		return nil, domain.ErrNotFound
	}
	for _, c := range containers {
		for i := range c.Items {
			if c.Items[i].Barcode == code {
				return &Occurrence{Container: c, Index: i}, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

// Decrement descuenta amount de la cantidad de la ocurrencia. Exige
// 0 < amount <= cantidad actual; fuera del rango se rechaza sin efecto
// parcial. El descuento es local al contenedor: no propaga a otras
// ocurrencias del mismo artículo lógico.
func Decrement(occ *Occurrence, amount int) error {
	item := occ.Item()
	if amount <= 0 || amount > item.Quantity {
		return domain.ErrInvalidAmount
	}
	item.Quantity -= amount
	return nil
}
