package stock

import (
	"sort"

	"github.com/tallerpro/stock-api/internal/domain/entity"
)

// ConsolidatedItem totales de un artículo lógico a través de todos los
// contenedores de la empresa.
type ConsolidatedItem struct {
	Key        string // clave normalizada
	Detail     string // primer detalle visto (para mostrar)
	Total      int
	ByLocation map[entity.Location]int
}

// Consolidate acumula cantidades por artículo lógico: total general y total
// por ubicación. Es agregación pura, sin validación; cantidades cero o
// negativas se suman tal cual (la validación ocurre en el borde de entrada).
func Consolidate(containers []*entity.Container) map[string]*ConsolidatedItem {
	out := make(map[string]*ConsolidatedItem)
	for _, c := range containers {
		for _, it := range c.Items {
			key := NormalizeKey(it.Detail)
			entry, ok := out[key]
			if !ok {
				entry = &ConsolidatedItem{
					Key:        key,
					Detail:     it.Detail,
					ByLocation: make(map[entity.Location]int, len(entity.Locations)),
				}
				out[key] = entry
			}
			entry.Total += it.Quantity
			entry.ByLocation[c.Location] += it.Quantity
		}
	}
	return out
}

// SortedByTotal devuelve los consolidados ordenados por total ascendente
// (candidatos a revisión primero) y detalle como desempate estable.
func SortedByTotal(consolidated map[string]*ConsolidatedItem) []*ConsolidatedItem {
	list := make([]*ConsolidatedItem, 0, len(consolidated))
	for _, entry := range consolidated {
		list = append(list, entry)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Total != list[j].Total {
			return list[i].Total < list[j].Total
		}
		return list[i].Key < list[j].Key
	})
	return list
}
