package stock

import (
	"github.com/shopspring/decimal"

	"github.com/tallerpro/stock-api/internal/domain/entity"
)

// Price costo unitario autoritativo de un artículo lógico.
type Price struct {
	Cost     decimal.Decimal
	Currency entity.Currency
}

// PriceDiff resultado de comparar el snapshot previo de un contenedor contra
// su lista editada.
//
// ToSync lleva toda clave con precio en la lista editada, cambiada o no: la
// sincronización re-afirma siempre el último valor, de modo que el precio del
// contenedor editado gana aunque no haya cambiado desde el sync anterior.
// ToClear lleva las claves que tenían precio antes y lo perdieron (precio
// borrado o ítem quitado del contenedor). Una clave nunca aparece en ambos:
// tener precio después tiene precedencia por construcción.
type PriceDiff struct {
	ToSync  map[string]Price
	ToClear map[string]struct{}
}

// Empty indica que la edición no afecta precios.
func (d PriceDiff) Empty() bool {
	return len(d.ToSync) == 0 && len(d.ToClear) == 0
}

// SnapshotPrices deriva el mapa clave normalizada -> precio de una lista de
// ítems, restringido a ítems con costo > 0.
func SnapshotPrices(items []entity.Item) map[string]Price {
	prices := make(map[string]Price)
	for _, it := range items {
		if !it.Priced() {
			continue
		}
		prices[NormalizeKey(it.Detail)] = Price{Cost: it.Cost, Currency: it.Currency}
	}
	return prices
}

// DiffPrices detecta altas, cambios y bajas de precio de un contenedor editado
// respecto de su snapshot previo.
func DiffPrices(before, after []entity.Item) PriceDiff {
	diff := PriceDiff{
		ToSync:  SnapshotPrices(after),
		ToClear: make(map[string]struct{}),
	}
	for key := range SnapshotPrices(before) {
		if _, stillPriced := diff.ToSync[key]; !stillPriced {
			diff.ToClear[key] = struct{}{}
		}
	}
	return diff
}
