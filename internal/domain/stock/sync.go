package stock

import (
	"github.com/shopspring/decimal"

	"github.com/tallerpro/stock-api/internal/domain/entity"
)

// ApplySync reescribe en memoria cada ocurrencia de los artículos afectados
// por un PriceDiff, a través de todos los contenedores recibidos, y devuelve
// solo los contenedores cuya lista de ítems cambió efectivamente (chequeo por
// igualdad de valor, para evitar escrituras redundantes).
//
// Claves en ToSync: se sobreescriben costo y moneda, nada más. Claves en
// ToClear: costo a cero y moneda por defecto. Cantidades y demás campos
// quedan intactos. La persistencia de los cambiados es responsabilidad del
// caller, contenedor por contenedor.
func ApplySync(containers []*entity.Container, diff PriceDiff) []*entity.Container {
	var changed []*entity.Container
	for _, c := range containers {
		if syncContainer(c, diff) {
			changed = append(changed, c)
		}
	}
	return changed
}

func syncContainer(c *entity.Container, diff PriceDiff) bool {
	dirty := false
	for i := range c.Items {
		key := NormalizeKey(c.Items[i].Detail)
		if price, ok := diff.ToSync[key]; ok {
			if !c.Items[i].Cost.Equal(price.Cost) || c.Items[i].Currency != price.Currency {
				c.Items[i].Cost = price.Cost
				c.Items[i].Currency = price.Currency
				dirty = true
			}
			continue
		}
		if _, ok := diff.ToClear[key]; ok {
			if !c.Items[i].Cost.Equal(decimal.Zero) || c.Items[i].Currency != entity.DefaultCurrency {
				c.Items[i].Cost = decimal.Zero
				c.Items[i].Currency = entity.DefaultCurrency
				dirty = true
			}
		}
	}
	return dirty
}
