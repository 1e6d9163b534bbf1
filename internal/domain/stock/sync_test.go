package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/stock"
)

func TestApplySync_ConvergenciaEntreContenedores(t *testing.T) {
	// Caso de referencia: A tiene "tornillo" a 2 ARS; se edita B agregándolo a
	// 3 ARS. Tras el sync, A también debe leer 3 ARS.
	a := container("a", entity.LocationFront, pricedItem("tornillo", 5, 2, entity.CurrencyARS))
	b := container("b", entity.LocationBack, pricedItem("tornillo", 1, 3, entity.CurrencyARS))

	diff := stock.DiffPrices(nil, b.Items)
	changed := stock.ApplySync([]*entity.Container{a, b}, diff)

	require.Len(t, changed, 1)
	assert.Equal(t, "a", changed[0].ID)
	assert.True(t, a.Items[0].Cost.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, entity.CurrencyARS, a.Items[0].Currency)
	// La cantidad no se toca
	assert.Equal(t, 5, a.Items[0].Quantity)
}

func TestApplySync_ConvergenciaTodasLasOcurrencias(t *testing.T) {
	containers := []*entity.Container{
		container("a", entity.LocationFront, pricedItem("cable", 2, 4, entity.CurrencyUSD)),
		container("b", entity.LocationBack, pricedItem("Cable", 7, 6, entity.CurrencyUSD)),
		container("c", entity.LocationBack, item("cable", 1)),
	}
	diff := stock.PriceDiff{
		ToSync: map[string]stock.Price{
			stock.NormalizeKey("cable"): {Cost: decimal.NewFromInt(5), Currency: entity.CurrencyUSD},
		},
	}

	stock.ApplySync(containers, diff)

	for _, c := range containers {
		for _, it := range c.Items {
			assert.True(t, it.Cost.Equal(decimal.NewFromInt(5)), "contenedor %s", c.ID)
			assert.Equal(t, entity.CurrencyUSD, it.Currency)
		}
	}
}

func TestApplySync_LimpiezaDePrecio(t *testing.T) {
	a := container("a", entity.LocationFront, pricedItem("funda", 2, 100, entity.CurrencyUSD))
	b := container("b", entity.LocationBack, pricedItem("funda", 1, 100, entity.CurrencyUSD))

	diff := stock.PriceDiff{
		ToClear: map[string]struct{}{stock.NormalizeKey("funda"): {}},
	}
	changed := stock.ApplySync([]*entity.Container{a, b}, diff)

	assert.Len(t, changed, 2)
	for _, c := range []*entity.Container{a, b} {
		assert.True(t, c.Items[0].Cost.IsZero())
		assert.Equal(t, entity.DefaultCurrency, c.Items[0].Currency)
	}
}

func TestApplySync_Idempotente(t *testing.T) {
	// Segundo pase con el mismo diff: cero contenedores cambiados, cero
	// escrituras redundantes.
	containers := []*entity.Container{
		container("a", entity.LocationFront, pricedItem("tornillo", 5, 2, entity.CurrencyARS)),
		container("b", entity.LocationBack, item("tornillo", 3)),
	}
	diff := stock.PriceDiff{
		ToSync: map[string]stock.Price{
			stock.NormalizeKey("tornillo"): {Cost: decimal.NewFromInt(3), Currency: entity.CurrencyARS},
		},
	}

	first := stock.ApplySync(containers, diff)
	second := stock.ApplySync(containers, diff)

	assert.Len(t, first, 2)
	assert.Empty(t, second)
}

func TestApplySync_NoTocaArticulosAjenos(t *testing.T) {
	a := container("a", entity.LocationFront,
		pricedItem("tornillo", 5, 2, entity.CurrencyARS),
		pricedItem("funda", 2, 100, entity.CurrencyARS),
	)
	diff := stock.PriceDiff{
		ToSync: map[string]stock.Price{
			stock.NormalizeKey("tornillo"): {Cost: decimal.NewFromInt(3), Currency: entity.CurrencyARS},
		},
	}

	stock.ApplySync([]*entity.Container{a}, diff)

	assert.True(t, a.Items[1].Cost.Equal(decimal.NewFromInt(100)), "funda no participa del diff")
}

func TestApplySync_MismoValorNoMarcaCambio(t *testing.T) {
	a := container("a", entity.LocationFront, pricedItem("cable", 1, 5, entity.CurrencyUSD))
	diff := stock.PriceDiff{
		ToSync: map[string]stock.Price{
			stock.NormalizeKey("cable"): {Cost: decimal.NewFromInt(5), Currency: entity.CurrencyUSD},
		},
	}
	assert.Empty(t, stock.ApplySync([]*entity.Container{a}, diff))
}
