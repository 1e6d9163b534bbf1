package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/stock"
)

func TestComputeValuation_EjemploDeReferencia(t *testing.T) {
	// cable 10 x 5 USD + cable 5 x 5 USD + funda 2 x 100 ARS, cotización 1000:
	// USD 75, ARS 200, total en ARS = 75*1000 + 200 = 75200.
	containers := []*entity.Container{
		container("a", entity.LocationFront, pricedItem("cable", 10, 5, entity.CurrencyUSD)),
		container("b", entity.LocationBack, pricedItem("cable", 5, 5, entity.CurrencyUSD)),
		container("c", entity.LocationBack, pricedItem("funda", 2, 100, entity.CurrencyARS)),
	}

	v := stock.ComputeValuation(containers, decimal.NewFromInt(1000), entity.CurrencyARS)

	assert.True(t, v.ByCurrency[entity.CurrencyUSD].Equal(decimal.NewFromInt(75)), "USD: %s", v.ByCurrency[entity.CurrencyUSD])
	assert.True(t, v.ByCurrency[entity.CurrencyARS].Equal(decimal.NewFromInt(200)), "ARS: %s", v.ByCurrency[entity.CurrencyARS])
	assert.True(t, v.ReportingTotal.Equal(decimal.NewFromInt(75200)), "total: %s", v.ReportingTotal)
	assert.Equal(t, entity.CurrencyARS, v.ReportingCurrency)
}

func TestComputeValuation_SoloLaMonedaAjenaSeConvierte(t *testing.T) {
	containers := []*entity.Container{
		container("a", entity.LocationFront, pricedItem("funda", 3, 100, entity.CurrencyARS)),
	}

	v := stock.ComputeValuation(containers, decimal.NewFromInt(1000), entity.CurrencyARS)

	assert.True(t, v.ReportingTotal.Equal(decimal.NewFromInt(300)), "ARS no se multiplica por la cotización")
}

func TestComputeValuation_ItemsSinPrecioNoSuman(t *testing.T) {
	containers := []*entity.Container{
		container("a", entity.LocationFront,
			item("sin-precio", 50),
			pricedItem("cable", 2, 5, entity.CurrencyUSD),
		),
	}

	v := stock.ComputeValuation(containers, decimal.NewFromInt(100), entity.CurrencyARS)

	assert.True(t, v.ByCurrency[entity.CurrencyUSD].Equal(decimal.NewFromInt(10)))
	assert.True(t, v.ByCurrency[entity.CurrencyARS].IsZero())
}

func TestComputeValuation_CotizacionNoPositivaCaeAUno(t *testing.T) {
	containers := []*entity.Container{
		container("a", entity.LocationFront, pricedItem("cable", 1, 5, entity.CurrencyUSD)),
	}

	v := stock.ComputeValuation(containers, decimal.Zero, entity.CurrencyARS)

	assert.True(t, v.ExchangeRate.Equal(decimal.NewFromInt(1)))
	assert.True(t, v.ReportingTotal.Equal(decimal.NewFromInt(5)))
}

func TestComputeValuation_MonedaDeReporteInvalidaCaeAlDefecto(t *testing.T) {
	v := stock.ComputeValuation(nil, decimal.NewFromInt(1000), entity.Currency("EUR"))
	assert.Equal(t, entity.DefaultCurrency, v.ReportingCurrency)
}
