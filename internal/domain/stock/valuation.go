package stock

import (
	"github.com/shopspring/decimal"

	"github.com/tallerpro/stock-api/internal/domain/entity"
)

// Valuation totales de valorización del inventario: costo x cantidad por
// moneda, más el total convertido a la moneda de reporte.
type Valuation struct {
	ByCurrency        map[entity.Currency]decimal.Decimal
	ReportingCurrency entity.Currency
	ExchangeRate      decimal.Decimal
	ReportingTotal    decimal.Decimal
}

// ComputeValuation suma cantidad * costo de cada ítem con precio en el balde
// de su moneda y convierte a la moneda de reporte:
//
//	total = baldes de otras monedas * cotización + balde de la moneda de reporte
//
// Solo se convierten las monedas distintas a la de reporte; el sistema asume
// exactamente dos monedas, no es un motor FX generalizado. Una cotización no
// positiva cae a 1 (identidad); el caller resuelve antes el defecto
// configurado por la empresa.
func ComputeValuation(containers []*entity.Container, rate decimal.Decimal, reporting entity.Currency) Valuation {
	if !rate.IsPositive() {
		rate = decimal.NewFromInt(1)
	}
	if !reporting.Valid() {
		reporting = entity.DefaultCurrency
	}

	byCurrency := make(map[entity.Currency]decimal.Decimal, len(entity.Currencies))
	for _, cur := range entity.Currencies {
		byCurrency[cur] = decimal.Zero
	}
	for _, c := range containers {
		for _, it := range c.Items {
			if !it.Priced() || !it.Currency.Valid() {
				continue
			}
			line := it.Cost.Mul(decimal.NewFromInt(int64(it.Quantity)))
			byCurrency[it.Currency] = byCurrency[it.Currency].Add(line)
		}
	}

	total := decimal.Zero
	for cur, amount := range byCurrency {
		if cur == reporting {
			total = total.Add(amount)
			continue
		}
		total = total.Add(amount.Mul(rate))
	}

	return Valuation{
		ByCurrency:        byCurrency,
		ReportingCurrency: reporting,
		ExchangeRate:      rate,
		ReportingTotal:    total,
	}
}
