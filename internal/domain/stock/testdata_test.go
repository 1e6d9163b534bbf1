package stock_test

import (
	"github.com/shopspring/decimal"

	"github.com/tallerpro/stock-api/internal/domain/entity"
)

// Helpers compartidos por los tests del motor.

func container(id string, location entity.Location, items ...entity.Item) *entity.Container {
	return &entity.Container{
		ID:        id,
		CompanyID: "empresa-1",
		Name:      "Caja " + id,
		Location:  location,
		Items:     items,
	}
}

func item(detail string, qty int) entity.Item {
	return entity.Item{ID: "it-" + detail, Detail: detail, Quantity: qty, Currency: entity.DefaultCurrency}
}

func pricedItem(detail string, qty int, cost int64, currency entity.Currency) entity.Item {
	it := item(detail, qty)
	it.Cost = decimal.NewFromInt(cost)
	it.Currency = currency
	return it
}
