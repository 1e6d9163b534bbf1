package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location ubicación física de un contenedor. El taller maneja exactamente
// dos: mostrador (FRONT) y depósito (BACK).
type Location string

const (
	LocationFront Location = "FRONT"
	LocationBack  Location = "BACK"
)

// Locations todas las ubicaciones válidas, en orden de presentación.
var Locations = []Location{LocationFront, LocationBack}

// Valid indica si la ubicación es una de las enumeradas.
func (l Location) Valid() bool {
	return l == LocationFront || l == LocationBack
}

// Currency moneda de un costo unitario. El sistema maneja exactamente dos.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyARS Currency = "ARS"
)

// DefaultCurrency moneda por defecto (también la moneda de reporte del taller).
const DefaultCurrency = CurrencyARS

// Currencies todas las monedas válidas.
var Currencies = []Currency{CurrencyUSD, CurrencyARS}

// Valid indica si la moneda es una de las enumeradas.
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyARS
}

// Item representa una línea de stock dentro de un contenedor.
// El mismo artículo lógico puede repetirse en varios contenedores; la identidad
// lógica se deriva del detalle normalizado, no existe una tabla de productos.
// Invariante: Cost > 0 exige Currency válida; un ítem sin precio lleva costo
// cero y la moneda por defecto (o vacía).
type Item struct {
	ID       string          // identidad local, para localizar una ocurrencia puntual
	Detail   string          // detalle en texto libre ("detalle")
	Quantity int             // cantidad no negativa en el borde de entrada
	Cost     decimal.Decimal // costo unitario; cero = sin precio
	Currency Currency
	Barcode  string // código externo estable (escaneable); opcional
}

// Priced indica si el ítem tiene precio cargado.
func (i Item) Priced() bool {
	return i.Cost.GreaterThan(decimal.Zero)
}

// Container representa un contenedor físico (caja/cajón) de repuestos,
// atado a una empresa y a una ubicación.
type Container struct {
	ID        string
	CompanyID string
	Name      string
	Location  Location
	Items     []Item
	CreatedAt time.Time
	UpdatedAt time.Time
}
