package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerpro/stock-api/internal/domain"
	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/stock"
)

func withBarcode(it entity.Item, code string) entity.Item {
	it.Barcode = code
	return it
}

func TestFindByCode_CoincidenciaExacta(t *testing.T) {
	a := container("a", entity.LocationFront,
		withBarcode(item("tornillo", 5), "779123"),
		withBarcode(item("funda", 2), "779456"),
	)

	occ, err := stock.FindByCode([]*entity.Container{a}, "779456")

	require.NoError(t, err)
	assert.Equal(t, "funda", occ.Item().Detail)
	assert.Equal(t, "a", occ.Container.ID)
}

func TestFindByCode_DuplicadosGanaElPrimero(t *testing.T) {
	// La unicidad de códigos se asume, no se valida: primera coincidencia.
	a := container("a", entity.LocationFront, withBarcode(item("tornillo", 5), "779"))
	b := container("b", entity.LocationBack, withBarcode(item("tornillo", 9), "779"))

	occ, err := stock.FindByCode([]*entity.Container{a, b}, "779")

	require.NoError(t, err)
	assert.Equal(t, "a", occ.Container.ID)
}

func TestFindByCode_NoEncontrado(t *testing.T) {
	a := container("a", entity.LocationFront, withBarcode(item("tornillo", 5), "779"))

	_, err := stock.FindByCode([]*entity.Container{a}, "000")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindByCode_CodigoVacioNoMatcheaItemsSinCodigo(t *testing.T) {
	a := container("a", entity.LocationFront, item("tornillo", 5)) // sin barcode

	_, err := stock.FindByCode([]*entity.Container{a}, "")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecrement_DescuentaSoloLaOcurrencia(t *testing.T) {
	a := container("a", entity.LocationFront, withBarcode(item("tornillo", 5), "779"))
	b := container("b", entity.LocationBack, withBarcode(item("tornillo", 9), "888"))

	occ, err := stock.FindByCode([]*entity.Container{a, b}, "779")
	require.NoError(t, err)
	require.NoError(t, stock.Decrement(occ, 3))

	assert.Equal(t, 2, a.Items[0].Quantity)
	assert.Equal(t, 9, b.Items[0].Quantity, "el descuento no propaga entre contenedores")
}

func TestDecrement_RechazaSobreDescuento(t *testing.T) {
	a := container("a", entity.LocationFront, withBarcode(item("tornillo", 3), "779"))
	occ, err := stock.FindByCode([]*entity.Container{a}, "779")
	require.NoError(t, err)

	err = stock.Decrement(occ, 5)

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Equal(t, 3, a.Items[0].Quantity, "rechazo sin efecto parcial")
}

func TestDecrement_RechazaCantidadNoPositiva(t *testing.T) {
	a := container("a", entity.LocationFront, withBarcode(item("tornillo", 3), "779"))
	occ, err := stock.FindByCode([]*entity.Container{a}, "779")
	require.NoError(t, err)

	assert.ErrorIs(t, stock.Decrement(occ, 0), domain.ErrInvalidAmount)
	assert.ErrorIs(t, stock.Decrement(occ, -1), domain.ErrInvalidAmount)
	assert.Equal(t, 3, a.Items[0].Quantity)
}

func TestDecrement_HastaCeroEsValido(t *testing.T) {
	a := container("a", entity.LocationFront, withBarcode(item("tornillo", 3), "779"))
	occ, err := stock.FindByCode([]*entity.Container{a}, "779")
	require.NoError(t, err)

	require.NoError(t, stock.Decrement(occ, 3))
	assert.Equal(t, 0, a.Items[0].Quantity)
}
