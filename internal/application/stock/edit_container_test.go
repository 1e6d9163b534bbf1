package stock_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerpro/stock-api/internal/application/dto"
	appstock "github.com/tallerpro/stock-api/internal/application/stock"
	"github.com/tallerpro/stock-api/internal/domain"
	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/repository"
	"github.com/tallerpro/stock-api/internal/infrastructure/memory"
	"github.com/tallerpro/stock-api/pkg/logger"
)

const testCompany = "empresa-1"

func seedContainer(t *testing.T, repo repository.ContainerRepository, id string, location entity.Location, items ...entity.Item) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Container{
		ID:        id,
		CompanyID: testCompany,
		Name:      "Caja " + id,
		Location:  location,
		Items:     items,
	}))
}

func pricedItem(detail string, qty int, cost int64, currency entity.Currency) entity.Item {
	return entity.Item{
		ID:       "it-" + detail,
		Detail:   detail,
		Quantity: qty,
		Cost:     decimal.NewFromInt(cost),
		Currency: currency,
	}
}

func plainItem(detail string, qty int) entity.Item {
	return entity.Item{ID: "it-" + detail, Detail: detail, Quantity: qty, Currency: entity.DefaultCurrency}
}

func TestEdit_CreaYPropagaPrecio(t *testing.T) {
	// Contenedor A tiene "tornillo" a 2 ARS; se crea B con "tornillo" a 3 ARS.
	// Tras el pase de sincronización A debe leer 3 ARS.
	repo := memory.NewContainerRepository()
	seedContainer(t, repo, "a", entity.LocationFront, pricedItem("tornillo", 5, 2, entity.CurrencyARS))
	uc := appstock.NewEditContainerUseCase(repo, logger.Nop())

	created, report, err := uc.Edit(testCompany, "", dto.EditContainerRequest{
		Name:     "Caja b",
		Location: "BACK",
		Items: []dto.ItemRequest{
			{Detail: "Tornillo", Quantity: 1, Cost: decimal.NewFromInt(3), Currency: "ARS"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.False(t, report.Partial())
	assert.Equal(t, 1, report.Synced, "solo A cambió; B ya quedó firme en el upsert")

	a, err := repo.GetByID("a")
	require.NoError(t, err)
	assert.True(t, a.Items[0].Cost.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, entity.CurrencyARS, a.Items[0].Currency)
	assert.Equal(t, 5, a.Items[0].Quantity)
}

func TestEdit_LimpiezaPropagada(t *testing.T) {
	// Si la edición borra el precio de "funda", ninguna ocurrencia lo conserva.
	repo := memory.NewContainerRepository()
	seedContainer(t, repo, "a", entity.LocationFront, pricedItem("funda", 2, 100, entity.CurrencyUSD))
	seedContainer(t, repo, "b", entity.LocationBack, pricedItem("funda", 1, 100, entity.CurrencyUSD))
	uc := appstock.NewEditContainerUseCase(repo, logger.Nop())

	_, report, err := uc.Edit(testCompany, "a", dto.EditContainerRequest{
		Name:     "Caja a",
		Location: "FRONT",
		Items:    []dto.ItemRequest{{Detail: "funda", Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
	for _, id := range []string{"a", "b"} {
		c, err := repo.GetByID(id)
		require.NoError(t, err)
		assert.True(t, c.Items[0].Cost.IsZero(), "contenedor %s", id)
		assert.Equal(t, entity.DefaultCurrency, c.Items[0].Currency)
	}
}

func TestEdit_ValidacionRechazaSinEscribir(t *testing.T) {
	repo := memory.NewContainerRepository()
	uc := appstock.NewEditContainerUseCase(repo, logger.Nop())

	cases := []dto.EditContainerRequest{
		{Name: "", Location: "FRONT", Items: nil},
		{Name: "Caja", Location: "PASILLO", Items: nil},
		{Name: "Caja", Location: "FRONT", Items: []dto.ItemRequest{{Detail: "", Quantity: 1}}},
		{Name: "Caja", Location: "FRONT", Items: []dto.ItemRequest{{Detail: "x", Quantity: -1}}},
		// costo sin moneda
		{Name: "Caja", Location: "FRONT", Items: []dto.ItemRequest{{Detail: "x", Quantity: 1, Cost: decimal.NewFromInt(5)}}},
		// costo negativo
		{Name: "Caja", Location: "FRONT", Items: []dto.ItemRequest{{Detail: "x", Quantity: 1, Cost: decimal.NewFromInt(-5), Currency: "ARS"}}},
		// moneda desconocida
		{Name: "Caja", Location: "FRONT", Items: []dto.ItemRequest{{Detail: "x", Quantity: 1, Cost: decimal.NewFromInt(5), Currency: "EUR"}}},
	}
	for _, in := range cases {
		_, _, err := uc.Edit(testCompany, "", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	list, err := repo.ListByCompany(testCompany, "")
	require.NoError(t, err)
	assert.Empty(t, list, "una validación rechazada no escribe nada")
}

func TestEdit_SegundaEdicionIdenticaNoReescribe(t *testing.T) {
	repo := memory.NewContainerRepository()
	seedContainer(t, repo, "a", entity.LocationFront, pricedItem("cable", 2, 5, entity.CurrencyUSD))
	uc := appstock.NewEditContainerUseCase(repo, logger.Nop())

	in := dto.EditContainerRequest{
		Name:     "Caja b",
		Location: "BACK",
		Items: []dto.ItemRequest{
			{Detail: "cable", Quantity: 1, Cost: decimal.NewFromInt(5), Currency: "USD"},
		},
	}
	_, first, err := uc.Edit(testCompany, "", in)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Synced, "A ya tenía 5 USD: nada que reescribir")

	// Repetir el mismo precio tampoco genera escrituras de sync.
	_, second, err := uc.Edit(testCompany, "", in)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Synced)
}

func TestEdit_ContenedorInexistente(t *testing.T) {
	uc := appstock.NewEditContainerUseCase(memory.NewContainerRepository(), logger.Nop())
	_, _, err := uc.Edit(testCompany, "nope", dto.EditContainerRequest{Name: "Caja", Location: "FRONT"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEdit_OtraEmpresaProhibido(t *testing.T) {
	repo := memory.NewContainerRepository()
	require.NoError(t, repo.Create(&entity.Container{ID: "ajeno", CompanyID: "empresa-2", Name: "Caja", Location: entity.LocationFront}))
	uc := appstock.NewEditContainerUseCase(repo, logger.Nop())

	_, _, err := uc.Edit(testCompany, "ajeno", dto.EditContainerRequest{Name: "Caja", Location: "FRONT"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// failingContainerRepo simula fallas de persistencia sobre contenedores puntuales.
type failingContainerRepo struct {
	repository.ContainerRepository
	failID string
}

func (r *failingContainerRepo) Update(c *entity.Container) error {
	if c.ID == r.failID {
		return errors.New("fallo simulado de red")
	}
	return r.ContainerRepository.Update(c)
}

func TestEdit_FallaParcialNoRevierteLoEscrito(t *testing.T) {
	// A y C comparten "tornillo"; la escritura de A falla durante el fan-out.
	// C queda sincronizado igual y la falla se reporta como warning, no error.
	mem := memory.NewContainerRepository()
	seedContainer(t, mem, "a", entity.LocationFront, pricedItem("tornillo", 5, 2, entity.CurrencyARS))
	seedContainer(t, mem, "c", entity.LocationBack, pricedItem("tornillo", 8, 2, entity.CurrencyARS))
	repo := &failingContainerRepo{ContainerRepository: mem, failID: "a"}
	uc := appstock.NewEditContainerUseCase(repo, logger.Nop())

	_, report, err := uc.Edit(testCompany, "", dto.EditContainerRequest{
		Name:     "Caja b",
		Location: "BACK",
		Items: []dto.ItemRequest{
			{Detail: "tornillo", Quantity: 1, Cost: decimal.NewFromInt(3), Currency: "ARS"},
		},
	})

	require.NoError(t, err, "la falla parcial no es fatal")
	assert.True(t, report.Partial())
	assert.Equal(t, 1, report.Synced)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "a", report.Failures[0].ContainerID)

	c, err := mem.GetByID("c")
	require.NoError(t, err)
	assert.True(t, c.Items[0].Cost.Equal(decimal.NewFromInt(3)), "C no se revierte por la falla de A")

	a, err := mem.GetByID("a")
	require.NoError(t, err)
	assert.True(t, a.Items[0].Cost.Equal(decimal.NewFromInt(2)), "A quedó desincronizado hasta el reintento")
}
