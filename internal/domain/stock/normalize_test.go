package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallerpro/stock-api/internal/domain/stock"
)

func TestNormalizeKey_CaseYEspacios(t *testing.T) {
	assert.Equal(t, stock.NormalizeKey("Tornillo 3mm"), stock.NormalizeKey("  tornillo 3mm  "))
	assert.Equal(t, stock.NormalizeKey("FUNDA IPHONE"), stock.NormalizeKey("funda iphone"))
}

func TestNormalizeKey_PreservaPuntuacionYEspaciosInternos(t *testing.T) {
	// Decisión de diseño: puntuación y espacios internos distinguen artículos.
	assert.NotEqual(t, stock.NormalizeKey("tornillo 3mm"), stock.NormalizeKey("tornillo 3 mm"))
	assert.NotEqual(t, stock.NormalizeKey("cable usb-c"), stock.NormalizeKey("cable usb c"))
}

func TestNormalizeKey_PreservaAcentos(t *testing.T) {
	assert.NotEqual(t, stock.NormalizeKey("tapón"), stock.NormalizeKey("tapon"))
	assert.Equal(t, stock.NormalizeKey("TAPÓN"), stock.NormalizeKey("tapón"))
}

func TestNormalizeKey_Deterministico(t *testing.T) {
	assert.Equal(t, stock.NormalizeKey("Módulo Pantalla A30"), stock.NormalizeKey("Módulo Pantalla A30"))
}
