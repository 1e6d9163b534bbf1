package stock

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeKey canonicaliza el detalle libre de un ítem a su clave de
// comparación: case folding Unicode + recorte de espacios en los extremos.
// No se tocan acentos, puntuación ni espacios internos: "Tornillo 3mm" y
// "tornillo 3mm" son el mismo artículo lógico, "tornillo 3 mm" no.
func NormalizeKey(label string) string {
	return cases.Fold().String(strings.TrimSpace(label))
}
