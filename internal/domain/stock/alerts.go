package stock

import (
	"sort"

	"github.com/tallerpro/stock-api/internal/domain/entity"
)

// Alert artículo lógico con stock en o por debajo del umbral configurado.
// Derivada, nunca se persiste.
type Alert struct {
	Key        string
	Detail     string
	Total      int
	ByLocation map[entity.Location]int
	Threshold  int // umbral vigente al momento de la evaluación
}

// ComputeAlerts marca los artículos cuyo total general es <= umbral
// (borde inclusivo: total == umbral dispara alerta). Devuelve la lista
// ordenada por total ascendente, los más críticos primero.
func ComputeAlerts(consolidated map[string]*ConsolidatedItem, threshold int) []Alert {
	var alerts []Alert
	for _, entry := range consolidated {
		if entry.Total > threshold {
			continue
		}
		alerts = append(alerts, Alert{
			Key:        entry.Key,
			Detail:     entry.Detail,
			Total:      entry.Total,
			ByLocation: entry.ByLocation,
			Threshold:  threshold,
		})
	}
	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Total != alerts[j].Total {
			return alerts[i].Total < alerts[j].Total
		}
		return alerts[i].Key < alerts[j].Key
	})
	return alerts
}
