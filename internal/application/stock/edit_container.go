package stock

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tallerpro/stock-api/internal/application/dto"
	"github.com/tallerpro/stock-api/internal/domain"
	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/repository"
	"github.com/tallerpro/stock-api/internal/domain/stock"
	"github.com/tallerpro/stock-api/pkg/logger"
)

// SyncFailure falla de escritura sobre un contenedor puntual durante el
// fan-out de sincronización.
type SyncFailure struct {
	ContainerID   string
	ContainerName string
	Err           error
}

// SyncReport contabilidad del pase de sincronización de precios: cuántos
// contenedores se reescribieron y cuáles fallaron. Las fallas no revierten
// las escrituras ya completadas: la propagación es best-effort, no una
// transacción (el caller decide reintentar).
type SyncReport struct {
	Synced   int
	Failures []SyncFailure
}

// Partial indica que al menos una escritura del pase falló.
func (r *SyncReport) Partial() bool {
	return len(r.Failures) > 0
}

// EditContainerUseCase crea o reemplaza un contenedor y propaga los cambios de
// precio detectados a todas las ocurrencias del artículo afectado en los demás
// contenedores de la empresa (diff -> persistir editado -> sync fan-out).
//
// Modelo de un solo escritor por empresa: no hay locking interno; dos sesiones
// editando ítems solapados terminan en last-write-wins por contenedor.
type EditContainerUseCase struct {
	containers repository.ContainerRepository
	log        *logger.Logger
}

// NewEditContainerUseCase construye el caso de uso.
func NewEditContainerUseCase(containers repository.ContainerRepository, log *logger.Logger) *EditContainerUseCase {
	return &EditContainerUseCase{containers: containers, log: log}
}

// Edit valida la entrada, persiste el contenedor editado (crea si containerID
// es vacío) y corre el pase de sincronización. Devuelve el contenedor
// persistido y el reporte del pase; un reporte parcial no es un error.
// Ningún error de validación produce escritura alguna.
func (uc *EditContainerUseCase) Edit(companyID, containerID string, in dto.EditContainerRequest) (*entity.Container, *SyncReport, error) {
	items, err := buildItems(in.Items)
	if err != nil {
		return nil, nil, err
	}
	name := strings.TrimSpace(in.Name)
	location := entity.Location(in.Location)
	if companyID == "" || name == "" || !location.Valid() {
		return nil, nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var container *entity.Container
	var before []entity.Item

	if containerID == "" {
		container = &entity.Container{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			Name:      name,
			Location:  location,
			Items:     items,
			CreatedAt: now,
			UpdatedAt: now,
		}
	} else {
		existing, err := uc.containers.GetByID(containerID)
		if err != nil {
			return nil, nil, err
		}
		if existing == nil {
			return nil, nil, domain.ErrNotFound
		}
		if existing.CompanyID != companyID {
			return nil, nil, domain.ErrForbidden
		}
		before = existing.Items
		existing.Name = name
		existing.Location = location
		existing.Items = items
		existing.UpdatedAt = now
		container = existing
	}

	diff := stock.DiffPrices(before, items)

	// Persistir primero el contenedor editado: su propia corrección no depende
	// del resultado del fan-out.
	if containerID == "" {
		err = uc.containers.Create(container)
	} else {
		err = uc.containers.Update(container)
	}
	if err != nil {
		return nil, nil, err
	}

	report := uc.syncPrices(companyID, diff)
	return container, report, nil
}

// syncPrices corre el fan-out: relee el set completo de contenedores de la
// empresa, reescribe en memoria las ocurrencias afectadas y persiste solo los
// contenedores que cambiaron, acumulando fallas por contenedor sin abortar.
func (uc *EditContainerUseCase) syncPrices(companyID string, diff stock.PriceDiff) *SyncReport {
	report := &SyncReport{}
	if diff.Empty() {
		return report
	}

	all, err := uc.containers.ListByCompany(companyID, "")
	if err != nil {
		uc.log.Warn().Err(err).Str("company_id", companyID).Msg("sync de precios: no se pudo listar contenedores")
		report.Failures = append(report.Failures, SyncFailure{Err: err})
		return report
	}

	for _, c := range stock.ApplySync(all, diff) {
		if err := uc.containers.Update(c); err != nil {
			uc.log.Warn().Err(err).
				Str("company_id", companyID).
				Str("container_id", c.ID).
				Msg("sync de precios: falla al persistir contenedor")
			report.Failures = append(report.Failures, SyncFailure{ContainerID: c.ID, ContainerName: c.Name, Err: err})
			continue
		}
		report.Synced++
	}
	return report
}

// buildItems valida y materializa las líneas de la edición. Reglas del borde
// de entrada: detalle no vacío, cantidad no negativa, costo no negativo y
// costo > 0 exige moneda válida. Ítems sin ID reciben uno nuevo.
func buildItems(in []dto.ItemRequest) ([]entity.Item, error) {
	items := make([]entity.Item, 0, len(in))
	for _, r := range in {
		detail := strings.TrimSpace(r.Detail)
		if detail == "" || r.Quantity < 0 || r.Cost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		currency := entity.Currency(r.Currency)
		if r.Cost.GreaterThan(decimal.Zero) {
			if !currency.Valid() {
				return nil, domain.ErrInvalidInput
			}
		} else {
			if currency == "" {
				currency = entity.DefaultCurrency
			}
			if !currency.Valid() {
				return nil, domain.ErrInvalidInput
			}
		}
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, entity.Item{
			ID:       id,
			Detail:   r.Detail,
			Quantity: r.Quantity,
			Cost:     r.Cost,
			Currency: currency,
			Barcode:  strings.TrimSpace(r.Barcode),
		})
	}
	return items, nil
}
