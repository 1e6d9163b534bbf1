package stock

import (
	"strings"
	"time"

	"github.com/tallerpro/stock-api/internal/domain"
	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/repository"
	"github.com/tallerpro/stock-api/internal/domain/stock"
	"github.com/tallerpro/stock-api/pkg/logger"
)

// ScanUseCase flujo de escaneo: mapea un código de barras a exactamente una
// ocurrencia y le aplica un descuento acotado de cantidad. A diferencia del
// precio, el descuento es específico del contenedor: no propaga a otras
// ocurrencias del artículo.
type ScanUseCase struct {
	containers repository.ContainerRepository
	log        *logger.Logger
}

// NewScanUseCase construye el caso de uso.
func NewScanUseCase(containers repository.ContainerRepository, log *logger.Logger) *ScanUseCase {
	return &ScanUseCase{containers: containers, log: log}
}

// ScanResult ocurrencia afectada y su cantidad resultante.
type ScanResult struct {
	Container *entity.Container
	Item      entity.Item
}

// ScanAndDecrement resuelve el código sobre todos los contenedores de la
// empresa (primera coincidencia exacta), valida 0 < amount <= cantidad actual
// y persiste solo el contenedor dueño. Rechazos no dejan efecto parcial.
func (uc *ScanUseCase) ScanAndDecrement(companyID, code string, amount int) (*ScanResult, error) {
	code = strings.TrimSpace(code)
	if companyID == "" || code == "" {
		return nil, domain.ErrInvalidInput
	}

	containers, err := uc.containers.ListByCompany(companyID, "")
	if err != nil {
		return nil, err
	}
	occ, err := stock.FindByCode(containers, code)
	if err != nil {
		return nil, err
	}
	if err := stock.Decrement(occ, amount); err != nil {
		return nil, err
	}

	occ.Container.UpdatedAt = time.Now()
	if err := uc.containers.Update(occ.Container); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("container_id", occ.Container.ID).
		Str("item_id", occ.Item().ID).
		Int("amount", amount).
		Msg("descuento por escaneo aplicado")

	return &ScanResult{Container: occ.Container, Item: *occ.Item()}, nil
}
