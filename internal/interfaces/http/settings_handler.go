package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tallerpro/stock-api/internal/application/dto"
	appstock "github.com/tallerpro/stock-api/internal/application/stock"
	"github.com/tallerpro/stock-api/internal/domain/entity"
)

// SettingsHandler maneja la configuración de stock de la empresa (protegido).
type SettingsHandler struct {
	settings *appstock.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(settings *appstock.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get godoc
// @Summary      Configuración de stock vigente
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	settings, err := h.settings.Resolve(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSettingsResponse(settings))
}

// Update godoc
// @Summary      Actualizar umbral de stock bajo y cotización
// @Description  Actualización parcial; el cambio de umbral solo afecta
// @Description  evaluaciones futuras.
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.SettingsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	settings, err := h.settings.Update(companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSettingsResponse(settings))
}

func toSettingsResponse(s *entity.TenantSettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		LowStockThreshold: s.LowStockThreshold,
		ExchangeRate:      s.ExchangeRate,
		ReportingCurrency: string(s.ReportingCurrency),
	}
}
