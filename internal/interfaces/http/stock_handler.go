package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tallerpro/stock-api/internal/application/dto"
	appstock "github.com/tallerpro/stock-api/internal/application/stock"
	"github.com/tallerpro/stock-api/internal/domain/entity"
	"github.com/tallerpro/stock-api/internal/domain/stock"
)

// StockHandler maneja las vistas de stock, el reporte PDF y el flujo de
// escaneo (protegido).
type StockHandler struct {
	views  *appstock.StockViewUseCase
	scan   *appstock.ScanUseCase
	report *appstock.ReportUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(views *appstock.StockViewUseCase, scan *appstock.ScanUseCase, report *appstock.ReportUseCase) *StockHandler {
	return &StockHandler{views: views, scan: scan, report: report}
}

// Consolidated godoc
// @Summary      Stock consolidado por artículo lógico
// @Description  Totales por artículo a través de todos los contenedores, por
// @Description  ubicación y general, ordenados por total ascendente.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location  query  string  false  "FRONT | BACK; vacío = ambas"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stock/consolidated [get]
func (h *StockHandler) Consolidated(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.views.Consolidated(companyID, entity.Location(c.Query("location")))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ConsolidatedItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, dto.ConsolidatedItemResponse{
			Detail:     item.Detail,
			Total:      item.Total,
			ByLocation: locationTotals(item.ByLocation),
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "items": out})
}

// Alerts godoc
// @Summary      Artículos en o por debajo del umbral de stock bajo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stock/alerts [get]
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	alerts, err := h.views.Alerts(companyID)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertResponse{
			Detail:     a.Detail,
			Total:      a.Total,
			ByLocation: locationTotals(a.ByLocation),
			Threshold:  a.Threshold,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "alerts": out})
}

// Valuation godoc
// @Summary      Valorización del inventario
// @Description  Costo x cantidad por moneda más el total convertido a la
// @Description  moneda de reporte con la cotización vigente.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValuationResponse
// @Router       /api/stock/valuation [get]
func (h *StockHandler) Valuation(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	v, err := h.views.Valuation(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toValuationResponse(v))
}

// Report godoc
// @Summary      Reporte de stock en PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, err := h.report.StockReport(companyID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stock.pdf"`)
	return c.Send(pdfBytes)
}

// Scan godoc
// @Summary      Descontar stock por código de barras
// @Description  Resuelve el código a exactamente una ocurrencia (primera
// @Description  coincidencia) y descuenta la cantidad indicada; el descuento
// @Description  es local al contenedor dueño.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "code, amount"
// @Success      200  {object}  dto.ScanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/scan [post]
func (h *StockHandler) Scan(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.scan.ScanAndDecrement(companyID, in.Code, in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ScanResponse{
		ContainerID:   result.Container.ID,
		ContainerName: result.Container.Name,
		ItemID:        result.Item.ID,
		Detail:        result.Item.Detail,
		Quantity:      result.Item.Quantity,
	})
}

func locationTotals(byLocation map[entity.Location]int) map[string]int {
	out := make(map[string]int, len(entity.Locations))
	for _, loc := range entity.Locations {
		out[string(loc)] = byLocation[loc]
	}
	return out
}

func toValuationResponse(v *stock.Valuation) dto.ValuationResponse {
	byCurrency := make(map[string]decimal.Decimal, len(v.ByCurrency))
	for cur, amount := range v.ByCurrency {
		byCurrency[string(cur)] = amount
	}
	return dto.ValuationResponse{
		ByCurrency:        byCurrency,
		ReportingCurrency: string(v.ReportingCurrency),
		ExchangeRate:      v.ExchangeRate,
		ReportingTotal:    v.ReportingTotal,
	}
}
