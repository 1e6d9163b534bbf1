package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tallerpro/stock-api/internal/application/dto"
	appstock "github.com/tallerpro/stock-api/internal/application/stock"
	"github.com/tallerpro/stock-api/internal/domain/entity"
)

// ContainerHandler maneja las peticiones HTTP de contenedores (protegido).
type ContainerHandler struct {
	containers *appstock.ContainerUseCase
	edit       *appstock.EditContainerUseCase
}

// NewContainerHandler construye el handler.
func NewContainerHandler(containers *appstock.ContainerUseCase, edit *appstock.EditContainerUseCase) *ContainerHandler {
	return &ContainerHandler{containers: containers, edit: edit}
}

// List godoc
// @Summary      Listar contenedores de la empresa
// @Tags         containers
// @Security     Bearer
// @Produce      json
// @Param        location  query  string  false  "FRONT | BACK; vacío = ambas"
// @Success      200  {object}  dto.ContainerListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/containers [get]
func (h *ContainerHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.containers.List(companyID, entity.Location(c.Query("location")))
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.ContainerResponse, 0, len(list))
	for _, container := range list {
		items = append(items, toContainerResponse(container))
	}
	return c.JSON(dto.ContainerListResponse{Items: items, Total: len(items)})
}

// GetByID godoc
// @Summary      Obtener un contenedor con sus ítems
// @Tags         containers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del contenedor"
// @Success      200  {object}  dto.ContainerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/containers/{id} [get]
func (h *ContainerHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	container, err := h.containers.GetByID(companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toContainerResponse(container))
}

// Create godoc
// @Summary      Crear un contenedor (corre diff y sincronización de precios)
// @Tags         containers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EditContainerRequest  true  "nombre, ubicación e ítems"
// @Success      201  {object}  dto.EditContainerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/containers [post]
func (h *ContainerHandler) Create(c *fiber.Ctx) error {
	return h.editContainer(c, "")
}

// Update godoc
// @Summary      Reemplazar un contenedor (corre diff y sincronización de precios)
// @Tags         containers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del contenedor"
// @Param        body  body  dto.EditContainerRequest  true  "nombre, ubicación e ítems"
// @Success      200  {object}  dto.EditContainerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/containers/{id} [put]
func (h *ContainerHandler) Update(c *fiber.Ctx) error {
	return h.editContainer(c, c.Params("id"))
}

// editContainer cuerpo común de create/update: valida, persiste y reporta el
// pase de sincronización. Un pase parcial no es error HTTP: la edición del
// contenedor propio ya quedó firme; las fallas van en warnings.
func (h *ContainerHandler) editContainer(c *fiber.Ctx, containerID string) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.EditContainerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	container, report, err := h.edit.Edit(companyID, containerID, in)
	if err != nil {
		return respondError(c, err)
	}

	resp := dto.EditContainerResponse{
		Container: toContainerResponse(container),
		Synced:    report.Synced,
	}
	for _, f := range report.Failures {
		resp.Warnings = append(resp.Warnings, dto.SyncWarning{
			ContainerID:   f.ContainerID,
			ContainerName: f.ContainerName,
			Error:         f.Err.Error(),
		})
	}
	status := fiber.StatusOK
	if containerID == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(resp)
}

// Delete godoc
// @Summary      Eliminar un contenedor
// @Tags         containers
// @Security     Bearer
// @Param        id  path  string  true  "ID del contenedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/containers/{id} [delete]
func (h *ContainerHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.containers.Delete(companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toContainerResponse(container *entity.Container) dto.ContainerResponse {
	items := make([]dto.ItemResponse, 0, len(container.Items))
	for _, it := range container.Items {
		items = append(items, dto.ItemResponse{
			ID:       it.ID,
			Detail:   it.Detail,
			Quantity: it.Quantity,
			Cost:     it.Cost,
			Currency: string(it.Currency),
			Barcode:  it.Barcode,
		})
	}
	return dto.ContainerResponse{
		ID:        container.ID,
		CompanyID: container.CompanyID,
		Name:      container.Name,
		Location:  string(container.Location),
		Items:     items,
		CreatedAt: container.CreatedAt,
		UpdatedAt: container.UpdatedAt,
	}
}
