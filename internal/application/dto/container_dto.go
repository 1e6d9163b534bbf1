package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest una línea de stock dentro de una edición de contenedor.
// Cost cero u omitido = ítem sin precio; Cost > 0 exige Currency (USD|ARS).
type ItemRequest struct {
	ID       string          `json:"id,omitempty"`
	Detail   string          `json:"detail"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
	Currency string          `json:"currency,omitempty"`
	Barcode  string          `json:"barcode,omitempty"`
}

// EditContainerRequest crea o reemplaza un contenedor: nombre, ubicación y la
// lista completa de ítems.
type EditContainerRequest struct {
	Name     string        `json:"name"`
	Location string        `json:"location"` // FRONT | BACK
	Items    []ItemRequest `json:"items"`
}

// ItemResponse una línea de stock en respuestas.
type ItemResponse struct {
	ID       string          `json:"id"`
	Detail   string          `json:"detail"`
	Quantity int             `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
	Currency string          `json:"currency,omitempty"`
	Barcode  string          `json:"barcode,omitempty"`
}

// ContainerResponse un contenedor con sus ítems.
type ContainerResponse struct {
	ID        string         `json:"id"`
	CompanyID string         `json:"company_id"`
	Name      string         `json:"name"`
	Location  string         `json:"location"`
	Items     []ItemResponse `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ContainerListResponse listado de contenedores de la empresa.
type ContainerListResponse struct {
	Items []ContainerResponse `json:"items"`
	Total int                 `json:"total"`
}

// SyncWarning falla de propagación sobre un contenedor puntual durante un
// pase de sincronización de precios (no fatal).
type SyncWarning struct {
	ContainerID   string `json:"container_id,omitempty"`
	ContainerName string `json:"container_name,omitempty"`
	Error         string `json:"error"`
}

// EditContainerResponse resultado de una edición: el contenedor persistido más
// el resultado del pase de sincronización de precios.
type EditContainerResponse struct {
	Container ContainerResponse `json:"container"`
	Synced    int               `json:"synced_containers"`
	Warnings  []SyncWarning     `json:"warnings,omitempty"`
}
