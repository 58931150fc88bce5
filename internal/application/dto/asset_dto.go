package dto

import "time"

// CreateAssetRequest alta de una unidad de activo. Tag vacío = asignación automática.
type CreateAssetRequest struct {
	ProductID string `json:"product_id"`
	Tag       string `json:"tag"`
	Serial    string `json:"serial"`
	Notes     string `json:"notes"`
}

// CreateAssetsBulkRequest alta masiva: siempre asigna tags automáticos.
type CreateAssetsBulkRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// AssetCreatedResponse respuesta mínima del alta (id, tag y code asignados).
type AssetCreatedResponse struct {
	ID   string `json:"id"`
	Tag  string `json:"tag"`
	Code string `json:"code"`
}

// UpdateAssetRequest edición de atributos. El status no se edita por aquí:
// toda transición pasa por check-in/check-out o por la anulación administrativa.
type UpdateAssetRequest struct {
	ProductID *string `json:"product_id"`
	Tag       *string `json:"tag"`
	Serial    *string `json:"serial"`
	Notes     *string `json:"notes"`
}

// AdminStatusRequest anulación administrativa: MAINTENANCE o DISPOSED.
type AdminStatusRequest struct {
	Status     string     `json:"status"`
	ReasonID   string     `json:"reason_id"`
	Notes      string     `json:"notes"`
	OccurredAt *time.Time `json:"occurred_at"`
}

// AssetResponse vista de un activo para listados y detalle.
type AssetResponse struct {
	ID          string    `json:"id"`
	Tag         string    `json:"tag"`
	Serial      string    `json:"serial,omitempty"`
	Code        string    `json:"code"`
	ScanPayload string    `json:"scan_payload"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	ProductID   string    `json:"product_id"`
	Product     string    `json:"product"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
