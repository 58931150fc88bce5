package dto

import "time"

// CheckInRequest entrada (devolución a stock) de un activo.
// OccurredAt admite retro-fechado; nil = ahora.
type CheckInRequest struct {
	AssetID    string     `json:"asset_id"`
	Notes      string     `json:"notes"`
	OccurredAt *time.Time `json:"occurred_at"`
}

// CheckOutRequest salida de un activo; el motivo es obligatorio.
type CheckOutRequest struct {
	AssetID    string     `json:"asset_id"`
	ReasonID   string     `json:"reason_id"`
	Notes      string     `json:"notes"`
	OccurredAt *time.Time `json:"occurred_at"`
}

// MovementResponse fila denormalizada del libro de movimientos.
type MovementResponse struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	AssetID    string    `json:"asset_id"`
	AssetTag   string    `json:"asset_tag"`
	Serial     string    `json:"serial,omitempty"`
	Product    string    `json:"product"`
	Reason     string    `json:"reason,omitempty"`
	User       string    `json:"user"`
	Notes      string    `json:"notes,omitempty"`
}
