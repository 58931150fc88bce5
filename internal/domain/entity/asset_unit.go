package entity

import "time"

// Estados de custodia de un activo.
const (
	StatusInStock     = "IN_STOCK"
	StatusOut         = "OUT"
	StatusMaintenance = "MAINTENANCE"
	StatusDisposed    = "DISPOSED"
)

// ValidStatus indica si s es uno de los cuatro estados de custodia.
func ValidStatus(s string) bool {
	switch s {
	case StatusInStock, StatusOut, StatusMaintenance, StatusDisposed:
		return true
	}
	return false
}

// AssetUnit representa una unidad física serializada (un patrimonio individual).
// Tag es el identificador legible (único, editable por admin); Code es el token
// opaco escaneable (UUID, asignado una sola vez al crear, nunca reasignado).
type AssetUnit struct {
	ID        string
	ProductID string
	Tag       string
	Serial    string // número de serie del fabricante, opcional
	Code      string // payload del QR, uuid
	Status    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
