package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// AssetMovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no existen operaciones de update ni delete.
type AssetMovementRepository interface {
	Create(movement *entity.AssetMovement) error
	// ListRecent devuelve los últimos movimientos con tag/serial del activo ya
	// unidos, ordenados por occurred_at DESC con desempate id DESC.
	ListRecent(limit int) ([]entity.MovementView, error)
	CountByAsset(assetID string) (int64, error)
}
