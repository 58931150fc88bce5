package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssetMovementRepository = (*AssetMovementRepo)(nil)

// AssetMovementRepo implementación del libro de movimientos sobre PostgreSQL.
// Solo INSERT y SELECT: el libro es append-only por construcción, no existe
// SQL de update ni delete en este archivo.
type AssetMovementRepo struct {
	q Querier
}

// NewAssetMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssetMovementRepository(q Querier) *AssetMovementRepo {
	return &AssetMovementRepo{q: q}
}

// Create persiste un movimiento y deja el ID generado (BIGSERIAL) en movement.ID.
func (r *AssetMovementRepo) Create(movement *entity.AssetMovement) error {
	if movement.OccurredAt.IsZero() {
		movement.OccurredAt = time.Now().UTC()
	}
	query := `
		INSERT INTO asset_movements (asset_id, type, occurred_at, reason_id, notes, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		movement.AssetID, movement.Type, movement.OccurredAt,
		nullable(movement.ReasonID), nullable(movement.Notes), movement.UserID,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return translateWriteError(fmt.Errorf("insert movement: %w", err))
	}
	return nil
}

// ListRecent lista los últimos limit movimientos con tag/serial del activo ya
// unidos. Orden: occurred_at DESC con desempate id DESC (dos movimientos
// pueden compartir timestamp a granularidad de segundo).
func (r *AssetMovementRepo) ListRecent(limit int) ([]entity.MovementView, error) {
	query := `
		SELECT m.id, m.type, m.occurred_at, m.asset_id, a.tag, COALESCE(a.serial, ''),
		       a.product_id, COALESCE(m.reason_id::text, ''), m.user_id, COALESCE(m.notes, '')
		FROM asset_movements m
		JOIN asset_units a ON a.id = m.asset_id
		ORDER BY m.occurred_at DESC, m.id DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []entity.MovementView
	for rows.Next() {
		var v entity.MovementView
		if err := rows.Scan(
			&v.ID, &v.Type, &v.OccurredAt, &v.AssetID, &v.AssetTag, &v.AssetSerial,
			&v.ProductID, &v.ReasonID, &v.UserID, &v.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// CountByAsset cuenta los movimientos de un activo (guardia del borrado).
func (r *AssetMovementRepo) CountByAsset(assetID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM asset_movements WHERE asset_id = $1`, assetID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}
