package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación de AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetColumns = `id, product_id, tag, serial, code, status, notes, created_at, updated_at`

// Create persiste una unidad de activo nueva.
func (r *AssetRepo) Create(asset *entity.AssetUnit) error {
	query := `
		INSERT INTO asset_units (id, product_id, tag, serial, code, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.ProductID, asset.Tag, nullable(asset.Serial), asset.Code,
		asset.Status, nullable(asset.Notes), asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(fmt.Errorf("insert asset: %w", err))
	}
	return nil
}

// GetByID obtiene un activo por ID. Retorna nil, nil si no existe.
func (r *AssetRepo) GetByID(id string) (*entity.AssetUnit, error) {
	query := `SELECT ` + assetColumns + ` FROM asset_units WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByIDForUpdate obtiene un activo y bloquea su fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción: serializa las transiciones de custodia
// sobre el mismo activo.
func (r *AssetRepo) GetByIDForUpdate(id string) (*entity.AssetUnit, error) {
	query := `SELECT ` + assetColumns + ` FROM asset_units WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// GetByTag obtiene un activo por tag exacto.
func (r *AssetRepo) GetByTag(tag string) (*entity.AssetUnit, error) {
	query := `SELECT ` + assetColumns + ` FROM asset_units WHERE tag = $1`
	return r.scanOne(query, tag)
}

// GetByCode obtiene un activo por su code de escaneo.
func (r *AssetRepo) GetByCode(code string) (*entity.AssetUnit, error) {
	query := `SELECT ` + assetColumns + ` FROM asset_units WHERE code = $1`
	return r.scanOne(query, code)
}

// List lista activos con nombre de producto y categoría ya unidos.
// El filtro de búsqueda aplica ILIKE sobre tag, serial y code.
func (r *AssetRepo) List(filter repository.AssetFilter) ([]repository.AssetView, error) {
	query := `
		SELECT a.id, a.product_id, a.tag, a.serial, a.code, a.status, a.notes, a.created_at, a.updated_at,
		       p.name, COALESCE(c.name, '')
		FROM asset_units a
		JOIN products p ON p.id = a.product_id
		LEFT JOIN categories c ON c.id = p.category_id`
	args := []any{}
	pos := 1
	where := ""
	if filter.Status != "" && filter.Status != "ALL" {
		where = fmt.Sprintf(" WHERE a.status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.Search != "" {
		clause := fmt.Sprintf("(a.tag ILIKE $%d OR a.serial ILIKE $%d OR a.code ILIKE $%d)", pos, pos, pos)
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
		args = append(args, "%"+filter.Search+"%")
	}
	query += where + " ORDER BY a.created_at DESC, a.id DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var list []repository.AssetView
	for rows.Next() {
		var v repository.AssetView
		var serial, notes *string
		if err := rows.Scan(
			&v.Asset.ID, &v.Asset.ProductID, &v.Asset.Tag, &serial, &v.Asset.Code,
			&v.Asset.Status, &notes, &v.Asset.CreatedAt, &v.Asset.UpdatedAt,
			&v.ProductName, &v.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		v.Asset.Serial = deref(serial)
		v.Asset.Notes = deref(notes)
		list = append(list, v)
	}
	return list, rows.Err()
}

// Update persiste los atributos editables del activo (nunca el status).
func (r *AssetRepo) Update(asset *entity.AssetUnit) error {
	query := `
		UPDATE asset_units
		SET product_id = $2, tag = $3, serial = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.ProductID, asset.Tag, nullable(asset.Serial), nullable(asset.Notes), asset.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(fmt.Errorf("update asset: %w", err))
	}
	return nil
}

// UpdateStatus muta solo el status del activo.
func (r *AssetRepo) UpdateStatus(id, status string) error {
	query := `UPDATE asset_units SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return translateWriteError(fmt.Errorf("update asset status: %w", err))
	}
	return nil
}

// Delete borra un activo. Con movimientos asociados la FK devuelve conflicto.
func (r *AssetRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM asset_units WHERE id = $1`, id)
	if err != nil {
		return translateWriteError(fmt.Errorf("delete asset: %w", err))
	}
	return nil
}

// MaxTagSuffix devuelve el sufijo numérico máximo entre los tags que calzan
// con el prefijo configurado (tags puramente numéricos si prefix es vacío).
// Alimenta el bootstrap del contador de tags.
func (r *AssetRepo) MaxTagSuffix(prefix string) (int64, error) {
	pattern := `^(\d+)$`
	if prefix != "" {
		pattern = "^" + regexp.QuoteMeta(prefix) + `-(\d+)$`
	}
	query := `
		SELECT COALESCE(MAX((substring(tag from $1))::bigint), 0)
		FROM asset_units WHERE tag ~ $1`
	var max int64
	if err := r.q.QueryRow(context.Background(), query, pattern).Scan(&max); err != nil {
		return 0, fmt.Errorf("max tag suffix: %w", err)
	}
	return max, nil
}

func (r *AssetRepo) scanOne(query string, arg any) (*entity.AssetUnit, error) {
	var a entity.AssetUnit
	var serial, notes *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.ProductID, &a.Tag, &serial, &a.Code, &a.Status, &notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	a.Serial = deref(serial)
	a.Notes = deref(notes)
	return &a, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
