package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.TagSequenceRepository = (*TagSequenceRepo)(nil)

// TagSequenceRepo implementación del contador de tags sobre PostgreSQL.
// Pensado para usarse siempre dentro de la transacción que consume el tag.
type TagSequenceRepo struct {
	q Querier
}

// NewTagSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTagSequenceRepository(q Querier) *TagSequenceRepo {
	return &TagSequenceRepo{q: q}
}

// GetForUpdate obtiene la fila del esquema y la bloquea (SELECT FOR UPDATE):
// dos asignaciones concurrentes quedan serializadas sobre esta fila.
// Retorna nil, nil si el esquema aún no fue bootstrapeado.
func (r *TagSequenceRepo) GetForUpdate(scheme string) (*entity.TagSequence, error) {
	query := `
		SELECT scheme, prefix, width, next_value, updated_at
		FROM tag_sequences WHERE scheme = $1
		FOR UPDATE`
	var s entity.TagSequence
	err := r.q.QueryRow(context.Background(), query, scheme).Scan(
		&s.Scheme, &s.Prefix, &s.Width, &s.NextValue, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag sequence: %w", err)
	}
	return &s, nil
}

// Create inserta la fila inicial del esquema. Una violación de unicidad aquí
// es una carrera de bootstrap entre dos transacciones: sale como ErrConflict
// para que el caller reintente la operación completa.
func (r *TagSequenceRepo) Create(seq *entity.TagSequence) error {
	query := `
		INSERT INTO tag_sequences (scheme, prefix, width, next_value, updated_at)
		VALUES ($1, $2, $3, $4, now())`
	_, err := r.q.Exec(context.Background(), query, seq.Scheme, seq.Prefix, seq.Width, seq.NextValue)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bootstrap de contador en carrera: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert tag sequence: %w", err)
	}
	return nil
}

// SetNextValue persiste el próximo valor del contador.
func (r *TagSequenceRepo) SetNextValue(scheme string, next int64) error {
	query := `UPDATE tag_sequences SET next_value = $2, updated_at = now() WHERE scheme = $1`
	_, err := r.q.Exec(context.Background(), query, scheme, next)
	if err != nil {
		return fmt.Errorf("update tag sequence: %w", err)
	}
	return nil
}
