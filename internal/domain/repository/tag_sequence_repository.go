package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// TagSequenceRepository define el puerto del contador de tags. Solo el
// asignador lo usa, siempre dentro de la transacción que consume el tag.
type TagSequenceRepository interface {
	// GetForUpdate bloquea la fila del esquema (SELECT FOR UPDATE).
	// Retorna nil (sin error) si la fila aún no existe.
	GetForUpdate(scheme string) (*entity.TagSequence, error)
	Create(seq *entity.TagSequence) error
	SetNextValue(scheme string, next int64) error
}
