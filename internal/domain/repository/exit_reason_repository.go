package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// ExitReasonRepository define el puerto de persistencia para motivos de salida.
type ExitReasonRepository interface {
	Create(reason *entity.ExitReason) error
	GetByID(id string) (*entity.ExitReason, error)
	List(onlyActive bool) ([]*entity.ExitReason, error)
	Update(reason *entity.ExitReason) error
	SetActive(id string, active bool) error
}
