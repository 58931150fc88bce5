package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var (
	_ repository.ExitReasonRepository = (*ExitReasonRepo)(nil)
	_ assets.ReasonDirectory          = (*ExitReasonRepo)(nil)
)

// ExitReasonRepo implementación de ExitReasonRepository sobre PostgreSQL.
// También sirve como ReasonDirectory para los casos de uso de custodia.
type ExitReasonRepo struct {
	q Querier
}

func NewExitReasonRepository(q Querier) *ExitReasonRepo {
	return &ExitReasonRepo{q: q}
}

func (r *ExitReasonRepo) Create(reason *entity.ExitReason) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO exit_reasons (id, name, is_active) VALUES ($1, $2, $3)`,
		reason.ID, reason.Name, reason.IsActive,
	)
	if err != nil {
		return translateWriteError(fmt.Errorf("insert exit reason: %w", err))
	}
	return nil
}

func (r *ExitReasonRepo) GetByID(id string) (*entity.ExitReason, error) {
	var er entity.ExitReason
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, is_active, created_at FROM exit_reasons WHERE id = $1`, id,
	).Scan(&er.ID, &er.Name, &er.IsActive, &er.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exit reason: %w", err)
	}
	return &er, nil
}

func (r *ExitReasonRepo) List(onlyActive bool) ([]*entity.ExitReason, error) {
	query := `SELECT id, name, is_active, created_at FROM exit_reasons`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list exit reasons: %w", err)
	}
	defer rows.Close()

	var list []*entity.ExitReason
	for rows.Next() {
		var er entity.ExitReason
		if err := rows.Scan(&er.ID, &er.Name, &er.IsActive, &er.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exit reason: %w", err)
		}
		list = append(list, &er)
	}
	return list, rows.Err()
}

func (r *ExitReasonRepo) Update(reason *entity.ExitReason) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE exit_reasons SET name = $2 WHERE id = $1`,
		reason.ID, reason.Name,
	)
	if err != nil {
		return translateWriteError(fmt.Errorf("update exit reason: %w", err))
	}
	return nil
}

// SetActive activa o desactiva un motivo. Nunca se borran: los movimientos
// históricos los siguen referenciando.
func (r *ExitReasonRepo) SetActive(id string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE exit_reasons SET is_active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return translateWriteError(fmt.Errorf("set exit reason active: %w", err))
	}
	return nil
}

// Active retorna (false, nil) tanto si el motivo no existe como si está inactivo.
func (r *ExitReasonRepo) Active(id string) (bool, error) {
	var active bool
	err := r.q.QueryRow(context.Background(),
		`SELECT is_active FROM exit_reasons WHERE id = $1`, id,
	).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check exit reason: %w", err)
	}
	return active, nil
}

// DisplayName retorna el nombre del motivo, o "" si no existe.
func (r *ExitReasonRepo) DisplayName(id string) (string, error) {
	var name string
	err := r.q.QueryRow(context.Background(),
		`SELECT name FROM exit_reasons WHERE id = $1`, id,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("exit reason name: %w", err)
	}
	return name, nil
}
