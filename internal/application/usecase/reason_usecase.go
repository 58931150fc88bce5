package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// ReasonUseCase casos de uso para motivos de salida. Los motivos no se borran:
// se desactivan, y la desactivación nunca toca movimientos históricos.
type ReasonUseCase struct {
	repo repository.ExitReasonRepository
}

// NewReasonUseCase construye el caso de uso.
func NewReasonUseCase(repo repository.ExitReasonRepository) *ReasonUseCase {
	return &ReasonUseCase{repo: repo}
}

// Create crea un motivo activo; el nombre es único.
func (uc *ReasonUseCase) Create(in dto.ReasonRequest) (*dto.ReasonResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	reason := &entity.ExitReason{
		ID:        uuid.New().String(),
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(reason); err != nil {
		return nil, err
	}
	return toReasonResponse(reason), nil
}

// List lista motivos; con onlyActive solo los seleccionables al dar salida.
func (uc *ReasonUseCase) List(onlyActive bool) ([]dto.ReasonResponse, error) {
	reasons, err := uc.repo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReasonResponse, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, *toReasonResponse(r))
	}
	return out, nil
}

// Update renombra un motivo.
func (uc *ReasonUseCase) Update(id string, in dto.ReasonRequest) (*dto.ReasonResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	reason, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reason == nil {
		return nil, domain.ErrNotFound
	}
	reason.Name = name
	if err := uc.repo.Update(reason); err != nil {
		return nil, err
	}
	return toReasonResponse(reason), nil
}

// SetActive activa o desactiva un motivo.
func (uc *ReasonUseCase) SetActive(id string, active bool) (*dto.ReasonResponse, error) {
	reason, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reason == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetActive(id, active); err != nil {
		return nil, err
	}
	reason.IsActive = active
	return toReasonResponse(reason), nil
}

func toReasonResponse(r *entity.ExitReason) *dto.ReasonResponse {
	return &dto.ReasonResponse{ID: r.ID, Name: r.Name, IsActive: r.IsActive}
}
