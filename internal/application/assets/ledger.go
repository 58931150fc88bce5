package assets

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Límites del listado de movimientos. No hay cursor de paginación: el caller
// reemite con un limit mayor si necesita más historial.
const (
	defaultMovementLimit = 100
	maxMovementLimit     = 1000
)

// LedgerUseCase es el camino de lectura del libro de movimientos: filas
// ordenadas por occurred_at DESC (desempate id DESC) y denormalizadas con los
// nombres de producto, motivo y usuario vía los directorios colaboradores.
type LedgerUseCase struct {
	movRepo  repository.AssetMovementRepository
	products ProductDirectory
	reasons  ReasonDirectory
	users    UserDirectory
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	movRepo repository.AssetMovementRepository,
	products ProductDirectory,
	reasons ReasonDirectory,
	users UserDirectory,
) *LedgerUseCase {
	return &LedgerUseCase{movRepo: movRepo, products: products, reasons: reasons, users: users}
}

// ListMovements devuelve los últimos limit movimientos del libro.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, limit int) ([]dto.MovementResponse, error) {
	if limit <= 0 {
		limit = defaultMovementLimit
	}
	if limit > maxMovementLimit {
		limit = maxMovementLimit
	}
	rows, err := uc.movRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}

	// Memo por llamada: un listado suele repetir pocos productos/usuarios/motivos.
	productNames := map[string]string{}
	reasonNames := map[string]string{}
	userNames := map[string]string{}

	out := make([]dto.MovementResponse, 0, len(rows))
	for _, row := range rows {
		product, err := lookupName(productNames, row.ProductID, uc.products.DisplayName)
		if err != nil {
			return nil, err
		}
		reason := ""
		if row.ReasonID != "" {
			if reason, err = lookupName(reasonNames, row.ReasonID, uc.reasons.DisplayName); err != nil {
				return nil, err
			}
		}
		user, err := lookupName(userNames, row.UserID, uc.users.DisplayName)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.MovementResponse{
			ID:         row.ID,
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			AssetID:    row.AssetID,
			AssetTag:   row.AssetTag,
			Serial:     row.AssetSerial,
			Product:    product,
			Reason:     reason,
			User:       user,
			Notes:      row.Notes,
		})
	}
	return out, nil
}

func lookupName(memo map[string]string, id string, fn func(string) (string, error)) (string, error) {
	if id == "" {
		return "", nil
	}
	if name, ok := memo[id]; ok {
		return name, nil
	}
	name, err := fn(id)
	if err != nil {
		return "", err
	}
	memo[id] = name
	return name, nil
}
