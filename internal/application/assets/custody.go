package assets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	domassets "github.com/jhoicas/Activos-api/internal/domain/assets"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// CustodyUseCase aplica las transiciones de custodia. Cada operación es una
// unidad atómica: el SELECT FOR UPDATE sobre la fila del activo garantiza que
// dos check-outs concurrentes del mismo activo no observen ambos IN_STOCK; la
// lectura del estado, su escritura y el movimiento quedan en la misma tx.
type CustodyUseCase struct {
	txRunner TxRunner
	users    UserDirectory
	reasons  ReasonDirectory
}

// NewCustodyUseCase construye el caso de uso.
func NewCustodyUseCase(txRunner TxRunner, users UserDirectory, reasons ReasonDirectory) *CustodyUseCase {
	return &CustodyUseCase{txRunner: txRunner, users: users, reasons: reasons}
}

// CheckIn registra la entrada (devolución a stock) de un activo.
// Legal solo desde OUT o MAINTENANCE; deja status IN_STOCK y agrega un
// movimiento IN sin motivo.
func (uc *CustodyUseCase) CheckIn(ctx context.Context, userID string, in dto.CheckInRequest) error {
	if strings.TrimSpace(in.AssetID) == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.requireUser(userID); err != nil {
		return err
	}
	occurred := occurredOrNow(in.OccurredAt)

	return uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		movRepo repository.AssetMovementRepository,
		_ repository.TagSequenceRepository,
	) error {
		asset, err := assetRepo.GetByIDForUpdate(in.AssetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrNotFound
		}
		if !domassets.CanCheckIn(asset.Status) {
			return fmt.Errorf("%w: estado actual %s", domain.ErrInvalidTransition, asset.Status)
		}
		if err := assetRepo.UpdateStatus(asset.ID, entity.StatusInStock); err != nil {
			return err
		}
		return movRepo.Create(&entity.AssetMovement{
			AssetID:    asset.ID,
			Type:       entity.MovementTypeIN,
			OccurredAt: occurred,
			Notes:      strings.TrimSpace(in.Notes),
			UserID:     userID,
		})
	})
}

// CheckOut registra la salida de un activo. Legal solo desde IN_STOCK y con un
// motivo activo; deja status OUT y agrega un movimiento OUT con ese motivo.
func (uc *CustodyUseCase) CheckOut(ctx context.Context, userID string, in dto.CheckOutRequest) error {
	if strings.TrimSpace(in.AssetID) == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.requireUser(userID); err != nil {
		return err
	}
	if err := uc.requireActiveReason(in.ReasonID); err != nil {
		return err
	}
	occurred := occurredOrNow(in.OccurredAt)

	return uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		movRepo repository.AssetMovementRepository,
		_ repository.TagSequenceRepository,
	) error {
		asset, err := assetRepo.GetByIDForUpdate(in.AssetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrNotFound
		}
		if !domassets.CanCheckOut(asset.Status) {
			return fmt.Errorf("%w: estado actual %s", domain.ErrInvalidTransition, asset.Status)
		}
		if err := assetRepo.UpdateStatus(asset.ID, entity.StatusOut); err != nil {
			return err
		}
		return movRepo.Create(&entity.AssetMovement{
			AssetID:    asset.ID,
			Type:       entity.MovementTypeOUT,
			OccurredAt: occurred,
			ReasonID:   in.ReasonID,
			Notes:      strings.TrimSpace(in.Notes),
			UserID:     userID,
		})
	})
}

// AdminSetStatus es la anulación administrativa: lleva el activo a MAINTENANCE
// o DISPOSED. A diferencia del sistema original, también queda auditada: exige
// un motivo activo y agrega un movimiento OUT. Desde DISPOSED no se sale; de
// MAINTENANCE se vuelve a stock con CheckIn.
func (uc *CustodyUseCase) AdminSetStatus(ctx context.Context, userID, assetID string, in dto.AdminStatusRequest) error {
	if strings.TrimSpace(assetID) == "" || !entity.ValidStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	if err := uc.requireUser(userID); err != nil {
		return err
	}
	if err := uc.requireActiveReason(in.ReasonID); err != nil {
		return err
	}
	occurred := occurredOrNow(in.OccurredAt)

	return uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		movRepo repository.AssetMovementRepository,
		_ repository.TagSequenceRepository,
	) error {
		asset, err := assetRepo.GetByIDForUpdate(assetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrNotFound
		}
		if !domassets.CanAdminSet(asset.Status, in.Status) {
			return fmt.Errorf("%w: estado actual %s", domain.ErrInvalidTransition, asset.Status)
		}
		if err := assetRepo.UpdateStatus(asset.ID, in.Status); err != nil {
			return err
		}
		return movRepo.Create(&entity.AssetMovement{
			AssetID:    asset.ID,
			Type:       entity.MovementTypeOUT,
			OccurredAt: occurred,
			ReasonID:   in.ReasonID,
			Notes:      strings.TrimSpace(in.Notes),
			UserID:     userID,
		})
	})
}

func (uc *CustodyUseCase) requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.ErrUserNotFound
	}
	ok, err := uc.users.Exists(userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

func (uc *CustodyUseCase) requireActiveReason(reasonID string) error {
	if strings.TrimSpace(reasonID) == "" {
		return domain.ErrInvalidReason
	}
	active, err := uc.reasons.Active(reasonID)
	if err != nil {
		return err
	}
	if !active {
		return domain.ErrInvalidReason
	}
	return nil
}

func occurredOrNow(t *time.Time) time.Time {
	if t != nil && !t.IsZero() {
		return t.UTC()
	}
	return time.Now().UTC()
}
