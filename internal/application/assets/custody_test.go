package assets_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

const (
	testOperatorID     = "22222222-2222-2222-2222-222222222222"
	testReasonLoan     = "33333333-3333-3333-3333-333333333333"
	testReasonInactive = "44444444-4444-4444-4444-444444444444"
)

func newTestCustodyUseCase(s *fakeStore) *assets.CustodyUseCase {
	return assets.NewCustodyUseCase(
		&fakeTxRunner{s: s},
		&fakeDirectory{names: map[string]string{testOperatorID: "mrivas"}},
		&fakeReasons{
			names:  map[string]string{testReasonLoan: "Préstamo", testReasonInactive: "Obsoleto"},
			active: map[string]bool{testReasonLoan: true, testReasonInactive: false},
		},
	)
}

// seedAsset inserta un activo directamente en el store con el estado dado.
func seedAsset(s *fakeStore, id, status string) {
	s.assets[id] = &entity.AssetUnit{
		ID:        id,
		ProductID: testProductID,
		Tag:       "PAT-" + id[:6],
		Code:      id,
		Status:    status,
	}
}

func TestCheckOut_DejaOutYRegistraMovimiento(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusInStock)

	err := uc.CheckOut(context.Background(), testOperatorID, dto.CheckOutRequest{
		AssetID:  "aaaaaa-1",
		ReasonID: testReasonLoan,
		Notes:    "préstamo a soporte",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusOut, s.assets["aaaaaa-1"].Status)
	require.Len(t, s.movements, 1)
	mov := s.movements[0]
	assert.Equal(t, entity.MovementTypeOUT, mov.Type)
	assert.Equal(t, testReasonLoan, mov.ReasonID)
	assert.Equal(t, testOperatorID, mov.UserID)
	assert.Equal(t, "préstamo a soporte", mov.Notes)
	assert.False(t, mov.OccurredAt.IsZero())
}

func TestCheckOut_DobleCheckOutFalla(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusInStock)

	require.NoError(t, uc.CheckOut(context.Background(), testOperatorID, dto.CheckOutRequest{
		AssetID: "aaaaaa-1", ReasonID: testReasonLoan,
	}))

	err := uc.CheckOut(context.Background(), testOperatorID, dto.CheckOutRequest{
		AssetID: "aaaaaa-1", ReasonID: testReasonLoan,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// La transición fallida no deja rastro: status intacto, un solo movimiento.
	assert.Equal(t, entity.StatusOut, s.assets["aaaaaa-1"].Status)
	assert.Len(t, s.movements, 1)
}

func TestCheckOut_MotivoInactivoFalla(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusInStock)

	err := uc.CheckOut(context.Background(), testOperatorID, dto.CheckOutRequest{
		AssetID: "aaaaaa-1", ReasonID: testReasonInactive,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReason)
	assert.Equal(t, entity.StatusInStock, s.assets["aaaaaa-1"].Status)
	assert.Empty(t, s.movements)
}

func TestCheckOut_MotivoInexistenteFalla(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusInStock)

	err := uc.CheckOut(context.Background(), testOperatorID, dto.CheckOutRequest{
		AssetID: "aaaaaa-1", ReasonID: "99999999-9999-9999-9999-999999999999",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReason)
}

func TestCheckOut_ActivoInexistenteFalla(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)

	err := uc.CheckOut(context.Background(), testOperatorID, dto.CheckOutRequest{
		AssetID: "no-existe", ReasonID: testReasonLoan,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckOut_UsuarioInexistenteFalla(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusInStock)

	err := uc.CheckOut(context.Background(), "55555555-0000-0000-0000-000000000000", dto.CheckOutRequest{
		AssetID: "aaaaaa-1", ReasonID: testReasonLoan,
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCheckIn_IdaYVuelta(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusInStock)

	require.NoError(t, uc.CheckOut(context.Background(), testOperatorID, dto.CheckOutRequest{
		AssetID: "aaaaaa-1", ReasonID: testReasonLoan,
	}))
	require.NoError(t, uc.CheckIn(context.Background(), testOperatorID, dto.CheckInRequest{
		AssetID: "aaaaaa-1", Notes: "devuelto",
	}))

	assert.Equal(t, entity.StatusInStock, s.assets["aaaaaa-1"].Status)
	require.Len(t, s.movements, 2)
	assert.Equal(t, entity.MovementTypeIN, s.movements[1].Type)
	assert.Empty(t, s.movements[1].ReasonID, "la entrada no lleva motivo")
}

func TestCheckIn_DesdeMaintenance(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusMaintenance)

	require.NoError(t, uc.CheckIn(context.Background(), testOperatorID, dto.CheckInRequest{
		AssetID: "aaaaaa-1",
	}))
	assert.Equal(t, entity.StatusInStock, s.assets["aaaaaa-1"].Status)
}

func TestCheckIn_DesdeInStockFalla(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusInStock)

	err := uc.CheckIn(context.Background(), testOperatorID, dto.CheckInRequest{AssetID: "aaaaaa-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Empty(t, s.movements)
}

func TestCheckOut_RetroFechado(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusInStock)

	past := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	require.NoError(t, uc.CheckOut(context.Background(), testOperatorID, dto.CheckOutRequest{
		AssetID: "aaaaaa-1", ReasonID: testReasonLoan, OccurredAt: &past,
	}))
	assert.True(t, s.movements[0].OccurredAt.Equal(past))
}

// ── Anulación administrativa ──────────────────────────────────────────────────

func TestAdminSetStatus_AMaintenanceConMovimiento(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusInStock)

	err := uc.AdminSetStatus(context.Background(), testOperatorID, "aaaaaa-1", dto.AdminStatusRequest{
		Status:   entity.StatusMaintenance,
		ReasonID: testReasonLoan,
		Notes:    "pantalla rota",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusMaintenance, s.assets["aaaaaa-1"].Status)
	require.Len(t, s.movements, 1, "la anulación administrativa también queda en el libro")
	assert.Equal(t, entity.MovementTypeOUT, s.movements[0].Type)
	assert.Equal(t, testReasonLoan, s.movements[0].ReasonID)
}

func TestAdminSetStatus_SinMotivoFalla(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusInStock)

	err := uc.AdminSetStatus(context.Background(), testOperatorID, "aaaaaa-1", dto.AdminStatusRequest{
		Status: entity.StatusDisposed,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReason)
}

func TestAdminSetStatus_DesdeDisposedFalla(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusDisposed)

	err := uc.AdminSetStatus(context.Background(), testOperatorID, "aaaaaa-1", dto.AdminStatusRequest{
		Status:   entity.StatusMaintenance,
		ReasonID: testReasonLoan,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.StatusDisposed, s.assets["aaaaaa-1"].Status)
}

func TestAdminSetStatus_DestinoInvalido(t *testing.T) {
	s := newFakeStore()
	uc := newTestCustodyUseCase(s)
	seedAsset(s, "aaaaaa-1", entity.StatusOut)

	// IN_STOCK solo se alcanza con check-in, no por la vía administrativa.
	err := uc.AdminSetStatus(context.Background(), testOperatorID, "aaaaaa-1", dto.AdminStatusRequest{
		Status:   entity.StatusInStock,
		ReasonID: testReasonLoan,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
