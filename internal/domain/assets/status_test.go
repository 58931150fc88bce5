package assets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain/assets"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func TestCanCheckOut_SoloDesdeInStock(t *testing.T) {
	assert.True(t, assets.CanCheckOut(entity.StatusInStock))
	assert.False(t, assets.CanCheckOut(entity.StatusOut))
	assert.False(t, assets.CanCheckOut(entity.StatusMaintenance))
	assert.False(t, assets.CanCheckOut(entity.StatusDisposed))
}

func TestCanCheckIn_DesdeOutYMaintenance(t *testing.T) {
	assert.True(t, assets.CanCheckIn(entity.StatusOut))
	assert.True(t, assets.CanCheckIn(entity.StatusMaintenance))
	assert.False(t, assets.CanCheckIn(entity.StatusInStock))
	assert.False(t, assets.CanCheckIn(entity.StatusDisposed))
}

func TestCanAdminSet_DestinosPermitidos(t *testing.T) {
	// Desde IN_STOCK y OUT se puede anular a MAINTENANCE o DISPOSED.
	assert.True(t, assets.CanAdminSet(entity.StatusInStock, entity.StatusMaintenance))
	assert.True(t, assets.CanAdminSet(entity.StatusInStock, entity.StatusDisposed))
	assert.True(t, assets.CanAdminSet(entity.StatusOut, entity.StatusDisposed))
	assert.True(t, assets.CanAdminSet(entity.StatusMaintenance, entity.StatusDisposed))
}

func TestCanAdminSet_DisposedEsTerminal(t *testing.T) {
	assert.False(t, assets.CanAdminSet(entity.StatusDisposed, entity.StatusMaintenance))
	assert.False(t, assets.CanAdminSet(entity.StatusDisposed, entity.StatusInStock))
	assert.False(t, assets.CanAdminSet(entity.StatusDisposed, entity.StatusDisposed))
}

func TestCanAdminSet_RechazaDestinosDeCustodia(t *testing.T) {
	// IN_STOCK y OUT se alcanzan solo vía check-in / check-out.
	assert.False(t, assets.CanAdminSet(entity.StatusOut, entity.StatusInStock))
	assert.False(t, assets.CanAdminSet(entity.StatusMaintenance, entity.StatusInStock))
	assert.False(t, assets.CanAdminSet(entity.StatusInStock, entity.StatusOut))
	// Transición al mismo estado no es transición.
	assert.False(t, assets.CanAdminSet(entity.StatusMaintenance, entity.StatusMaintenance))
}
