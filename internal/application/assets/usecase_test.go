package assets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	domassets "github.com/jhoicas/Activos-api/internal/domain/assets"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func TestResolve_TagCodeYSobreSonEquivalentes(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	created, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)

	// Las tres entradas designan el mismo activo.
	inputs := []string{
		created.Tag,
		created.Code,
		domassets.ScanPayload(created.Code),
	}
	for _, input := range inputs {
		got, err := uc.Resolve(context.Background(), input)
		require.NoError(t, err, "entrada %q", input)
		assert.Equal(t, created.ID, got.ID, "entrada %q", input)
	}
}

func TestResolve_EntradaConEspacios(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	created, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)

	got, err := uc.Resolve(context.Background(), "  "+created.Tag+"\n")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestResolve_TagConFormaDeCode(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	// Tag explícito con forma de UUID: la resolución intenta primero por code,
	// no encuentra, y cae al tag.
	tagUUID := "99999999-9999-4999-8999-999999999999"
	created, err := uc.Create(context.Background(), dto.CreateAssetRequest{
		ProductID: testProductID,
		Tag:       tagUUID,
	})
	require.NoError(t, err)

	got, err := uc.Resolve(context.Background(), tagUUID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestGetByTag_TagExactoYDesconocido(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	created, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)

	got, err := uc.GetByTag(context.Background(), created.Tag)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = uc.GetByTag(context.Background(), "PAT-999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_SinCoincidenciaRetornaNotFound(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	_, err := uc.Resolve(context.Background(), "PAT-999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_EntradaVaciaEsInvalida(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	_, err := uc.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ProductoInexistenteFalla(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	_, err := uc.Create(context.Background(), dto.CreateAssetRequest{
		ProductID: "00000000-0000-0000-0000-00000000dead",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_IncluyeScanPayload(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	created, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)

	got, err := uc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domassets.ScanPayload(created.Code), got.ScanPayload)
	assert.Equal(t, "Notebook Dell 5420", got.Product)
	assert.Equal(t, entity.StatusInStock, got.Status)
}

func TestUpdate_NoTocaElStatus(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	created, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)
	s.assets[created.ID].Status = entity.StatusOut

	serial := "7XK9Q33"
	got, err := uc.Update(context.Background(), created.ID, dto.UpdateAssetRequest{Serial: &serial})
	require.NoError(t, err)
	assert.Equal(t, "7XK9Q33", got.Serial)
	assert.Equal(t, entity.StatusOut, got.Status, "editar atributos no debe alterar la custodia")
}

func TestUpdate_TagVacioEsInvalido(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	created, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)

	empty := "  "
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateAssetRequest{Tag: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_SinMovimientos(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	created, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Empty(t, s.assets)
}

func TestDelete_ConMovimientosEsConflicto(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)
	custody := newTestCustodyUseCase(s)

	created, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)
	require.NoError(t, custody.CheckOut(context.Background(), testOperatorID, dto.CheckOutRequest{
		AssetID: created.ID, ReasonID: testReasonLoan,
	}))

	err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "un activo con historial no se borra")
	assert.Contains(t, s.assets, created.ID)
}

func TestList_FiltroDeEstadoInvalido(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	_, err := uc.List(context.Background(), "", "PERDIDO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLabel_GeneraPDFConTag(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	created, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)

	pdf, err := uc.Label(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Contains(t, string(pdf), created.Tag)
	assert.Contains(t, string(pdf), "Notebook Dell 5420")
}
