package assets_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/application/dto"
)

const testProductID = "11111111-1111-1111-1111-111111111111"

func newTestAssetUseCase(s *fakeStore) *assets.AssetUseCase {
	return assets.NewAssetUseCase(
		&fakeTxRunner{s: s},
		&fakeAssetRepo{s: s},
		&fakeMovementRepo{s: s},
		&fakeDirectory{names: map[string]string{testProductID: "Notebook Dell 5420"}},
		&assets.TagAllocator{Scheme: "patrimonio", DefaultPrefix: "PAT", DefaultWidth: 6},
		fakeLabels{},
	)
}

func TestCreate_AsignaTagAutomaticoDesdeUno(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	out, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)
	assert.Equal(t, "PAT-000001", out.Tag)
	assert.NotEmpty(t, out.ID)
	assert.NotEmpty(t, out.Code)

	out2, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)
	assert.Equal(t, "PAT-000002", out2.Tag)
}

func TestCreate_BootstrapDesdeTagsExistentes(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	// Activos pre-existentes (migrados) sin fila de contador.
	_, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID, Tag: "PAT-000041"})
	require.NoError(t, err)

	out, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)
	assert.Equal(t, "PAT-000042", out.Tag,
		"el contador debe inicializarse desde el sufijo máximo existente")
}

func TestCreate_TagExplicitoNoAvanzaContador(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	_, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err) // PAT-000001, contador queda en 2

	_, err = uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID, Tag: "EXT-99"})
	require.NoError(t, err)

	out, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
	require.NoError(t, err)
	assert.Equal(t, "PAT-000002", out.Tag,
		"un tag explícito no debe consumir ni reconciliar el contador")
}

func TestCreate_TagDuplicadoRetornaError(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	_, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID, Tag: "PAT-000007"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID, Tag: "PAT-000007"})
	assert.Error(t, err, "tag repetido debe fallar, no corregirse en silencio")
}

func TestCreateBulk_TagsConsecutivos(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	out, err := uc.CreateBulk(context.Background(), dto.CreateAssetsBulkRequest{
		ProductID: testProductID,
		Quantity:  5,
	})
	require.NoError(t, err)
	require.Len(t, out, 5)
	for _, created := range out {
		assert.NotEmpty(t, created.ID)
		assert.NotEmpty(t, created.Code)
	}
	assert.Equal(t, "PAT-000001", out[0].Tag)
	assert.Equal(t, "PAT-000005", out[4].Tag)
}

func TestCreateBulk_CantidadInvalida(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	_, err := uc.CreateBulk(context.Background(), dto.CreateAssetsBulkRequest{
		ProductID: testProductID,
		Quantity:  0,
	})
	assert.Error(t, err)
}

// Asignaciones concurrentes nunca producen tags repetidos: las transacciones
// quedan serializadas sobre el contador (FOR UPDATE en producción, mutex aquí).
func TestCreate_ConcurrenciaSinTagsRepetidos(t *testing.T) {
	s := newFakeStore()
	uc := newTestAssetUseCase(s)

	const n = 40
	var wg sync.WaitGroup
	tags := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.Create(context.Background(), dto.CreateAssetRequest{ProductID: testProductID})
			if assert.NoError(t, err) {
				tags <- out.Tag
			}
		}()
	}
	wg.Wait()
	close(tags)

	seen := map[string]bool{}
	for tag := range tags {
		assert.False(t, seen[tag], "tag repetido: %s", tag)
		seen[tag] = true
	}
	assert.Len(t, seen, n)
}
