package assets_test

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Dobles en memoria de los puertos de persistencia. El fakeTxRunner serializa
// las transacciones con un mutex, el equivalente funcional del lock de fila
// que da FOR UPDATE en PostgreSQL.

type fakeStore struct {
	mu        sync.Mutex
	assets    map[string]*entity.AssetUnit
	movements []*entity.AssetMovement
	nextMovID int64
	sequences map[string]*entity.TagSequence
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		assets:    map[string]*entity.AssetUnit{},
		sequences: map[string]*entity.TagSequence{},
	}
}

// ── AssetRepository ───────────────────────────────────────────────────────────

type fakeAssetRepo struct{ s *fakeStore }

var _ repository.AssetRepository = (*fakeAssetRepo)(nil)

func (r *fakeAssetRepo) Create(asset *entity.AssetUnit) error {
	for _, a := range r.s.assets {
		if a.Tag == asset.Tag || a.Code == asset.Code {
			return domain.ErrDuplicate
		}
	}
	clone := *asset
	r.s.assets[asset.ID] = &clone
	return nil
}

func (r *fakeAssetRepo) GetByID(id string) (*entity.AssetUnit, error) {
	a, ok := r.s.assets[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAssetRepo) GetByIDForUpdate(id string) (*entity.AssetUnit, error) {
	return r.GetByID(id)
}

func (r *fakeAssetRepo) GetByTag(tag string) (*entity.AssetUnit, error) {
	for _, a := range r.s.assets {
		if a.Tag == tag {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeAssetRepo) GetByCode(code string) (*entity.AssetUnit, error) {
	for _, a := range r.s.assets {
		if a.Code == code {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeAssetRepo) List(filter repository.AssetFilter) ([]repository.AssetView, error) {
	var out []repository.AssetView
	for _, a := range r.s.assets {
		if filter.Status != "" && filter.Status != "ALL" && a.Status != filter.Status {
			continue
		}
		out = append(out, repository.AssetView{Asset: *a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Asset.Tag < out[j].Asset.Tag })
	return out, nil
}

func (r *fakeAssetRepo) Update(asset *entity.AssetUnit) error {
	if _, ok := r.s.assets[asset.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *asset
	r.s.assets[asset.ID] = &clone
	return nil
}

func (r *fakeAssetRepo) UpdateStatus(id, status string) error {
	a, ok := r.s.assets[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeAssetRepo) Delete(id string) error {
	delete(r.s.assets, id)
	return nil
}

func (r *fakeAssetRepo) MaxTagSuffix(prefix string) (int64, error) {
	var max int64
	for _, a := range r.s.assets {
		suffix := a.Tag
		if prefix != "" {
			if !strings.HasPrefix(a.Tag, prefix+"-") {
				continue
			}
			suffix = strings.TrimPrefix(a.Tag, prefix+"-")
		}
		n, err := strconv.ParseInt(suffix, 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

// ── AssetMovementRepository ───────────────────────────────────────────────────

type fakeMovementRepo struct{ s *fakeStore }

var _ repository.AssetMovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(m *entity.AssetMovement) error {
	r.s.nextMovID++
	clone := *m
	clone.ID = r.s.nextMovID
	r.s.movements = append(r.s.movements, &clone)
	m.ID = clone.ID
	return nil
}

func (r *fakeMovementRepo) ListRecent(limit int) ([]entity.MovementView, error) {
	sorted := make([]*entity.AssetMovement, len(r.s.movements))
	copy(sorted, r.s.movements)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].OccurredAt.Equal(sorted[j].OccurredAt) {
			return sorted[i].OccurredAt.After(sorted[j].OccurredAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	out := make([]entity.MovementView, 0, len(sorted))
	for _, m := range sorted {
		view := entity.MovementView{
			ID:         m.ID,
			Type:       m.Type,
			OccurredAt: m.OccurredAt,
			AssetID:    m.AssetID,
			ReasonID:   m.ReasonID,
			UserID:     m.UserID,
			Notes:      m.Notes,
		}
		if a, ok := r.s.assets[m.AssetID]; ok {
			view.AssetTag = a.Tag
			view.AssetSerial = a.Serial
			view.ProductID = a.ProductID
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *fakeMovementRepo) CountByAsset(assetID string) (int64, error) {
	var n int64
	for _, m := range r.s.movements {
		if m.AssetID == assetID {
			n++
		}
	}
	return n, nil
}

// ── TagSequenceRepository ─────────────────────────────────────────────────────

type fakeSeqRepo struct{ s *fakeStore }

var _ repository.TagSequenceRepository = (*fakeSeqRepo)(nil)

func (r *fakeSeqRepo) GetForUpdate(scheme string) (*entity.TagSequence, error) {
	seq, ok := r.s.sequences[scheme]
	if !ok {
		return nil, nil
	}
	clone := *seq
	return &clone, nil
}

func (r *fakeSeqRepo) Create(seq *entity.TagSequence) error {
	if _, ok := r.s.sequences[seq.Scheme]; ok {
		return domain.ErrConflict
	}
	clone := *seq
	r.s.sequences[seq.Scheme] = &clone
	return nil
}

func (r *fakeSeqRepo) SetNextValue(scheme string, next int64) error {
	seq, ok := r.s.sequences[scheme]
	if !ok {
		return domain.ErrNotFound
	}
	seq.NextValue = next
	return nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

var _ assets.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	assetRepo repository.AssetRepository,
	movRepo repository.AssetMovementRepository,
	seqRepo repository.TagSequenceRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&fakeAssetRepo{s: r.s}, &fakeMovementRepo{s: r.s}, &fakeSeqRepo{s: r.s})
}

// ── Directorios ───────────────────────────────────────────────────────────────

type fakeDirectory struct {
	names map[string]string // id -> nombre; presencia = existe
}

func (d *fakeDirectory) Exists(id string) (bool, error) {
	_, ok := d.names[id]
	return ok, nil
}

func (d *fakeDirectory) DisplayName(id string) (string, error) {
	return d.names[id], nil
}

type fakeReasons struct {
	names  map[string]string
	active map[string]bool
}

func (d *fakeReasons) Active(id string) (bool, error) {
	return d.active[id], nil
}

func (d *fakeReasons) DisplayName(id string) (string, error) {
	return d.names[id], nil
}

// ── LabelGenerator ────────────────────────────────────────────────────────────

type fakeLabels struct{}

func (fakeLabels) GenerateAssetLabel(asset *entity.AssetUnit, productName string) ([]byte, error) {
	return []byte("%PDF " + asset.Tag + " " + productName), nil
}
