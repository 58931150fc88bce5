package assets

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	domassets "github.com/jhoicas/Activos-api/internal/domain/assets"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// AssetUseCase registro de activos: altas (unitarias y masivas), resolución de
// identificadores, edición de atributos, borrado y etiqueta imprimible.
type AssetUseCase struct {
	txRunner  TxRunner
	assetRepo repository.AssetRepository
	movRepo   repository.AssetMovementRepository
	products  ProductDirectory
	allocator *TagAllocator
	labels    LabelGenerator
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(
	txRunner TxRunner,
	assetRepo repository.AssetRepository,
	movRepo repository.AssetMovementRepository,
	products ProductDirectory,
	allocator *TagAllocator,
	labels LabelGenerator,
) *AssetUseCase {
	return &AssetUseCase{
		txRunner:  txRunner,
		assetRepo: assetRepo,
		movRepo:   movRepo,
		products:  products,
		allocator: allocator,
		labels:    labels,
	}
}

// Create da de alta una unidad. Con tag vacío el asignador genera el siguiente
// tag secuencial dentro de la misma transacción que inserta el activo; un tag
// explícito NO se reconcilia contra el contador (puede chocar con un tag
// futuro: eso aflora como ErrDuplicate en el insert, no se corrige en silencio).
func (uc *AssetUseCase) Create(ctx context.Context, in dto.CreateAssetRequest) (*dto.AssetCreatedResponse, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	ok, err := uc.products.Exists(in.ProductID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	tag := strings.TrimSpace(in.Tag)
	var out dto.AssetCreatedResponse
	err = uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		_ repository.AssetMovementRepository,
		seqRepo repository.TagSequenceRepository,
	) error {
		assetTag := tag
		if assetTag == "" {
			var err error
			if assetTag, err = uc.allocator.Next(assetRepo, seqRepo); err != nil {
				return err
			}
		}
		asset := newAssetUnit(in.ProductID, assetTag, in.Serial, in.Notes)
		if err := assetRepo.Create(asset); err != nil {
			return err
		}
		out = dto.AssetCreatedResponse{ID: asset.ID, Tag: asset.Tag, Code: asset.Code}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBulk da de alta quantity unidades en una sola transacción, siempre con
// tags automáticos (el alta masiva no admite tags explícitos). O se crean
// todas o ninguna.
func (uc *AssetUseCase) CreateBulk(ctx context.Context, in dto.CreateAssetsBulkRequest) ([]dto.AssetCreatedResponse, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	ok, err := uc.products.Exists(in.ProductID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	created := make([]dto.AssetCreatedResponse, 0, in.Quantity)
	err = uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		_ repository.AssetMovementRepository,
		seqRepo repository.TagSequenceRepository,
	) error {
		for i := 0; i < in.Quantity; i++ {
			tag, err := uc.allocator.Next(assetRepo, seqRepo)
			if err != nil {
				return err
			}
			asset := newAssetUnit(in.ProductID, tag, "", in.Notes)
			if err := assetRepo.Create(asset); err != nil {
				return err
			}
			created = append(created, dto.AssetCreatedResponse{ID: asset.ID, Tag: asset.Tag, Code: asset.Code})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List lista activos con búsqueda libre (tag, serial, code) y filtro de estado.
func (uc *AssetUseCase) List(ctx context.Context, search, status string) ([]dto.AssetResponse, error) {
	status = strings.TrimSpace(status)
	if status != "" && status != "ALL" && !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	views, err := uc.assetRepo.List(repository.AssetFilter{
		Search: strings.TrimSpace(search),
		Status: status,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetResponse, 0, len(views))
	for i := range views {
		out = append(out, toAssetResponse(&views[i].Asset, views[i].ProductName, views[i].CategoryName))
	}
	return out, nil
}

// Get obtiene un activo por su id.
func (uc *AssetUseCase) Get(ctx context.Context, id string) (*dto.AssetResponse, error) {
	asset, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	return uc.withProductNames(asset)
}

// GetByTag obtiene un activo por tag exacto.
func (uc *AssetUseCase) GetByTag(ctx context.Context, tag string) (*dto.AssetResponse, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, domain.ErrInvalidInput
	}
	asset, err := uc.assetRepo.GetByTag(tag)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	return uc.withProductNames(asset)
}

// Resolve determina qué activo designa una entrada arbitraria (escaneada o
// tecleada). Si la entrada trae el sobre de escaneo o tiene forma de code se
// intenta primero por code; si falla, o la entrada no parecía un code, se cae
// al tag exacto. ErrNotFound si ninguno calza.
func (uc *AssetUseCase) Resolve(ctx context.Context, raw string) (*dto.AssetResponse, error) {
	value, enveloped := domassets.ParseScanPayload(raw)
	if value == "" {
		return nil, domain.ErrInvalidInput
	}

	if enveloped || domassets.LooksLikeCode(value) {
		asset, err := uc.assetRepo.GetByCode(value)
		if err != nil {
			return nil, err
		}
		if asset != nil {
			return uc.withProductNames(asset)
		}
	}

	asset, err := uc.assetRepo.GetByTag(value)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	return uc.withProductNames(asset)
}

// Update edita atributos del activo (producto, tag, serial, notas). El status
// no se toca aquí: toda transición pasa por la máquina de estados.
func (uc *AssetUseCase) Update(ctx context.Context, id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductID != nil {
		pid := strings.TrimSpace(*in.ProductID)
		ok, err := uc.products.Exists(pid)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		asset.ProductID = pid
	}
	if in.Tag != nil {
		tag := strings.TrimSpace(*in.Tag)
		if tag == "" {
			return nil, domain.ErrInvalidInput
		}
		asset.Tag = tag
	}
	if in.Serial != nil {
		asset.Serial = strings.TrimSpace(*in.Serial)
	}
	if in.Notes != nil {
		asset.Notes = strings.TrimSpace(*in.Notes)
	}
	asset.UpdatedAt = time.Now().UTC()
	if err := uc.assetRepo.Update(asset); err != nil {
		return nil, err
	}
	return uc.withProductNames(asset)
}

// Delete borra un activo sin historial. Con movimientos registrados el borrado
// se rechaza con ErrConflict: el libro de auditoría no pierde a su dueño.
func (uc *AssetUseCase) Delete(ctx context.Context, id string) error {
	asset, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	n, err := uc.movRepo.CountByAsset(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.assetRepo.Delete(id)
}

// Label genera la etiqueta PDF del activo (tag + QR con el payload de escaneo).
func (uc *AssetUseCase) Label(ctx context.Context, id string) ([]byte, error) {
	asset, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	productName, err := uc.products.DisplayName(asset.ProductID)
	if err != nil {
		return nil, err
	}
	return uc.labels.GenerateAssetLabel(asset, productName)
}

func (uc *AssetUseCase) withProductNames(asset *entity.AssetUnit) (*dto.AssetResponse, error) {
	productName, err := uc.products.DisplayName(asset.ProductID)
	if err != nil {
		return nil, err
	}
	resp := toAssetResponse(asset, productName, "")
	return &resp, nil
}

func newAssetUnit(productID, tag, serial, notes string) *entity.AssetUnit {
	now := time.Now().UTC()
	return &entity.AssetUnit{
		ID:        uuid.New().String(),
		ProductID: productID,
		Tag:       tag,
		Serial:    strings.TrimSpace(serial),
		Code:      uuid.New().String(),
		Status:    entity.StatusInStock,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func toAssetResponse(a *entity.AssetUnit, productName, categoryName string) dto.AssetResponse {
	return dto.AssetResponse{
		ID:          a.ID,
		Tag:         a.Tag,
		Serial:      a.Serial,
		Code:        a.Code,
		ScanPayload: domassets.ScanPayload(a.Code),
		Status:      a.Status,
		Notes:       a.Notes,
		ProductID:   a.ProductID,
		Product:     productName,
		Category:    categoryName,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
