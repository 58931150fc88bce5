package assets

import (
	"fmt"

	domassets "github.com/jhoicas/Activos-api/internal/domain/assets"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// TagAllocator asigna tags secuenciales contra el contador durable.
// Next debe invocarse dentro de la misma transacción que inserta el activo que
// consume el tag: el SELECT FOR UPDATE sobre la fila del contador serializa
// lecturas-incrementos concurrentes y evita el lost update clásico.
type TagAllocator struct {
	Scheme        string // clave de la fila en tag_sequences
	DefaultPrefix string // usados solo al bootstrapear la fila
	DefaultWidth  int
}

// Next lee el contador bajo lock, formatea el tag y persiste next_value+1.
// Si la fila no existe la inicializa desde el sufijo numérico máximo entre los
// tags existentes que calzan con el prefijo (1 si no hay ninguno); una
// violación de unicidad en esa inserción es una carrera de bootstrap y se
// reporta como conflicto reintentable por el repositorio.
func (a *TagAllocator) Next(assetRepo repository.AssetRepository, seqRepo repository.TagSequenceRepository) (string, error) {
	seq, err := seqRepo.GetForUpdate(a.Scheme)
	if err != nil {
		return "", fmt.Errorf("leer contador de tags: %w", err)
	}
	if seq == nil {
		max, err := assetRepo.MaxTagSuffix(a.DefaultPrefix)
		if err != nil {
			return "", fmt.Errorf("bootstrap contador de tags: %w", err)
		}
		seq = &entity.TagSequence{
			Scheme:    a.Scheme,
			Prefix:    a.DefaultPrefix,
			Width:     a.DefaultWidth,
			NextValue: max + 1,
		}
		if err := seqRepo.Create(seq); err != nil {
			return "", err
		}
	}

	tag := domassets.FormatTag(seq.Prefix, seq.Width, seq.NextValue)
	if err := seqRepo.SetNextValue(a.Scheme, seq.NextValue+1); err != nil {
		return "", fmt.Errorf("incrementar contador de tags: %w", err)
	}
	return tag, nil
}
