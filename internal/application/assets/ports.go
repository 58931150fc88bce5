package assets

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que cada operación de escritura del
// núcleo (alta con asignación de tag, check-in, check-out) sea una unidad
// atómica: commit si fn retorna nil, rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		assetRepo repository.AssetRepository,
		movRepo repository.AssetMovementRepository,
		seqRepo repository.TagSequenceRepository,
	) error) error
}

// Directorios colaboradores: el núcleo solo consume existencia y nombre para
// mostrar; los catálogos de referencia viven fuera de este paquete.

// ProductDirectory consulta el catálogo de productos.
type ProductDirectory interface {
	Exists(id string) (bool, error)
	DisplayName(id string) (string, error)
}

// UserDirectory consulta la identidad de usuarios.
type UserDirectory interface {
	Exists(id string) (bool, error)
	DisplayName(id string) (string, error)
}

// ReasonDirectory consulta los motivos de salida.
type ReasonDirectory interface {
	// Active retorna (false, nil) tanto si el motivo no existe como si está inactivo.
	Active(id string) (bool, error)
	DisplayName(id string) (string, error)
}

// LabelGenerator genera la etiqueta imprimible (PDF con QR) de un activo.
type LabelGenerator interface {
	GenerateAssetLabel(asset *entity.AssetUnit, productName string) ([]byte, error)
}
