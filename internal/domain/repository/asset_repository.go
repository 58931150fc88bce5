package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// AssetFilter filtros del listado de activos.
type AssetFilter struct {
	Search string // busca en tag, serial y code (ILIKE)
	Status string // vacío o "ALL" = todos
}

// AssetView fila del listado: activo más nombres de producto y categoría.
type AssetView struct {
	Asset        entity.AssetUnit
	ProductName  string
	CategoryName string
}

// AssetRepository define el puerto de persistencia para unidades de activo.
type AssetRepository interface {
	Create(asset *entity.AssetUnit) error
	GetByID(id string) (*entity.AssetUnit, error)
	// GetByIDForUpdate bloquea la fila del activo (SELECT FOR UPDATE) para las
	// transiciones de custodia; usar solo dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.AssetUnit, error)
	GetByTag(tag string) (*entity.AssetUnit, error)
	GetByCode(code string) (*entity.AssetUnit, error)
	List(filter AssetFilter) ([]AssetView, error)
	Update(asset *entity.AssetUnit) error
	// UpdateStatus muta solo el campo status (updated_at lo pone la BD).
	UpdateStatus(id, status string) error
	Delete(id string) error
	// MaxTagSuffix devuelve el sufijo numérico máximo entre los tags existentes
	// que calzan con el prefijo (tags puramente numéricos si prefix es vacío).
	// Retorna 0 si no hay ninguno. Alimenta el bootstrap del contador.
	MaxTagSuffix(prefix string) (int64, error)
}
