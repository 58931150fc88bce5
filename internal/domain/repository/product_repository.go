package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos de catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(search string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
