package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ assets.ProductDirectory     = (*ProductRepo)(nil)
)

// ProductRepo implementación de ProductRepository sobre PostgreSQL.
// También implementa el directorio de productos que consume el núcleo de
// activos (existencia + nombre).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, category_id, supplier_id, cost, min_stock, created_at, updated_at`

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, category_id, supplier_id, cost, min_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullable(product.Description),
		nullable(product.CategoryID), nullable(product.SupplierID),
		product.Cost, product.MinStock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(fmt.Errorf("insert product: %w", err))
	}
	return nil
}

// GetByID obtiene un producto por ID. Retorna nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	var description, categoryID, supplierID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &description, &categoryID, &supplierID,
		&p.Cost, &p.MinStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Description = deref(description)
	p.CategoryID = deref(categoryID)
	p.SupplierID = deref(supplierID)
	return &p, nil
}

// List lista productos, opcionalmente filtrando por nombre (ILIKE).
func (r *ProductRepo) List(search string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var description, categoryID, supplierID *string
		if err := rows.Scan(
			&p.ID, &p.Name, &description, &categoryID, &supplierID,
			&p.Cost, &p.MinStock, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Description = deref(description)
		p.CategoryID = deref(categoryID)
		p.SupplierID = deref(supplierID)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update persiste los cambios de un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category_id = $4, supplier_id = $5,
		    cost = $6, min_stock = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullable(product.Description),
		nullable(product.CategoryID), nullable(product.SupplierID),
		product.Cost, product.MinStock, product.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(fmt.Errorf("update product: %w", err))
	}
	return nil
}

// Delete borra un producto. Con activos asociados la FK devuelve conflicto.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return translateWriteError(fmt.Errorf("delete product: %w", err))
	}
	return nil
}

// Exists implementa assets.ProductDirectory.
func (r *ProductRepo) Exists(id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return ok, nil
}

// DisplayName implementa assets.ProductDirectory. Nombre vacío si no existe.
func (r *ProductRepo) DisplayName(id string) (string, error) {
	var name string
	err := r.q.QueryRow(context.Background(),
		`SELECT name FROM products WHERE id = $1`, id,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("product display name: %w", err)
	}
	return name, nil
}
