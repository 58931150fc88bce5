package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto de catálogo.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id"`
	SupplierID  string          `json:"supplier_id"`
	Cost        decimal.Decimal `json:"cost"`
	MinStock    int             `json:"min_stock"`
}

// UpdateProductRequest edición parcial de producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	CategoryID  *string          `json:"category_id"`
	SupplierID  *string          `json:"supplier_id"`
	Cost        *decimal.Decimal `json:"cost"`
	MinStock    *int             `json:"min_stock"`
}

// ProductResponse vista de producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"category_id,omitempty"`
	SupplierID  string          `json:"supplier_id,omitempty"`
	Cost        decimal.Decimal `json:"cost"`
	MinStock    int             `json:"min_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CategoryRequest alta/edición de categoría.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse vista de categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SupplierRequest alta/edición de proveedor.
type SupplierRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// SupplierResponse vista de proveedor.
type SupplierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// ReasonRequest alta/edición de motivo de salida.
type ReasonRequest struct {
	Name string `json:"name"`
}

// ReasonResponse vista de motivo de salida.
type ReasonResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
