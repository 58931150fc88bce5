package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un modelo de catálogo. Las unidades físicas individuales
// se registran como AssetUnit apuntando a su Product.
type Product struct {
	ID          string
	Name        string
	Description string
	CategoryID  string // vacío si no tiene categoría
	SupplierID  string // vacío si no tiene proveedor
	Cost        decimal.Decimal
	MinStock    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
