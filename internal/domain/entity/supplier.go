package entity

import "time"

// Supplier representa un proveedor del catálogo.
type Supplier struct {
	ID        string
	Name      string
	TaxID     string // CNPJ/NIT, opcional
	Phone     string
	Email     string
	CreatedAt time.Time
}
