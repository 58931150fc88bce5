package entity

import "time"

// Tipos de movimiento de custodia.
const (
	MovementTypeIN  = "IN"  // entrada (devolución a stock)
	MovementTypeOUT = "OUT" // salida (retiro de stock)
)

// AssetMovement representa un evento de custodia inmutable de un activo.
// Una vez creado nunca se actualiza ni se borra (integridad de auditoría).
// El ID es un entero creciente (BIGSERIAL) para que el desempate por id en el
// listado sea determinista y cronológico cuando occurred_at coincide.
type AssetMovement struct {
	ID         int64
	AssetID    string
	Type       string
	OccurredAt time.Time
	ReasonID   string // obligatorio en OUT, vacío en IN
	Notes      string
	UserID     string
	CreatedAt  time.Time
}

// MovementView es la fila denormalizada que consume el listado de movimientos:
// agrega tag/serial y product_id del activo. Los nombres para mostrar los
// resuelve el caso de uso contra los directorios de referencia.
type MovementView struct {
	ID          int64
	Type        string
	OccurredAt  time.Time
	AssetID     string
	AssetTag    string
	AssetSerial string
	ProductID   string
	ReasonID    string
	UserID      string
	Notes       string
}
