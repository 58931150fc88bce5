package entity

import "time"

// ExitReason representa un motivo de salida (préstamo, baja, mantenimiento externo…).
// Solo los motivos activos son válidos al registrar una salida.
type ExitReason struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
