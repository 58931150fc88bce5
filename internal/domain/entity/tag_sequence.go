package entity

import "time"

// TagSequence es el contador durable de un esquema de numeración de tags.
// NextValue es estrictamente creciente; solo el asignador de tags lo muta.
type TagSequence struct {
	Scheme    string // clave del esquema, ej. "patrimonio"
	Prefix    string // vacío = tags puramente numéricos
	Width     int    // ancho del relleno con ceros
	NextValue int64
	UpdatedAt time.Time
}
