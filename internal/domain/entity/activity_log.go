package entity

import "time"

// ActivityLog registra una acción de un usuario sobre un recurso del sistema
// (creación, modificación, eliminación). Se escribe de forma explícita desde
// los casos de uso tras un commit exitoso; nunca bloquea la operación.
type ActivityLog struct {
	ID          int64
	User        string
	Description string
	Model       string // Product, Supplier, Movement, ...
	ObjectID    *int64
	CreatedAt   time.Time
}
