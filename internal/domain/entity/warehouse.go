package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID          int64
	Code        string // único, ej. BOD-CENTRAL
	Name        string
	Location    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
