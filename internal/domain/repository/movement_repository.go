package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
)

// MovementFilter filtros del listado de movimientos (mismos criterios que la
// pantalla original: tipo, buscador por SKU/proveedor y bodega por código o
// nombre).
type MovementFilter struct {
	Type      string
	Search    string
	Warehouse string
	Limit     int
	Offset    int
}

// MovementListItem es la proyección de un movimiento para listados y
// exportación, con los nombres ya resueltos.
type MovementListItem struct {
	ID            int64
	CreatedAt     time.Time
	Type          string
	ProductSKU    string
	ProductName   string
	SupplierName  string
	Quantity      decimal.Decimal
	FromWarehouse string
	ToWarehouse   string
	LotCode       string
	Serial        string
	ReferenceDoc  string
	Note          string
	User          string
}

// MovementRepository define el puerto de persistencia para Movement.
// Los movimientos son inmutables: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id int64) (*entity.Movement, error)
	List(filter MovementFilter) ([]*MovementListItem, int, error)
}
