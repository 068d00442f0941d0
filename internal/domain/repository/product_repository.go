package repository

import (
	"github.com/shopspring/decimal"

	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Usar solo
	// dentro de una transacción: serializa los movimientos concurrentes del
	// mismo producto, incluida la generación de códigos de lote.
	GetForUpdate(id int64) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListBySupplier(supplierID int64) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock persiste únicamente el stock agregado (lo usa el motor de movimientos).
	UpdateStock(id int64, stock decimal.Decimal) error
	Delete(id int64) error
}
