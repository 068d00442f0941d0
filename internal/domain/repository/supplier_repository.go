package repository

import "github.com/dulceria-lilis/inventario-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier y su
// asociación con productos.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id int64) error

	AddProduct(assoc *entity.SupplierProduct) error
	RemoveProduct(supplierID, productID int64) error
}
