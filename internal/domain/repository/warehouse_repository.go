package repository

import "github.com/dulceria-lilis/inventario-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id int64) (*entity.Warehouse, error)
	GetByCode(code string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id int64) error
}
