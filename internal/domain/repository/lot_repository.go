package repository

import "github.com/dulceria-lilis/inventario-api/internal/domain/entity"

// LotRepository define el puerto de persistencia para Lot.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id int64) (*entity.Lot, error)
	// LastCodeWithPrefix devuelve el código del lote más reciente (id más alto)
	// cuyo código empieza con prefix, o "" si no existe ninguno.
	LastCodeWithPrefix(prefix string) (string, error)
	// ListAvailableByProduct devuelve los lotes con disponible > 0 de un
	// producto, ordenados por código.
	ListAvailableByProduct(productID int64) ([]*entity.Lot, error)
	// UpdateQuantities persiste cantidades y bodega del lote.
	UpdateQuantities(lot *entity.Lot) error
}
