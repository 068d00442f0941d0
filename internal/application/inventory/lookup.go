package inventory

import (
	"fmt"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/domain"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

// LookupUseCase consultas de solo lectura para los selects dependientes de la
// pantalla de movimientos: productos de un proveedor y lotes disponibles de
// un producto.
type LookupUseCase struct {
	productRepo repository.ProductRepository
	lotRepo     repository.LotRepository
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(productRepo repository.ProductRepository, lotRepo repository.LotRepository) *LookupUseCase {
	return &LookupUseCase{productRepo: productRepo, lotRepo: lotRepo}
}

// ProductsBySupplier devuelve los productos asociados a un proveedor.
func (uc *LookupUseCase) ProductsBySupplier(supplierID int64) ([]dto.ProductOption, error) {
	products, err := uc.productRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	options := make([]dto.ProductOption, 0, len(products))
	for _, p := range products {
		options = append(options, dto.ProductOption{ID: p.ID, SKU: p.SKU, Name: p.Name})
	}
	return options, nil
}

// AvailableLots devuelve los lotes con disponible > 0 de un producto,
// ordenados por código.
func (uc *LookupUseCase) AvailableLots(productID int64) ([]dto.LotOption, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, productID)
	}
	lots, err := uc.lotRepo.ListAvailableByProduct(productID)
	if err != nil {
		return nil, err
	}
	options := make([]dto.LotOption, 0, len(lots))
	for _, l := range lots {
		options = append(options, dto.LotOption{
			ID:          l.ID,
			Code:        l.Code,
			Description: l.Description(product.Name),
			Available:   l.Available,
		})
	}
	return options, nil
}
