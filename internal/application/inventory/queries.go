package inventory

import (
	"fmt"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/domain"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

// MovementQueryUseCase listado y detalle de movimientos (solo lectura).
type MovementQueryUseCase struct {
	movRepo repository.MovementRepository
	lotRepo repository.LotRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.MovementRepository, lotRepo repository.LotRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo, lotRepo: lotRepo}
}

// List devuelve los movimientos que cumplen el filtro y el total sin paginar.
func (uc *MovementQueryUseCase) List(in dto.MovementListRequest) ([]dto.MovementListItem, int, error) {
	in.DefaultPage()
	rows, total, err := uc.movRepo.List(repository.MovementFilter{
		Type:      in.Type,
		Search:    in.Search,
		Warehouse: in.Warehouse,
		Limit:     in.Limit,
		Offset:    in.Offset,
	})
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.MovementListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, toMovementListItem(r))
	}
	return items, total, nil
}

// ListForExport devuelve todas las filas que cumplen el filtro, sin paginar,
// para la exportación a Excel.
func (uc *MovementQueryUseCase) ListForExport(in dto.MovementListRequest) ([]dto.MovementListItem, error) {
	rows, _, err := uc.movRepo.List(repository.MovementFilter{
		Type:      in.Type,
		Search:    in.Search,
		Warehouse: in.Warehouse,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, toMovementListItem(r))
	}
	return items, nil
}

// Get devuelve un movimiento por id.
func (uc *MovementQueryUseCase) Get(id int64) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, fmt.Errorf("%w: movimiento %d", domain.ErrNotFound, id)
	}
	lotCode := ""
	if mov.LotID != nil {
		lot, err := uc.lotRepo.GetByID(*mov.LotID)
		if err != nil {
			return nil, err
		}
		if lot != nil {
			lotCode = lot.Code
		}
	}
	return toMovementResponse(mov, lotCode), nil
}

func toMovementListItem(r *repository.MovementListItem) dto.MovementListItem {
	return dto.MovementListItem{
		ID:            r.ID,
		CreatedAt:     r.CreatedAt,
		Type:          r.Type,
		ProductSKU:    r.ProductSKU,
		ProductName:   r.ProductName,
		SupplierName:  r.SupplierName,
		Quantity:      r.Quantity,
		FromWarehouse: r.FromWarehouse,
		ToWarehouse:   r.ToWarehouse,
		LotCode:       r.LotCode,
		Serial:        r.Serial,
		ReferenceDoc:  r.ReferenceDoc,
		Note:          r.Note,
		User:          r.User,
	}
}
