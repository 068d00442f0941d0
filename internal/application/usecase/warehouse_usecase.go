package usecase

import (
	"fmt"
	"time"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/domain"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo     repository.WarehouseRepository
	activity *ActivityRecorder
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, activity *ActivityRecorder) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, activity: activity}
}

// Create crea una bodega nueva.
func (uc *WarehouseUseCase) Create(user string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: code y name son requeridos", domain.ErrInvalidInput)
	}
	now := time.Now()
	w := &entity.Warehouse{
		Code:        in.Code,
		Name:        in.Name,
		Location:    in.Location,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(w); err != nil {
		return nil, err
	}
	uc.activity.Record(user, "Warehouse", w.ID, fmt.Sprintf("Bodega creada: %s - %s", w.Code, w.Name))
	return toWarehouseResponse(w), nil
}

// GetByID obtiene una bodega por id.
func (uc *WarehouseUseCase) GetByID(id int64) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	return toWarehouseResponse(w), nil
}

// List lista las bodegas paginadas.
func (uc *WarehouseUseCase) List(page dto.PageRequest) ([]*dto.WarehouseResponse, error) {
	page.DefaultPage()
	warehouses, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, toWarehouseResponse(w))
	}
	return out, nil
}

// Update modifica solo campos descriptivos. El código es inmutable una vez
// que existen movimientos que lo referencian.
func (uc *WarehouseUseCase) Update(user string, id int64, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	if in.Name != nil {
		w.Name = *in.Name
	}
	if in.Location != nil {
		w.Location = *in.Location
	}
	if in.Description != nil {
		w.Description = *in.Description
	}
	w.UpdatedAt = time.Now()
	if err := uc.repo.Update(w); err != nil {
		return nil, err
	}
	uc.activity.Record(user, "Warehouse", w.ID, fmt.Sprintf("Bodega modificada: %s - %s", w.Code, w.Name))
	return toWarehouseResponse(w), nil
}

// Delete elimina una bodega. Los lotes asociados quedan sin bodega (SET NULL).
func (uc *WarehouseUseCase) Delete(user string, id int64) error {
	w, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if w == nil {
		return fmt.Errorf("%w: bodega %d", domain.ErrNotFound, id)
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.activity.Record(user, "Warehouse", id, fmt.Sprintf("Bodega eliminada: %s", w.Code))
	return nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:          w.ID,
		Code:        w.Code,
		Name:        w.Name,
		Location:    w.Location,
		Description: w.Description,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
