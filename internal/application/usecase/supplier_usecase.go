package usecase

import (
	"fmt"
	"time"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/domain"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores y su asociación con
// productos (qué proveedor abastece qué SKU y en qué condiciones).
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	activity *ActivityRecorder
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, activity *ActivityRecorder) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, activity: activity}
}

// Create crea un proveedor nuevo en estado ACTIVO.
func (uc *SupplierUseCase) Create(user string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.TaxID == "" || in.LegalName == "" || in.Email == "" || in.PaymentTerms == "" {
		return nil, fmt.Errorf("%w: tax_id, legal_name, email y payment_terms son requeridos", domain.ErrInvalidInput)
	}
	now := time.Now()
	s := &entity.Supplier{
		TaxID:        in.TaxID,
		LegalName:    in.LegalName,
		TradeName:    in.TradeName,
		Email:        in.Email,
		Phone:        in.Phone,
		Website:      in.Website,
		Address:      in.Address,
		City:         in.City,
		Country:      defaultString(in.Country, "Chile"),
		PaymentTerms: in.PaymentTerms,
		Currency:     defaultString(in.Currency, "CLP"),
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Status:       entity.SupplierStatusActive,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	uc.activity.Record(user, "Supplier", s.ID, fmt.Sprintf("Proveedor creado: '%s' - %s", s.TaxID, s.LegalName))
	return toSupplierResponse(s), nil
}

// GetByID obtiene un proveedor por id.
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSupplierResponse(s), nil
}

// List lista los proveedores paginados.
func (uc *SupplierUseCase) List(page dto.PageRequest) ([]*dto.SupplierResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Update modifica un proveedor. Campos nil no cambian.
func (uc *SupplierUseCase) Update(user string, id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.LegalName != nil {
		s.LegalName = *in.LegalName
	}
	if in.TradeName != nil {
		s.TradeName = *in.TradeName
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Website != nil {
		s.Website = *in.Website
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.City != nil {
		s.City = *in.City
	}
	if in.Country != nil {
		s.Country = *in.Country
	}
	if in.PaymentTerms != nil {
		s.PaymentTerms = *in.PaymentTerms
	}
	if in.Currency != nil {
		s.Currency = *in.Currency
	}
	if in.ContactName != nil {
		s.ContactName = *in.ContactName
	}
	if in.ContactEmail != nil {
		s.ContactEmail = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		s.ContactPhone = *in.ContactPhone
	}
	if in.Status != nil {
		if *in.Status != entity.SupplierStatusActive && *in.Status != entity.SupplierStatusBlocked {
			return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, *in.Status)
		}
		s.Status = *in.Status
	}
	if in.Notes != nil {
		s.Notes = *in.Notes
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	uc.activity.Record(user, "Supplier", s.ID, fmt.Sprintf("Proveedor modificado: '%s' - %s", s.TaxID, s.LegalName))
	return toSupplierResponse(s), nil
}

// Delete elimina un proveedor y sus asociaciones con productos.
func (uc *SupplierUseCase) Delete(user string, id int64) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: proveedor %d", domain.ErrNotFound, id)
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.activity.Record(user, "Supplier", id, fmt.Sprintf("Proveedor eliminado: '%s'", s.TaxID))
	return nil
}

// LinkProduct asocia un producto al proveedor con sus condiciones de compra.
func (uc *SupplierUseCase) LinkProduct(user string, supplierID int64, in dto.LinkProductRequest) error {
	if in.ProductID == 0 {
		return fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	}
	if in.Cost.IsNegative() {
		return fmt.Errorf("%w: el costo no puede ser negativo", domain.ErrInvalidInput)
	}
	leadTime := 7
	if in.LeadTimeDays != nil {
		leadTime = *in.LeadTimeDays
	}
	assoc := &entity.SupplierProduct{
		ProductID:    in.ProductID,
		SupplierID:   supplierID,
		Cost:         in.Cost,
		LeadTimeDays: leadTime,
		MinLot:       in.MinLot,
		DiscountPct:  in.DiscountPct,
		Preferred:    in.Preferred,
	}
	if err := uc.repo.AddProduct(assoc); err != nil {
		return err
	}
	uc.activity.Record(user, "SupplierProduct", assoc.ID,
		fmt.Sprintf("Producto %d asociado al proveedor %d", in.ProductID, supplierID))
	return nil
}

// UnlinkProduct elimina la asociación proveedor-producto.
func (uc *SupplierUseCase) UnlinkProduct(user string, supplierID, productID int64) error {
	if err := uc.repo.RemoveProduct(supplierID, productID); err != nil {
		return err
	}
	uc.activity.Record(user, "SupplierProduct", productID,
		fmt.Sprintf("Producto %d desasociado del proveedor %d", productID, supplierID))
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:           s.ID,
		TaxID:        s.TaxID,
		LegalName:    s.LegalName,
		TradeName:    s.TradeName,
		Email:        s.Email,
		Phone:        s.Phone,
		Website:      s.Website,
		Address:      s.Address,
		City:         s.City,
		Country:      s.Country,
		PaymentTerms: s.PaymentTerms,
		Currency:     s.Currency,
		ContactName:  s.ContactName,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Status:       s.Status,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
