package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/domain"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo. El stock no
// se edita por aquí: solo lo muta el motor de movimientos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	activity *ActivityRecorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, activity *ActivityRecorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, activity: activity}
}

// Create crea un producto nuevo. Si no trae punto de reorden, toma el stock
// mínimo como valor por defecto.
func (uc *ProductUseCase) Create(user string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateCatalogFields(in.Name, in.StandardCost, in.SalePrice, in.StockMinimum, in.TaxRate); err != nil {
		return nil, err
	}
	if in.SKU == "" {
		return nil, fmt.Errorf("%w: sku es requerido", domain.ErrInvalidInput)
	}

	now := time.Now()
	p := &entity.Product{
		SKU:              in.SKU,
		EANUPC:           in.EANUPC,
		Name:             in.Name,
		Description:      in.Description,
		Category:         in.Category,
		Brand:            in.Brand,
		Model:            in.Model,
		PurchaseUOM:      defaultString(in.PurchaseUOM, "UN"),
		SaleUOM:          defaultString(in.SaleUOM, "UN"),
		ConversionFactor: defaultDecimal(in.ConversionFactor, decimal.NewFromInt(1)),
		StandardCost:     in.StandardCost,
		SalePrice:        in.SalePrice,
		TaxRate:          defaultDecimal(in.TaxRate, decimal.NewFromInt(19)),
		StockMinimum:     defaultDecimal(in.StockMinimum, decimal.Zero),
		StockMaximum:     in.StockMaximum,
		ReorderPoint:     in.ReorderPoint,
		Perishable:       in.Perishable,
		LotControlled:    in.LotControlled,
		SerialControlled: in.SerialControlled,
		ImageURL:         in.ImageURL,
		DatasheetURL:     in.DatasheetURL,
		CurrentStock:     decimal.Zero,
		ExpiryDate:       in.ExpiryDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if p.ReorderPoint == nil {
		min := p.StockMinimum
		p.ReorderPoint = &min
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	uc.activity.Record(user, "Product", p.ID, fmt.Sprintf("Producto creado: '%s' - %s", p.SKU, p.Name))
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// List lista el catálogo paginado.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update modifica campos de catálogo. Campos nil no cambian.
func (uc *ProductUseCase) Update(user string, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	if in.Model != nil {
		p.Model = *in.Model
	}
	if in.StandardCost != nil {
		p.StandardCost = in.StandardCost
	}
	if in.SalePrice != nil {
		p.SalePrice = in.SalePrice
	}
	if in.TaxRate != nil {
		p.TaxRate = *in.TaxRate
	}
	if in.StockMinimum != nil {
		p.StockMinimum = *in.StockMinimum
	}
	if in.StockMaximum != nil {
		p.StockMaximum = in.StockMaximum
	}
	if in.ReorderPoint != nil {
		p.ReorderPoint = in.ReorderPoint
	}
	if in.Perishable != nil {
		p.Perishable = *in.Perishable
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.DatasheetURL != nil {
		p.DatasheetURL = *in.DatasheetURL
	}
	if in.ExpiryDate != nil {
		p.ExpiryDate = in.ExpiryDate
	}
	if err := validateCatalogFields(p.Name, p.StandardCost, p.SalePrice, &p.StockMinimum, &p.TaxRate); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	uc.activity.Record(user, "Product", p.ID, fmt.Sprintf("Producto modificado: '%s' - %s", p.SKU, p.Name))
	return toProductResponse(p), nil
}

// Delete elimina un producto del catálogo. Sus movimientos caen en cascada
// (constraint de la base), igual que el sistema original.
func (uc *ProductUseCase) Delete(user string, id int64) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.activity.Record(user, "Product", id, fmt.Sprintf("Producto eliminado: '%s' - %s", p.SKU, p.Name))
	return nil
}

// validateCatalogFields reglas del catálogo: nombre mínimo 3 caracteres,
// montos no negativos e IVA entre 0% y 30%.
func validateCatalogFields(name string, stdCost, price, stockMin, taxRate *decimal.Decimal) error {
	if len(name) < 3 {
		return fmt.Errorf("%w: el nombre debe tener mínimo 3 caracteres", domain.ErrInvalidInput)
	}
	for label, v := range map[string]*decimal.Decimal{
		"costo_estandar": stdCost,
		"precio_venta":   price,
		"stock_minimo":   stockMin,
	} {
		if v != nil && v.IsNegative() {
			return fmt.Errorf("%w: el campo %s no puede ser negativo", domain.ErrInvalidInput, label)
		}
	}
	if taxRate != nil && (taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(30))) {
		return fmt.Errorf("%w: el IVA debe estar entre 0%% y 30%%", domain.ErrInvalidInput)
	}
	return nil
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultDecimal(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		SKU:              p.SKU,
		EANUPC:           p.EANUPC,
		Name:             p.Name,
		Description:      p.Description,
		Category:         p.Category,
		Brand:            p.Brand,
		Model:            p.Model,
		PurchaseUOM:      p.PurchaseUOM,
		SaleUOM:          p.SaleUOM,
		ConversionFactor: p.ConversionFactor,
		StandardCost:     p.StandardCost,
		AverageCost:      p.AverageCost,
		SalePrice:        p.SalePrice,
		TaxRate:          p.TaxRate,
		StockMinimum:     p.StockMinimum,
		StockMaximum:     p.StockMaximum,
		ReorderPoint:     p.ReorderPoint,
		Perishable:       p.Perishable,
		LotControlled:    p.LotControlled,
		SerialControlled: p.SerialControlled,
		CurrentStock:     p.CurrentStock,
		ExpiryDate:       p.ExpiryDate,
		LowStock:         p.LowStock(),
		ExpiringSoon:     p.ExpiringSoon(time.Now()),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
