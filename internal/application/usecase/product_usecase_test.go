package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/application/usecase"
	"github.com/dulceria-lilis/inventario-api/internal/domain"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
)

type memProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[int64]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) { return r.products[id], nil }

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.products[id], nil }

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) ListBySupplier(int64) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error                    { return nil }
func (r *memProductRepo) UpdateStock(int64, decimal.Decimal) error        { return nil }

func (r *memProductRepo) Delete(id int64) error {
	delete(r.products, id)
	return nil
}

type memActivityRepo struct {
	entries []*entity.ActivityLog
}

func (r *memActivityRepo) Create(e *entity.ActivityLog) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *memActivityRepo) ListRecent(int, int) ([]*entity.ActivityLog, error) {
	return r.entries, nil
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestProductCreateAppliesDefaults(t *testing.T) {
	activity := &memActivityRepo{}
	uc := usecase.NewProductUseCase(newMemProductRepo(), usecase.NewActivityRecorder(activity))

	out, err := uc.Create("kayala", dto.CreateProductRequest{
		SKU:          "SKU000001",
		Name:         "Chocolate 70% 100g",
		StockMinimum: dec(5),
	})
	require.NoError(t, err)

	assert.Equal(t, "UN", out.PurchaseUOM)
	assert.Equal(t, "UN", out.SaleUOM)
	assert.True(t, out.ConversionFactor.Equal(decimal.NewFromInt(1)))
	assert.True(t, out.TaxRate.Equal(decimal.NewFromInt(19)))
	// el punto de reorden por defecto es el stock mínimo
	require.NotNil(t, out.ReorderPoint)
	assert.True(t, out.ReorderPoint.Equal(decimal.NewFromInt(5)))
	assert.True(t, out.CurrentStock.IsZero())
	// stock 0 con mínimo 5 ya es stock bajo
	assert.True(t, out.LowStock)

	require.Len(t, activity.entries, 1)
	assert.Equal(t, "kayala", activity.entries[0].User)
	assert.Equal(t, "Product", activity.entries[0].Model)
}

func TestProductCreateRejectsShortName(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo(), usecase.NewActivityRecorder(nil))

	_, err := uc.Create("kayala", dto.CreateProductRequest{SKU: "SKU000001", Name: "Ch"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreateRejectsNegativeAmounts(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo(), usecase.NewActivityRecorder(nil))

	_, err := uc.Create("kayala", dto.CreateProductRequest{
		SKU:          "SKU000001",
		Name:         "Chocolate 70% 100g",
		StandardCost: dec(-10),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreateRejectsTaxRateOutOfRange(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo(), usecase.NewActivityRecorder(nil))

	_, err := uc.Create("kayala", dto.CreateProductRequest{
		SKU:     "SKU000001",
		Name:    "Chocolate 70% 100g",
		TaxRate: dec(45),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreateRejectsDuplicateSKU(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo(), usecase.NewActivityRecorder(nil))

	_, err := uc.Create("kayala", dto.CreateProductRequest{SKU: "SKU000001", Name: "Chocolate 70% 100g"})
	require.NoError(t, err)

	_, err = uc.Create("kayala", dto.CreateProductRequest{SKU: "SKU000001", Name: "Otro producto"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdateKeepsUnsetFields(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo(), usecase.NewActivityRecorder(nil))

	created, err := uc.Create("kayala", dto.CreateProductRequest{
		SKU:      "SKU000001",
		Name:     "Chocolate 70% 100g",
		Category: "Chocolates",
	})
	require.NoError(t, err)

	newName := "Chocolate 85% 100g"
	out, err := uc.Update("kayala", created.ID, dto.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, newName, out.Name)
	assert.Equal(t, "Chocolates", out.Category)
	assert.Equal(t, "SKU000001", out.SKU)
}

func TestProductDeleteUnknown(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo(), usecase.NewActivityRecorder(nil))

	err := uc.Delete("kayala", 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
