package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/application/inventory"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
	handlers "github.com/dulceria-lilis/inventario-api/internal/interfaces/http"
)

// Repos mínimos en memoria para ejercer los handlers de punta a punta.

type stubProductRepo struct {
	products map[int64]*entity.Product
}

func (r *stubProductRepo) Create(*entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *stubProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *stubProductRepo) List(int, int) ([]*entity.Product, error)      { return nil, nil }
func (r *stubProductRepo) ListBySupplier(int64) ([]*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error                  { return nil }
func (r *stubProductRepo) UpdateStock(id int64, stock decimal.Decimal) error {
	r.products[id].CurrentStock = stock
	return nil
}
func (r *stubProductRepo) Delete(int64) error { return nil }

type stubWarehouseRepo struct {
	warehouses map[int64]*entity.Warehouse
}

func (r *stubWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (r *stubWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *stubWarehouseRepo) GetByCode(string) (*entity.Warehouse, error)   { return nil, nil }
func (r *stubWarehouseRepo) List(int, int) ([]*entity.Warehouse, error)    { return nil, nil }
func (r *stubWarehouseRepo) Update(*entity.Warehouse) error                { return nil }
func (r *stubWarehouseRepo) Delete(int64) error                            { return nil }

type stubLotRepo struct {
	lots   map[int64]*entity.Lot
	nextID int64
}

func (r *stubLotRepo) Create(lot *entity.Lot) error {
	r.nextID++
	lot.ID = r.nextID
	r.lots[lot.ID] = lot
	return nil
}
func (r *stubLotRepo) GetByID(id int64) (*entity.Lot, error)               { return r.lots[id], nil }
func (r *stubLotRepo) LastCodeWithPrefix(string) (string, error)           { return "", nil }
func (r *stubLotRepo) ListAvailableByProduct(int64) ([]*entity.Lot, error) { return nil, nil }
func (r *stubLotRepo) UpdateQuantities(*entity.Lot) error                  { return nil }

type stubActivityRepo struct{}

func (stubActivityRepo) Create(*entity.ActivityLog) error                   { return nil }
func (stubActivityRepo) ListRecent(int, int) ([]*entity.ActivityLog, error) { return nil, nil }

type stubMovementRepo struct {
	movements []*entity.Movement
}

func (r *stubMovementRepo) Create(m *entity.Movement) error {
	m.ID = int64(len(r.movements) + 1)
	r.movements = append(r.movements, m)
	return nil
}
func (r *stubMovementRepo) GetByID(int64) (*entity.Movement, error) { return nil, nil }
func (r *stubMovementRepo) List(repository.MovementFilter) ([]*repository.MovementListItem, int, error) {
	return nil, 0, nil
}

type stubTxRunner struct {
	movements repository.MovementRepository
	lots      repository.LotRepository
	products  repository.ProductRepository
}

func (r *stubTxRunner) Run(_ context.Context, fn func(repository.MovementRepository, repository.LotRepository, repository.ProductRepository) error) error {
	return fn(r.movements, r.lots, r.products)
}

func newTestApp() *fiber.App {
	products := &stubProductRepo{products: map[int64]*entity.Product{
		1: {
			ID:           1,
			SKU:          "SKU000001",
			Name:         "Gomitas ácidas 250g",
			CurrentStock: decimal.NewFromInt(40),
		},
	}}
	warehouses := &stubWarehouseRepo{warehouses: map[int64]*entity.Warehouse{
		1: {ID: 1, Code: "BOD-CENTRAL", Name: "Bodega Central"},
	}}
	lots := &stubLotRepo{lots: map[int64]*entity.Lot{}}
	movements := &stubMovementRepo{}
	tx := &stubTxRunner{movements: movements, lots: lots, products: products}

	register := inventory.NewRegisterMovementUseCase(tx, products, warehouses, lots, stubActivityRepo{}, nil)
	queries := inventory.NewMovementQueryUseCase(movements, lots)
	lookups := inventory.NewLookupUseCase(products, lots)

	app := fiber.New()
	api := app.Group("/api")
	invHandler := handlers.NewInventoryHandler(register, queries)
	api.Post("/inventory/movements", invHandler.RegisterMovement)
	api.Get("/inventory/movements", invHandler.ListMovements)
	lookupHandler := handlers.NewLookupHandler(lookups)
	api.Get("/products/:id/lots", lookupHandler.ProductLots)
	return app
}

func TestRegisterMovementEndpointCreatesMovement(t *testing.T) {
	app := newTestApp()

	payload, _ := json.Marshal(dto.RegisterMovementRequest{
		Type:          entity.MovementTypeSalida,
		ProductID:     1,
		Quantity:      decimal.NewFromInt(10),
		ToWarehouseID: ptrInt64(1),
	})
	req := httptest.NewRequest("POST", "/api/inventory/movements", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "kayala")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.MovementTypeSalida, out.Type)
	assert.Equal(t, "kayala", out.User)
	assert.NotEmpty(t, out.TransactionID)
}

func TestRegisterMovementEndpointValidationErrors(t *testing.T) {
	app := newTestApp()

	payload, _ := json.Marshal(dto.RegisterMovementRequest{
		Type:      "REGALO",
		ProductID: 1,
		Quantity:  decimal.Zero,
	})
	req := httptest.NewRequest("POST", "/api/inventory/movements", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)

	fields := make([]string, 0, len(out.Errors))
	for _, fe := range out.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "quantity")
}

func TestRegisterMovementEndpointUnknownProduct(t *testing.T) {
	app := newTestApp()

	payload, _ := json.Marshal(dto.RegisterMovementRequest{
		Type:      entity.MovementTypeIngreso,
		ProductID: 999,
		Quantity:  decimal.NewFromInt(5),
	})
	req := httptest.NewRequest("POST", "/api/inventory/movements", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProductLotsEndpointUnknownProduct(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/products/999/lots", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func ptrInt64(v int64) *int64 { return &v }
