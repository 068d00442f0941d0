package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulceria-lilis/inventario-api/internal/application/inventory"
	"github.com/dulceria-lilis/inventario-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	SupplierUC       *usecase.SupplierUseCase
	Activity         *usecase.ActivityRecorder
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQueries  *inventory.MovementQueryUseCase
	Lookups          *inventory.LookupUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Suppliers y su asociación con productos
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Post("/:id/products", supplierHandler.LinkProduct)
	suppliers.Delete("/:id/products/:productId", supplierHandler.UnlinkProduct)

	// Lookups para selects dependientes del formulario de movimientos
	lookupHandler := NewLookupHandler(deps.Lookups)
	suppliers.Get("/:id/products", lookupHandler.SupplierProducts)
	products.Get("/:id/lots", lookupHandler.ProductLots)

	// Inventory movements
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementQueries)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/movements/export", inventoryHandler.ExportMovements)
	invGroup.Get("/movements/:id", inventoryHandler.GetMovement)

	// Registro de actividad
	activityHandler := NewActivityHandler(deps.Activity)
	api.Get("/activity", activityHandler.ListRecent)
}
