package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/application/inventory"
	"github.com/dulceria-lilis/inventario-api/internal/domain"
)

// LookupHandler responde las consultas livianas del formulario de movimientos
// (selects dependientes): productos por proveedor y lotes disponibles por producto.
type LookupHandler struct {
	uc *inventory.LookupUseCase
}

func NewLookupHandler(uc *inventory.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// SupplierProducts godoc
// @Summary      Productos de un proveedor
// @Tags         lookups
// @Produce      json
// @Param        id  path  int  true  "ID del proveedor"
// @Success      200  {array}  dto.ProductOption
// @Router       /api/suppliers/{id}/products [get]
func (h *LookupHandler) SupplierProducts(c *fiber.Ctx) error {
	id := parseID(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	options, err := h.uc.ProductsBySupplier(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(options)
}

// ProductLots godoc
// @Summary      Lotes disponibles de un producto
// @Tags         lookups
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {array}  dto.LotOption
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/lots [get]
func (h *LookupHandler) ProductLots(c *fiber.Ctx) error {
	id := parseID(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	options, err := h.uc.AvailableLots(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(options)
}
