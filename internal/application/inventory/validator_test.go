package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/application/inventory"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
)

func ptrInt64(v int64) *int64       { return &v }
func ptrTime(v time.Time) *time.Time { return &v }

func baseProduct() *entity.Product {
	return &entity.Product{
		ID:           1,
		SKU:          "SKU000001",
		Name:         "Chocolate artesanal",
		StockMinimum: decimal.NewFromInt(5),
	}
}

// La cantidad debe ser estrictamente positiva.
func TestValidateMovement_CantidadNoPositiva(t *testing.T) {
	for _, qty := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		in := dto.RegisterMovementRequest{
			Type:      entity.MovementTypeIngreso,
			ProductID: 1,
			Quantity:  qty,
		}
		errs := inventory.ValidateMovement(in, baseProduct(), nil)
		assert.NotEmpty(t, errs.ByField("quantity"), "cantidad %s debe rechazarse", qty)
	}
}

// Transferencia sin bodegas y sin cantidad: los errores se acumulan, no se
// corta en el primero.
func TestValidateMovement_ErroresAcumulados(t *testing.T) {
	in := dto.RegisterMovementRequest{
		Type:      entity.MovementTypeTransferencia,
		ProductID: 1,
		Quantity:  decimal.Zero,
	}
	p := baseProduct()
	p.LotControlled = true

	errs := inventory.ValidateMovement(in, p, nil)

	assert.NotEmpty(t, errs.ByField("quantity"))
	assert.NotEmpty(t, errs.ByField("from_warehouse_id"))
	assert.NotEmpty(t, errs.ByField("to_warehouse_id"))
	assert.NotEmpty(t, errs.ByField("lot_id"), "producto con control por lote exige lote en transferencias")
	assert.Len(t, errs, 4)
}

// Bodega destino igual a la de origen: error sobre el destino.
func TestValidateMovement_TransferenciaMismaBodega(t *testing.T) {
	in := dto.RegisterMovementRequest{
		Type:            entity.MovementTypeTransferencia,
		ProductID:       1,
		Quantity:        decimal.NewFromInt(10),
		FromWarehouseID: ptrInt64(7),
		ToWarehouseID:   ptrInt64(7),
	}
	errs := inventory.ValidateMovement(in, baseProduct(), nil)

	assert.Equal(t, []string{"la bodega destino no puede ser igual a la de origen"}, errs.ByField("to_warehouse_id"))
	assert.Empty(t, errs.ByField("from_warehouse_id"))
}

// Sin producto resuelto solo se evalúan las reglas estructurales.
func TestValidateMovement_SinProductoDetieneReglas(t *testing.T) {
	in := dto.RegisterMovementRequest{
		Type:     entity.MovementTypeSalida,
		Quantity: decimal.NewFromInt(1),
	}
	errs := inventory.ValidateMovement(in, nil, nil)
	assert.False(t, errs.HasErrors())
}

// El lote declarado debe pertenecer al producto del movimiento.
func TestValidateMovement_LoteDeOtroProducto(t *testing.T) {
	lot := &entity.Lot{ID: 9, Code: "LOT-OTRO-0001", ProductID: 99}
	in := dto.RegisterMovementRequest{
		Type:      entity.MovementTypeSalida,
		ProductID: 1,
		Quantity:  decimal.NewFromInt(1),
		LotID:     ptrInt64(9),
	}
	errs := inventory.ValidateMovement(in, baseProduct(), lot)
	assert.NotEmpty(t, errs.ByField("lot_id"))
}

// Salidas, ajustes y traslados de productos controlados por lote exigen lote.
func TestValidateMovement_ControlPorLoteExigeLote(t *testing.T) {
	p := baseProduct()
	p.LotControlled = true

	for _, tipo := range []string{entity.MovementTypeSalida, entity.MovementTypeAjuste} {
		in := dto.RegisterMovementRequest{Type: tipo, ProductID: 1, Quantity: decimal.NewFromInt(1)}
		errs := inventory.ValidateMovement(in, p, nil)
		assert.NotEmpty(t, errs.ByField("lot_id"), "tipo %s", tipo)
	}

	// Un ingreso sin lote es válido: el motor crea el lote automáticamente.
	in := dto.RegisterMovementRequest{Type: entity.MovementTypeIngreso, ProductID: 1, Quantity: decimal.NewFromInt(1)}
	assert.False(t, inventory.ValidateMovement(in, p, nil).HasErrors())
}

// Ingreso de perecible controlado por lote: fecha de vencimiento o lote existente.
func TestValidateMovement_PerecibleIngresoSinFechaNiLote(t *testing.T) {
	p := baseProduct()
	p.LotControlled = true
	p.Perishable = true

	in := dto.RegisterMovementRequest{Type: entity.MovementTypeIngreso, ProductID: 1, Quantity: decimal.NewFromInt(10)}
	errs := inventory.ValidateMovement(in, p, nil)
	assert.NotEmpty(t, errs.ByField("expiry_date"))

	// Con fecha de vencimiento pasa.
	in.ExpiryDate = ptrTime(time.Now().AddDate(0, 6, 0))
	assert.False(t, inventory.ValidateMovement(in, p, nil).HasErrors())

	// Con lote existente también pasa.
	in.ExpiryDate = nil
	in.LotID = ptrInt64(3)
	lot := &entity.Lot{ID: 3, ProductID: 1, Available: decimal.NewFromInt(5)}
	assert.False(t, inventory.ValidateMovement(in, p, lot).HasErrors())
}

// Perecible sin control por lote: la fecha se exige para cualquier tipo,
// incluso salidas. Comportamiento heredado del formulario original.
func TestValidateMovement_PerecibleSinControlExigeFechaSiempre(t *testing.T) {
	p := baseProduct()
	p.Perishable = true

	for _, tipo := range []string{entity.MovementTypeIngreso, entity.MovementTypeSalida, entity.MovementTypeAjuste} {
		in := dto.RegisterMovementRequest{Type: tipo, ProductID: 1, Quantity: decimal.NewFromInt(2)}
		errs := inventory.ValidateMovement(in, p, nil)
		assert.NotEmpty(t, errs.ByField("expiry_date"), "tipo %s", tipo)
	}
}
