package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/domain"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
)

// ValidateMovement valida un movimiento propuesto contra el estado del
// producto y el lote declarado, antes de cualquier mutación. No corta en el
// primer error: acumula todos los errores por campo, como el formulario de
// la pantalla de movimientos. product y lot pueden ser nil (producto ausente
// detiene las reglas que dependen de él; la obligatoriedad del producto se
// exige aguas arriba).
func ValidateMovement(in dto.RegisterMovementRequest, product *entity.Product, lot *entity.Lot) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if !entity.ValidMovementType(in.Type) {
		errs.Add("type", "tipo de movimiento desconocido")
	}

	// 1. Cantidad estrictamente positiva.
	if in.Quantity.LessThanOrEqual(decimal.Zero) {
		errs.Add("quantity", "la cantidad debe ser mayor que cero")
	}

	// 2. Transferencias: origen y destino obligatorios y distintos.
	// Tres chequeos independientes, se reportan por separado.
	if in.Type == entity.MovementTypeTransferencia {
		if in.FromWarehouseID == nil {
			errs.Add("from_warehouse_id", "debe seleccionar una bodega de origen")
		}
		if in.ToWarehouseID == nil {
			errs.Add("to_warehouse_id", "debe seleccionar una bodega de destino")
		}
		if in.FromWarehouseID != nil && in.ToWarehouseID != nil && *in.FromWarehouseID == *in.ToWarehouseID {
			errs.Add("to_warehouse_id", "la bodega destino no puede ser igual a la de origen")
		}
	}

	// 3. Sin producto no hay más reglas que evaluar.
	if product == nil {
		return errs
	}

	// 4. El lote declarado debe pertenecer al producto del movimiento.
	if lot != nil && lot.ProductID != product.ID {
		errs.Add("lot_id", "el lote seleccionado no corresponde al producto elegido")
	}

	if product.LotControlled {
		// 5a. Egresos, ajustes y traslados de productos controlados por lote
		// exigen un lote.
		switch in.Type {
		case entity.MovementTypeSalida, entity.MovementTypeAjuste, entity.MovementTypeTransferencia:
			if lot == nil {
				errs.Add("lot_id", "debe seleccionar un lote para este movimiento porque el producto se controla por lote")
			}
		case entity.MovementTypeIngreso, entity.MovementTypeDevolucion:
			// 5b. Ingresos de perecibles: fecha de vencimiento o lote existente.
			if product.Perishable && in.ExpiryDate == nil && lot == nil {
				errs.Add("expiry_date", "debe indicar una fecha de vencimiento o usar un lote existente para productos perecibles")
			}
		}
	} else if product.Perishable && in.ExpiryDate == nil {
		// 6. Perecibles sin control por lote: la fecha se exige para cualquier
		// tipo de movimiento. Asimetría heredada de la regla original;
		// pendiente de confirmación con el negocio.
		errs.Add("expiry_date", "debe indicar una fecha de vencimiento para productos perecibles")
	}

	return errs
}
