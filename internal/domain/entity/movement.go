package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario. Los valores son los persistidos
// históricamente por el sistema, no se traducen.
const (
	MovementTypeIngreso       = "INGRESO"       // entrada por compra
	MovementTypeSalida        = "SALIDA"        // salida por venta/consumo
	MovementTypeAjuste        = "AJUSTE"        // ajuste de inventario
	MovementTypeDevolucion    = "DEVOLUCION"    // devolución (reingresa stock)
	MovementTypeTransferencia = "TRANSFERENCIA" // traslado entre bodegas
)

// MovementTypes lista los tipos válidos en orden de presentación.
var MovementTypes = []string{
	MovementTypeIngreso,
	MovementTypeSalida,
	MovementTypeAjuste,
	MovementTypeDevolucion,
	MovementTypeTransferencia,
}

// ValidMovementType indica si t es uno de los cinco tipos conocidos.
func ValidMovementType(t string) bool {
	for _, mt := range MovementTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// Movement representa un movimiento de inventario. Es inmutable una vez
// creado: sus efectos sobre stock y lotes se aplican exactamente una vez,
// al registrarlo.
type Movement struct {
	ID              int64
	TransactionID   string // uuid de correlación para auditoría y trazas
	Type            string
	ProductID       int64
	SupplierID      *int64
	FromWarehouseID *int64
	ToWarehouseID   *int64
	Quantity        decimal.Decimal // siempre positiva
	LotID           *int64
	Serial          string
	ExpiryDate      *time.Time // override para lotes nuevos de perecibles
	User            string     // usuario que registra, explícito (sin estado global)
	Note            string
	ReferenceDoc    string
	CreatedAt       time.Time
}
