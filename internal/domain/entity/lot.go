package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Lot representa un lote de un producto con su propia fecha de vencimiento y
// cantidades. Available nunca supera Initial; lo garantiza el motor de
// movimientos, no un constraint de la base.
type Lot struct {
	ID          int64
	Code        string // único, ej. LOT-SKU000001-0001
	ProductID   int64
	WarehouseID *int64 // queda en NULL si se elimina la bodega
	ExpiryDate  *time.Time
	Initial     decimal.Decimal
	Available   decimal.Decimal
	CreatedAt   time.Time
}

// Description devuelve la representación usada en listados y selects.
func (l *Lot) Description(productName string) string {
	return fmt.Sprintf("%s - %s", l.Code, productName)
}
