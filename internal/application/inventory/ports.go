package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que los pasos del motor de
// movimientos (stock de producto, lote, registro del movimiento) se apliquen
// todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		lotRepo repository.LotRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Observer recibe señales de observabilidad del motor de movimientos.
// Las notificaciones son best-effort y se emiten después del commit: nunca
// bloquean ni revierten un movimiento.
type Observer interface {
	// MovementPosted se emite por cada movimiento registrado con éxito.
	MovementPosted(movementType string)
	// LowStock se emite cuando un lote queda en o bajo el stock mínimo del
	// producto tras un ingreso.
	LowStock(lotCode string, available, minimum decimal.Decimal)
}

// NopObserver implementación vacía de Observer, útil en tests.
type NopObserver struct{}

func (NopObserver) MovementPosted(string)                             {}
func (NopObserver) LowStock(string, decimal.Decimal, decimal.Decimal) {}
