package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/domain"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
	domaininv "github.com/dulceria-lilis/inventario-api/internal/domain/inventory"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma
// transaccional. Valida primero (sin efectos), luego aplica dentro de una
// transacción: ajuste de stock del producto, ajuste/creación de lote y
// persistencia del movimiento. La fila del producto se bloquea con
// SELECT FOR UPDATE al inicio, lo que serializa los movimientos concurrentes
// del mismo producto y la numeración de lotes.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	lotRepo       repository.LotRepository
	activityRepo  repository.ActivityLogRepository
	observer      Observer
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	lotRepo repository.LotRepository,
	activityRepo repository.ActivityLogRepository,
	observer Observer,
) *RegisterMovementUseCase {
	if observer == nil {
		observer = NopObserver{}
	}
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		lotRepo:       lotRepo,
		activityRepo:  activityRepo,
		observer:      observer,
	}
}

// lowStockAlert advertencia acumulada durante la transacción; se emite solo
// si el commit fue exitoso.
type lowStockAlert struct {
	lotCode   string
	available decimal.Decimal
	minimum   decimal.Decimal
}

// RegisterMovement valida y aplica un movimiento. Devuelve el movimiento
// persistido (con el lote auto-creado si corresponde), los errores de
// validación por campo, o un error de dominio que revirtió la transacción
// completa (ErrLotRequired, ErrInsufficientStock).
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == 0 {
		return nil, fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, in.ProductID)
	}

	var declaredLot *entity.Lot
	if in.LotID != nil {
		declaredLot, err = uc.lotRepo.GetByID(*in.LotID)
		if err != nil {
			return nil, err
		}
		if declaredLot == nil {
			return nil, fmt.Errorf("%w: lote %d", domain.ErrNotFound, *in.LotID)
		}
	}

	if err := uc.checkWarehouses(in); err != nil {
		return nil, err
	}

	// Validación pura: sin efectos, todos los errores juntos.
	if errs := ValidateMovement(in, product, declaredLot); errs.HasErrors() {
		return nil, errs
	}

	now := time.Now()
	mov := &entity.Movement{
		TransactionID:   uuid.New().String(),
		Type:            in.Type,
		ProductID:       in.ProductID,
		SupplierID:      in.SupplierID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Quantity:        in.Quantity,
		LotID:           in.LotID,
		Serial:          in.Serial,
		ExpiryDate:      in.ExpiryDate,
		User:            in.User,
		Note:            in.Note,
		ReferenceDoc:    in.ReferenceDoc,
		CreatedAt:       now,
	}

	var alert *lowStockAlert
	var lotCode string

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		lotRepo repository.LotRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: a partir de aquí ningún otro
		// movimiento del mismo producto avanza hasta el commit/rollback.
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, in.ProductID)
		}

		// Paso 1: stock agregado del producto.
		if err := uc.adjustProductStock(productRepo, locked, mov); err != nil {
			return err
		}

		// Paso 2: lote, solo para productos controlados por lote.
		if locked.LotControlled {
			lot, a, err := uc.adjustLot(lotRepo, locked, mov)
			if err != nil {
				return err
			}
			alert = a
			if lot != nil {
				lotCode = lot.Code
			}
		}

		// Paso 3: el movimiento queda registrado en la misma transacción.
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}

	// Señales post-commit: best-effort, nunca afectan el resultado.
	uc.observer.MovementPosted(mov.Type)
	if alert != nil {
		uc.observer.LowStock(alert.lotCode, alert.available, alert.minimum)
	}
	uc.recordActivity(mov, product)

	return toMovementResponse(mov, lotCode), nil
}

// checkWarehouses verifica que las bodegas referenciadas existan.
func (uc *RegisterMovementUseCase) checkWarehouses(in dto.RegisterMovementRequest) error {
	for _, id := range []*int64{in.FromWarehouseID, in.ToWarehouseID} {
		if id == nil {
			continue
		}
		wh, err := uc.warehouseRepo.GetByID(*id)
		if err != nil {
			return err
		}
		if wh == nil {
			return fmt.Errorf("%w: bodega %d", domain.ErrNotFound, *id)
		}
	}
	return nil
}

// adjustProductStock aplica el efecto del movimiento sobre el stock agregado.
// SALIDA nunca deja stock negativo: se trunca en cero sin error (el control
// estricto es a nivel de lote). TRANSFERENCIA no toca el agregado: solo
// reubica inventario entre bodegas.
func (uc *RegisterMovementUseCase) adjustProductStock(
	productRepo repository.ProductRepository,
	product *entity.Product,
	mov *entity.Movement,
) error {
	switch mov.Type {
	case entity.MovementTypeIngreso, entity.MovementTypeDevolucion, entity.MovementTypeAjuste:
		product.CurrentStock = product.CurrentStock.Add(mov.Quantity)
	case entity.MovementTypeSalida:
		product.CurrentStock = product.CurrentStock.Sub(mov.Quantity)
		if product.CurrentStock.IsNegative() {
			product.CurrentStock = decimal.Zero
		}
	case entity.MovementTypeTransferencia:
		return nil
	}
	return productRepo.UpdateStock(product.ID, product.CurrentStock)
}

// adjustLot aplica el efecto del movimiento sobre el lote. Para ingresos y
// devoluciones sin lote declarado crea uno nuevo con el siguiente código de
// la secuencia del SKU y lo asocia al movimiento. Devuelve el lote afectado
// y, si quedó bajo el mínimo tras un ingreso, la advertencia a emitir.
func (uc *RegisterMovementUseCase) adjustLot(
	lotRepo repository.LotRepository,
	product *entity.Product,
	mov *entity.Movement,
) (*entity.Lot, *lowStockAlert, error) {
	// El lote queda asociado a la bodega destino; si no hay, a la de origen.
	lotWarehouse := mov.ToWarehouseID
	if lotWarehouse == nil {
		lotWarehouse = mov.FromWarehouseID
	}

	switch mov.Type {
	case entity.MovementTypeIngreso, entity.MovementTypeDevolucion:
		var lot *entity.Lot
		if mov.LotID != nil {
			var err error
			lot, err = lotRepo.GetByID(*mov.LotID)
			if err != nil {
				return nil, nil, err
			}
			if lot == nil {
				return nil, nil, fmt.Errorf("%w: lote %d", domain.ErrNotFound, *mov.LotID)
			}
		} else {
			last, err := lotRepo.LastCodeWithPrefix(domaininv.LotCodePrefix(product.SKU))
			if err != nil {
				return nil, nil, err
			}
			lot = &entity.Lot{
				Code:        domaininv.NextLotCode(product.SKU, last),
				ProductID:   product.ID,
				WarehouseID: lotWarehouse,
				ExpiryDate:  mov.ExpiryDate,
				Initial:     decimal.Zero,
				Available:   decimal.Zero,
				CreatedAt:   mov.CreatedAt,
			}
			if err := lotRepo.Create(lot); err != nil {
				return nil, nil, err
			}
			mov.LotID = &lot.ID
		}

		lot.Initial = lot.Initial.Add(mov.Quantity)
		lot.Available = lot.Available.Add(mov.Quantity)
		if err := lotRepo.UpdateQuantities(lot); err != nil {
			return nil, nil, err
		}

		var alert *lowStockAlert
		if lot.Available.LessThanOrEqual(product.StockMinimum) {
			alert = &lowStockAlert{lotCode: lot.Code, available: lot.Available, minimum: product.StockMinimum}
		}
		return lot, alert, nil

	default: // SALIDA, AJUSTE, TRANSFERENCIA
		// El validador ya lo exige, pero este método no re-valida el resto de
		// reglas: si el lote falta aquí, se aborta la transacción completa.
		if mov.LotID == nil {
			return nil, nil, domain.ErrLotRequired
		}
		lot, err := lotRepo.GetByID(*mov.LotID)
		if err != nil {
			return nil, nil, err
		}
		if lot == nil {
			return nil, nil, fmt.Errorf("%w: lote %d", domain.ErrNotFound, *mov.LotID)
		}
		if lot.Available.LessThan(mov.Quantity) {
			return nil, nil, fmt.Errorf("%w: lote %s (disponible: %s, requerido: %s)",
				domain.ErrInsufficientStock, lot.Code, lot.Available, mov.Quantity)
		}
		lot.Available = lot.Available.Sub(mov.Quantity)
		if err := lotRepo.UpdateQuantities(lot); err != nil {
			return nil, nil, err
		}
		return lot, nil, nil
	}
}

// recordActivity deja la entrada de auditoría con el usuario explícito del
// movimiento. Best-effort: un fallo solo se loguea.
func (uc *RegisterMovementUseCase) recordActivity(mov *entity.Movement, product *entity.Product) {
	if uc.activityRepo == nil || mov.User == "" {
		return
	}
	entry := &entity.ActivityLog{
		User:        mov.User,
		Description: fmt.Sprintf("Movimiento %s de %s unidades del producto %s", mov.Type, mov.Quantity, product.Name),
		Model:       "Movement",
		ObjectID:    &mov.ID,
		CreatedAt:   time.Now(),
	}
	if err := uc.activityRepo.Create(entry); err != nil {
		log.Warn().Err(err).Int64("movement_id", mov.ID).Msg("registro de actividad falló")
	}
}

func toMovementResponse(mov *entity.Movement, lotCode string) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:              mov.ID,
		TransactionID:   mov.TransactionID,
		Type:            mov.Type,
		ProductID:       mov.ProductID,
		SupplierID:      mov.SupplierID,
		FromWarehouseID: mov.FromWarehouseID,
		ToWarehouseID:   mov.ToWarehouseID,
		Quantity:        mov.Quantity,
		LotID:           mov.LotID,
		LotCode:         lotCode,
		Serial:          mov.Serial,
		ExpiryDate:      mov.ExpiryDate,
		User:            mov.User,
		Note:            mov.Note,
		ReferenceDoc:    mov.ReferenceDoc,
		CreatedAt:       mov.CreatedAt,
	}
}
