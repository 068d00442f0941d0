package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulceria-lilis/inventario-api/internal/application/dto"
	"github.com/dulceria-lilis/inventario-api/internal/application/inventory"
	"github.com/dulceria-lilis/inventario-api/internal/domain"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
)

// El detalle de un movimiento con lote resuelve el código del lote, igual que
// el listado.
func TestMovementGet_ResuelveCodigoDeLote(t *testing.T) {
	uc, store, _ := fixture(t, lotControlled())

	out, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		Type:          entity.MovementTypeIngreso,
		ProductID:     1,
		ToWarehouseID: ptrInt64(1),
		Quantity:      decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	require.NotNil(t, out.LotID)

	queries := inventory.NewMovementQueryUseCase(&memMovementRepo{store}, &memLotRepo{store})
	got, err := queries.Get(out.ID)
	require.NoError(t, err)
	assert.Equal(t, "LOT-SKU000001-0001", got.LotCode)
	require.NotNil(t, got.LotID)
	assert.Equal(t, *out.LotID, *got.LotID)
}

// Movimiento sin lote: el detalle queda con lot_code vacío.
func TestMovementGet_SinLote(t *testing.T) {
	uc, store, _ := fixture(t, simple())

	out, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		Type:            entity.MovementTypeSalida,
		ProductID:       1,
		FromWarehouseID: ptrInt64(1),
		Quantity:        decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	queries := inventory.NewMovementQueryUseCase(&memMovementRepo{store}, &memLotRepo{store})
	got, err := queries.Get(out.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LotCode)
	assert.Nil(t, got.LotID)
}

func TestMovementGet_Inexistente(t *testing.T) {
	store := newMemStore()
	queries := inventory.NewMovementQueryUseCase(&memMovementRepo{store}, &memLotRepo{store})

	_, err := queries.Get(99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
