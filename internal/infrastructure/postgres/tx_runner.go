package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dulceria-lilis/inventario-api/internal/application/inventory"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de base de datos,
// entregándole repositorios ligados a esa transacción. Si la función retorna
// error la transacción se revierte completa.
type TxRunner struct {
	pool *pgxpool.Pool
}

var _ inventory.TxRunner = (*TxRunner)(nil)

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) Run(ctx context.Context, fn func(movements repository.MovementRepository, lots repository.LotRepository, products repository.ProductRepository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	movements := NewMovementRepository(tx)
	lots := NewLotRepository(tx)
	products := NewProductRepository(tx)

	if err := fn(movements, lots, products); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar transacción: %w", err)
	}
	return nil
}
