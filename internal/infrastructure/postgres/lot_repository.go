package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dulceria-lilis/inventario-api/internal/domain"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del puerto LotRepository sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un nuevo lote y asigna su ID. El constraint UNIQUE sobre
// code respalda la generación secuencial ante concurrencia.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (code, product_id, warehouse_id, expiry_date, initial_quantity, available_quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		lot.Code, lot.ProductID, lot.WarehouseID, lot.ExpiryDate, lot.Initial, lot.Available,
	).Scan(&lot.ID, &lot.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(id int64) (*entity.Lot, error) {
	query := `SELECT id, code, product_id, warehouse_id, expiry_date, initial_quantity, available_quantity, created_at
		FROM lots WHERE id = $1`
	var l entity.Lot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Code, &l.ProductID, &l.WarehouseID, &l.ExpiryDate, &l.Initial, &l.Available, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// LastCodeWithPrefix devuelve el código del lote más reciente cuyo código
// empieza con prefix, o "" si no existe ninguno. El prefijo se escapa para
// que un SKU con % o _ no haga coincidir lotes de otros productos.
func (r *LotRepo) LastCodeWithPrefix(prefix string) (string, error) {
	query := `SELECT code FROM lots WHERE code LIKE $1 || '%' ORDER BY id DESC LIMIT 1`
	var code string
	err := r.q.QueryRow(context.Background(), query, escapeLike(prefix)).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last lot code: %w", err)
	}
	return code, nil
}

// ListAvailableByProduct devuelve los lotes con disponible > 0 de un producto,
// ordenados por código.
func (r *LotRepo) ListAvailableByProduct(productID int64) ([]*entity.Lot, error) {
	query := `SELECT id, code, product_id, warehouse_id, expiry_date, initial_quantity, available_quantity, created_at
		FROM lots WHERE product_id = $1 AND available_quantity > 0 ORDER BY code`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var lots []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		err := rows.Scan(&l.ID, &l.Code, &l.ProductID, &l.WarehouseID, &l.ExpiryDate, &l.Initial, &l.Available, &l.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		lots = append(lots, &l)
	}
	return lots, rows.Err()
}

// UpdateQuantities persiste cantidades y bodega del lote.
func (r *LotRepo) UpdateQuantities(lot *entity.Lot) error {
	query := `UPDATE lots SET initial_quantity = $2, available_quantity = $3, warehouse_id = $4, expiry_date = $5 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.Initial, lot.Available, lot.WarehouseID, lot.ExpiryDate,
	)
	if err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
