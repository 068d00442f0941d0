package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// Los movimientos solo se insertan y consultan.
type MovementRepo struct {
	q Querier
}

func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un nuevo movimiento y asigna su ID.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (transaction_id, type, product_id, supplier_id, from_warehouse_id,
			to_warehouse_id, quantity, lot_id, serial, expiry_date, username, note, reference_doc)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		movement.TransactionID, movement.Type, movement.ProductID, movement.SupplierID,
		movement.FromWarehouseID, movement.ToWarehouseID, movement.Quantity, movement.LotID,
		movement.Serial, movement.ExpiryDate, movement.User, movement.Note, movement.ReferenceDoc,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	query := `
		SELECT id, transaction_id, type, product_id, supplier_id, from_warehouse_id,
			to_warehouse_id, quantity, lot_id, serial, expiry_date, username, note, reference_doc, created_at
		FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.TransactionID, &m.Type, &m.ProductID, &m.SupplierID, &m.FromWarehouseID,
		&m.ToWarehouseID, &m.Quantity, &m.LotID, &m.Serial, &m.ExpiryDate, &m.User, &m.Note,
		&m.ReferenceDoc, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List devuelve movimientos filtrados con nombres resueltos, más el total sin paginar.
// Orden: más recientes primero.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*repository.MovementListItem, int, error) {
	var conditions []string
	var args []any

	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("m.type = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(p.sku ILIKE '%%' || $%d || '%%' OR p.name ILIKE '%%' || $%d || '%%' OR s.legal_name ILIKE '%%' || $%d || '%%')", n, n, n))
	}
	if filter.Warehouse != "" {
		args = append(args, filter.Warehouse)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(wf.code = $%d OR wf.name = $%d OR wt.code = $%d OR wt.name = $%d)", n, n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	joins := `
		FROM movements m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN suppliers s ON s.id = m.supplier_id
		LEFT JOIN warehouses wf ON wf.id = m.from_warehouse_id
		LEFT JOIN warehouses wt ON wt.id = m.to_warehouse_id
		LEFT JOIN lots l ON l.id = m.lot_id`

	var total int
	countQuery := `SELECT count(*)` + joins + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query := `
		SELECT m.id, m.created_at, m.type, p.sku, p.name, coalesce(s.legal_name, ''),
			m.quantity, coalesce(wf.name, ''), coalesce(wt.name, ''), coalesce(l.code, ''),
			m.serial, m.reference_doc, m.note, m.username` + joins + where + `
		ORDER BY m.created_at DESC, m.id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
		args = append(args, filter.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var items []*repository.MovementListItem
	for rows.Next() {
		var it repository.MovementListItem
		err := rows.Scan(
			&it.ID, &it.CreatedAt, &it.Type, &it.ProductSKU, &it.ProductName, &it.SupplierName,
			&it.Quantity, &it.FromWarehouse, &it.ToWarehouse, &it.LotCode, &it.Serial,
			&it.ReferenceDoc, &it.Note, &it.User,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		items = append(items, &it)
	}
	return items, total, rows.Err()
}
