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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, tax_id, legal_name, trade_name, email, phone, website, address,
	city, country, payment_terms, currency, contact_name, contact_email, contact_phone,
	status, notes, created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor y asigna su ID.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (tax_id, legal_name, trade_name, email, phone, website, address,
			city, country, payment_terms, currency, contact_name, contact_email, contact_phone, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		supplier.TaxID, supplier.LegalName, supplier.TradeName, supplier.Email, supplier.Phone,
		supplier.Website, supplier.Address, supplier.City, supplier.Country, supplier.PaymentTerms,
		supplier.Currency, supplier.ContactName, supplier.ContactEmail, supplier.ContactPhone,
		supplier.Status, supplier.Notes,
	).Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.TaxID, &s.LegalName, &s.TradeName, &s.Email, &s.Phone, &s.Website, &s.Address,
		&s.City, &s.Country, &s.PaymentTerms, &s.Currency, &s.ContactName, &s.ContactEmail,
		&s.ContactPhone, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List devuelve proveedores paginados ordenados por razón social.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY legal_name, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		err := rows.Scan(
			&s.ID, &s.TaxID, &s.LegalName, &s.TradeName, &s.Email, &s.Phone, &s.Website, &s.Address,
			&s.City, &s.Country, &s.PaymentTerms, &s.Currency, &s.ContactName, &s.ContactEmail,
			&s.ContactPhone, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}

// Update persiste los cambios de un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET
			tax_id = $2, legal_name = $3, trade_name = $4, email = $5, phone = $6, website = $7,
			address = $8, city = $9, country = $10, payment_terms = $11, currency = $12,
			contact_name = $13, contact_email = $14, contact_phone = $15, status = $16,
			notes = $17, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.TaxID, supplier.LegalName, supplier.TradeName, supplier.Email,
		supplier.Phone, supplier.Website, supplier.Address, supplier.City, supplier.Country,
		supplier.PaymentTerms, supplier.Currency, supplier.ContactName, supplier.ContactEmail,
		supplier.ContactPhone, supplier.Status, supplier.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor. Sus asociaciones con productos caen en cascada;
// los movimientos históricos conservan supplier_id en NULL.
func (r *SupplierRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddProduct asocia un producto al proveedor.
func (r *SupplierRepo) AddProduct(assoc *entity.SupplierProduct) error {
	query := `
		INSERT INTO supplier_products (product_id, supplier_id, cost, lead_time_days, min_lot, discount_pct, preferred)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		assoc.ProductID, assoc.SupplierID, assoc.Cost, assoc.LeadTimeDays,
		assoc.MinLot, assoc.DiscountPct, assoc.Preferred,
	).Scan(&assoc.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier product: %w", err)
	}
	return nil
}

// RemoveProduct elimina la asociación producto-proveedor.
func (r *SupplierRepo) RemoveProduct(supplierID, productID int64) error {
	query := `DELETE FROM supplier_products WHERE supplier_id = $1 AND product_id = $2`
	tag, err := r.q.Exec(context.Background(), query, supplierID, productID)
	if err != nil {
		return fmt.Errorf("delete supplier product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
