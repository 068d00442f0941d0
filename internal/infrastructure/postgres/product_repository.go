package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dulceria-lilis/inventario-api/internal/domain"
	"github.com/dulceria-lilis/inventario-api/internal/domain/entity"
	"github.com/dulceria-lilis/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, ean_upc, name, description, category, brand, model,
	purchase_uom, sale_uom, conversion_factor, standard_cost, average_cost, sale_price,
	tax_rate, stock_minimum, stock_maximum, reorder_point, perishable, lot_controlled,
	serial_controlled, image_url, datasheet_url, current_stock, expiry_date, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (sku, ean_upc, name, description, category, brand, model,
			purchase_uom, sale_uom, conversion_factor, standard_cost, average_cost, sale_price,
			tax_rate, stock_minimum, stock_maximum, reorder_point, perishable, lot_controlled,
			serial_controlled, image_url, datasheet_url, current_stock, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		product.SKU, product.EANUPC, product.Name, product.Description, product.Category,
		product.Brand, product.Model, product.PurchaseUOM, product.SaleUOM, product.ConversionFactor,
		product.StandardCost, product.AverageCost, product.SalePrice, product.TaxRate,
		product.StockMinimum, product.StockMaximum, product.ReorderPoint, product.Perishable,
		product.LotControlled, product.SerialControlled, product.ImageURL, product.DatasheetURL,
		product.CurrentStock, product.ExpiryDate,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// GetForUpdate bloquea la fila del producto dentro de la transacción actual.
func (r *ProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List devuelve productos paginados ordenados por nombre.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListBySupplier devuelve los productos asociados a un proveedor, ordenados por nombre.
func (r *ProductRepo) ListBySupplier(supplierID int64) ([]*entity.Product, error) {
	query := `
		SELECT ` + qualify(productColumns, "p") + `
		FROM products p
		JOIN supplier_products sp ON sp.product_id = p.id
		WHERE sp.supplier_id = $1
		ORDER BY p.name, p.id`
	rows, err := r.q.Query(context.Background(), query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list products by supplier: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Update persiste los cambios de un producto (no toca current_stock).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET
			sku = $2, ean_upc = $3, name = $4, description = $5, category = $6, brand = $7,
			model = $8, purchase_uom = $9, sale_uom = $10, conversion_factor = $11,
			standard_cost = $12, average_cost = $13, sale_price = $14, tax_rate = $15,
			stock_minimum = $16, stock_maximum = $17, reorder_point = $18, perishable = $19,
			lot_controlled = $20, serial_controlled = $21, image_url = $22, datasheet_url = $23,
			expiry_date = $24, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.EANUPC, product.Name, product.Description,
		product.Category, product.Brand, product.Model, product.PurchaseUOM, product.SaleUOM,
		product.ConversionFactor, product.StandardCost, product.AverageCost, product.SalePrice,
		product.TaxRate, product.StockMinimum, product.StockMaximum, product.ReorderPoint,
		product.Perishable, product.LotControlled, product.SerialControlled, product.ImageURL,
		product.DatasheetURL, product.ExpiryDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock persiste únicamente el stock agregado del producto.
func (r *ProductRepo) UpdateStock(id int64, stock decimal.Decimal) error {
	query := `UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, stock)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto. Sus lotes y movimientos caen en cascada.
func (r *ProductRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.EANUPC, &p.Name, &p.Description, &p.Category, &p.Brand, &p.Model,
		&p.PurchaseUOM, &p.SaleUOM, &p.ConversionFactor, &p.StandardCost, &p.AverageCost,
		&p.SalePrice, &p.TaxRate, &p.StockMinimum, &p.StockMaximum, &p.ReorderPoint,
		&p.Perishable, &p.LotControlled, &p.SerialControlled, &p.ImageURL, &p.DatasheetURL,
		&p.CurrentStock, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) scanMany(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		err := rows.Scan(
			&p.ID, &p.SKU, &p.EANUPC, &p.Name, &p.Description, &p.Category, &p.Brand, &p.Model,
			&p.PurchaseUOM, &p.SaleUOM, &p.ConversionFactor, &p.StandardCost, &p.AverageCost,
			&p.SalePrice, &p.TaxRate, &p.StockMinimum, &p.StockMaximum, &p.ReorderPoint,
			&p.Perishable, &p.LotControlled, &p.SerialControlled, &p.ImageURL, &p.DatasheetURL,
			&p.CurrentStock, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
