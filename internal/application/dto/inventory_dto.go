package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// from/to identifican bodegas; para movimientos que no son traslados basta
// una de las dos (a esa bodega queda asociado el lote).
type RegisterMovementRequest struct {
	Type            string          `json:"type"`
	ProductID       int64           `json:"product_id"`
	SupplierID      *int64          `json:"supplier_id,omitempty"`
	FromWarehouseID *int64          `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *int64          `json:"to_warehouse_id,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	LotID           *int64          `json:"lot_id,omitempty"`
	Serial          string          `json:"serial,omitempty"`
	ExpiryDate      *time.Time      `json:"expiry_date,omitempty"`
	User            string          `json:"user,omitempty"`
	Note            string          `json:"note,omitempty"`
	ReferenceDoc    string          `json:"reference_doc,omitempty"`
}

// MovementResponse movimiento persistido, con el lote auto-creado si aplica.
type MovementResponse struct {
	ID              int64           `json:"id"`
	TransactionID   string          `json:"transaction_id"`
	Type            string          `json:"type"`
	ProductID       int64           `json:"product_id"`
	SupplierID      *int64          `json:"supplier_id,omitempty"`
	FromWarehouseID *int64          `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *int64          `json:"to_warehouse_id,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	LotID           *int64          `json:"lot_id,omitempty"`
	LotCode         string          `json:"lot_code,omitempty"`
	Serial          string          `json:"serial,omitempty"`
	ExpiryDate      *time.Time      `json:"expiry_date,omitempty"`
	User            string          `json:"user,omitempty"`
	Note            string          `json:"note,omitempty"`
	ReferenceDoc    string          `json:"reference_doc,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// MovementListRequest filtros del listado de movimientos.
type MovementListRequest struct {
	Type      string `query:"type"`
	Search    string `query:"search"`
	Warehouse string `query:"warehouse"`
	PageRequest
}

// MovementListItem fila del listado de movimientos con nombres resueltos.
type MovementListItem struct {
	ID            int64           `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	Type          string          `json:"type"`
	ProductSKU    string          `json:"product_sku"`
	ProductName   string          `json:"product_name"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	FromWarehouse string          `json:"from_warehouse,omitempty"`
	ToWarehouse   string          `json:"to_warehouse,omitempty"`
	LotCode       string          `json:"lot_code,omitempty"`
	Serial        string          `json:"serial,omitempty"`
	ReferenceDoc  string          `json:"reference_doc,omitempty"`
	Note          string          `json:"note,omitempty"`
	User          string          `json:"user,omitempty"`
}

// LotOption proyección ligera de un lote disponible para selects dependientes
// (lotes por producto).
type LotOption struct {
	ID          int64           `json:"id"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Available   decimal.Decimal `json:"available"`
}
