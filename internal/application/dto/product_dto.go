package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU              string           `json:"sku"`
	EANUPC           *string          `json:"ean_upc,omitempty"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Category         string           `json:"category"`
	Brand            string           `json:"brand,omitempty"`
	Model            string           `json:"model,omitempty"`
	PurchaseUOM      string           `json:"purchase_uom,omitempty"`
	SaleUOM          string           `json:"sale_uom,omitempty"`
	ConversionFactor *decimal.Decimal `json:"conversion_factor,omitempty"`
	StandardCost     *decimal.Decimal `json:"standard_cost,omitempty"`
	SalePrice        *decimal.Decimal `json:"sale_price,omitempty"`
	TaxRate          *decimal.Decimal `json:"tax_rate,omitempty"`
	StockMinimum     *decimal.Decimal `json:"stock_minimum,omitempty"`
	StockMaximum     *decimal.Decimal `json:"stock_maximum,omitempty"`
	ReorderPoint     *decimal.Decimal `json:"reorder_point,omitempty"`
	Perishable       bool             `json:"perishable"`
	LotControlled    bool             `json:"lot_controlled"`
	SerialControlled bool             `json:"serial_controlled"`
	ImageURL         string           `json:"image_url,omitempty"`
	DatasheetURL     string           `json:"datasheet_url,omitempty"`
	ExpiryDate       *time.Time       `json:"expiry_date,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no cambian.
// El stock no se edita por catálogo: solo lo mueve el motor de movimientos.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Brand        *string          `json:"brand,omitempty"`
	Model        *string          `json:"model,omitempty"`
	StandardCost *decimal.Decimal `json:"standard_cost,omitempty"`
	SalePrice    *decimal.Decimal `json:"sale_price,omitempty"`
	TaxRate      *decimal.Decimal `json:"tax_rate,omitempty"`
	StockMinimum *decimal.Decimal `json:"stock_minimum,omitempty"`
	StockMaximum *decimal.Decimal `json:"stock_maximum,omitempty"`
	ReorderPoint *decimal.Decimal `json:"reorder_point,omitempty"`
	Perishable   *bool            `json:"perishable,omitempty"`
	ImageURL     *string          `json:"image_url,omitempty"`
	DatasheetURL *string          `json:"datasheet_url,omitempty"`
	ExpiryDate   *time.Time       `json:"expiry_date,omitempty"`
}

// ProductResponse representación de un producto con sus alertas calculadas.
type ProductResponse struct {
	ID               int64            `json:"id"`
	SKU              string           `json:"sku"`
	EANUPC           *string          `json:"ean_upc,omitempty"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Category         string           `json:"category"`
	Brand            string           `json:"brand,omitempty"`
	Model            string           `json:"model,omitempty"`
	PurchaseUOM      string           `json:"purchase_uom"`
	SaleUOM          string           `json:"sale_uom"`
	ConversionFactor decimal.Decimal  `json:"conversion_factor"`
	StandardCost     *decimal.Decimal `json:"standard_cost,omitempty"`
	AverageCost      *decimal.Decimal `json:"average_cost,omitempty"`
	SalePrice        *decimal.Decimal `json:"sale_price,omitempty"`
	TaxRate          decimal.Decimal  `json:"tax_rate"`
	StockMinimum     decimal.Decimal  `json:"stock_minimum"`
	StockMaximum     *decimal.Decimal `json:"stock_maximum,omitempty"`
	ReorderPoint     *decimal.Decimal `json:"reorder_point,omitempty"`
	Perishable       bool             `json:"perishable"`
	LotControlled    bool             `json:"lot_controlled"`
	SerialControlled bool             `json:"serial_controlled"`
	CurrentStock     decimal.Decimal  `json:"current_stock"`
	ExpiryDate       *time.Time       `json:"expiry_date,omitempty"`
	LowStock         bool             `json:"low_stock"`
	ExpiringSoon     bool             `json:"expiring_soon"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductOption proyección ligera para selects dependientes
// (productos por proveedor).
type ProductOption struct {
	ID   int64  `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
}
