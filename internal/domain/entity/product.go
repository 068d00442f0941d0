package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo de la dulcería.
// CurrentStock es el agregado global (todas las bodegas); solo lo muta el
// motor de movimientos y nunca se persiste negativo.
type Product struct {
	ID               int64
	SKU              string  // código único
	EANUPC           *string // código de barras, único si está presente
	Name             string
	Description      string
	Category         string
	Brand            string
	Model            string
	PurchaseUOM      string          // unidad de medida de compra (ej. UN, CAJA)
	SaleUOM          string          // unidad de medida de venta
	ConversionFactor decimal.Decimal // compra -> venta
	StandardCost     *decimal.Decimal
	AverageCost      *decimal.Decimal
	SalePrice        *decimal.Decimal
	TaxRate          decimal.Decimal // IVA: 0 a 30 (%)
	StockMinimum     decimal.Decimal
	StockMaximum     *decimal.Decimal
	ReorderPoint     *decimal.Decimal // si es nil al crear, toma StockMinimum
	Perishable       bool
	LotControlled    bool
	SerialControlled bool
	ImageURL         string
	DatasheetURL     string
	CurrentStock     decimal.Decimal
	ExpiryDate       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LowStock indica si el stock actual está en o bajo el punto de reorden (o el mínimo).
func (p *Product) LowStock() bool {
	threshold := p.StockMinimum
	if p.ReorderPoint != nil {
		threshold = *p.ReorderPoint
	}
	return p.CurrentStock.LessThanOrEqual(threshold)
}

// ExpiringSoon indica si un producto perecible vence dentro de los próximos 7 días.
func (p *Product) ExpiringSoon(today time.Time) bool {
	if !p.Perishable || p.ExpiryDate == nil {
		return false
	}
	return !p.ExpiryDate.After(today.AddDate(0, 0, 7))
}
