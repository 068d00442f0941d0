package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de proveedor.
const (
	SupplierStatusActive  = "ACTIVO"
	SupplierStatusBlocked = "BLOQUEADO"
)

// Supplier representa un proveedor de la dulcería.
type Supplier struct {
	ID           int64
	TaxID        string // RUT/NIF, único
	LegalName    string
	TradeName    string
	Email        string
	Phone        string
	Website      string
	Address      string
	City         string
	Country      string
	PaymentTerms string
	Currency     string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Status       string // ACTIVO | BLOQUEADO
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SupplierProduct asocia un producto con un proveedor que lo abastece.
// Única por (ProductID, SupplierID).
type SupplierProduct struct {
	ID           int64
	ProductID    int64
	SupplierID   int64
	Cost         decimal.Decimal
	LeadTimeDays int
	MinLot       *decimal.Decimal
	DiscountPct  *decimal.Decimal
	Preferred    bool
}
