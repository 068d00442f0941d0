package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	TaxID        string `json:"tax_id"`
	LegalName    string `json:"legal_name"`
	TradeName    string `json:"trade_name,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Website      string `json:"website,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	PaymentTerms string `json:"payment_terms"`
	Currency     string `json:"currency,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id.
type UpdateSupplierRequest struct {
	LegalName    *string `json:"legal_name,omitempty"`
	TradeName    *string `json:"trade_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Website      *string `json:"website,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	Country      *string `json:"country,omitempty"`
	PaymentTerms *string `json:"payment_terms,omitempty"`
	Currency     *string `json:"currency,omitempty"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID           int64     `json:"id"`
	TaxID        string    `json:"tax_id"`
	LegalName    string    `json:"legal_name"`
	TradeName    string    `json:"trade_name,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Website      string    `json:"website,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	PaymentTerms string    `json:"payment_terms"`
	Currency     string    `json:"currency,omitempty"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LinkProductRequest asocia un producto a un proveedor con sus condiciones.
type LinkProductRequest struct {
	ProductID    int64            `json:"product_id"`
	Cost         decimal.Decimal  `json:"cost"`
	LeadTimeDays *int             `json:"lead_time_days,omitempty"`
	MinLot       *decimal.Decimal `json:"min_lot,omitempty"`
	DiscountPct  *decimal.Decimal `json:"discount_pct,omitempty"`
	Preferred    bool             `json:"preferred"`
}
