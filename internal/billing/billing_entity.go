package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusUnpaid  = "unpaid"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

type Item struct {
	ProductID   string
	ProductName string
	Description string
	Quantity    decimal.Decimal // > 0
	UnitPrice   decimal.Decimal // >= 0
	Total       decimal.Decimal // quantity * unit_price, derived
}

// Payment is append-only and immutable once recorded. It belongs to exactly
// one invoice; there is no edit or delete operation.
type Payment struct {
	ID            string
	InvoiceID     string
	Amount        decimal.Decimal // > 0
	PaymentDate   string          // YYYY-MM-DD
	PaymentMethod string
	Notes         string
}

type Invoice struct {
	ID            string
	InvoiceNumber string
	CustomerID    string
	InvoiceDate   string
	DueDate       string

	Items    []Item
	VATRate  decimal.Decimal
	Payments []Payment

	// Derived on every read from Items/VATRate/Payments, never trusted from
	// the wire.
	Subtotal   decimal.Decimal
	VATAmount  decimal.Decimal
	Total      decimal.Decimal
	AmountPaid decimal.Decimal
	Balance    decimal.Decimal
	Status     string

	Deleted   bool
	DeletedAt *time.Time
	DeletedBy string

	Notes string
}
