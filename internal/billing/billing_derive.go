package billing

import (
	"go-payledger/internal/money"

	"github.com/shopspring/decimal"
)

// Totals is the derived monetary view of one invoice.
type Totals struct {
	Subtotal   decimal.Decimal
	VATAmount  decimal.Decimal
	Total      decimal.Decimal
	AmountPaid decimal.Decimal
	Balance    decimal.Decimal
	Status     string
}

// Derive recomputes an invoice's totals and payment status from scratch.
// Pure function of (items, vat_rate, payments): the stored status on the wire
// is ignored so a locally-computed figure can never drift from it.
func Derive(items []Item, vatRate decimal.Decimal, payments []Payment) Totals {
	subtotal := money.Sum(items, func(it Item) decimal.Decimal {
		return it.Quantity.Mul(it.UnitPrice)
	})
	vatAmount := money.Percent(subtotal, vatRate)
	total := subtotal.Add(vatAmount)
	amountPaid := money.Sum(payments, func(p Payment) decimal.Decimal {
		return p.Amount
	})

	return Totals{
		Subtotal:   subtotal,
		VATAmount:  vatAmount,
		Total:      total,
		AmountPaid: amountPaid,
		Balance:    total.Sub(amountPaid),
		Status:     StatusFor(amountPaid, total),
	}
}

// StatusFor partitions (amount_paid, total) three ways:
//
//	unpaid  iff amount_paid = 0
//	partial iff 0 < amount_paid < total
//	paid    iff amount_paid >= total and amount_paid > 0
//
// A zero-item invoice therefore reads unpaid until money arrives against it,
// at which point any payment covers the zero total and it reads paid.
func StatusFor(amountPaid, total decimal.Decimal) string {
	switch {
	case amountPaid.IsZero():
		return StatusUnpaid
	case amountPaid.GreaterThanOrEqual(total):
		return StatusPaid
	default:
		return StatusPartial
	}
}

// Apply refreshes the derived fields on an invoice in place, recomputing each
// item total as well. A nil Payments slice means the payment detail was not
// loaded (list views); the wire amount_paid is kept in that case, but status
// and balance are still recomputed from it.
func Apply(inv *Invoice) {
	for i := range inv.Items {
		inv.Items[i].Total = inv.Items[i].Quantity.Mul(inv.Items[i].UnitPrice)
	}
	t := Derive(inv.Items, inv.VATRate, inv.Payments)
	if inv.Payments == nil {
		t.AmountPaid = inv.AmountPaid
		t.Balance = t.Total.Sub(t.AmountPaid)
		t.Status = StatusFor(t.AmountPaid, t.Total)
	}
	inv.Subtotal = t.Subtotal
	inv.VATAmount = t.VATAmount
	inv.Total = t.Total
	inv.AmountPaid = t.AmountPaid
	inv.Balance = t.Balance
	inv.Status = t.Status
}
