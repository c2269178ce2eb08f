// Package aggregate folds derived records into summary totals. The live view
// and the closed-month view both go through these functions, so a month
// transitioning from live to historical keeps identical figures.
package aggregate

import (
	"go-payledger/internal/billing"
	"go-payledger/internal/money"
	"go-payledger/internal/salary"

	"github.com/shopspring/decimal"
)

type PayrollTotals struct {
	TotalGross      decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
}

// Payroll sums every monetary field across the snapshot set. Exact field-wise
// addition: same totals for any permutation of the input.
func Payroll(snaps []salary.Snapshot) PayrollTotals {
	return PayrollTotals{
		TotalGross: money.Sum(snaps, func(s salary.Snapshot) decimal.Decimal {
			return s.GrossSalary
		}),
		TotalAllowances: money.Sum(snaps, func(s salary.Snapshot) decimal.Decimal {
			return s.Record.Allowances
		}),
		TotalDeductions: money.Sum(snaps, func(s salary.Snapshot) decimal.Decimal {
			return s.TotalDeductions
		}),
		TotalNet: money.Sum(snaps, func(s salary.Snapshot) decimal.Decimal {
			return s.NetSalary
		}),
	}
}

type InvoiceTotals struct {
	Subtotal   decimal.Decimal
	VATAmount  decimal.Decimal
	Total      decimal.Decimal
	AmountPaid decimal.Decimal
	Balance    decimal.Decimal
	Count      int
}

// Invoices sums derived invoice figures, skipping soft-deleted records.
func Invoices(invs []billing.Invoice) InvoiceTotals {
	kept := make([]billing.Invoice, 0, len(invs))
	for _, inv := range invs {
		if !inv.Deleted {
			kept = append(kept, inv)
		}
	}

	return InvoiceTotals{
		Subtotal: money.Sum(kept, func(i billing.Invoice) decimal.Decimal {
			return i.Subtotal
		}),
		VATAmount: money.Sum(kept, func(i billing.Invoice) decimal.Decimal {
			return i.VATAmount
		}),
		Total: money.Sum(kept, func(i billing.Invoice) decimal.Decimal {
			return i.Total
		}),
		AmountPaid: money.Sum(kept, func(i billing.Invoice) decimal.Decimal {
			return i.AmountPaid
		}),
		Balance: money.Sum(kept, func(i billing.Invoice) decimal.Decimal {
			return i.Balance
		}),
		Count: len(kept),
	}
}
