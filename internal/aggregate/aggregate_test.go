package aggregate_test

import (
	"math/rand"
	"testing"

	"go-payledger/internal/aggregate"
	"go-payledger/internal/billing"
	"go-payledger/internal/salary"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func derivedSnaps() []salary.Snapshot {
	policy := salary.DefaultPolicy()
	records := []salary.EmployeePayRecord{
		{
			EmployeeID:             "a",
			BasicSalary:            decimal.NewFromInt(26000),
			WorkingDays:            26,
			TotalAttendanceMinutes: 9000,
			Allowances:             decimal.NewFromInt(1000),
		},
		{
			EmployeeID:  "b",
			BasicSalary: decimal.NewFromInt(60000),
			Allowances:  decimal.NewFromInt(2500),
			WorkingDays: 26,
			FixedSalary: true,
		},
		{
			EmployeeID:             "c",
			BasicSalary:            decimal.NewFromInt(39000),
			WorkingDays:            26,
			TotalAttendanceMinutes: 7230,
			LateMinutes:            45,
			Advances:               decimal.NewFromInt(1200),
		},
	}
	return salary.DeriveAll(records, policy)
}

func TestPayrollTotalsAreFieldWiseSums(t *testing.T) {
	snaps := derivedSnaps()
	totals := aggregate.Payroll(snaps)

	wantNet := decimal.Zero
	wantGross := decimal.Zero
	for _, s := range snaps {
		wantNet = wantNet.Add(s.NetSalary)
		wantGross = wantGross.Add(s.GrossSalary)
	}

	assert.True(t, totals.TotalNet.Equal(wantNet))
	assert.True(t, totals.TotalGross.Equal(wantGross))
	assert.True(t, totals.TotalAllowances.Equal(decimal.NewFromInt(3500)))
}

func TestPayrollTotalsOrderIndependent(t *testing.T) {
	snaps := derivedSnaps()
	want := aggregate.Payroll(snaps)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]salary.Snapshot, len(snaps))
		copy(shuffled, snaps)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := aggregate.Payroll(shuffled)
		assert.True(t, got.TotalGross.Equal(want.TotalGross))
		assert.True(t, got.TotalNet.Equal(want.TotalNet))
		assert.True(t, got.TotalDeductions.Equal(want.TotalDeductions))
	}
}

func invoiceFixture(id string, deleted bool) billing.Invoice {
	inv := billing.Invoice{
		ID:      id,
		Deleted: deleted,
		Items: []billing.Item{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500)},
		},
		VATRate:  decimal.NewFromInt(18),
		Payments: []billing.Payment{{Amount: decimal.NewFromInt(300)}},
	}
	billing.Apply(&inv)
	return inv
}

func TestInvoiceTotalsSkipSoftDeleted(t *testing.T) {
	invs := []billing.Invoice{
		invoiceFixture("inv-1", false),
		invoiceFixture("inv-2", true),
		invoiceFixture("inv-3", false),
	}

	totals := aggregate.Invoices(invs)

	assert.Equal(t, 2, totals.Count)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(2000)))
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(2360)))
	assert.True(t, totals.AmountPaid.Equal(decimal.NewFromInt(600)))
}

func TestRestoreReappearsWithIdenticalTotals(t *testing.T) {
	inv := invoiceFixture("inv-1", false)
	before := aggregate.Invoices([]billing.Invoice{inv})

	inv.Deleted = true
	during := aggregate.Invoices([]billing.Invoice{inv})
	assert.Equal(t, 0, during.Count)
	assert.True(t, during.Total.IsZero())

	inv.Deleted = false
	after := aggregate.Invoices([]billing.Invoice{inv})
	assert.True(t, after.Total.Equal(before.Total))
	assert.True(t, after.AmountPaid.Equal(before.AmountPaid))
	assert.True(t, after.Balance.Equal(before.Balance))
}
