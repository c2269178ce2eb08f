package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payledger/internal/billing"
	"go-payledger/internal/ledger"
	"go-payledger/internal/money"
	"go-payledger/internal/payroll"
	payrollerrors "go-payledger/internal/payroll/errors"
	"go-payledger/internal/salary"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeLedgerClient struct {
	liveFn          func(ctx context.Context) (salary.LiveTotals, error)
	detailedFn      func(ctx context.Context, month string) (ledger.DetailedMonth, error)
	monthsFn        func(ctx context.Context) ([]salary.MonthSummary, error)
	invoicesFn      func(ctx context.Context, includeDeleted bool) ([]billing.Invoice, error)
	invoiceFn       func(ctx context.Context, id string) (billing.Invoice, error)
	createInvoiceFn func(ctx context.Context, in ledger.CreateInvoiceInput) (string, error)
	updateInvoiceFn func(ctx context.Context, id string, in ledger.UpdateInvoiceInput) error
	deleteInvoiceFn func(ctx context.Context, id string) error
	restoreFn       func(ctx context.Context, id string) error
	addPaymentFn    func(ctx context.Context, invoiceID string, in ledger.AddPaymentInput) error
}

func (f *fakeLedgerClient) LiveCurrentMonth(ctx context.Context) (salary.LiveTotals, error) {
	return f.liveFn(ctx)
}

func (f *fakeLedgerClient) DetailedMonth(ctx context.Context, month string) (ledger.DetailedMonth, error) {
	return f.detailedFn(ctx, month)
}

func (f *fakeLedgerClient) Months(ctx context.Context) ([]salary.MonthSummary, error) {
	return f.monthsFn(ctx)
}

func (f *fakeLedgerClient) Invoices(ctx context.Context, includeDeleted bool) ([]billing.Invoice, error) {
	return f.invoicesFn(ctx, includeDeleted)
}

func (f *fakeLedgerClient) Invoice(ctx context.Context, id string) (billing.Invoice, error) {
	return f.invoiceFn(ctx, id)
}

func (f *fakeLedgerClient) CreateInvoice(ctx context.Context, in ledger.CreateInvoiceInput) (string, error) {
	return f.createInvoiceFn(ctx, in)
}

func (f *fakeLedgerClient) UpdateInvoice(ctx context.Context, id string, in ledger.UpdateInvoiceInput) error {
	return f.updateInvoiceFn(ctx, id, in)
}

func (f *fakeLedgerClient) DeleteInvoice(ctx context.Context, id string) error {
	return f.deleteInvoiceFn(ctx, id)
}

func (f *fakeLedgerClient) RestoreInvoice(ctx context.Context, id string) error {
	return f.restoreFn(ctx, id)
}

func (f *fakeLedgerClient) AddPayment(ctx context.Context, invoiceID string, in ledger.AddPaymentInput) error {
	return f.addPaymentFn(ctx, invoiceID, in)
}

func TestDetailedDerivesAndAggregatesLocally(t *testing.T) {
	fetched := time.Date(2026, 7, 31, 23, 59, 0, 0, time.UTC)
	client := &fakeLedgerClient{
		detailedFn: func(ctx context.Context, month string) (ledger.DetailedMonth, error) {
			return ledger.DetailedMonth{
				Month:     "2026-07",
				Timestamp: fetched,
				Employees: []salary.EmployeePayRecord{
					{
						EmployeeID:             "emp-1",
						Name:                   "Nimal Perera",
						BasicSalary:            decimal.NewFromInt(26000),
						WorkingDays:            26,
						TotalAttendanceMinutes: 9000,
						LateMinutes:            30,
						Advances:               decimal.NewFromInt(500),
					},
					{
						EmployeeID:  "emp-2",
						Name:        "Kamala Silva",
						BasicSalary: decimal.NewFromInt(60000),
						Allowances:  decimal.NewFromInt(5000),
						WorkingDays: 26,
						FixedSalary: true,
					},
				},
			}, nil
		},
	}

	svc := payroll.NewService(client, salary.DefaultPolicy())
	resp, err := svc.Detailed(context.Background(), "2026-07")

	assert.NoError(t, err)
	assert.Equal(t, "2026-07", resp.Month)
	assert.Len(t, resp.Employees, 2)

	// emp-1: hourly, 26000 basic / 26 wd, 9000 minutes, 30 late, 500 advance.
	assert.InDelta(t, 18187.5, resp.Employees[0].NetSalary, 0.01)
	assert.InDelta(t, 62.5, resp.Employees[0].LateDeduction, 0.01)

	// emp-2: fixed, gross = 60000 + 5000, no deductions.
	assert.InDelta(t, 65000, resp.Employees[1].GrossSalary, 0.01)
	assert.InDelta(t, 65000, resp.Employees[1].NetSalary, 0.01)

	// Totals are the field-wise sums of the rows above.
	assert.InDelta(t, resp.Employees[0].NetSalary+resp.Employees[1].NetSalary, resp.TotalNet, 0.01)
	assert.InDelta(t, 5000, resp.TotalAllowances, 0.01)
}

func TestDetailedRejectsMalformedMonth(t *testing.T) {
	svc := payroll.NewService(&fakeLedgerClient{}, salary.DefaultPolicy())

	_, err := svc.Detailed(context.Background(), "July 2026")

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)
}

func TestDetailedPropagatesFetchFailure(t *testing.T) {
	client := &fakeLedgerClient{
		detailedFn: func(ctx context.Context, month string) (ledger.DetailedMonth, error) {
			return ledger.DetailedMonth{}, errors.New("connection refused")
		},
	}

	svc := payroll.NewService(client, salary.DefaultPolicy())
	_, err := svc.Detailed(context.Background(), "2026-07")

	assert.Error(t, err)
}

func TestLiveMapsSnapshot(t *testing.T) {
	ts := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	client := &fakeLedgerClient{
		liveFn: func(ctx context.Context) (salary.LiveTotals, error) {
			return salary.LiveTotals{
				Month:      "2026-08",
				TotalGross: money.FromFloat(123456.789),
				TotalNet:   money.FromFloat(100000.004),
				Timestamp:  ts,
			}, nil
		},
	}

	svc := payroll.NewService(client, salary.DefaultPolicy())
	resp, err := svc.Live(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "2026-08", resp.Month)
	assert.Equal(t, 123456.79, resp.TotalGross) // rounded at the boundary only
	assert.Equal(t, 100000.0, resp.TotalNet)
	assert.Equal(t, "2026-08-28T10:00:00Z", resp.Timestamp)
}

func TestMonthsPassThrough(t *testing.T) {
	client := &fakeLedgerClient{
		monthsFn: func(ctx context.Context) ([]salary.MonthSummary, error) {
			return []salary.MonthSummary{
				{Month: "2026-08", TotalSalary: decimal.NewFromInt(250000), EmployeeCount: 7},
				{Month: "2026-07", TotalSalary: decimal.NewFromInt(245000), EmployeeCount: 7},
			}, nil
		},
	}

	svc := payroll.NewService(client, salary.DefaultPolicy())
	resp, err := svc.Months(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "2026-08", resp[0].Month)
	assert.Equal(t, 7, resp[0].EmployeeCount)
}
