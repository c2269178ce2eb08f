package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeePayRecord is one employee's pay inputs for a month, rebuilt from the
// Ledger Service on every fetch. The core never mutates it locally; negative
// inputs are rejected upstream at the ledger boundary.
type EmployeePayRecord struct {
	EmployeeID string
	Name       string
	Position   string

	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal

	WorkingDays            int // > 0, default 26
	PresentDays            int
	LeaveDays              int
	LateMinutes            int
	TotalAttendanceMinutes int

	ExtraPayment    decimal.Decimal
	Advances        decimal.Decimal
	LoanDeduction   decimal.Decimal
	OtherDeductions decimal.Decimal

	FixedSalary bool
}

// Snapshot is the derived pay figure set for one employee. Net may be negative
// when deductions exceed gross; it is reported as-is, never clamped.
type Snapshot struct {
	Record EmployeePayRecord

	SalaryPerMinute decimal.Decimal
	Earnings        decimal.Decimal
	LateDeduction   decimal.Decimal
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

// LiveTotals is the aggregate payroll view for the current, still-accruing
// month. Ephemeral: recomputed on every poll, never persisted by this core.
type LiveTotals struct {
	Month           string
	TotalGross      decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
	Timestamp       time.Time
}

// MonthSummary mirrors one row of the ledger's payroll months listing.
type MonthSummary struct {
	Month         string
	TotalSalary   decimal.Decimal
	EmployeeCount int
}
