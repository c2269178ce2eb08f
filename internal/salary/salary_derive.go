package salary

import (
	"go-payledger/internal/money"

	"github.com/shopspring/decimal"
)

// Policy carries the company-level attendance configuration injected from
// config. WorkingDayMinutes is the assumed length of one working day.
type Policy struct {
	WorkingDayMinutes int  // default 480 (8 hours)
	FixedLatePenalty  bool // charge late minutes to fixed-salary employees too
}

func DefaultPolicy() Policy {
	return Policy{WorkingDayMinutes: 480}
}

// Derive turns one pay record into its derived snapshot. Pure function: the
// same record and policy always reproduce the same figures, on either side of
// the wire, so per-employee rows and aggregate totals can never disagree.
//
// day_salary       = basic / working_days            (0 when working_days = 0)
// salary_per_minute = day_salary / working_day_minutes
// hourly earnings  = salary_per_minute * attendance_minutes
// fixed earnings   = basic + allowances, independent of attendance
func Derive(rec EmployeePayRecord, policy Policy) Snapshot {
	minutesPerDay := money.FromInt(int64(policy.WorkingDayMinutes))

	daySalary := money.SafeDiv(rec.BasicSalary, money.FromInt(int64(rec.WorkingDays)))
	perMinute := money.SafeDiv(daySalary, minutesPerDay)

	var earnings, gross, lateDeduction, reportedPerMinute decimal.Decimal

	if rec.FixedSalary {
		earnings = rec.BasicSalary.Add(rec.Allowances)
		gross = earnings.Add(rec.ExtraPayment)
		// Informational only for fixed salaries; earnings never depend on it.
		reportedPerMinute = decimal.Zero
		if policy.FixedLatePenalty {
			lateDeduction = perMinute.Mul(money.FromInt(int64(rec.LateMinutes)))
		} else {
			lateDeduction = decimal.Zero
		}
	} else {
		earnings = perMinute.Mul(money.FromInt(int64(rec.TotalAttendanceMinutes)))
		gross = earnings.Add(rec.Allowances).Add(rec.ExtraPayment)
		reportedPerMinute = perMinute
		lateDeduction = perMinute.Mul(money.FromInt(int64(rec.LateMinutes)))
	}

	totalDeductions := lateDeduction.
		Add(rec.Advances).
		Add(rec.LoanDeduction).
		Add(rec.OtherDeductions)

	return Snapshot{
		Record:          rec,
		SalaryPerMinute: reportedPerMinute,
		Earnings:        earnings,
		LateDeduction:   lateDeduction,
		GrossSalary:     gross,
		TotalDeductions: totalDeductions,
		NetSalary:       gross.Sub(totalDeductions),
	}
}

// DeriveAll derives every record with the same policy, preserving input order.
func DeriveAll(records []EmployeePayRecord, policy Policy) []Snapshot {
	snaps := make([]Snapshot, len(records))
	for i, rec := range records {
		snaps[i] = Derive(rec, policy)
	}
	return snaps
}
