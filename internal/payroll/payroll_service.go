package payroll

import (
	"context"
	"time"

	"go-payledger/internal/aggregate"
	"go-payledger/internal/ledger"
	"go-payledger/internal/money"
	payrollerrors "go-payledger/internal/payroll/errors"
	"go-payledger/internal/salary"
	"go-payledger/internal/shared/contextutil"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Live(ctx context.Context) (LivePayrollResponse, error)
	Detailed(ctx context.Context, month string) (DetailedPayrollResponse, error)
	Months(ctx context.Context) ([]MonthSummaryResponse, error)
}

type service struct {
	ledger ledger.Client
	policy salary.Policy
}

func NewService(ledgerClient ledger.Client, policy salary.Policy) Service {
	return &service{ledger: ledgerClient, policy: policy}
}

func (s *service) Live(ctx context.Context) (LivePayrollResponse, error) {
	snap, err := s.ledger.LiveCurrentMonth(ctx)
	if err != nil {
		return LivePayrollResponse{}, err
	}
	return mapLiveResponse(snap), nil
}

// Detailed fetches a month's raw pay records and runs the canonical
// derivation locally. Totals come from the same aggregation rule as the live
// view, so a month moving from live to closed shows no jump.
func (s *service) Detailed(ctx context.Context, month string) (DetailedPayrollResponse, error) {
	if !ledger.ValidMonth(month) {
		return DetailedPayrollResponse{}, payrollerrors.ErrInvalidMonth
	}

	detail, err := s.ledger.DetailedMonth(ctx, month)
	if err != nil {
		return DetailedPayrollResponse{}, err
	}

	snaps := salary.DeriveAll(detail.Employees, s.policy)
	totals := aggregate.Payroll(snaps)

	// Reconcile against the upstream's own aggregate. Drift beyond display
	// rounding means one side computes differently and is worth flagging.
	upstreamNet := money.FromFloat(detail.UpstreamTotalNet)
	if !upstreamNet.IsZero() && totals.TotalNet.Sub(upstreamNet).Abs().GreaterThan(decimal.NewFromFloat(0.01)) {
		contextutil.GetLogger(ctx, zap.L()).Warn("payroll totals drift from upstream",
			zap.String("month", month),
			zap.String("local_net", totals.TotalNet.String()),
			zap.Float64("upstream_net", detail.UpstreamTotalNet))
	}

	resp := DetailedPayrollResponse{
		Month:           detail.Month,
		Timestamp:       detail.Timestamp.Format(time.RFC3339),
		Employees:       make([]EmployeePayrollResponse, 0, len(snaps)),
		TotalGross:      money.Round2(totals.TotalGross),
		TotalAllowances: money.Round2(totals.TotalAllowances),
		TotalDeductions: money.Round2(totals.TotalDeductions),
		TotalNet:        money.Round2(totals.TotalNet),
	}
	for _, snap := range snaps {
		resp.Employees = append(resp.Employees, mapEmployeeResponse(snap))
	}
	return resp, nil
}

func (s *service) Months(ctx context.Context) ([]MonthSummaryResponse, error) {
	months, err := s.ledger.Months(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]MonthSummaryResponse, 0, len(months))
	for _, m := range months {
		resp = append(resp, MonthSummaryResponse{
			Month:         m.Month,
			TotalSalary:   money.Round2(m.TotalSalary),
			EmployeeCount: m.EmployeeCount,
		})
	}
	return resp, nil
}

func mapEmployeeResponse(snap salary.Snapshot) EmployeePayrollResponse {
	rec := snap.Record
	return EmployeePayrollResponse{
		EmployeeID:             rec.EmployeeID,
		Name:                   rec.Name,
		Position:               rec.Position,
		BasicSalary:            money.Round2(rec.BasicSalary),
		Allowances:             money.Round2(rec.Allowances),
		WorkingDays:            rec.WorkingDays,
		PresentDays:            rec.PresentDays,
		LeaveDays:              rec.LeaveDays,
		LateMinutes:            rec.LateMinutes,
		TotalAttendanceMinutes: rec.TotalAttendanceMinutes,
		FixedSalary:            rec.FixedSalary,
		SalaryPerMinute:        money.Round2(snap.SalaryPerMinute),
		Earnings:               money.Round2(snap.Earnings),
		ExtraPayment:           money.Round2(rec.ExtraPayment),
		LateDeduction:          money.Round2(snap.LateDeduction),
		Advances:               money.Round2(rec.Advances),
		LoanDeduction:          money.Round2(rec.LoanDeduction),
		OtherDeductions:        money.Round2(rec.OtherDeductions),
		GrossSalary:            money.Round2(snap.GrossSalary),
		TotalDeductions:        money.Round2(snap.TotalDeductions),
		NetSalary:              money.Round2(snap.NetSalary),
	}
}

func mapLiveResponse(snap salary.LiveTotals) LivePayrollResponse {
	return LivePayrollResponse{
		Month:           snap.Month,
		TotalGross:      money.Round2(snap.TotalGross),
		TotalAllowances: money.Round2(snap.TotalAllowances),
		TotalDeductions: money.Round2(snap.TotalDeductions),
		TotalNet:        money.Round2(snap.TotalNet),
		Timestamp:       snap.Timestamp.Format(time.RFC3339),
	}
}
