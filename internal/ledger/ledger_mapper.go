package ledger

import (
	"time"

	"go-payledger/internal/billing"
	"go-payledger/internal/money"
	"go-payledger/internal/salary"
)

func mapPayRecord(dto employeePayRecordDTO) salary.EmployeePayRecord {
	return salary.EmployeePayRecord{
		EmployeeID:             dto.EmployeeID,
		Name:                   dto.EmployeeName,
		Position:               dto.Position,
		BasicSalary:            money.FromFloat(dto.BasicSalary),
		Allowances:             money.FromFloat(dto.Allowances),
		WorkingDays:            dto.WorkingDays,
		PresentDays:            dto.PresentDays,
		LeaveDays:              dto.LeaveDays,
		LateMinutes:            dto.LateMinutes,
		TotalAttendanceMinutes: dto.TotalAttendanceMinutes,
		ExtraPayment:           money.FromFloat(dto.ExtraPayment),
		Advances:               money.FromFloat(dto.Advances),
		LoanDeduction:          money.FromFloat(dto.LoanDeduction),
		OtherDeductions:        money.FromFloat(dto.OtherDeductions),
		FixedSalary:            dto.FixedSalary,
	}
}

func mapLiveSnapshot(dto liveSnapshotDTO) salary.LiveTotals {
	ts, err := time.Parse(time.RFC3339, dto.Timestamp)
	if err != nil {
		ts = time.Time{}
	}
	return salary.LiveTotals{
		Month:           dto.Month,
		TotalGross:      money.FromFloat(dto.TotalGross),
		TotalAllowances: money.FromFloat(dto.TotalAllowances),
		TotalDeductions: money.FromFloat(dto.TotalDeductions),
		TotalNet:        money.FromFloat(dto.TotalNet),
		Timestamp:       ts,
	}
}

func mapInvoice(dto invoiceDTO) billing.Invoice {
	inv := billing.Invoice{
		ID:            dto.ID,
		InvoiceNumber: dto.InvoiceNumber,
		CustomerID:    dto.CustomerID,
		InvoiceDate:   dto.InvoiceDate,
		DueDate:       dto.DueDate,
		VATRate:       money.FromFloat(dto.VATRate),
		AmountPaid:    money.FromFloat(dto.AmountPaid),
		Deleted:       dto.Deleted,
		DeletedBy:     dto.DeletedBy,
		Notes:         dto.Notes,
	}
	if dto.DeletedAt != "" {
		if ts, err := time.Parse(time.RFC3339, dto.DeletedAt); err == nil {
			inv.DeletedAt = &ts
		}
	}
	for _, it := range dto.Items {
		inv.Items = append(inv.Items, billing.Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Description: it.Description,
			Quantity:    money.FromFloat(it.Quantity),
			UnitPrice:   money.FromFloat(it.UnitPrice),
		})
	}
	if dto.Payments != nil {
		inv.Payments = make([]billing.Payment, 0, len(dto.Payments))
		for _, p := range dto.Payments {
			inv.Payments = append(inv.Payments, billing.Payment{
				ID:            p.ID,
				InvoiceID:     p.InvoiceID,
				Amount:        money.FromFloat(p.Amount),
				PaymentDate:   p.PaymentDate,
				PaymentMethod: p.PaymentMethod,
				Notes:         p.Notes,
			})
		}
	}

	// Wire totals and status are advisory only; everything displayed is
	// recomputed locally.
	billing.Apply(&inv)
	return inv
}
