package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
)

var two = decimal.NewFromInt(2)

// ComputeTotals aggregates a set of day entries against a daily wage.
// It is a pure function: no side effects, deterministic for any subset of
// entries, and it knows nothing about calendar boundaries. Period semantics
// (which entries constitute a month) are the caller's responsibility.
//
// Earnings: present days earn the full wage, half days earn exactly half.
// AmountTaken sums across all entries regardless of state. Remaining is
// clamped at zero: an over-draw is not reported as debt.
func ComputeTotals(entries []domain.AttendanceEntry, salaryPerDay decimal.Decimal) domain.AttendanceTotals {
	totals := domain.AttendanceTotals{
		TotalEarnings:    decimal.Zero,
		TotalAmountTaken: decimal.Zero,
		Remaining:        decimal.Zero,
	}

	for _, entry := range entries {
		switch entry.Status {
		case domain.StatePresent:
			totals.TotalPresent++
		case domain.StateHalfDay:
			totals.TotalHalfDay++
		case domain.StateAbsent:
			totals.TotalAbsent++
		}
		totals.TotalAmountTaken = totals.TotalAmountTaken.Add(entry.AmountTaken)
	}

	halfDayWage := salaryPerDay.Div(two)
	totals.TotalEarnings = salaryPerDay.Mul(decimal.NewFromInt(int64(totals.TotalPresent))).
		Add(halfDayWage.Mul(decimal.NewFromInt(int64(totals.TotalHalfDay))))

	remaining := totals.TotalEarnings.Sub(totals.TotalAmountTaken)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	totals.Remaining = remaining

	return totals
}
