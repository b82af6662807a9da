package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow holds the reconciliation aggregates over a date range.
type ReportRow struct {
	FromDate         time.Time       `json:"fromDate"`
	ToDate           time.Time       `json:"toDate"`
	TotalGrossIncome decimal.Decimal `json:"totalGrossIncome"`
	TotalIncomeCosts decimal.Decimal `json:"totalIncomeCosts"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	TotalCommissions decimal.Decimal `json:"totalCommissions"`
	TotalAssignedA   decimal.Decimal `json:"totalAssignedA"`
	TotalAssignedB   decimal.Decimal `json:"totalAssignedB"`
	NetBalance       decimal.Decimal `json:"netBalance"` // Gross income minus income costs minus expenses
	EntryCount       int             `json:"entryCount"`
}

// NewReportRow returns a zeroed row for [from, to].
func NewReportRow(from, to time.Time) ReportRow {
	return ReportRow{
		FromDate:         from,
		ToDate:           to,
		TotalGrossIncome: decimal.Zero,
		TotalIncomeCosts: decimal.Zero,
		TotalExpenses:    decimal.Zero,
		TotalCommissions: decimal.Zero,
		TotalAssignedA:   decimal.Zero,
		TotalAssignedB:   decimal.Zero,
		NetBalance:       decimal.Zero,
	}
}

// Add folds one ledger entry into the aggregates. Entries outside the row's
// range are the caller's responsibility to exclude.
func (r *ReportRow) Add(e LedgerEntry) {
	r.EntryCount++
	switch e.Kind {
	case Income:
		total := OrZero(e.Total)
		r.TotalGrossIncome = r.TotalGrossIncome.Add(total)
		r.TotalIncomeCosts = r.TotalIncomeCosts.Add(OrZero(e.AssociatedCosts))
		r.TotalCommissions = r.TotalCommissions.Add(OrZero(e.Commission))
		switch e.Assignee {
		case AssigneePartyA:
			r.TotalAssignedA = r.TotalAssignedA.Add(total)
		case AssigneePartyB:
			r.TotalAssignedB = r.TotalAssignedB.Add(total)
		}
	case Expense:
		r.TotalExpenses = r.TotalExpenses.Add(OrZero(e.AssociatedCosts))
	}
	r.NetBalance = r.TotalGrossIncome.Sub(r.TotalIncomeCosts).Sub(r.TotalExpenses)
}

// UnassignedIncome is gross income not credited to either party.
func (r ReportRow) UnassignedIncome() decimal.Decimal {
	return r.TotalGrossIncome.Sub(r.TotalAssignedA).Sub(r.TotalAssignedB)
}

// Reconcile aggregates entries into a report row for [from, to].
func Reconcile(from, to time.Time, entries []LedgerEntry) ReportRow {
	row := NewReportRow(from, to)
	for _, e := range entries {
		row.Add(e)
	}
	return row
}
