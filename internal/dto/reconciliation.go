package dto

import (
	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReconciliationReportResponse represents the reconciliation report response
type ReconciliationReportResponse struct {
	FromDate         string          `json:"fromDate"`
	ToDate           string          `json:"toDate"`
	EntryCount       int             `json:"entryCount"`
	TotalGrossIncome decimal.Decimal `json:"totalGrossIncome" swaggertype:"string"`
	TotalIncomeCosts decimal.Decimal `json:"totalIncomeCosts" swaggertype:"string"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses" swaggertype:"string"`
	TotalCommissions decimal.Decimal `json:"totalCommissions" swaggertype:"string"`
	TotalAssignedA   decimal.Decimal `json:"totalAssignedA" swaggertype:"string"`
	TotalAssignedB   decimal.Decimal `json:"totalAssignedB" swaggertype:"string"`
	NetBalance       decimal.Decimal `json:"netBalance" swaggertype:"string"`
	UnassignedIncome decimal.Decimal `json:"unassignedIncome" swaggertype:"string"`
}

// ToReconciliationReportResponse converts a domain report row to a DTO response
func ToReconciliationReportResponse(row *domain.ReportRow) ReconciliationReportResponse {
	return ReconciliationReportResponse{
		FromDate:         row.FromDate.Format(domain.DateLayout),
		ToDate:           row.ToDate.Format(domain.DateLayout),
		EntryCount:       row.EntryCount,
		TotalGrossIncome: row.TotalGrossIncome,
		TotalIncomeCosts: row.TotalIncomeCosts,
		TotalExpenses:    row.TotalExpenses,
		TotalCommissions: row.TotalCommissions,
		TotalAssignedA:   row.TotalAssignedA,
		TotalAssignedB:   row.TotalAssignedB,
		NetBalance:       row.NetBalance,
		UnassignedIncome: row.UnassignedIncome(),
	}
}
