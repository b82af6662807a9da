package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func nd(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

func TestReconcile(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		{Kind: domain.Income, Total: nd("100"), AssociatedCosts: nd("10"), Commission: nd("5"), Assignee: domain.AssigneePartyA},
		{Kind: domain.Expense, AssociatedCosts: nd("30"), Assignee: domain.AssigneeNone},
	}

	row := domain.Reconcile(day, day, entries)

	assert.Equal(t, "100", row.TotalGrossIncome.String())
	assert.Equal(t, "10", row.TotalIncomeCosts.String())
	assert.Equal(t, "30", row.TotalExpenses.String())
	assert.Equal(t, "5", row.TotalCommissions.String())
	assert.Equal(t, "100", row.TotalAssignedA.String())
	assert.Equal(t, "0", row.TotalAssignedB.String())
	assert.Equal(t, "60", row.NetBalance.String())
	assert.Equal(t, "0", row.UnassignedIncome().String())
	assert.Equal(t, 2, row.EntryCount)
}

func TestReconcile_MissingNumericsCountAsZero(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.LedgerEntry{
		{Kind: domain.Income, Assignee: domain.AssigneePartyB},
		{Kind: domain.Income, Total: nd("40.25"), Assignee: domain.AssigneeNone},
		{Kind: domain.Expense},
	}

	row := domain.Reconcile(day, day, entries)

	assert.Equal(t, "40.25", row.TotalGrossIncome.String())
	assert.True(t, row.TotalAssignedB.IsZero())
	assert.True(t, row.TotalExpenses.IsZero())
	assert.Equal(t, "40.25", row.UnassignedIncome().String())
	assert.Equal(t, "40.25", row.NetBalance.String())
}

func TestReconcile_Empty(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	row := domain.Reconcile(day, day.AddDate(0, 1, 0), nil)

	for _, v := range []decimal.Decimal{row.TotalGrossIncome, row.TotalIncomeCosts, row.TotalExpenses,
		row.TotalCommissions, row.TotalAssignedA, row.TotalAssignedB, row.NetBalance} {
		assert.True(t, v.IsZero())
	}
	assert.Zero(t, row.EntryCount)
}
