package domain_test

import (
	"testing"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    domain.TransactionKind
		wantErr bool
	}{
		{raw: "INCOME", want: domain.Income},
		{raw: "expense", want: domain.Expense},
		{raw: "INGRESO", want: domain.Income},
		{raw: " egreso ", want: domain.Expense},
		{raw: "", wantErr: true},
		{raw: "REFUND", wantErr: true},
		{raw: "junk:INCOME", wantErr: true},
		{raw: "kind:INCOME", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.ParseTransactionKind(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAssignee(t *testing.T) {
	tests := []struct {
		raw     string
		want    domain.Assignee
		wantErr bool
	}{
		{raw: "", want: domain.AssigneeUnset},
		{raw: "PARTY_A", want: domain.AssigneePartyA},
		{raw: "IGNA", want: domain.AssigneePartyA},
		{raw: "jose", want: domain.AssigneePartyB},
		{raw: "NINGUNO", want: domain.AssigneeNone},
		{raw: `{"asignadoA":"IGNA"}`, want: domain.AssigneePartyA},
		{raw: "assignee: party_b", want: domain.AssigneePartyB},
		{raw: "BOTH", wantErr: true},
		{raw: "junk:IGNA", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := domain.ParseAssignee(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedgerEntry_ApplyCreationDefaults(t *testing.T) {
	expense := domain.LedgerEntry{Kind: domain.Expense, Assignee: domain.AssigneePartyA, Reviewed: false}
	expense.ApplyCreationDefaults()
	assert.Equal(t, domain.AssigneeNone, expense.Assignee)
	assert.True(t, expense.Reviewed)

	income := domain.LedgerEntry{Kind: domain.Income, Assignee: domain.AssigneeUnset, Reviewed: true}
	income.ApplyCreationDefaults()
	assert.Equal(t, domain.AssigneeNone, income.Assignee)
	assert.False(t, income.Reviewed)

	preassigned := domain.LedgerEntry{Kind: domain.Income, Assignee: domain.AssigneePartyB}
	preassigned.ApplyCreationDefaults()
	assert.Equal(t, domain.AssigneePartyB, preassigned.Assignee)
	assert.False(t, preassigned.Reviewed)
}

func TestLedgerEntry_Assign(t *testing.T) {
	entry := domain.LedgerEntry{Kind: domain.Income, Assignee: domain.AssigneeNone}

	changed, err := entry.Assign(domain.AssigneePartyA)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, entry.Reviewed)

	changed, err = entry.Assign(domain.AssigneePartyA)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = entry.Assign(domain.AssigneeUnset)
	assert.Error(t, err)

	expense := domain.LedgerEntry{Kind: domain.Expense, Assignee: domain.AssigneeNone, Reviewed: true}
	_, err = expense.Assign(domain.AssigneePartyB)
	assert.Error(t, err)
	assert.Equal(t, domain.AssigneeNone, expense.Assignee)
}
