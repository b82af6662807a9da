package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/SscSPs/kbn_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToModelLedgerEntry_TruncatesDate(t *testing.T) {
	d := domain.LedgerEntry{
		EntryID:   "e1",
		Kind:      domain.Income,
		EntryDate: time.Date(2024, 1, 2, 17, 45, 0, 0, time.UTC),
		Total:     decimal.NewNullDecimal(decimal.NewFromInt(10)),
		Assignee:  domain.AssigneePartyA,
	}

	m := ToModelLedgerEntry(d)

	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), m.EntryDate)
	assert.Equal(t, "INCOME", m.Kind)
	assert.Equal(t, "PARTY_A", m.Assignee)
	assert.False(t, m.Hours.Valid)
}

func TestToDomainStaff_MapsRole(t *testing.T) {
	s := ToDomainStaff(models.Staff{StaffID: "s1", FirstName: "Jose", LastName: "Ruiz", Role: "ROLE_INSTRUCTOR"})

	assert.Equal(t, domain.RoleInstructor, s.Role)
	assert.Equal(t, "Jose Ruiz", s.DisplayName())
}
