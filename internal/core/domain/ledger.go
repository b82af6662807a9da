package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a ledger entry is money coming in or going out.
type TransactionKind string

const (
	Income  TransactionKind = "INCOME"
	Expense TransactionKind = "EXPENSE"
)

// Assignee is the party credited with the proceeds of an income entry.
type Assignee string

const (
	AssigneeUnset  Assignee = "UNSET"
	AssigneePartyA Assignee = "PARTY_A"
	AssigneePartyB Assignee = "PARTY_B"
	AssigneeNone   Assignee = "NONE"
)

// legacy codes still sent by older front-end builds
var transactionKindAliases = map[string]TransactionKind{
	"INCOME":  Income,
	"INGRESO": Income,
	"EXPENSE": Expense,
	"EGRESO":  Expense,
}

var assigneeAliases = map[string]Assignee{
	"UNSET":   AssigneeUnset,
	"PARTY_A": AssigneePartyA,
	"IGNA":    AssigneePartyA,
	"PARTY_B": AssigneePartyB,
	"JOSE":    AssigneePartyB,
	"NONE":    AssigneeNone,
	"NINGUNO": AssigneeNone,
}

// ParseTransactionKind maps a canonical or legacy kind code to a TransactionKind.
func ParseTransactionKind(raw string) (TransactionKind, error) {
	if k, ok := transactionKindAliases[normalizeToken(raw)]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", raw)
}

// ParseAssignee maps a canonical or legacy assignee code to an Assignee.
// A blank input yields AssigneeUnset.
func ParseAssignee(raw string) (Assignee, error) {
	token := normalizeToken(raw, "assignee", "asignadoA")
	if token == "" {
		return AssigneeUnset, nil
	}
	if a, ok := assigneeAliases[token]; ok {
		return a, nil
	}
	return "", fmt.Errorf("unknown assignee %q", raw)
}

// IsAssignable reports whether a is a legal target for an assignment.
func (a Assignee) IsAssignable() bool {
	return a == AssigneePartyA || a == AssigneePartyB || a == AssigneeNone
}

// LedgerEntry is one income or expense transaction record.
type LedgerEntry struct {
	EntryID             string              `json:"entryID"`
	Kind                TransactionKind     `json:"kind"`
	EntryDate           time.Time           `json:"entryDate"`
	Activity            string              `json:"activity"`
	ActivityDescription string              `json:"activityDescription"`
	Seller              string              `json:"seller"`
	StaffName           string              `json:"staffName"`
	Details             string              `json:"details"`
	Hours               decimal.NullDecimal `json:"hours"`
	RatePerHour         decimal.NullDecimal `json:"ratePerHour"`
	Total               decimal.NullDecimal `json:"total"`
	Currency            string              `json:"currency"`
	AssociatedCosts     decimal.NullDecimal `json:"associatedCosts"` // Full outflow amount for EXPENSE
	Commission          decimal.NullDecimal `json:"commission"`
	PaymentMethod       string              `json:"paymentMethod"`
	PaymentMethodDetail string              `json:"paymentMethodDetail"`
	Assignee            Assignee            `json:"assignee"` // Only meaningful for INCOME
	Reviewed            bool                `json:"reviewed"`
	Sequence            int64               `json:"-"` // Insertion order, assigned by the store
	AuditFields
}

// ApplyCreationDefaults enforces the kind-dependent field locking of a freshly submitted entry.
func (e *LedgerEntry) ApplyCreationDefaults() {
	switch e.Kind {
	case Expense:
		e.Assignee = AssigneeNone
		e.Reviewed = true
	case Income:
		if e.Assignee == "" || e.Assignee == AssigneeUnset {
			e.Assignee = AssigneeNone
		}
		e.Reviewed = false
	}
}

// Assign credits the entry to a party and marks it reviewed.
// It reports whether anything changed.
func (e *LedgerEntry) Assign(to Assignee) (bool, error) {
	if e.Kind == Expense {
		return false, fmt.Errorf("expense entry %s cannot be assigned", e.EntryID)
	}
	if !to.IsAssignable() {
		return false, fmt.Errorf("assignee %q is not assignable", to)
	}
	if e.Assignee == to && e.Reviewed {
		return false, nil
	}
	e.Assignee = to
	e.Reviewed = true
	return true, nil
}

// normalizeToken strips incidental quoting and braces from a free-text code and
// upper-cases it. A leading "label:" is dropped only when label is one of labels,
// compared case-insensitively; any other colon leaves the token unrecognisable.
func normalizeToken(raw string, labels ...string) string {
	s := strings.TrimSpace(raw)
	s = strings.NewReplacer(`"`, "", "'", "", "{", "", "}", "").Replace(s)
	if label, value, found := strings.Cut(s, ":"); found {
		for _, l := range labels {
			if strings.EqualFold(strings.TrimSpace(label), l) {
				s = value
				break
			}
		}
	}
	return strings.ToUpper(strings.TrimSpace(s))
}
