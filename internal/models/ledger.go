package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the database representation of a row in ledger_entries.
type LedgerEntry struct {
	EntryID             string              `db:"entry_id"`
	EntrySeq            int64               `db:"entry_seq"`
	Kind                string              `db:"kind"`
	EntryDate           time.Time           `db:"entry_date"`
	Activity            string              `db:"activity"`
	ActivityDescription string              `db:"activity_description"`
	Seller              string              `db:"seller"`
	StaffName           string              `db:"staff_name"`
	Details             string              `db:"details"`
	Hours               decimal.NullDecimal `db:"hours"`
	RatePerHour         decimal.NullDecimal `db:"rate_per_hour"`
	Total               decimal.NullDecimal `db:"total"`
	Currency            string              `db:"currency"`
	AssociatedCosts     decimal.NullDecimal `db:"associated_costs"`
	Commission          decimal.NullDecimal `db:"commission"`
	PaymentMethod       string              `db:"payment_method"`
	PaymentMethodDetail string              `db:"payment_method_detail"`
	Assignee            string              `db:"assignee"`
	Reviewed            bool                `db:"reviewed"`
	AuditFields
}
