package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data a staff member submits for a new income or expense.
// Numeric fields accept JSON numbers or numeric strings.
type CreateLedgerEntryRequest struct {
	Kind                string                `json:"kind" binding:"required"` // INCOME or EXPENSE (legacy INGRESO/EGRESO accepted)
	Date                string                `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Activity            string                `json:"activity" binding:"max=200"`
	ActivityDescription string                `json:"activityDescription" binding:"max=500"`
	Seller              string                `json:"seller" binding:"max=200"`
	StaffName           string                `json:"staffName" binding:"max=200"`
	Details             string                `json:"details"`
	Hours               domain.LenientDecimal `json:"hours" swaggertype:"number"`
	RatePerHour         domain.LenientDecimal `json:"ratePerHour" swaggertype:"number"`
	Total               domain.LenientDecimal `json:"total" swaggertype:"number"`
	Currency            string                `json:"currency" binding:"max=8"`
	AssociatedCosts     domain.LenientDecimal `json:"associatedCosts" swaggertype:"number"`
	Commission          domain.LenientDecimal `json:"commission" swaggertype:"number"`
	PaymentMethod       string                `json:"paymentMethod" binding:"max=100"`
	PaymentMethodDetail string                `json:"paymentMethodDetail" binding:"max=200"`
	Assignee            string                `json:"assignee"` // Ignored for EXPENSE
}

// AssignLedgerEntryRequest defines the admin decision crediting an income entry.
type AssignLedgerEntryRequest struct {
	Assignee       string `json:"assignee"`  // PARTY_A, PARTY_B or NONE
	LegacyAssignee string `json:"asignadoA"` // IGNA, JOSE or NINGUNO from older clients
}

// Value returns whichever of the assignee fields the client populated.
func (r AssignLedgerEntryRequest) Value() string {
	if strings.TrimSpace(r.Assignee) != "" {
		return r.Assignee
	}
	return r.LegacyAssignee
}

// ListLedgerEntriesParams defines query parameters for listing ledger entries.
type ListLedgerEntriesParams struct {
	Limit     int     `form:"limit,default=0" binding:"min=0,max=500"`
	NextToken *string `form:"nextToken"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID             string              `json:"entryID"`
	Kind                string              `json:"kind"`
	Date                string              `json:"date"`
	Activity            string              `json:"activity"`
	ActivityDescription string              `json:"activityDescription"`
	Seller              string              `json:"seller"`
	StaffName           string              `json:"staffName"`
	Details             string              `json:"details"`
	Hours               decimal.NullDecimal `json:"hours" swaggertype:"string"`
	RatePerHour         decimal.NullDecimal `json:"ratePerHour" swaggertype:"string"`
	Total               decimal.NullDecimal `json:"total" swaggertype:"string"`
	Currency            string              `json:"currency"`
	AssociatedCosts     decimal.NullDecimal `json:"associatedCosts" swaggertype:"string"`
	Commission          decimal.NullDecimal `json:"commission" swaggertype:"string"`
	PaymentMethod       string              `json:"paymentMethod"`
	PaymentMethodDetail string              `json:"paymentMethodDetail"`
	Assignee            string              `json:"assignee"`
	Reviewed            bool                `json:"reviewed"`
	CreatedAt           time.Time           `json:"createdAt"`
	CreatedBy           string              `json:"createdBy"`
	LastUpdatedAt       time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy       string              `json:"lastUpdatedBy"`
}

// ListLedgerEntriesResponse wraps a page of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:             e.EntryID,
		Kind:                string(e.Kind),
		Date:                e.EntryDate.Format(domain.DateLayout),
		Activity:            e.Activity,
		ActivityDescription: e.ActivityDescription,
		Seller:              e.Seller,
		StaffName:           e.StaffName,
		Details:             e.Details,
		Hours:               e.Hours,
		RatePerHour:         e.RatePerHour,
		Total:               e.Total,
		Currency:            e.Currency,
		AssociatedCosts:     e.AssociatedCosts,
		Commission:          e.Commission,
		PaymentMethod:       e.PaymentMethod,
		PaymentMethodDetail: e.PaymentMethodDetail,
		Assignee:            string(e.Assignee),
		Reviewed:            e.Reviewed,
		CreatedAt:           e.CreatedAt,
		CreatedBy:           e.CreatedBy,
		LastUpdatedAt:       e.LastUpdatedAt,
		LastUpdatedBy:       e.LastUpdatedBy,
	}
}

// ToListLedgerEntriesResponse converts a page of domain entries.
func ToListLedgerEntriesResponse(entries []domain.LedgerEntry, nextToken *string) ListLedgerEntriesResponse {
	res := ListLedgerEntriesResponse{
		Entries:   make([]LedgerEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		res.Entries[i] = ToLedgerEntryResponse(&entries[i])
	}
	return res
}
