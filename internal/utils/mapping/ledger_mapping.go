package mapping

import (
	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/SscSPs/kbn_backend/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:             d.EntryID,
		EntrySeq:            d.Sequence,
		Kind:                string(d.Kind),
		EntryDate:           domain.CalendarDate(d.EntryDate),
		Activity:            d.Activity,
		ActivityDescription: d.ActivityDescription,
		Seller:              d.Seller,
		StaffName:           d.StaffName,
		Details:             d.Details,
		Hours:               d.Hours,
		RatePerHour:         d.RatePerHour,
		Total:               d.Total,
		Currency:            d.Currency,
		AssociatedCosts:     d.AssociatedCosts,
		Commission:          d.Commission,
		PaymentMethod:       d.PaymentMethod,
		PaymentMethodDetail: d.PaymentMethodDetail,
		Assignee:            string(d.Assignee),
		Reviewed:            d.Reviewed,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:             m.EntryID,
		Sequence:            m.EntrySeq,
		Kind:                domain.TransactionKind(m.Kind),
		EntryDate:           domain.CalendarDate(m.EntryDate),
		Activity:            m.Activity,
		ActivityDescription: m.ActivityDescription,
		Seller:              m.Seller,
		StaffName:           m.StaffName,
		Details:             m.Details,
		Hours:               m.Hours,
		RatePerHour:         m.RatePerHour,
		Total:               m.Total,
		Currency:            m.Currency,
		AssociatedCosts:     m.AssociatedCosts,
		Commission:          m.Commission,
		PaymentMethod:       m.PaymentMethod,
		PaymentMethodDetail: m.PaymentMethodDetail,
		Assignee:            domain.Assignee(m.Assignee),
		Reviewed:            m.Reviewed,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntry to domain LedgerEntry
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
