package mapping

import (
	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/SscSPs/kbn_backend/internal/models"
)

// ToModelScheduleEntry converts a domain ScheduleEntry to a model ScheduleEntry
func ToModelScheduleEntry(d domain.ScheduleEntry) models.ScheduleEntry {
	return models.ScheduleEntry{
		ScheduleID:       d.ScheduleID,
		ScheduleSeq:      d.Sequence,
		StudentName:      d.StudentName,
		LessonDate:       domain.CalendarDate(d.LessonDate),
		LessonTime:       d.LessonTime,
		StaffID:          d.StaffID,
		StaffDisplayName: d.StaffDisplayName,
		Location:         d.Location,
		Rate:             d.Rate,
		Hours:            d.Hours,
		HoursPaid:        d.HoursPaid,
		ReferralHotel:    d.ReferralHotel,
		Status:           string(d.Status),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainScheduleEntry converts a model ScheduleEntry to a domain ScheduleEntry
func ToDomainScheduleEntry(m models.ScheduleEntry) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		ScheduleID:       m.ScheduleID,
		Sequence:         m.ScheduleSeq,
		StudentName:      m.StudentName,
		LessonDate:       domain.CalendarDate(m.LessonDate),
		LessonTime:       m.LessonTime,
		StaffID:          m.StaffID,
		StaffDisplayName: m.StaffDisplayName,
		Location:         m.Location,
		Rate:             m.Rate,
		Hours:            m.Hours,
		HoursPaid:        m.HoursPaid,
		ReferralHotel:    m.ReferralHotel,
		Status:           domain.ScheduleStatus(m.Status),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainScheduleEntrySlice converts a slice of model ScheduleEntry to domain ScheduleEntry
func ToDomainScheduleEntrySlice(ms []models.ScheduleEntry) []domain.ScheduleEntry {
	ds := make([]domain.ScheduleEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainScheduleEntry(m)
	}
	return ds
}

// ToDomainStaff converts a model Staff to a domain Staff; unknown roles are left empty.
func ToDomainStaff(m models.Staff) domain.Staff {
	role, _ := domain.ParseRole(m.Role)
	return domain.Staff{
		StaffID:   m.StaffID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Role:      role,
	}
}
