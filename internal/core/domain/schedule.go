package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleStatus indicates where an appointment is in its lifecycle.
type ScheduleStatus string

const (
	StatusPending   ScheduleStatus = "PENDING"
	StatusConfirmed ScheduleStatus = "CONFIRMED"
	StatusRejected  ScheduleStatus = "REJECTED"
	StatusCompleted ScheduleStatus = "COMPLETED"
)

var scheduleStatusAliases = map[string]ScheduleStatus{
	"PENDING":    StatusPending,
	"PENDIENTE":  StatusPending,
	"CONFIRMED":  StatusConfirmed,
	"CONFIRMADA": StatusConfirmed,
	"REJECTED":   StatusRejected,
	"RECHAZADA":  StatusRejected,
	"COMPLETED":  StatusCompleted,
	"FINALIZADA": StatusCompleted,
}

// strict lifecycle: PENDING -> CONFIRMED|REJECTED, CONFIRMED -> COMPLETED|REJECTED
var scheduleTransitions = map[ScheduleStatus][]ScheduleStatus{
	StatusPending:   {StatusConfirmed, StatusRejected},
	StatusConfirmed: {StatusCompleted, StatusRejected},
}

// ParseScheduleStatus maps a status payload to a ScheduleStatus. It tolerates
// quoting, braces and a "status:"/"estado:" label around the value.
func ParseScheduleStatus(raw string) (ScheduleStatus, error) {
	if s, ok := scheduleStatusAliases[normalizeToken(raw, "status", "estado")]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown schedule status %q", raw)
}

// CanTransitionTo reports whether the strict lifecycle allows moving from s to next.
// Staying in the same state is always allowed.
func (s ScheduleStatus) CanTransitionTo(next ScheduleStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range scheduleTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ScheduleEntry is one appointment booking tied to a staff member.
type ScheduleEntry struct {
	ScheduleID       string              `json:"scheduleID"`
	StudentName      string              `json:"studentName"`
	LessonDate       time.Time           `json:"lessonDate"`
	LessonTime       string              `json:"lessonTime"` // HH:MM
	StaffID          string              `json:"staffID"`
	StaffDisplayName string              `json:"staffDisplayName"` // Snapshot taken at creation, never refreshed
	Location         string              `json:"location"`
	Rate             decimal.NullDecimal `json:"rate"`
	Hours            decimal.NullDecimal `json:"hours"`
	HoursPaid        decimal.NullDecimal `json:"hoursPaid"`
	ReferralHotel    string              `json:"referralHotel"`
	Status           ScheduleStatus      `json:"status"`
	Sequence         int64               `json:"-"`
	AuditFields
}
