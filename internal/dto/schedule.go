package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateScheduleEntryRequest defines the data needed to book an appointment.
// Any status supplied by the client is ignored; new entries always start PENDING.
type CreateScheduleEntryRequest struct {
	StudentName   string                `json:"studentName" binding:"required,max=200"`
	LessonDate    string                `json:"lessonDate" binding:"required,datetime=2006-01-02"`
	LessonTime    string                `json:"lessonTime" binding:"omitempty,datetime=15:04"`
	StaffID       string                `json:"staffID" binding:"required"`
	Location      string                `json:"location" binding:"max=200"`
	Rate          domain.LenientDecimal `json:"rate" swaggertype:"number"`
	Hours         domain.LenientDecimal `json:"hours" swaggertype:"number"`
	HoursPaid     domain.LenientDecimal `json:"hoursPaid" swaggertype:"number"`
	ReferralHotel string                `json:"referralHotel" binding:"max=200"`
	Status        string                `json:"status"`
}

// UpdateScheduleStatusRequest carries the target status as a single enum field.
type UpdateScheduleStatusRequest struct {
	Status       string `json:"status"`
	LegacyStatus string `json:"estado"`
}

// Value returns whichever of the status fields the client populated.
func (r UpdateScheduleStatusRequest) Value() string {
	if strings.TrimSpace(r.Status) != "" {
		return r.Status
	}
	return r.LegacyStatus
}

// ScheduleEntryResponse defines the data returned for a schedule entry.
type ScheduleEntryResponse struct {
	ScheduleID       string              `json:"scheduleID"`
	StudentName      string              `json:"studentName"`
	LessonDate       string              `json:"lessonDate"`
	LessonTime       string              `json:"lessonTime"`
	StaffID          string              `json:"staffID"`
	StaffDisplayName string              `json:"staffDisplayName"`
	Location         string              `json:"location"`
	Rate             decimal.NullDecimal `json:"rate" swaggertype:"string"`
	Hours            decimal.NullDecimal `json:"hours" swaggertype:"string"`
	HoursPaid        decimal.NullDecimal `json:"hoursPaid" swaggertype:"string"`
	ReferralHotel    string              `json:"referralHotel"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"createdAt"`
	CreatedBy        string              `json:"createdBy"`
	LastUpdatedAt    time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy    string              `json:"lastUpdatedBy"`
}

// ToScheduleEntryResponse converts a domain.ScheduleEntry to ScheduleEntryResponse DTO
func ToScheduleEntryResponse(s *domain.ScheduleEntry) ScheduleEntryResponse {
	return ScheduleEntryResponse{
		ScheduleID:       s.ScheduleID,
		StudentName:      s.StudentName,
		LessonDate:       s.LessonDate.Format(domain.DateLayout),
		LessonTime:       s.LessonTime,
		StaffID:          s.StaffID,
		StaffDisplayName: s.StaffDisplayName,
		Location:         s.Location,
		Rate:             s.Rate,
		Hours:            s.Hours,
		HoursPaid:        s.HoursPaid,
		ReferralHotel:    s.ReferralHotel,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
		CreatedBy:        s.CreatedBy,
		LastUpdatedAt:    s.LastUpdatedAt,
		LastUpdatedBy:    s.LastUpdatedBy,
	}
}

// ToListScheduleEntryResponse converts a slice of domain.ScheduleEntry
func ToListScheduleEntryResponse(entries []domain.ScheduleEntry) []ScheduleEntryResponse {
	res := make([]ScheduleEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToScheduleEntryResponse(&entries[i])
	}
	return res
}
