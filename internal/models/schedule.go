package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleEntry is the database representation of a row in schedule_entries.
type ScheduleEntry struct {
	ScheduleID       string              `db:"schedule_id"`
	ScheduleSeq      int64               `db:"schedule_seq"`
	StudentName      string              `db:"student_name"`
	LessonDate       time.Time           `db:"lesson_date"`
	LessonTime       string              `db:"lesson_time"`
	StaffID          string              `db:"staff_id"`
	StaffDisplayName string              `db:"staff_display_name"`
	Location         string              `db:"location"`
	Rate             decimal.NullDecimal `db:"rate"`
	Hours            decimal.NullDecimal `db:"hours"`
	HoursPaid        decimal.NullDecimal `db:"hours_paid"`
	ReferralHotel    string              `db:"referral_hotel"`
	Status           string              `db:"status"`
	AuditFields
}

// Staff is the database representation of a row in staff.
type Staff struct {
	StaffID   string `db:"staff_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Role      string `db:"role"`
}
