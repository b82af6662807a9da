package services

import (
	"context"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/SscSPs/kbn_backend/internal/dto"
)

// ScheduleWriterSvc defines operations that mutate schedule entries
type ScheduleWriterSvc interface {
	// CreateScheduleEntry books an appointment for a staff member. New entries are always PENDING.
	CreateScheduleEntry(ctx context.Context, req dto.CreateScheduleEntryRequest, userID string) (*domain.ScheduleEntry, error)

	// SetScheduleStatus moves an entry to the status named by rawStatus.
	SetScheduleStatus(ctx context.Context, scheduleID string, rawStatus string, userID string) (*domain.ScheduleEntry, error)
}

// ScheduleReaderSvc defines read operations for schedule entries
type ScheduleReaderSvc interface {
	GetScheduleEntry(ctx context.Context, scheduleID string) (*domain.ScheduleEntry, error)
	ListSchedule(ctx context.Context) ([]domain.ScheduleEntry, error)
	ListScheduleByStaff(ctx context.Context, staffID string) ([]domain.ScheduleEntry, error)
	ListScheduleByStatus(ctx context.Context, rawStatus string) ([]domain.ScheduleEntry, error)
}

// ScheduleSvcFacade combines all schedule-related service interfaces
type ScheduleSvcFacade interface {
	ScheduleWriterSvc
	ScheduleReaderSvc
}
