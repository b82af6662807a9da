package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/kbn_backend/internal/apperrors"
	"github.com/SscSPs/kbn_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kbn_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kbn_backend/internal/core/ports/services"
	"github.com/SscSPs/kbn_backend/internal/dto"
	"github.com/google/uuid"
)

type scheduleService struct {
	BaseService
	scheduleRepo      portsrepo.ScheduleRepositoryFacade
	staffResolver     portsrepo.StaffResolver
	strictTransitions bool
}

// ScheduleServiceOption is a functional option for configuring the schedule service
type ScheduleServiceOption func(*scheduleService)

// WithStrictTransitions toggles the status lifecycle check. When disabled any
// of the four statuses may be set from any state.
func WithStrictTransitions(strict bool) ScheduleServiceOption {
	return func(s *scheduleService) {
		s.strictTransitions = strict
	}
}

// WithScheduleClock overrides the clock used for audit timestamps.
func WithScheduleClock(clock func() time.Time) ScheduleServiceOption {
	return func(s *scheduleService) {
		s.clock = clock
	}
}

// NewScheduleService creates a new schedule service. Transitions are strict unless overridden.
func NewScheduleService(repo portsrepo.ScheduleRepositoryFacade, staff portsrepo.StaffResolver, options ...ScheduleServiceOption) portssvc.ScheduleSvcFacade {
	svc := &scheduleService{
		scheduleRepo:      repo,
		staffResolver:     staff,
		strictTransitions: true,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

func (s *scheduleService) CreateScheduleEntry(ctx context.Context, req dto.CreateScheduleEntryRequest, userID string) (*domain.ScheduleEntry, error) {
	if err := s.ValidateRequest(req); err != nil {
		s.LogError(ctx, err, "Invalid schedule entry request")
		return nil, err
	}

	lessonDate, err := domain.ParseCalendarDate(req.LessonDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid lessonDate %q", apperrors.ErrValidation, req.LessonDate)
	}
	for name, v := range map[string]domain.LenientDecimal{"rate": req.Rate, "hours": req.Hours, "hoursPaid": req.HoursPaid} {
		if v.Malformed {
			return nil, fmt.Errorf("%w: %s is not a number", apperrors.ErrValidation, name)
		}
	}

	staff, err := s.staffResolver.FindStaffByID(ctx, req.StaffID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve staff member", slog.String("staff_id", req.StaffID))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("staff member %s: %w", req.StaffID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve staff member: %w", err)
	}

	now := s.Now()
	entry := domain.ScheduleEntry{
		ScheduleID:       uuid.NewString(),
		StudentName:      req.StudentName,
		LessonDate:       lessonDate,
		LessonTime:       req.LessonTime,
		StaffID:          staff.StaffID,
		StaffDisplayName: staff.DisplayName(),
		Location:         req.Location,
		Rate:             req.Rate.Null(),
		Hours:            req.Hours.Null(),
		HoursPaid:        req.HoursPaid.Null(),
		ReferralHotel:    req.ReferralHotel,
		Status:           domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.scheduleRepo.SaveScheduleEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save schedule entry", slog.String("schedule_id", entry.ScheduleID))
		return nil, fmt.Errorf("failed to save schedule entry: %w", err)
	}

	s.LogInfo(ctx, "Schedule entry created",
		slog.String("schedule_id", entry.ScheduleID),
		slog.String("staff_id", entry.StaffID))
	return &entry, nil
}

func (s *scheduleService) SetScheduleStatus(ctx context.Context, scheduleID string, rawStatus string, userID string) (*domain.ScheduleEntry, error) {
	next, err := domain.ParseScheduleStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	updated, err := s.scheduleRepo.ModifyScheduleEntry(ctx, scheduleID, func(e *domain.ScheduleEntry) (bool, error) {
		if e.Status == next {
			return false, nil
		}
		if s.strictTransitions && !e.Status.CanTransitionTo(next) {
			return false, fmt.Errorf("%w: cannot move schedule entry from %s to %s",
				apperrors.ErrInvalidOperation, e.Status, next)
		}
		e.Status = next
		e.LastUpdatedAt = s.Now()
		e.LastUpdatedBy = userID
		return true, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to set schedule status",
			slog.String("schedule_id", scheduleID),
			slog.String("status", string(next)))
		return nil, err
	}

	s.LogInfo(ctx, "Schedule status set",
		slog.String("schedule_id", scheduleID),
		slog.String("status", string(updated.Status)))
	return updated, nil
}

func (s *scheduleService) GetScheduleEntry(ctx context.Context, scheduleID string) (*domain.ScheduleEntry, error) {
	entry, err := s.scheduleRepo.FindScheduleEntryByID(ctx, scheduleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find schedule entry", slog.String("schedule_id", scheduleID))
		return nil, err
	}
	return entry, nil
}

func (s *scheduleService) ListSchedule(ctx context.Context) ([]domain.ScheduleEntry, error) {
	entries, err := s.scheduleRepo.ListScheduleEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list schedule entries")
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	return entries, nil
}

func (s *scheduleService) ListScheduleByStaff(ctx context.Context, staffID string) ([]domain.ScheduleEntry, error) {
	entries, err := s.scheduleRepo.ListScheduleEntriesByStaff(ctx, staffID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list schedule entries for staff", slog.String("staff_id", staffID))
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	return entries, nil
}

func (s *scheduleService) ListScheduleByStatus(ctx context.Context, rawStatus string) ([]domain.ScheduleEntry, error) {
	status, err := domain.ParseScheduleStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	entries, err := s.scheduleRepo.ListScheduleEntriesByStatus(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list schedule entries by status", slog.String("status", string(status)))
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	return entries, nil
}
