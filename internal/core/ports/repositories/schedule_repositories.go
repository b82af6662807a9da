package repositories

import (
	"context"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
)

// ScheduleMutation edits a locked schedule entry in place and reports whether it changed anything.
type ScheduleMutation func(entry *domain.ScheduleEntry) (bool, error)

// ScheduleReader defines read operations for schedule entries
type ScheduleReader interface {
	// FindScheduleEntryByID retrieves a specific schedule entry by its ID.
	FindScheduleEntryByID(ctx context.Context, scheduleID string) (*domain.ScheduleEntry, error)

	// ListScheduleEntries retrieves every schedule entry.
	ListScheduleEntries(ctx context.Context) ([]domain.ScheduleEntry, error)

	// ListScheduleEntriesByStaff retrieves the entries bound to one staff member.
	ListScheduleEntriesByStaff(ctx context.Context, staffID string) ([]domain.ScheduleEntry, error)

	// ListScheduleEntriesByStatus retrieves the entries currently in the given status.
	ListScheduleEntriesByStatus(ctx context.Context, status domain.ScheduleStatus) ([]domain.ScheduleEntry, error)
}

// ScheduleWriter defines write operations for schedule entries
type ScheduleWriter interface {
	// SaveScheduleEntry persists a new schedule entry.
	SaveScheduleEntry(ctx context.Context, entry domain.ScheduleEntry) error

	// ModifyScheduleEntry locks the entry, applies mutate and writes the status back atomically.
	ModifyScheduleEntry(ctx context.Context, scheduleID string, mutate ScheduleMutation) (*domain.ScheduleEntry, error)
}

// ScheduleRepositoryFacade combines all schedule-related repository interfaces
type ScheduleRepositoryFacade interface {
	ScheduleReader
	ScheduleWriter
}
