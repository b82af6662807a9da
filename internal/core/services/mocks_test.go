package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kbn_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindLedgerEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListLedgerEntries(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedNextToken, args.Error(2)
}

func (m *MockLedgerRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// ModifyLedgerEntry runs the mutation against the configured stored entry, the
// way the real repository does inside its locked transaction.
func (m *MockLedgerRepository) ModifyLedgerEntry(ctx context.Context, entryID string, mutate portsrepo.LedgerMutation) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	stored := args.Get(0).(*domain.LedgerEntry)
	working := *stored
	changed, err := mutate(&working)
	if err != nil {
		return nil, err
	}
	if changed {
		m.MethodCalled("persistLedgerEntry", working)
		*stored = working
	}
	return &working, args.Error(1)
}

func (m *MockLedgerRepository) ListLedgerEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// --- Mock ScheduleRepository ---
type MockScheduleRepository struct {
	mock.Mock
}

var _ portsrepo.ScheduleRepositoryFacade = (*MockScheduleRepository)(nil)

func (m *MockScheduleRepository) FindScheduleEntryByID(ctx context.Context, scheduleID string) (*domain.ScheduleEntry, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) ListScheduleEntries(ctx context.Context) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) ListScheduleEntriesByStaff(ctx context.Context, staffID string) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) ListScheduleEntriesByStatus(ctx context.Context, status domain.ScheduleStatus) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) SaveScheduleEntry(ctx context.Context, entry domain.ScheduleEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockScheduleRepository) ModifyScheduleEntry(ctx context.Context, scheduleID string, mutate portsrepo.ScheduleMutation) (*domain.ScheduleEntry, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	stored := args.Get(0).(*domain.ScheduleEntry)
	working := *stored
	changed, err := mutate(&working)
	if err != nil {
		return nil, err
	}
	if changed {
		m.MethodCalled("persistScheduleEntry", working)
		*stored = working
	}
	return &working, args.Error(1)
}

// --- Mock StaffResolver ---
type MockStaffResolver struct {
	mock.Mock
}

var _ portsrepo.StaffResolver = (*MockStaffResolver)(nil)

func (m *MockStaffResolver) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}
