package services

import (
	"context"
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

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the clock used for default dates and audit timestamps.
func WithLedgerClock(clock func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.clock = clock
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error) {
	if err := s.ValidateRequest(req); err != nil {
		s.LogError(ctx, err, "Invalid ledger entry request")
		return nil, err
	}

	kind, err := domain.ParseTransactionKind(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	now := s.Now()
	entryDate := domain.CalendarDate(now)
	if req.Date != "" {
		entryDate, err = domain.ParseCalendarDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
		}
	}

	if req.AssociatedCosts.Malformed {
		return nil, fmt.Errorf("%w: associatedCosts is not a number", apperrors.ErrValidation)
	}
	if req.Commission.Malformed {
		return nil, fmt.Errorf("%w: commission is not a number", apperrors.ErrValidation)
	}

	assignee := domain.AssigneeUnset
	if kind == domain.Income {
		assignee, err = domain.ParseAssignee(req.Assignee)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	entry := domain.LedgerEntry{
		EntryID:             uuid.NewString(),
		Kind:                kind,
		EntryDate:           entryDate,
		Activity:            req.Activity,
		ActivityDescription: req.ActivityDescription,
		Seller:              req.Seller,
		StaffName:           req.StaffName,
		Details:             req.Details,
		Hours:               req.Hours.Null(),
		RatePerHour:         req.RatePerHour.Null(),
		Total:               domain.DeriveTotal(req.Total, req.Hours, req.RatePerHour),
		Currency:            req.Currency,
		AssociatedCosts:     req.AssociatedCosts.Null(),
		Commission:          req.Commission.Null(),
		PaymentMethod:       req.PaymentMethod,
		PaymentMethodDetail: req.PaymentMethodDetail,
		Assignee:            assignee,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	entry.ApplyCreationDefaults()

	if req.Hours.Malformed || req.RatePerHour.Malformed || req.Total.Malformed {
		s.LogDebug(ctx, "Unparseable numeric input, total degraded to zero",
			slog.String("entry_id", entry.EntryID))
	}

	if err := s.ledgerRepo.SaveLedgerEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry",
			slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}

	s.LogInfo(ctx, "Ledger entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(entry.Kind)))
	return &entry, nil
}

func (s *ledgerService) AssignLedgerEntry(ctx context.Context, entryID string, assignee string, userID string) (*domain.LedgerEntry, error) {
	target, err := domain.ParseAssignee(assignee)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if !target.IsAssignable() {
		return nil, fmt.Errorf("%w: assignee must be one of PARTY_A, PARTY_B, NONE", apperrors.ErrValidation)
	}

	updated, err := s.ledgerRepo.ModifyLedgerEntry(ctx, entryID, func(e *domain.LedgerEntry) (bool, error) {
		if e.Kind == domain.Expense {
			return false, fmt.Errorf("%w: expense entry %s cannot be assigned", apperrors.ErrInvalidOperation, e.EntryID)
		}
		changed, err := e.Assign(target)
		if err != nil {
			return false, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if changed {
			e.LastUpdatedAt = s.Now()
			e.LastUpdatedBy = userID
		}
		return changed, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to assign ledger entry",
			slog.String("entry_id", entryID),
			slog.String("assignee", string(target)))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry assigned",
		slog.String("entry_id", entryID),
		slog.String("assignee", string(updated.Assignee)))
	return updated, nil
}

func (s *ledgerService) GetLedgerEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindLedgerEntryByID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find ledger entry", slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

func (s *ledgerService) ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	entries, _, err := s.ledgerRepo.ListLedgerEntries(ctx, 0, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries")
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}

func (s *ledgerService) ListLedgerEntriesPage(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit < 0 {
		return nil, nil, fmt.Errorf("%w: limit must not be negative", apperrors.ErrValidation)
	}
	entries, next, err := s.ledgerRepo.ListLedgerEntries(ctx, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.Int("limit", limit))
		return nil, nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, next, nil
}
