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
)

type reconciliationService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRangeScanner
}

// NewReconciliationService creates the reconciliation reporter
func NewReconciliationService(repo portsrepo.LedgerRangeScanner) portssvc.ReconciliationSvc {
	return &reconciliationService{ledgerRepo: repo}
}

var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

func (s *reconciliationService) ReconciliationReport(ctx context.Context, from, to time.Time) (*domain.ReportRow, error) {
	from, to = domain.CalendarDate(from), domain.CalendarDate(to)
	if from.After(to) {
		return nil, fmt.Errorf("%w: fromDate %s is after toDate %s", apperrors.ErrValidation,
			from.Format(domain.DateLayout), to.Format(domain.DateLayout))
	}

	entries, err := s.ledgerRepo.ListLedgerEntriesByDateRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to scan ledger for reconciliation",
			slog.String("from", from.Format(domain.DateLayout)),
			slog.String("to", to.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	row := domain.Reconcile(from, to, entries)
	s.LogDebug(ctx, "Reconciliation report computed",
		slog.String("from", from.Format(domain.DateLayout)),
		slog.String("to", to.Format(domain.DateLayout)),
		slog.Int("entries", row.EntryCount))
	return &row, nil
}
