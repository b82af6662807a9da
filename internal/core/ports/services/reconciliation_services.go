package services

import (
	"context"
	"time"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
)

// ReconciliationSvc defines operations for generating the reconciliation report
type ReconciliationSvc interface {
	// ReconciliationReport aggregates the ledger over the inclusive range [from, to].
	ReconciliationReport(ctx context.Context, from, to time.Time) (*domain.ReportRow, error)
}
