package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	portssvc "github.com/SscSPs/kbn_backend/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

const digestTimeout = 2 * time.Minute

// Scheduler runs the daily reconciliation digest.
type Scheduler struct {
	cron           *cron.Cron
	spec           string
	reconciliation portssvc.ReconciliationSvc
	logger         *slog.Logger
	now            func() time.Time
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the time source used to pick the digest day.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// NewScheduler creates a scheduler for the given cron spec (standard five fields).
// An empty spec yields a scheduler whose Start is a no-op.
func NewScheduler(spec string, reconciliation portssvc.ReconciliationSvc, logger *slog.Logger, opts ...Option) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		cron:           cron.New(cron.WithLocation(time.UTC)),
		spec:           spec,
		reconciliation: reconciliation,
		logger:         logger.With(slog.String("component", "scheduler")),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() error {
	if s.spec == "" {
		s.logger.Info("Reconciliation digest disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(s.spec, s.runDigest); err != nil {
		return fmt.Errorf("failed to schedule reconciliation digest %q: %w", s.spec, err)
	}
	s.logger.Info("Starting scheduler", slog.String("spec", s.spec))
	s.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()
	if _, err := s.Digest(ctx); err != nil {
		s.logger.Error("Reconciliation digest failed", slog.String("error", err.Error()))
	}
}

// Digest reconciles the previous calendar day and logs the totals.
func (s *Scheduler) Digest(ctx context.Context) (*domain.ReportRow, error) {
	day := domain.CalendarDate(s.now().UTC()).AddDate(0, 0, -1)

	report, err := s.reconciliation.ReconciliationReport(ctx, day, day)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reconciliation digest",
		slog.String("date", day.Format(domain.DateLayout)),
		slog.Int("entries", report.EntryCount),
		slog.String("gross_income", report.TotalGrossIncome.StringFixed(2)),
		slog.String("income_costs", report.TotalIncomeCosts.StringFixed(2)),
		slog.String("expenses", report.TotalExpenses.StringFixed(2)),
		slog.String("commissions", report.TotalCommissions.StringFixed(2)),
		slog.String("assigned_a", report.TotalAssignedA.StringFixed(2)),
		slog.String("assigned_b", report.TotalAssignedB.StringFixed(2)),
		slog.String("net_balance", report.NetBalance.StringFixed(2)),
	)
	return report, nil
}
