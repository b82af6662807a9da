package services

import (
	portsrepo "github.com/SscSPs/kbn_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kbn_backend/internal/core/ports/services"
	"github.com/SscSPs/kbn_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:         NewLedgerService(repos.LedgerRepo),
		Reconciliation: NewReconciliationService(repos.LedgerRepo),
		Schedule: NewScheduleService(
			repos.ScheduleRepo,
			repos.StaffRepo,
			WithStrictTransitions(cfg.ScheduleStrictTransitions),
		),
	}
}
