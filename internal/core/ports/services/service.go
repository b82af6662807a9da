package services

// ServiceContainer holds instances of all the application services.
// It is the entry point used by the handlers and the scheduler.
type ServiceContainer struct {
	Ledger         LedgerSvcFacade
	Reconciliation ReconciliationSvc
	Schedule       ScheduleSvcFacade
}
