package pgsql

import (
	portsrepo "github.com/SscSPs/kbn_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres-backed repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		ScheduleRepo: newPgxScheduleRepository(dbPool),
		StaffRepo:    newPgxStaffRepository(dbPool),
	}
}
