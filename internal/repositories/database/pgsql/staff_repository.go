package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/kbn_backend/internal/apperrors"
	"github.com/SscSPs/kbn_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kbn_backend/internal/core/ports/repositories"
	"github.com/SscSPs/kbn_backend/internal/models"
	"github.com/SscSPs/kbn_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxStaffRepository resolves staff identities from the staff table, which is
// maintained by the user-management system.
type PgxStaffRepository struct {
	BaseRepository
}

func newPgxStaffRepository(pool *pgxpool.Pool) portsrepo.StaffResolver {
	return &PgxStaffRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StaffResolver = (*PgxStaffRepository)(nil)

// FindStaffByID retrieves a staff member by ID.
func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	rows, err := r.Pool.Query(ctx, `SELECT staff_id, first_name, last_name, role FROM staff WHERE staff_id = $1;`, staffID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query staff "+staffID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Staff])
	if err != nil {
		return nil, notFoundOr(err, "failed to find staff by ID "+staffID)
	}
	staff := mapping.ToDomainStaff(m)
	return &staff, nil
}
