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

const scheduleColumns = `
	schedule_id, schedule_seq, student_name, lesson_date, lesson_time, staff_id, staff_display_name,
	location, rate, hours, hours_paid, referral_hotel, status,
	created_at, created_by, last_updated_at, last_updated_by`

const scheduleOrderBy = `ORDER BY lesson_date ASC, lesson_time ASC, schedule_seq ASC`

type PgxScheduleRepository struct {
	BaseRepository
}

func newPgxScheduleRepository(pool *pgxpool.Pool) portsrepo.ScheduleRepositoryFacade {
	return &PgxScheduleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ScheduleRepositoryFacade = (*PgxScheduleRepository)(nil)

// SaveScheduleEntry inserts a new schedule entry.
func (r *PgxScheduleRepository) SaveScheduleEntry(ctx context.Context, entry domain.ScheduleEntry) error {
	m := mapping.ToModelScheduleEntry(entry)
	query := `
		INSERT INTO schedule_entries (
			schedule_id, student_name, lesson_date, lesson_time, staff_id, staff_display_name,
			location, rate, hours, hours_paid, referral_hotel, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ScheduleID, m.StudentName, m.LessonDate, m.LessonTime, m.StaffID, m.StaffDisplayName,
		m.Location, m.Rate, m.Hours, m.HoursPaid, m.ReferralHotel, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return insertErr(err, "failed to insert schedule entry "+m.ScheduleID)
	}
	return nil
}

// FindScheduleEntryByID retrieves a schedule entry by its ID.
func (r *PgxScheduleRepository) FindScheduleEntryByID(ctx context.Context, scheduleID string) (*domain.ScheduleEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+scheduleColumns+` FROM schedule_entries WHERE schedule_id = $1;`, scheduleID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query schedule entry "+scheduleID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ScheduleEntry])
	if err != nil {
		return nil, notFoundOr(err, "failed to find schedule entry by ID "+scheduleID)
	}
	entry := mapping.ToDomainScheduleEntry(m)
	return &entry, nil
}

func (r *PgxScheduleRepository) listWhere(ctx context.Context, where string, args ...any) ([]domain.ScheduleEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+scheduleColumns+` FROM schedule_entries `+where+` `+scheduleOrderBy+`;`, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query schedule entries", err)
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ScheduleEntry])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan schedule entries", err)
	}
	return mapping.ToDomainScheduleEntrySlice(results), nil
}

// ListScheduleEntries retrieves every schedule entry ordered by lesson date and time.
func (r *PgxScheduleRepository) ListScheduleEntries(ctx context.Context) ([]domain.ScheduleEntry, error) {
	return r.listWhere(ctx, "")
}

// ListScheduleEntriesByStaff retrieves the entries bound to one staff member.
func (r *PgxScheduleRepository) ListScheduleEntriesByStaff(ctx context.Context, staffID string) ([]domain.ScheduleEntry, error) {
	return r.listWhere(ctx, "WHERE staff_id = $1", staffID)
}

// ListScheduleEntriesByStatus retrieves the entries currently in status.
func (r *PgxScheduleRepository) ListScheduleEntriesByStatus(ctx context.Context, status domain.ScheduleStatus) ([]domain.ScheduleEntry, error) {
	return r.listWhere(ctx, "WHERE status = $1", string(status))
}

// ModifyScheduleEntry locks the row, applies mutate and persists the status within one transaction.
func (r *PgxScheduleRepository) ModifyScheduleEntry(ctx context.Context, scheduleID string, mutate portsrepo.ScheduleMutation) (*domain.ScheduleEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	rows, err := tx.Query(ctx, `SELECT `+scheduleColumns+` FROM schedule_entries WHERE schedule_id = $1 FOR UPDATE;`, scheduleID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to lock schedule entry "+scheduleID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ScheduleEntry])
	if err != nil {
		return nil, notFoundOr(err, "failed to lock schedule entry "+scheduleID)
	}

	entry := mapping.ToDomainScheduleEntry(m)
	changed, err := mutate(&entry)
	if err != nil {
		return nil, err
	}
	if !changed {
		return &entry, nil
	}

	_, err = tx.Exec(ctx, `
		UPDATE schedule_entries
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE schedule_id = $1;
	`, entry.ScheduleID, string(entry.Status), entry.LastUpdatedAt, entry.LastUpdatedBy)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to update schedule entry "+scheduleID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}
