package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/kbn_backend/internal/apperrors"
	"github.com/SscSPs/kbn_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kbn_backend/internal/core/ports/repositories"
	"github.com/SscSPs/kbn_backend/internal/models"
	"github.com/SscSPs/kbn_backend/internal/utils/mapping"
	"github.com/SscSPs/kbn_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerColumns = `
	entry_id, entry_seq, kind, entry_date, activity, activity_description, seller, staff_name, details,
	hours, rate_per_hour, total, currency, associated_costs, commission,
	payment_method, payment_method_detail, assignee, reviewed,
	created_at, created_by, last_updated_at, last_updated_by`

// newest date first; entry_seq keeps same-day entries in insertion order
const ledgerOrderBy = `ORDER BY entry_date DESC, entry_seq ASC`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func collectLedgerEntries(rows pgx.Rows) ([]models.LedgerEntry, error) {
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
}

// SaveLedgerEntry inserts a new ledger entry. The store assigns entry_seq.
func (r *PgxLedgerRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (
			entry_id, kind, entry_date, activity, activity_description, seller, staff_name, details,
			hours, rate_per_hour, total, currency, associated_costs, commission,
			payment_method, payment_method_detail, assignee, reviewed,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.Kind, m.EntryDate, m.Activity, m.ActivityDescription, m.Seller, m.StaffName, m.Details,
		m.Hours, m.RatePerHour, m.Total, m.Currency, m.AssociatedCosts, m.Commission,
		m.PaymentMethod, m.PaymentMethodDetail, m.Assignee, m.Reviewed,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return insertErr(err, "failed to insert ledger entry "+m.EntryID)
	}
	return nil
}

// FindLedgerEntryByID retrieves a ledger entry by its ID.
func (r *PgxLedgerRepository) FindLedgerEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+ledgerColumns+` FROM ledger_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query ledger entry "+entryID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, notFoundOr(err, "failed to find ledger entry by ID "+entryID)
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// ListLedgerEntries returns entries newest date first with insertion order as the tie-breaker.
// With limit <= 0 every remaining entry is returned and no next token is produced.
func (r *PgxLedgerRepository) ListLedgerEntries(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := []any{}
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries`

	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken",
				fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		// rows strictly after the cursor in (entry_date DESC, entry_seq ASC) order
		query += ` WHERE (entry_date < $1 OR (entry_date = $1 AND entry_seq > $2))`
		args = append(args, cursor.Date, cursor.Sequence)
	}
	query += " " + ledgerOrderBy

	fetchLimit := 0
	if limit > 0 {
		// one extra row tells us whether another page exists
		fetchLimit = limit + 1
		query += " LIMIT $" + strconv.Itoa(len(args)+1)
		args = append(args, fetchLimit)
	}

	rows, err := r.Pool.Query(ctx, query+";", args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query ledger entries", err)
	}
	results, err := collectLedgerEntries(rows)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan ledger entries", err)
	}

	var nextTokenVal *string
	if limit > 0 && len(results) > limit {
		results = results[:limit]
		last := results[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.EntrySeq)
		nextTokenVal = &token
	}

	return mapping.ToDomainLedgerEntrySlice(results), nextTokenVal, nil
}

// ModifyLedgerEntry locks the row, applies mutate and persists the assignment
// fields within one transaction.
func (r *PgxLedgerRepository) ModifyLedgerEntry(ctx context.Context, entryID string, mutate portsrepo.LedgerMutation) (*domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	rows, err := tx.Query(ctx, `SELECT `+ledgerColumns+` FROM ledger_entries WHERE entry_id = $1 FOR UPDATE;`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to lock ledger entry "+entryID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, notFoundOr(err, "failed to lock ledger entry "+entryID)
	}

	entry := mapping.ToDomainLedgerEntry(m)
	changed, err := mutate(&entry)
	if err != nil {
		return nil, err
	}
	if !changed {
		return &entry, nil
	}

	updated := mapping.ToModelLedgerEntry(entry)
	_, err = tx.Exec(ctx, `
		UPDATE ledger_entries
		SET assignee = $2, reviewed = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1;
	`, updated.EntryID, updated.Assignee, updated.Reviewed, updated.LastUpdatedAt, updated.LastUpdatedBy)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to update ledger entry "+entryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListLedgerEntriesByDateRange reads every entry dated within [from, to] inside a
// read-only snapshot so the aggregates never mix two states of the ledger.
func (r *PgxLedgerRepository) ListLedgerEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.LedgerEntry, error) {
	tx, err := r.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	rows, err := tx.Query(ctx, `
		SELECT `+ledgerColumns+`
		FROM ledger_entries
		WHERE entry_date BETWEEN $1 AND $2
		ORDER BY entry_date ASC, entry_seq ASC;
	`, domain.CalendarDate(from), domain.CalendarDate(to))
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query ledger entries by date range", err)
	}
	results, err := collectLedgerEntries(rows)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan ledger entries", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return mapping.ToDomainLedgerEntrySlice(results), nil
}
