package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
)

// LedgerMutation edits a locked ledger entry in place and reports whether it changed anything.
// Returning an error aborts the modification without writing.
type LedgerMutation func(entry *domain.LedgerEntry) (bool, error)

// LedgerReader defines read operations for ledger entries
type LedgerReader interface {
	// FindLedgerEntryByID retrieves a specific ledger entry by its unique identifier.
	FindLedgerEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListLedgerEntries retrieves ledger entries newest date first, ties in insertion order.
	// A limit <= 0 returns every entry and no next token.
	ListLedgerEntries(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriter defines write operations for ledger entries
type LedgerWriter interface {
	// SaveLedgerEntry persists a new ledger entry.
	SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error

	// ModifyLedgerEntry locks the entry, applies mutate and writes the assignment
	// fields back atomically. Returns apperrors.ErrNotFound for an unknown id.
	ModifyLedgerEntry(ctx context.Context, entryID string, mutate LedgerMutation) (*domain.LedgerEntry, error)
}

// LedgerRangeScanner reads ledger entries for reporting
type LedgerRangeScanner interface {
	// ListLedgerEntriesByDateRange returns every entry dated within [from, to] from one consistent snapshot.
	ListLedgerEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.LedgerEntry, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
	LedgerRangeScanner
}
