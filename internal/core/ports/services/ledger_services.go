package services

import (
	"context"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/SscSPs/kbn_backend/internal/dto"
)

// LedgerWriterSvc defines operations that mutate ledger entries
type LedgerWriterSvc interface {
	// CreateLedgerEntry records a new income or expense submitted by a staff member.
	CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error)

	// AssignLedgerEntry credits an income entry to a party and marks it reviewed.
	// Repeating the same assignment succeeds without writing.
	AssignLedgerEntry(ctx context.Context, entryID string, assignee string, userID string) (*domain.LedgerEntry, error)
}

// LedgerReaderSvc defines read operations for ledger entries
type LedgerReaderSvc interface {
	GetLedgerEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListLedgerEntries returns every entry, newest date first.
	ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error)

	// ListLedgerEntriesPage returns one page of entries in the same order as ListLedgerEntries.
	ListLedgerEntriesPage(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}
