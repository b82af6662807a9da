package repositories

import (
	"context"

	"github.com/SscSPs/kbn_backend/internal/core/domain"
)

// StaffResolver maps a staff identifier to its identity record.
type StaffResolver interface {
	// FindStaffByID returns apperrors.ErrNotFound when no such staff member exists.
	FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)
}
