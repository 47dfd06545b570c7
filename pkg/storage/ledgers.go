package storage

import (
	"context"

	"github.com/optio/loyalty-rewards/pkg/models"
)

// LedgerStore defines the interface for managing points ledgers.
type LedgerStore interface {
	// GetLedger retrieves a user's points ledger by their user ID.
	GetLedger(ctx context.Context, userID string) (*models.Ledger, error)

	// CreateProfile creates a user's ledger together with their initial tier
	// state in a single atomic write, so a crash mid-initialization can never
	// leave one row without the other. Returns ErrProfileExists if either row
	// already exists; callers recover by re-reading.
	CreateProfile(ctx context.Context, ledger *models.Ledger, state *models.TierState) (*models.Ledger, *models.TierState, error)

	// CreditPoints atomically increases a user's spendable balance.
	// The amount must be non-negative. Crediting does not write an activity
	// entry; that is the caller's responsibility.
	CreditPoints(ctx context.Context, userID string, amount int64) error

	// DebitPoints atomically decreases a user's spendable balance.
	// Returns ErrInsufficientPoints if the amount exceeds the balance; the
	// balance can never go negative, even under concurrent debits.
	DebitPoints(ctx context.Context, userID string, amount int64) error
}
