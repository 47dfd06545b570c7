package storage

import (
	"context"

	"github.com/optio/loyalty-rewards/pkg/models"
)

// AdminStore defines the privileged interface used by seed and operations
// tooling. These writes bypass the invariant-checked mutation paths and must
// not be exposed to the regular API surface.
type AdminStore interface {
	// PutTier creates or replaces a tier definition.
	PutTier(ctx context.Context, tier *models.RewardTier) error

	// PutVoucher creates or replaces a voucher catalog entry.
	PutVoucher(ctx context.Context, voucher *models.Voucher) error

	// ResetUser force-resets a user's ledger, tier state and activity log to
	// a clean baseline with the given starting balance.
	ResetUser(ctx context.Context, userID string, startingBalance int64) error
}
