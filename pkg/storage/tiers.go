package storage

import (
	"context"

	"github.com/optio/loyalty-rewards/pkg/models"
)

// TierStore defines the interface for the static tier reference data.
type TierStore interface {
	// ListTiers retrieves all tier definitions in ascending level order.
	ListTiers(ctx context.Context) ([]models.RewardTier, error)
}

// TierStateStore defines the interface for per-user tier state.
type TierStateStore interface {
	// GetTierState retrieves a user's tier state.
	GetTierState(ctx context.Context, userID string) (*models.TierState, error)

	// CreateTierState creates the initial tier state for a user.
	CreateTierState(ctx context.Context, state *models.TierState) (*models.TierState, error)

	// PromoteTierState moves a user onto a new tier. The write is conditional
	// on the row still being at the observed level and version, which makes
	// concurrent promotion evaluations collapse into a single winner.
	PromoteTierState(ctx context.Context, state *models.TierState, toTier models.RewardTier) (*models.TierState, error)
}
