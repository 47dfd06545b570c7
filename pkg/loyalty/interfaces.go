package loyalty

import (
	"context"

	"github.com/optio/loyalty-rewards/pkg/models"
	"github.com/optio/loyalty-rewards/pkg/tiers"
)

// Profile is the combined points-and-tier view of a single user.
type Profile struct {
	Ledger    *models.Ledger    `json:"ledger"`
	TierState *models.TierState `json:"tier_state"`
	Progress  tiers.Progress    `json:"progress"`
}

// Rewards defines the interface for the loyalty core. Handlers and workers
// depend on this rather than on the concrete service.
type Rewards interface {
	// Profile returns the user's ledger, tier state and tier progress,
	// materializing both records with the signup bonus on first contact.
	Profile(ctx context.Context, userID string) (*Profile, error)

	// RecordActivity appends an earning activity, credits its points and
	// applies any tier promotion the new lifetime total unlocks.
	RecordActivity(ctx context.Context, userID string, activityType models.ActivityType, points int64, description string) (*models.Activity, error)

	// RecordDailyLogin awards the daily login bonus. The bonus is granted at
	// most once per calendar day (UTC); the second return reports whether
	// this call awarded it.
	RecordDailyLogin(ctx context.Context, userID string) (*models.Activity, bool, error)

	// ListActivities returns the user's activity log, newest first.
	ListActivities(ctx context.Context, userID string) ([]models.Activity, error)

	// ListTiers returns the tier catalog in ascending level order.
	ListTiers(ctx context.Context) ([]models.RewardTier, error)

	// ListVouchers returns the active voucher catalog.
	ListVouchers(ctx context.Context) ([]models.Voucher, error)

	// GetVoucher returns a single voucher by ID.
	GetVoucher(ctx context.Context, voucherID string) (*models.Voucher, error)

	// Redeem exchanges points for a voucher. The debit, stock decrement,
	// redemption record and coupon registration commit atomically.
	Redeem(ctx context.Context, userID, voucherID string, quantity int64) (*models.Redemption, error)

	// Checkout redeems a whole cart in one atomic commit. Any item failing
	// fails the entire cart.
	Checkout(ctx context.Context, userID string, items []models.CartItem) ([]models.Redemption, error)

	// GetRedemption returns a single redemption by ID.
	GetRedemption(ctx context.Context, redemptionID string) (*models.Redemption, error)

	// ListRedemptions returns the user's redemption history, newest first.
	ListRedemptions(ctx context.Context, userID string) ([]models.Redemption, error)
}
