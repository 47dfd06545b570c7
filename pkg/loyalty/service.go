package loyalty

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/optio/loyalty-rewards/pkg/coupon"
	"github.com/optio/loyalty-rewards/pkg/documents"
	"github.com/optio/loyalty-rewards/pkg/models"
	"github.com/optio/loyalty-rewards/pkg/notifications"
	"github.com/optio/loyalty-rewards/pkg/storage"
	"github.com/optio/loyalty-rewards/pkg/tiers"
)

// ErrRedemptionFailed is returned when a redemption could not be committed
// after exhausting coupon code retries.
var ErrRedemptionFailed = errors.New("redemption failed")

// maxCouponAttempts bounds retries on coupon code collisions. The code space
// is 36^8, so a second collision in a row is already vanishingly unlikely.
const maxCouponAttempts = 5

// Config carries the tunable point amounts for the service.
type Config struct {
	// SignupPoints is the welcome bonus credited when a user's ledger is
	// first materialized.
	SignupPoints int64
	// DailyLoginBonus is the number of points awarded for the first login
	// of each calendar day.
	DailyLoginBonus int64
}

// Service implements the Rewards interface on top of the storage layer.
type Service struct {
	Store    storage.ApiStore
	Tiers    *tiers.Table
	Codes    coupon.Generator
	Notifier notifications.Publisher
	Docs     documents.Scheduler
	Cfg      Config
}

// NewService creates a new loyalty Service.
func NewService(store storage.ApiStore, table *tiers.Table, codes coupon.Generator, notifier notifications.Publisher, docs documents.Scheduler, cfg Config) *Service {
	return &Service{
		Store:    store,
		Tiers:    table,
		Codes:    codes,
		Notifier: notifier,
		Docs:     docs,
		Cfg:      cfg,
	}
}

// Make sure we conform to the interface
var _ Rewards = (*Service)(nil)

// LoadTable reads the tier definitions from storage and validates them.
// Callers run this once at startup; a misconfigured table is a refusal to
// serve, not a per-request error.
func LoadTable(ctx context.Context, store storage.TierStore) (*tiers.Table, error) {
	defs, err := store.ListTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tier definitions: %w", err)
	}
	return tiers.NewTable(defs)
}

// ensureProfile fetches the user's ledger and tier state, creating both on
// first contact. The two rows are created in one atomic write; a fresh user
// starts on the lowest tier with a zero balance and immediately receives the
// signup bonus as a welcome activity, so the bonus shows up in the log like
// any other earning. A concurrent first contact commits exactly one profile
// and one bonus: the losing caller falls back to reading the winner's rows.
func (s *Service) ensureProfile(ctx context.Context, userID string) (*models.Ledger, *models.TierState, error) {
	ledger, err := s.Store.GetLedger(ctx, userID)
	if err == nil {
		state, err := s.Store.GetTierState(ctx, userID)
		if errors.Is(err, storage.ErrTierStateNotFound) {
			// A ledger without tier state can be left behind by older data or
			// imports; repair it instead of failing every call for the user.
			state, err = s.createTierState(ctx, userID)
		}
		if err != nil {
			return nil, nil, err
		}
		return ledger, state, nil
	}
	if !errors.Is(err, storage.ErrLedgerNotFound) {
		return nil, nil, err
	}

	ledger, state, err := s.Store.CreateProfile(ctx,
		&models.Ledger{UserID: userID},
		&models.TierState{UserID: userID, CurrentTierLevel: s.Tiers.Lowest().TierLevel},
	)
	if errors.Is(err, storage.ErrProfileExists) {
		return s.readProfile(ctx, userID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if s.Cfg.SignupPoints > 0 {
		_, err := s.Store.RecordActivity(ctx, &models.Activity{
			UserID:       userID,
			ActivityType: models.ActivityWelcomeBonus,
			PointsEarned: s.Cfg.SignupPoints,
			Description:  "Welcome bonus",
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to record welcome bonus: %w", err)
		}
		ledger.Balance += s.Cfg.SignupPoints
		state.TotalPointsEarned += s.Cfg.SignupPoints
		state.TierPoints += s.Cfg.SignupPoints
		ledger.Version++
		state.Version++

		if state, err = s.evaluatePromotion(ctx, state); err != nil {
			return nil, nil, err
		}
	}

	return ledger, state, nil
}

// createTierState writes the initial tier state, falling back to a read if
// another caller repaired it first.
func (s *Service) createTierState(ctx context.Context, userID string) (*models.TierState, error) {
	state, err := s.Store.CreateTierState(ctx, &models.TierState{
		UserID:           userID,
		CurrentTierLevel: s.Tiers.Lowest().TierLevel,
	})
	if errors.Is(err, storage.ErrTierStateExists) {
		return s.Store.GetTierState(ctx, userID)
	}
	return state, err
}

// readProfile reads an existing profile after losing a create race. The
// winner wrote both rows atomically, so both reads are expected to succeed;
// a still-missing tier state goes through the same repair as ensureProfile.
func (s *Service) readProfile(ctx context.Context, userID string) (*models.Ledger, *models.TierState, error) {
	ledger, err := s.Store.GetLedger(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	state, err := s.Store.GetTierState(ctx, userID)
	if errors.Is(err, storage.ErrTierStateNotFound) {
		state, err = s.createTierState(ctx, userID)
	}
	if err != nil {
		return nil, nil, err
	}
	return ledger, state, nil
}

// Profile returns the user's combined points-and-tier view.
func (s *Service) Profile(ctx context.Context, userID string) (*Profile, error) {
	ledger, state, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Ledger:    ledger,
		TierState: state,
		Progress:  s.Tiers.ProgressFor(state),
	}, nil
}

// RecordActivity appends an earning activity and applies its consequences:
// the points land on the balance and lifetime counters atomically, then the
// new total is checked against the tier table.
func (s *Service) RecordActivity(ctx context.Context, userID string, activityType models.ActivityType, points int64, description string) (*models.Activity, error) {
	if points < 0 {
		return nil, fmt.Errorf("activity points must be non-negative, got %d", points)
	}
	_, state, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	activity, err := s.Store.RecordActivity(ctx, &models.Activity{
		UserID:       userID,
		ActivityType: activityType,
		PointsEarned: points,
		Description:  description,
	})
	if err != nil {
		return nil, err
	}

	state.TotalPointsEarned += points
	state.TierPoints += points
	state.Version++
	if _, err := s.evaluatePromotion(ctx, state); err != nil {
		return nil, err
	}

	s.notify(ctx, notifications.Message{
		Type: notifications.MessageTypePointsEarned,
		Payload: notifications.PointsEarnedPayload{
			UserID:       userID,
			ActivityType: string(activityType),
			PointsEarned: points,
		},
	})

	return activity, nil
}

// RecordDailyLogin awards the daily login bonus at most once per UTC day.
func (s *Service) RecordDailyLogin(ctx context.Context, userID string) (*models.Activity, bool, error) {
	if _, _, err := s.ensureProfile(ctx, userID); err != nil {
		return nil, false, err
	}

	awarded, err := s.Store.HasActivityOnDay(ctx, userID, models.ActivityLogin, time.Now().UTC())
	if err != nil {
		return nil, false, err
	}
	if awarded {
		return nil, false, nil
	}

	activity, err := s.RecordActivity(ctx, userID, models.ActivityLogin, s.Cfg.DailyLoginBonus, "Daily login bonus")
	if err != nil {
		return nil, false, err
	}
	return activity, true, nil
}

// evaluatePromotion moves the user to the highest tier their lifetime total
// qualifies for. Re-running the evaluation on an already-promoted state is a
// no-op, and a concurrent evaluation losing the conditional write just picks
// up the winner's result.
func (s *Service) evaluatePromotion(ctx context.Context, state *models.TierState) (*models.TierState, error) {
	target := s.Tiers.HighestFor(state.TotalPointsEarned)
	if target.TierLevel <= state.CurrentTierLevel {
		return state, nil
	}

	from, _ := s.Tiers.ByLevel(state.CurrentTierLevel)
	promoted, err := s.Store.PromoteTierState(ctx, state, target)
	if errors.Is(err, storage.ErrVersionConflict) {
		return s.Store.GetTierState(ctx, state.UserID)
	}
	if err != nil {
		return nil, err
	}

	s.notify(ctx, notifications.Message{
		Type: notifications.MessageTypeTierUpgrade,
		Payload: notifications.TierUpgradePayload{
			UserID:       state.UserID,
			FromTierName: from.TierName,
			ToTierName:   target.TierName,
			ToTierLevel:  int64(target.TierLevel),
		},
	})

	return promoted, nil
}

// ListActivities returns the user's activity log, newest first.
func (s *Service) ListActivities(ctx context.Context, userID string) ([]models.Activity, error) {
	return s.Store.ListActivitiesByUserID(ctx, userID)
}

// ListTiers returns the tier catalog in ascending level order.
func (s *Service) ListTiers(ctx context.Context) ([]models.RewardTier, error) {
	return s.Tiers.All(), nil
}

// ListVouchers returns the active voucher catalog.
func (s *Service) ListVouchers(ctx context.Context) ([]models.Voucher, error) {
	return s.Store.ListVouchers(ctx)
}

// GetVoucher returns a single voucher by ID.
func (s *Service) GetVoucher(ctx context.Context, voucherID string) (*models.Voucher, error) {
	return s.Store.GetVoucher(ctx, voucherID)
}

// Redeem exchanges points for a voucher. Commit is atomic across the ledger
// debit, stock decrement, redemption record and coupon registration; a coupon
// code collision gets a fresh code and another attempt.
func (s *Service) Redeem(ctx context.Context, userID, voucherID string, quantity int64) (*models.Redemption, error) {
	if _, _, err := s.ensureProfile(ctx, userID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxCouponAttempts; attempt++ {
		code, err := s.Codes.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate coupon code: %w", err)
		}

		redemption, err := s.Store.RedeemVoucher(ctx, userID, voucherID, quantity, code)
		if errors.Is(err, storage.ErrCouponCollision) {
			slog.Warn("Coupon code collision, retrying with a fresh code", "user_id", userID, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.afterCommit(ctx, *redemption)
		return redemption, nil
	}

	return nil, fmt.Errorf("%w: exhausted %d coupon code attempts", ErrRedemptionFailed, maxCouponAttempts)
}

// Checkout redeems a whole cart in one atomic commit. A coupon collision on
// any line retries the entire cart with a fresh set of codes.
func (s *Service) Checkout(ctx context.Context, userID string, items []models.CartItem) ([]models.Redemption, error) {
	if _, _, err := s.ensureProfile(ctx, userID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxCouponAttempts; attempt++ {
		codes := make([]string, len(items))
		for i := range codes {
			code, err := s.Codes.Generate()
			if err != nil {
				return nil, fmt.Errorf("failed to generate coupon code: %w", err)
			}
			codes[i] = code
		}

		redemptions, err := s.Store.CheckoutCart(ctx, userID, items, codes)
		if errors.Is(err, storage.ErrCouponCollision) {
			slog.Warn("Coupon code collision during checkout, retrying cart", "user_id", userID, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, err
		}

		for _, redemption := range redemptions {
			s.afterCommit(ctx, redemption)
		}
		return redemptions, nil
	}

	return nil, fmt.Errorf("%w: exhausted %d coupon code attempts", ErrRedemptionFailed, maxCouponAttempts)
}

// GetRedemption returns a single redemption by ID.
func (s *Service) GetRedemption(ctx context.Context, redemptionID string) (*models.Redemption, error) {
	return s.Store.GetRedemption(ctx, redemptionID)
}

// ListRedemptions returns the user's redemption history, newest first.
func (s *Service) ListRedemptions(ctx context.Context, userID string) ([]models.Redemption, error) {
	return s.Store.ListRedemptionsByUserID(ctx, userID)
}

// afterCommit runs the side effects of a committed redemption: the activity
// log entry, the user notification and the document render request. The
// redemption is already durable at this point, so every failure here is
// logged and swallowed; the reconciliation worker picks up missing documents
// later.
func (s *Service) afterCommit(ctx context.Context, redemption models.Redemption) {
	_, err := s.Store.RecordActivity(ctx, &models.Activity{
		UserID:       redemption.UserID,
		ActivityType: models.ActivityRedemption,
		PointsEarned: 0,
		Description:  fmt.Sprintf("Redeemed %s", redemption.VoucherTitle),
	})
	if err != nil {
		slog.Error("CRITICAL: redemption committed but activity entry failed", "redemption_id", redemption.ID, "error", err)
	}

	s.notify(ctx, notifications.Message{
		Type: notifications.MessageTypeRedemption,
		Payload: notifications.RedemptionPayload{
			UserID:       redemption.UserID,
			RedemptionID: redemption.ID,
			VoucherTitle: redemption.VoucherTitle,
			CouponCode:   redemption.CouponCode,
			PointsUsed:   redemption.PointsUsed,
		},
	})

	completedAt := ""
	if redemption.CompletedAt != nil {
		completedAt = redemption.CompletedAt.Format(time.RFC3339)
	}
	err = s.Docs.ScheduleRender(ctx, &documents.RenderRequest{
		RedemptionID: redemption.ID,
		UserID:       redemption.UserID,
		VoucherTitle: redemption.VoucherTitle,
		CouponCode:   redemption.CouponCode,
		PointsUsed:   redemption.PointsUsed,
		Quantity:     redemption.Quantity,
		CompletedAt:  completedAt,
	})
	if err != nil {
		slog.Error("Failed to schedule document render, reconciliation will retry", "redemption_id", redemption.ID, "error", err)
	}
}

// notify publishes a message and logs instead of failing; notifications are
// best-effort by contract.
func (s *Service) notify(ctx context.Context, message notifications.Message) {
	if err := s.Notifier.Publish(ctx, message); err != nil {
		slog.Error("Failed to publish notification", "type", message.Type, "error", err)
	}
}
