package mapping

import (
	"github.com/optio/loyalty-rewards/pkg/api"
	"github.com/optio/loyalty-rewards/pkg/loyalty"
	"github.com/optio/loyalty-rewards/pkg/models"
	"github.com/optio/loyalty-rewards/pkg/tiers"
)

// ToApiLedger converts a domain Ledger model to an API Ledger model.
func ToApiLedger(ledger *models.Ledger) *api.Ledger {
	return &api.Ledger{
		UserId:    ledger.UserID,
		Balance:   ledger.Balance,
		Version:   ledger.Version,
		CreatedAt: ledger.CreatedAt,
		UpdatedAt: ledger.UpdatedAt,
	}
}

// ToApiActivity converts a domain Activity model to an API Activity model.
func ToApiActivity(activity *models.Activity) *api.Activity {
	out := &api.Activity{
		Id:           activity.ID,
		UserId:       activity.UserID,
		ActivityType: api.ActivityType(activity.ActivityType),
		PointsEarned: activity.PointsEarned,
		CreatedAt:    activity.CreatedAt,
	}
	if activity.Description != "" {
		out.Description = &activity.Description
	}
	return out
}

// ToApiActivities converts a slice of domain activities.
func ToApiActivities(activities []models.Activity) []api.Activity {
	out := make([]api.Activity, len(activities))
	for i := range activities {
		out[i] = *ToApiActivity(&activities[i])
	}
	return out
}

// ToApiRewardTier converts a domain RewardTier model to an API RewardTier model.
func ToApiRewardTier(tier *models.RewardTier) *api.RewardTier {
	out := &api.RewardTier{
		TierLevel:       tier.TierLevel,
		TierName:        tier.TierName,
		MinPoints:       tier.MinPoints,
		ExclusiveOffers: tier.ExclusiveOffers,
		PremiumSupport:  tier.PremiumSupport,
	}
	if tier.Color != "" {
		out.Color = &tier.Color
	}
	if tier.Icon != "" {
		out.Icon = &tier.Icon
	}
	if len(tier.Benefits) > 0 {
		benefits := tier.Benefits
		out.Benefits = &benefits
	}
	return out
}

// ToApiRewardTiers converts a slice of domain tiers.
func ToApiRewardTiers(defs []models.RewardTier) []api.RewardTier {
	out := make([]api.RewardTier, len(defs))
	for i := range defs {
		out[i] = *ToApiRewardTier(&defs[i])
	}
	return out
}

// ToApiTierState converts a domain TierState model to an API TierState model.
func ToApiTierState(state *models.TierState) *api.TierState {
	return &api.TierState{
		UserId:            state.UserID,
		CurrentTierLevel:  state.CurrentTierLevel,
		TotalPointsEarned: state.TotalPointsEarned,
		TierPoints:        state.TierPoints,
		TierStartDate:     state.TierStartDate,
		LastTierUpgrade:   state.LastTierUpgrade,
		Version:           state.Version,
	}
}

// ToApiTierProgress converts a domain tier Progress to an API TierProgress model.
func ToApiTierProgress(progress tiers.Progress) api.TierProgress {
	out := api.TierProgress{
		CurrentTier:        *ToApiRewardTier(&progress.CurrentTier),
		ProgressPercentage: progress.Percentage,
		PointsToNextTier:   progress.PointsToNext,
		IsMaxTier:          progress.IsMaxTier,
	}
	if progress.NextTier != nil {
		out.NextTier = ToApiRewardTier(progress.NextTier)
	}
	return out
}

// ToApiProfile converts a loyalty Profile to an API Profile model.
func ToApiProfile(profile *loyalty.Profile) *api.Profile {
	return &api.Profile{
		Ledger:    *ToApiLedger(profile.Ledger),
		TierState: *ToApiTierState(profile.TierState),
		Progress:  ToApiTierProgress(profile.Progress),
	}
}

// ToApiVoucher converts a domain Voucher model to an API Voucher model.
func ToApiVoucher(voucher *models.Voucher) *api.Voucher {
	out := &api.Voucher{
		Id:                voucher.ID,
		Title:             voucher.Title,
		PointsCost:        voucher.PointsCost,
		QuantityAvailable: voucher.QuantityAvailable,
		IsActive:          voucher.IsActive,
		CreatedAt:         voucher.CreatedAt,
	}
	if voucher.Category != "" {
		out.Category = &voucher.Category
	}
	if voucher.Description != "" {
		out.Description = &voucher.Description
	}
	if voucher.Terms != "" {
		out.Terms = &voucher.Terms
	}
	if voucher.OriginalPointsCost != 0 {
		cost := voucher.OriginalPointsCost
		out.OriginalPointsCost = &cost
	}
	if voucher.DiscountPercentage != 0 {
		pct := voucher.DiscountPercentage
		out.DiscountPercentage = &pct
	}
	return out
}

// ToApiVouchers converts a slice of domain vouchers.
func ToApiVouchers(vouchers []models.Voucher) []api.Voucher {
	out := make([]api.Voucher, len(vouchers))
	for i := range vouchers {
		out[i] = *ToApiVoucher(&vouchers[i])
	}
	return out
}

// ToApiRedemption converts a domain Redemption model to an API Redemption model.
func ToApiRedemption(redemption *models.Redemption) *api.Redemption {
	out := &api.Redemption{
		Id:           redemption.ID,
		UserId:       redemption.UserID,
		VoucherId:    redemption.VoucherID,
		VoucherTitle: redemption.VoucherTitle,
		Quantity:     redemption.Quantity,
		PointsUsed:   redemption.PointsUsed,
		CouponCode:   redemption.CouponCode,
		Status:       api.RedemptionStatus(redemption.Status),
		CreatedAt:    redemption.CreatedAt,
		CompletedAt:  redemption.CompletedAt,
	}
	if redemption.DocumentRef != "" {
		out.DocumentRef = &redemption.DocumentRef
	}
	return out
}

// ToApiRedemptions converts a slice of domain redemptions.
func ToApiRedemptions(redemptions []models.Redemption) []api.Redemption {
	out := make([]api.Redemption, len(redemptions))
	for i := range redemptions {
		out[i] = *ToApiRedemption(&redemptions[i])
	}
	return out
}

// ToDomainCartItems converts an API cart checkout to domain cart items.
func ToDomainCartItems(checkout *api.CartCheckout) []models.CartItem {
	items := make([]models.CartItem, len(checkout.Items))
	for i, item := range checkout.Items {
		items[i] = models.CartItem{
			VoucherID: item.VoucherId.String(),
			Quantity:  item.Quantity,
		}
	}
	return items
}
