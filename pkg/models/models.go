package models

import (
	"time"
)

// RedemptionStatus defines the possible states of a redemption.
type RedemptionStatus string

const (
	PENDING   RedemptionStatus = "pending"
	COMPLETED RedemptionStatus = "completed"
	FAILED    RedemptionStatus = "failed"
	CANCELLED RedemptionStatus = "cancelled"
)

// ActivityType defines the kinds of point-earning events.
type ActivityType string

const (
	ActivityLogin        ActivityType = "login"
	ActivityTransaction  ActivityType = "transaction"
	ActivityRedemption   ActivityType = "redemption"
	ActivityReferral     ActivityType = "referral"
	ActivityReview       ActivityType = "review"
	ActivitySocialShare  ActivityType = "social_share"
	ActivityWelcomeBonus ActivityType = "welcome_bonus"
	ActivityMiniGame     ActivityType = "mini_game"
)

// Ledger represents a user's spendable points balance.
// It includes dynamodbav tags for marshalling. The version attribute is
// used for optimistic locking on every mutation.
type Ledger struct {
	UserID    string    `json:"user_id" dynamodbav:"user_id"`
	Balance   int64     `json:"balance" dynamodbav:"balance"`
	Version   int64     `json:"version" dynamodbav:"version"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// Activity represents a single append-only entry in the activity log.
// Each insertion credits the ledger and triggers a tier re-evaluation.
type Activity struct {
	ID           string       `dynamodbav:"id"`
	UserID       string       `dynamodbav:"user_id"`
	ActivityType ActivityType `dynamodbav:"activity_type"`
	PointsEarned int64        `dynamodbav:"points_earned"`
	Description  string       `dynamodbav:"description"`
	CreatedAt    time.Time    `dynamodbav:"created_at"`
}

// RewardTier is static reference data describing one membership level.
type RewardTier struct {
	TierLevel       int      `dynamodbav:"tier_level"`
	TierName        string   `dynamodbav:"tier_name"`
	MinPoints       int64    `dynamodbav:"min_points"`
	Color           string   `dynamodbav:"color"`
	Icon            string   `dynamodbav:"icon"`
	Benefits        []string `dynamodbav:"benefits"`
	ExclusiveOffers bool     `dynamodbav:"exclusive_offers"`
	PremiumSupport  bool     `dynamodbav:"premium_support"`
}

// TierState tracks a user's current tier and lifetime earnings.
// TotalPointsEarned is monotonic; spending never decrements it.
type TierState struct {
	UserID            string     `dynamodbav:"user_id"`
	CurrentTierLevel  int        `dynamodbav:"current_tier_level"`
	TotalPointsEarned int64      `dynamodbav:"total_points_earned"`
	TierPoints        int64      `dynamodbav:"tier_points"`
	TierStartDate     time.Time  `dynamodbav:"tier_start_date"`
	LastTierUpgrade   *time.Time `dynamodbav:"last_tier_upgrade,omitempty"`
	Version           int64      `dynamodbav:"version"`
}

// Voucher represents a catalog item that can be redeemed with points.
type Voucher struct {
	ID                 string    `dynamodbav:"id"`
	Title              string    `dynamodbav:"title"`
	Category           string    `dynamodbav:"category"`
	PointsCost         int64     `dynamodbav:"points_cost"`
	OriginalPointsCost int64     `dynamodbav:"original_points_cost"`
	DiscountPercentage int       `dynamodbav:"discount_percentage"`
	Description        string    `dynamodbav:"description"`
	Terms              string    `dynamodbav:"terms"`
	QuantityAvailable  int64     `dynamodbav:"quantity_available"`
	IsActive           bool      `dynamodbav:"is_active"`
	Version            int64     `dynamodbav:"version"`
	CreatedAt          time.Time `dynamodbav:"created_at"`
	UpdatedAt          time.Time `dynamodbav:"updated_at"`
}

// Redemption represents a completed (or failed) exchange of points for a voucher.
// PointsUsed is frozen at redemption time and never recalculated.
type Redemption struct {
	ID           string           `dynamodbav:"id"`
	UserID       string           `dynamodbav:"user_id"`
	VoucherID    string           `dynamodbav:"voucher_id"`
	VoucherTitle string           `dynamodbav:"voucher_title"`
	Quantity     int64            `dynamodbav:"quantity"`
	PointsUsed   int64            `dynamodbav:"points_used"`
	CouponCode   string           `dynamodbav:"coupon_code"`
	Status       RedemptionStatus `dynamodbav:"status"`
	DocumentRef  string           `dynamodbav:"document_ref,omitempty"`
	CreatedAt    time.Time        `dynamodbav:"created_at"`
	CompletedAt  *time.Time       `dynamodbav:"completed_at,omitempty"`
}

// CouponCode is the uniqueness registry row for an issued coupon code.
type CouponCode struct {
	Code         string    `dynamodbav:"code"`
	RedemptionID string    `dynamodbav:"redemption_id"`
	UserID       string    `dynamodbav:"user_id"`
	CreatedAt    time.Time `dynamodbav:"created_at"`
}

// CartItem is one line of a batch checkout request.
type CartItem struct {
	VoucherID string `json:"voucher_id"`
	Quantity  int64  `json:"quantity"`
}
