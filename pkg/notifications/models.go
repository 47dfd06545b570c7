package notifications

// MessageType defines the type of a notification message.
type MessageType string

const (
	// MessageTypeTierUpgrade is for messages announcing a tier promotion.
	MessageTypeTierUpgrade MessageType = "tierUpgrade"
	// MessageTypeRedemption is for messages confirming a completed redemption.
	MessageTypeRedemption MessageType = "redemptionCompleted"
	// MessageTypePointsEarned is for messages announcing an activity credit.
	MessageTypePointsEarned MessageType = "pointsEarned"
)

// Message represents a generic notification message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// TierUpgradePayload is the payload for a tierUpgrade message.
type TierUpgradePayload struct {
	UserID       string `json:"user_id"`
	FromTierName string `json:"from_tier_name"`
	ToTierName   string `json:"to_tier_name"`
	ToTierLevel  int64  `json:"to_tier_level"`
}

// RedemptionPayload is the payload for a redemptionCompleted message.
type RedemptionPayload struct {
	UserID       string `json:"user_id"`
	RedemptionID string `json:"redemption_id"`
	VoucherTitle string `json:"voucher_title"`
	CouponCode   string `json:"coupon_code"`
	PointsUsed   int64  `json:"points_used"`
	NewBalance   int64  `json:"new_balance"`
}

// PointsEarnedPayload is the payload for a pointsEarned message.
type PointsEarnedPayload struct {
	UserID       string `json:"user_id"`
	ActivityType string `json:"activity_type"`
	PointsEarned int64  `json:"points_earned"`
	NewBalance   int64  `json:"new_balance"`
}
