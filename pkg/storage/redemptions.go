package storage

import (
	"context"

	"github.com/optio/loyalty-rewards/pkg/models"
)

// RedemptionReader defines the interface for reading redemption data.
type RedemptionReader interface {
	// GetRedemption retrieves a redemption by its ID.
	GetRedemption(ctx context.Context, redemptionID string) (*models.Redemption, error)

	// ListRedemptionsByUserID retrieves all redemptions for a user, newest first.
	ListRedemptionsByUserID(ctx context.Context, userID string) ([]models.Redemption, error)

	// ListRedemptionsMissingDocument retrieves completed redemptions whose
	// proof document has not been attached yet.
	ListRedemptionsMissingDocument(ctx context.Context, limit int32) ([]models.Redemption, error)
}

// RedemptionManager defines the interface for committing redemptions.
type RedemptionManager interface {
	// RedeemVoucher atomically debits the user's ledger, decrements the
	// voucher's stock, writes the redemption record and registers the coupon
	// code. All four writes succeed or none do. Returns ErrCouponCollision
	// when the code is already registered; callers retry with a fresh code.
	RedeemVoucher(ctx context.Context, userID, voucherID string, quantity int64, couponCode string) (*models.Redemption, error)

	// CheckoutCart commits a batch of redemptions in a single atomic
	// transaction: one ledger debit for the combined cost, a stock decrement
	// per voucher and a redemption record plus coupon registration per item.
	// All-or-nothing across the whole cart, not per item. The codes slice
	// must hold one pre-generated coupon code per cart item.
	CheckoutCart(ctx context.Context, userID string, items []models.CartItem, codes []string) ([]models.Redemption, error)

	// AttachDocument sets the opaque proof-document reference on a completed
	// redemption. The redemption itself is already committed; this write is
	// outside any redemption transaction.
	AttachDocument(ctx context.Context, redemptionID, documentRef string) error
}

// RedemptionStore combines the reader and manager interfaces.
type RedemptionStore interface {
	RedemptionReader
	RedemptionManager
}
