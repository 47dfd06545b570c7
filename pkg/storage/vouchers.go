package storage

import (
	"context"

	"github.com/optio/loyalty-rewards/pkg/models"
)

// VoucherStore defines the interface for the voucher catalog and its inventory.
type VoucherStore interface {
	// GetVoucher retrieves a voucher by its ID.
	GetVoucher(ctx context.Context, voucherID string) (*models.Voucher, error)

	// ListVouchers retrieves all active vouchers.
	ListVouchers(ctx context.Context) ([]models.Voucher, error)

	// DecrementStock atomically decreases a voucher's available quantity.
	// Returns ErrInsufficientStock if fewer than quantity units remain; stock
	// can never go negative, even under concurrent decrements.
	DecrementStock(ctx context.Context, voucherID string, quantity int64) error
}
