package storage

import "errors"

// ErrInsufficientPoints is returned when a debit would exceed the ledger's spendable balance.
var ErrInsufficientPoints = errors.New("insufficient points")

// ErrInsufficientStock is returned when a redemption requests more units than the voucher has available.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrVoucherUnavailable is returned when the voucher exists but is not active.
var ErrVoucherUnavailable = errors.New("voucher unavailable")

// ErrVoucherNotFound is returned when no voucher exists with the given ID.
var ErrVoucherNotFound = errors.New("voucher not found")

// ErrLedgerNotFound is returned when no ledger exists for the given user.
var ErrLedgerNotFound = errors.New("ledger not found")

// ErrTierStateNotFound is returned when no tier state exists for the given user.
var ErrTierStateNotFound = errors.New("tier state not found")

// ErrTierStateExists is returned when creating a tier state for a user who
// already has one. Callers recover by re-reading the existing row.
var ErrTierStateExists = errors.New("tier state already exists")

// ErrProfileExists is returned when creating a profile for a user whose
// ledger or tier state already exists, typically because a concurrent first
// contact won the create. Callers recover by re-reading.
var ErrProfileExists = errors.New("profile already exists")

// ErrRedemptionNotFound is returned when no redemption exists with the given ID.
var ErrRedemptionNotFound = errors.New("redemption not found")

// ErrCouponCollision is returned when the generated coupon code already exists.
// This is transient; callers retry with a freshly generated code.
var ErrCouponCollision = errors.New("coupon code collision")

// ErrVersionConflict is returned when an optimistic-lock condition fails
// because the row was mutated concurrently. Callers may re-read and retry.
var ErrVersionConflict = errors.New("version conflict")
