package documents

import (
	"context"
)

// RenderRequest asks the document worker to produce a voucher document for a
// completed redemption.
type RenderRequest struct {
	RedemptionID string `json:"redemption_id"`
	UserID       string `json:"user_id"`
	VoucherTitle string `json:"voucher_title"`
	CouponCode   string `json:"coupon_code"`
	PointsUsed   int64  `json:"points_used"`
	Quantity     int64  `json:"quantity"`
	CompletedAt  string `json:"completed_at"`
}

// Scheduler defines the interface for a component that schedules a document render for later processing.
type Scheduler interface {
	// ScheduleRender enqueues a render request for asynchronous processing.
	ScheduleRender(ctx context.Context, req *RenderRequest) error
}

// Renderer defines the interface for producing and storing the document itself.
type Renderer interface {
	// Render writes the document for the request and returns a stable
	// reference to where it was stored.
	Render(ctx context.Context, req *RenderRequest) (string, error)
}
