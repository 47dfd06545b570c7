package storage

import (
	"context"
	"time"

	"github.com/optio/loyalty-rewards/pkg/models"
)

// ActivityStore defines the interface for the append-only activity log.
type ActivityStore interface {
	// RecordActivity appends an activity entry and, in the same atomic
	// transaction, credits the user's ledger and increments the tier state's
	// lifetime counters by the entry's points. Tier promotion evaluation is
	// the caller's responsibility and happens after the append.
	RecordActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error)

	// ListActivitiesByUserID retrieves all activity entries for a user,
	// newest first.
	ListActivitiesByUserID(ctx context.Context, userID string) ([]models.Activity, error)

	// HasActivityOnDay reports whether the user already has an entry of the
	// given type on the given calendar day (UTC). Used by callers to suppress
	// duplicate daily bonuses; the log itself enforces nothing.
	HasActivityOnDay(ctx context.Context, userID string, activityType models.ActivityType, day time.Time) (bool, error)
}
