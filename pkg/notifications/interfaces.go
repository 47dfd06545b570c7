package notifications

import (
	"context"
)

// Publisher defines the interface for publishing notification messages to users.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}
