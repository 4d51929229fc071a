package usecase

import (
	"context"
	"time"

	activitydomain "hongddo-backend/internal/activity/domain"
	"hongddo-backend/pkg/fcm"
)

// Sender is the push provider boundary. The concrete implementation is
// fcm.Client; an error wrapping fcm.ErrInvalidToken marks the token as
// permanently dead, anything else is transient.
type Sender interface {
	Send(ctx context.Context, token string, notification fcm.Notification) error
}

// PushUsecase owns the device-token registry and the push delivery channel.
type PushUsecase interface {
	// RegisterToken stores token as userID's sole active token. Re-registering
	// the same token is a refresh; a different token replaces the old one.
	RegisterToken(userID, token, platform, deviceInfo string) error
	// UnregisterToken removes the token wherever it is stored. Absent is fine.
	UnregisterToken(token string) error
	TokenCount(userID string) (int, error)
	// Send pushes an already-rendered payload to every token of one user.
	Send(userID, title, body, url string, data map[string]string) error
	// Deliver renders the payload for activityType and pushes it to the
	// recipient. A recipient without tokens is a silent no-op.
	Deliver(recipientID string, activityType activitydomain.ActivityType, message, referenceID string) error
	// BroadcastExcept pushes one payload to every stored token not owned by
	// excludedUserID. Individual failures never abort the loop.
	BroadcastExcept(excludedUserID, title, body, url string, data map[string]string)
	// StartRetentionSweeper evicts tokens unused past retention, every
	// interval, until ctx is done.
	StartRetentionSweeper(ctx context.Context, interval, retention time.Duration)
}
