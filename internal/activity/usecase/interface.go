package usecase

import (
	activitydomain "hongddo-backend/internal/activity/domain"
)

// Notifier is the entry point domain services call when a user action
// happened. It never returns an error: all delivery failures stay internal.
type Notifier interface {
	Notify(actorID, actorName string, activityType activitydomain.ActivityType, message, referenceID string)
}

// RecipientResolver decides who gets notified about an actor's action.
// The default household policy is "every user except the actor".
type RecipientResolver interface {
	Recipients(actorID string) ([]string, error)
}

// PushDeliverer is the disconnected-device channel, satisfied by the
// notification usecase.
type PushDeliverer interface {
	Deliver(recipientID string, activityType activitydomain.ActivityType, message, referenceID string) error
}

// Broadcaster is the live in-process channel, satisfied by sse.Manager.
type Broadcaster interface {
	BroadcastActivity(activity interface{})
}

// ActivityUsecase bundles the fan-out entry point with the recipient-facing
// record operations.
type ActivityUsecase interface {
	Notifier
	ListForUser(userID string, limit int) ([]activitydomain.Activity, error)
	UnreadCount(userID string) (int64, error)
	MarkAsRead(userID, activityID string) error
	MarkAllAsRead(userID string) (int64, error)
	DeleteActivity(userID, activityID string) error
	DeleteAllActivities(userID string) (int64, error)
}
