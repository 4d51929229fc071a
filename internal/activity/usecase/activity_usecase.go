package usecase

import (
	"log"
	"sync"

	activitydomain "hongddo-backend/internal/activity/domain"
	"hongddo-backend/internal/activity/repository"
)

// activityUsecase implements ActivityUsecase interface
type activityUsecase struct {
	activityRepo repository.ActivityRepository
	resolver     RecipientResolver
	broadcaster  Broadcaster
	pusher       PushDeliverer
}

// NewActivityUsecase creates a new instance of activityUsecase
func NewActivityUsecase(activityRepo repository.ActivityRepository, resolver RecipientResolver, broadcaster Broadcaster, pusher PushDeliverer) ActivityUsecase {
	return &activityUsecase{
		activityRepo: activityRepo,
		resolver:     resolver,
		broadcaster:  broadcaster,
		pusher:       pusher,
	}
}

// Notify fans one action out to every resolved recipient. Recipients are
// processed concurrently; each recipient's chain (persist, broadcast, push) is
// independent, so one failing chain never aborts the others. Returns once all
// recipients have been attempted.
func (u *activityUsecase) Notify(actorID, actorName string, activityType activitydomain.ActivityType, message, referenceID string) {
	recipients, err := u.resolver.Recipients(actorID)
	if err != nil {
		log.Printf("[Activity] Failed to resolve recipients for actor %s: %v", actorID, err)
		return
	}

	var wg sync.WaitGroup
	created := 0
	for _, recipientID := range recipients {
		if recipientID == actorID {
			// Self-notifications are suppressed at creation.
			continue
		}
		created++
		wg.Add(1)
		go func(recipientID string) {
			defer wg.Done()
			u.notifyOne(actorID, actorName, recipientID, activityType, message, referenceID)
		}(recipientID)
	}
	wg.Wait()

	if created > 0 {
		log.Printf("[Activity] Created %d activities for actor %s (%s)", created, actorName, activityType)
	}
}

// notifyOne runs one recipient's delivery chain. Persistence is attempted
// first so a reconnecting client can always find the record; broadcast and
// push follow regardless of its outcome.
func (u *activityUsecase) notifyOne(actorID, actorName, recipientID string, activityType activitydomain.ActivityType, message, referenceID string) {
	activity := &activitydomain.Activity{
		ActivityType: activityType,
		ActorID:      actorID,
		ActorName:    actorName,
		RecipientID:  recipientID,
		Message:      message,
		ReferenceID:  referenceID,
	}

	if err := u.activityRepo.Create(activity); err != nil {
		log.Printf("[Activity] Failed to persist activity for recipient %s: %v", recipientID, err)
	}

	u.broadcaster.BroadcastActivity(activity)

	if err := u.pusher.Deliver(recipientID, activityType, message, referenceID); err != nil {
		log.Printf("[Activity] Push delivery to %s failed: %v", recipientID, err)
	}
}

func (u *activityUsecase) ListForUser(userID string, limit int) ([]activitydomain.Activity, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	return u.activityRepo.FindByRecipient(userID, limit)
}

// UnreadCount is a plain row count: with the read-is-delete policy every
// stored record is unread by definition.
func (u *activityUsecase) UnreadCount(userID string) (int64, error) {
	return u.activityRepo.CountByRecipient(userID)
}

// MarkAsRead deletes the record (read-is-delete). Only the owning recipient's
// record is touched.
func (u *activityUsecase) MarkAsRead(userID, activityID string) error {
	_, err := u.activityRepo.DeleteByIDAndRecipient(activityID, userID)
	return err
}

func (u *activityUsecase) MarkAllAsRead(userID string) (int64, error) {
	count, err := u.activityRepo.DeleteByRecipient(userID)
	if err != nil {
		return 0, err
	}
	log.Printf("[Activity] Deleted all %d activities for user %s", count, userID)
	return count, nil
}

func (u *activityUsecase) DeleteActivity(userID, activityID string) error {
	return u.MarkAsRead(userID, activityID)
}

func (u *activityUsecase) DeleteAllActivities(userID string) (int64, error) {
	return u.MarkAllAsRead(userID)
}
