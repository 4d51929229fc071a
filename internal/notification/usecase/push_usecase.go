package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	activitydomain "hongddo-backend/internal/activity/domain"
	notifdomain "hongddo-backend/internal/notification/domain"
	"hongddo-backend/internal/notification/repository"
	"hongddo-backend/pkg/fcm"
)

// providerTimeout bounds a single provider call so a hung push cannot stall
// the whole fan-out.
const providerTimeout = 10 * time.Second

// pushUsecase implements PushUsecase interface
type pushUsecase struct {
	tokenRepo repository.DeviceTokenRepository
	sender    Sender // nil when push is disabled (no Firebase credentials)
}

// NewPushUsecase creates a new instance of pushUsecase
func NewPushUsecase(tokenRepo repository.DeviceTokenRepository, sender Sender) PushUsecase {
	return &pushUsecase{
		tokenRepo: tokenRepo,
		sender:    sender,
	}
}

// RegisterToken keeps one live token per user: any previously stored token
// that differs from the incoming one is deleted first (best-effort), then the
// new token is upserted. Re-registering the current token only refreshes
// last_used_at.
func (u *pushUsecase) RegisterToken(userID, token, platform, deviceInfo string) error {
	existing, err := u.tokenRepo.FindByUserID(userID)
	if err != nil {
		// Best-effort cleanup; registration itself still proceeds.
		log.Printf("[FCM] Failed to look up existing tokens for user %s: %v", userID, err)
		existing = nil
	}

	for _, t := range existing {
		if t.Token == token {
			if err := u.tokenRepo.Touch(token); err != nil {
				log.Printf("[FCM] Failed to refresh token for user %s: %v", userID, err)
			}
			return nil
		}
	}

	if len(existing) > 0 {
		if err := u.tokenRepo.DeleteByUserID(userID); err != nil {
			log.Printf("[FCM] Failed to remove old tokens for user %s: %v", userID, err)
		} else {
			log.Printf("[FCM] Removed old token for user: %s", userID)
		}
	}

	now := time.Now()
	if err := u.tokenRepo.Save(&notifdomain.DeviceToken{
		Token:        token,
		UserID:       userID,
		Platform:     platform,
		DeviceInfo:   deviceInfo,
		RegisteredAt: now,
		LastUsedAt:   now,
	}); err != nil {
		return err
	}

	log.Printf("[FCM] Token registered for user: %s (Total: 1)", userID)
	return nil
}

func (u *pushUsecase) UnregisterToken(token string) error {
	if err := u.tokenRepo.Delete(token); err != nil {
		return err
	}
	log.Printf("[FCM] Token unregistered: %s", shorten(token))
	return nil
}

func (u *pushUsecase) TokenCount(userID string) (int, error) {
	tokens, err := u.tokenRepo.FindByUserID(userID)
	if err != nil {
		return 0, err
	}
	return len(tokens), nil
}

// Send pushes one payload to every token of one user. A lookup failure or an
// empty token set suppresses the push silently: a user without a token is a
// user with push disabled.
func (u *pushUsecase) Send(userID, title, body, url string, data map[string]string) error {
	tokens, err := u.tokenRepo.FindByUserID(userID)
	if err != nil {
		log.Printf("[FCM] Token lookup failed for user %s (skipping push): %v", userID, err)
		return nil
	}
	if len(tokens) == 0 {
		return nil
	}
	if len(tokens) > 1 {
		log.Printf("[FCM] WARNING: user %s has %d tokens, duplicate notifications likely", userID, len(tokens))
	}

	notification := fcm.Notification{
		Title: title,
		Body:  body,
		Link:  url,
		Data:  data,
	}
	sent := 0
	for _, t := range tokens {
		if u.sendToToken(t.Token, notification) {
			sent++
		}
	}
	log.Printf("[FCM] Notification sent to user %s (%d/%d tokens succeeded)", userID, sent, len(tokens))
	return nil
}

func (u *pushUsecase) Deliver(recipientID string, activityType activitydomain.ActivityType, message, referenceID string) error {
	target := RenderTarget(activityType, message, referenceID)
	return u.Send(recipientID, target.Title, target.Body, target.Link, target.Data)
}

func (u *pushUsecase) BroadcastExcept(excludedUserID, title, body, url string, data map[string]string) {
	tokens, err := u.tokenRepo.FindAll()
	if err != nil {
		log.Printf("[FCM] Failed to list tokens for broadcast: %v", err)
		return
	}

	notification := fcm.Notification{
		Title: title,
		Body:  body,
		Link:  url,
		Data:  data,
	}
	sent, failed := 0, 0
	for _, t := range tokens {
		if t.UserID == excludedUserID {
			continue
		}
		if u.sendToToken(t.Token, notification) {
			sent++
		} else {
			failed++
		}
	}
	log.Printf("[FCM] Broadcast complete - Sent: %d, Failed: %d", sent, failed)
}

// sendToToken performs one provider call and reacts to its classification:
// success touches the token, permanent-invalid prunes it, transient failures
// are only logged.
func (u *pushUsecase) sendToToken(token string, notification fcm.Notification) bool {
	if u.sender == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), providerTimeout)
	defer cancel()

	err := u.sender.Send(ctx, token, notification)
	if err == nil {
		if terr := u.tokenRepo.Touch(token); terr != nil {
			log.Printf("[FCM] Failed to touch token after delivery: %v", terr)
		}
		return true
	}

	if errors.Is(err, fcm.ErrInvalidToken) {
		// Normal occurrence: the installation is gone, drop its token.
		log.Printf("[FCM] Pruning dead token: %v", err)
		if derr := u.tokenRepo.Delete(token); derr != nil {
			log.Printf("[FCM] Failed to prune token: %v", derr)
		}
		return false
	}

	log.Printf("[FCM] Transient delivery failure: %v", err)
	return false
}

// StartRetentionSweeper evicts tokens whose last_used_at is older than
// retention, once per interval, until ctx is canceled.
func (u *pushUsecase) StartRetentionSweeper(ctx context.Context, interval, retention time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				count, err := u.tokenRepo.DeleteStale(time.Now().Add(-retention))
				if err != nil {
					log.Printf("[FCM] Stale token sweep failed: %v", err)
					continue
				}
				if count > 0 {
					log.Printf("[FCM] Evicted %d stale tokens", count)
				}
			}
		}
	}()
}

func shorten(token string) string {
	if len(token) <= 20 {
		return token
	}
	return token[:20] + "..."
}
