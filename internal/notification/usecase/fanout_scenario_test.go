package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"

	activitydomain "hongddo-backend/internal/activity/domain"
	activityusecase "hongddo-backend/internal/activity/usecase"
	notifdomain "hongddo-backend/internal/notification/domain"
	"hongddo-backend/pkg/fcm"
)

type memoryActivityRepo struct {
	mu      sync.Mutex
	records []*activitydomain.Activity
}

func (m *memoryActivityRepo) Create(activity *activitydomain.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, activity)
	return nil
}

func (m *memoryActivityRepo) FindByRecipient(recipientID string, limit int) ([]activitydomain.Activity, error) {
	return nil, nil
}

func (m *memoryActivityRepo) DeleteByIDAndRecipient(id, recipientID string) (int64, error) {
	return 0, nil
}

func (m *memoryActivityRepo) DeleteByRecipient(recipientID string) (int64, error) {
	return 0, nil
}

func (m *memoryActivityRepo) CountByRecipient(recipientID string) (int64, error) {
	return 0, nil
}

type staticResolver struct{ users []string }

func (s *staticResolver) Recipients(actorID string) ([]string, error) {
	var out []string
	for _, u := range s.users {
		if u != actorID {
			out = append(out, u)
		}
	}
	return out, nil
}

type noopBroadcaster struct{}

func (noopBroadcaster) BroadcastActivity(activity interface{}) {}

type recordingSender struct {
	mu    sync.Mutex
	calls map[string]fcm.Notification // token -> last payload
}

func (r *recordingSender) Send(ctx context.Context, token string, notification fcm.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = make(map[string]fcm.Notification)
	}
	r.calls[token] = notification
	return nil
}

// A member posts a daily photo: both other members get an activity record and
// a rendered push, and the actor gets neither.
func TestDailyPostReachesWholeHousehold(t *testing.T) {
	tokenRepo := newFakeTokenRepo()
	sender := &recordingSender{}
	push := NewPushUsecase(tokenRepo, sender)

	tokenRepo.Save(&notifdomain.DeviceToken{Token: "token-alice", UserID: "alice"})
	tokenRepo.Save(&notifdomain.DeviceToken{Token: "token-bob", UserID: "bob"})
	tokenRepo.Save(&notifdomain.DeviceToken{Token: "token-carol", UserID: "carol"})

	store := &memoryActivityRepo{}
	resolver := &staticResolver{users: []string{"alice", "bob", "carol"}}
	coordinator := activityusecase.NewActivityUsecase(store, resolver, noopBroadcaster{}, push)

	coordinator.Notify("alice", "앨리스", activitydomain.ActivityDailyPost,
		"앨리스님이 일상을 남겼습니다", "daily-42")

	store.mu.Lock()
	if len(store.records) != 2 {
		t.Errorf("activity records = %d, want 2", len(store.records))
	}
	for _, r := range store.records {
		if r.RecipientID == "alice" {
			t.Error("the actor must not receive a record")
		}
	}
	store.mu.Unlock()

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if _, ok := sender.calls["token-alice"]; ok {
		t.Error("the actor must not be pushed")
	}
	for _, token := range []string{"token-bob", "token-carol"} {
		payload, ok := sender.calls[token]
		if !ok {
			t.Errorf("no push delivered to %s", token)
			continue
		}
		if !strings.HasPrefix(payload.Title, "📸") {
			t.Errorf("%s: title = %q, want the daily-post rendering", token, payload.Title)
		}
		if payload.Link != "/medicine?tab=dailyTab&dailyId=daily-42" {
			t.Errorf("%s: link = %q", token, payload.Link)
		}
	}
}
