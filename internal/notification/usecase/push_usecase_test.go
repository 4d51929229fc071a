package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	activitydomain "hongddo-backend/internal/activity/domain"
	notifdomain "hongddo-backend/internal/notification/domain"
	"hongddo-backend/pkg/fcm"
)

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]notifdomain.DeviceToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]notifdomain.DeviceToken)}
}

func (f *fakeTokenRepo) Save(token *notifdomain.DeviceToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token.Token] = *token
	return nil
}

func (f *fakeTokenRepo) FindByUserID(userID string) ([]notifdomain.DeviceToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []notifdomain.DeviceToken
	for _, t := range f.tokens {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTokenRepo) FindAll() ([]notifdomain.DeviceToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []notifdomain.DeviceToken
	for _, t := range f.tokens {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTokenRepo) Delete(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
	return nil
}

func (f *fakeTokenRepo) DeleteByUserID(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, k)
		}
	}
	return nil
}

func (f *fakeTokenRepo) Touch(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tokens[token]
	if !ok {
		return errors.New("token not found")
	}
	t.LastUsedAt = time.Now()
	f.tokens[token] = t
	return nil
}

func (f *fakeTokenRepo) DeleteStale(olderThan time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for k, t := range f.tokens {
		if t.LastUsedAt.Before(olderThan) {
			delete(f.tokens, k)
			count++
		}
	}
	return count, nil
}

func (f *fakeTokenRepo) has(token string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.tokens[token]
	return ok
}

func (f *fakeTokenRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tokens)
}

type fakeSender struct {
	mu       sync.Mutex
	sent     []string
	failWith map[string]error
}

func (f *fakeSender) Send(ctx context.Context, token string, notification fcm.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failWith[token]; ok {
		return err
	}
	f.sent = append(f.sent, token)
	return nil
}

func (f *fakeSender) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func TestRegisterTokenReplacesOldToken(t *testing.T) {
	repo := newFakeTokenRepo()
	uc := NewPushUsecase(repo, &fakeSender{})

	if err := uc.RegisterToken("alice", "token-1", "web", "chrome"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := uc.RegisterToken("alice", "token-2", "web", "chrome"); err != nil {
		t.Fatalf("register replacement: %v", err)
	}

	if repo.has("token-1") {
		t.Error("old token should have been removed")
	}
	if !repo.has("token-2") {
		t.Error("new token should be stored")
	}
	count, _ := uc.TokenCount("alice")
	if count != 1 {
		t.Errorf("token count = %d, want 1", count)
	}
}

func TestRegisterTokenIsIdempotent(t *testing.T) {
	repo := newFakeTokenRepo()
	uc := NewPushUsecase(repo, &fakeSender{})

	for i := 0; i < 3; i++ {
		if err := uc.RegisterToken("alice", "token-1", "web", "chrome"); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}

	count, _ := uc.TokenCount("alice")
	if count != 1 {
		t.Errorf("token count = %d, want 1", count)
	}
}

func TestRegisterTokenKeepsUsersSeparate(t *testing.T) {
	repo := newFakeTokenRepo()
	uc := NewPushUsecase(repo, &fakeSender{})

	uc.RegisterToken("alice", "token-a", "web", "")
	uc.RegisterToken("bob", "token-b", "android", "")

	if repo.count() != 2 {
		t.Errorf("stored tokens = %d, want 2", repo.count())
	}
}

func TestSendWithoutTokensIsSilent(t *testing.T) {
	repo := newFakeTokenRepo()
	sender := &fakeSender{}
	uc := NewPushUsecase(repo, sender)

	if err := uc.Send("ghost", "title", "body", "/medicine", nil); err != nil {
		t.Fatalf("send: %v", err)
	}
	if sender.sentCount() != 0 {
		t.Errorf("provider calls = %d, want 0", sender.sentCount())
	}
}

func TestSendWithNilSenderIsSilent(t *testing.T) {
	repo := newFakeTokenRepo()
	uc := NewPushUsecase(repo, nil)
	uc.RegisterToken("alice", "token-1", "web", "")

	if err := uc.Send("alice", "title", "body", "/medicine", nil); err != nil {
		t.Fatalf("send with nil sender: %v", err)
	}
	if !repo.has("token-1") {
		t.Error("token must survive when push is disabled")
	}
}

func TestDeliverPrunesPermanentlyInvalidToken(t *testing.T) {
	repo := newFakeTokenRepo()
	sender := &fakeSender{failWith: map[string]error{
		"dead-token": fmt.Errorf("send to dead-token...: %w", fcm.ErrInvalidToken),
	}}
	uc := NewPushUsecase(repo, sender)
	uc.RegisterToken("alice", "dead-token", "web", "")

	err := uc.Deliver("alice", activitydomain.ActivityDailyPost, "msg", "daily-1")
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}

	if repo.has("dead-token") {
		t.Error("permanently invalid token should have been pruned")
	}
}

func TestDeliverKeepsTokenOnTransientFailure(t *testing.T) {
	repo := newFakeTokenRepo()
	sender := &fakeSender{failWith: map[string]error{
		"token-1": errors.New("deadline exceeded"),
	}}
	uc := NewPushUsecase(repo, sender)
	uc.RegisterToken("alice", "token-1", "web", "")

	if err := uc.Deliver("alice", activitydomain.ActivityComment, "msg", ""); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	if !repo.has("token-1") {
		t.Error("transient failure must not prune the token")
	}
}

func TestDeliverTouchesTokenOnSuccess(t *testing.T) {
	repo := newFakeTokenRepo()
	sender := &fakeSender{}
	uc := NewPushUsecase(repo, sender)
	uc.RegisterToken("alice", "token-1", "web", "")

	old := time.Now().Add(-48 * time.Hour)
	repo.mu.Lock()
	stored := repo.tokens["token-1"]
	stored.LastUsedAt = old
	repo.tokens["token-1"] = stored
	repo.mu.Unlock()

	if err := uc.Deliver("alice", activitydomain.ActivityWishAdded, "msg", "wish-1"); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	repo.mu.Lock()
	lastUsed := repo.tokens["token-1"].LastUsedAt
	repo.mu.Unlock()
	if !lastUsed.After(old) {
		t.Error("delivery should refresh last_used_at")
	}
}

func TestBroadcastExceptSkipsExcludedUser(t *testing.T) {
	repo := newFakeTokenRepo()
	sender := &fakeSender{}
	uc := NewPushUsecase(repo, sender)
	uc.RegisterToken("alice", "token-a", "web", "")
	uc.RegisterToken("bob", "token-b", "web", "")
	uc.RegisterToken("carol", "token-c", "web", "")

	uc.BroadcastExcept("alice", "title", "body", "/medicine", nil)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.sent) != 2 {
		t.Fatalf("provider calls = %d, want 2", len(sender.sent))
	}
	for _, token := range sender.sent {
		if token == "token-a" {
			t.Error("excluded user's token must not be pushed")
		}
	}
}

func TestStartRetentionSweeperEvictsStaleTokens(t *testing.T) {
	repo := newFakeTokenRepo()
	uc := NewPushUsecase(repo, &fakeSender{})

	repo.Save(&notifdomain.DeviceToken{
		Token:      "stale",
		UserID:     "alice",
		LastUsedAt: time.Now().Add(-200 * 24 * time.Hour),
	})
	repo.Save(&notifdomain.DeviceToken{
		Token:      "fresh",
		UserID:     "bob",
		LastUsedAt: time.Now(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	uc.StartRetentionSweeper(ctx, 10*time.Millisecond, 90*24*time.Hour)

	deadline := time.Now().Add(2 * time.Second)
	for repo.has("stale") && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if repo.has("stale") {
		t.Error("stale token should have been evicted")
	}
	if !repo.has("fresh") {
		t.Error("fresh token must survive the sweep")
	}
}

func TestRenderTargetMapsActivityTypes(t *testing.T) {
	tests := []struct {
		activityType activitydomain.ActivityType
		wantEmoji    string
		wantURL      string
	}{
		{activitydomain.ActivityMedicineTaken, "💊", "/medicine?tab=healthTab"},
		{activitydomain.ActivityMealUploaded, "🍽️", "/medicine?tab=healthTab"},
		{activitydomain.ActivityDailyPost, "📸", "/medicine?tab=dailyTab&dailyId=ref-1"},
		{activitydomain.ActivityDailyComment, "💬", "/medicine?tab=dailyTab&dailyId=ref-1"},
		{activitydomain.ActivityDailyLike, "❤️", "/medicine?tab=dailyTab&dailyId=ref-1"},
		{activitydomain.ActivityWishAdded, "⭐", "/medicine?tab=wishTab&wishId=ref-1"},
		{activitydomain.ActivityScheduleAdded, "📅", "/medicine?tab=wishTab&wishId=ref-1"},
		{activitydomain.ActivityComment, "💬", "/medicine?tab=homeTab"},
		{activitydomain.ActivityCommentReply, "💬", "/medicine?tab=homeTab"},
		{activitydomain.ActivityProfileUpdated, "👤", "/medicine?tab=profileTab"},
		{activitydomain.ActivityType("SOMETHING_NEW"), "🔔", "/medicine?tab=activityTab"},
	}

	for _, tt := range tests {
		got := RenderTarget(tt.activityType, "메시지", "ref-1")
		if !strings.HasPrefix(got.Title, tt.wantEmoji) {
			t.Errorf("%s: title %q does not start with %q", tt.activityType, got.Title, tt.wantEmoji)
		}
		if got.Link != tt.wantURL {
			t.Errorf("%s: url = %q, want %q", tt.activityType, got.Link, tt.wantURL)
		}
		if got.Body != "메시지" {
			t.Errorf("%s: body = %q, want the activity message", tt.activityType, got.Body)
		}
		if got.Data["activityType"] != string(tt.activityType) {
			t.Errorf("%s: data.activityType = %q", tt.activityType, got.Data["activityType"])
		}
	}
}

func TestRenderTargetOmitsEmptyReference(t *testing.T) {
	got := RenderTarget(activitydomain.ActivityDailyPost, "msg", "")
	if got.Link != "/medicine?tab=dailyTab" {
		t.Errorf("url = %q, want bare tab link", got.Link)
	}
	if _, ok := got.Data["referenceId"]; ok {
		t.Error("empty reference must not appear in data payload")
	}
}
