package usecase

import (
	"errors"
	"sort"
	"sync"
	"testing"

	activitydomain "hongddo-backend/internal/activity/domain"
)

type fakeActivityRepo struct {
	mu      sync.Mutex
	created []*activitydomain.Activity
	failFor map[string]bool
}

func (f *fakeActivityRepo) Create(activity *activitydomain.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[activity.RecipientID] {
		return errors.New("persist failed")
	}
	f.created = append(f.created, activity)
	return nil
}

func (f *fakeActivityRepo) FindByRecipient(recipientID string, limit int) ([]activitydomain.Activity, error) {
	return nil, nil
}

func (f *fakeActivityRepo) DeleteByIDAndRecipient(id, recipientID string) (int64, error) {
	return 0, nil
}

func (f *fakeActivityRepo) DeleteByRecipient(recipientID string) (int64, error) {
	return 0, nil
}

func (f *fakeActivityRepo) CountByRecipient(recipientID string) (int64, error) {
	return 0, nil
}

func (f *fakeActivityRepo) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.created))
	for _, a := range f.created {
		out = append(out, a.RecipientID)
	}
	sort.Strings(out)
	return out
}

type fakeResolver struct {
	recipients []string
	err        error
}

func (f *fakeResolver) Recipients(actorID string) ([]string, error) {
	return f.recipients, f.err
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []interface{}
}

func (f *fakeBroadcaster) BroadcastActivity(activity interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, activity)
}

func (f *fakeBroadcaster) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

type fakePusher struct {
	mu        sync.Mutex
	delivered []string
	failFor   map[string]bool
}

func (f *fakePusher) Deliver(recipientID string, activityType activitydomain.ActivityType, message, referenceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[recipientID] {
		return errors.New("push failed")
	}
	f.delivered = append(f.delivered, recipientID)
	return nil
}

func (f *fakePusher) recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]string(nil), f.delivered...)
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNotifyFansOutToEveryRecipient(t *testing.T) {
	repo := &fakeActivityRepo{}
	broadcaster := &fakeBroadcaster{}
	pusher := &fakePusher{}
	uc := NewActivityUsecase(repo, &fakeResolver{recipients: []string{"bob", "carol"}}, broadcaster, pusher)

	uc.Notify("alice", "앨리스", activitydomain.ActivityDailyPost, "앨리스님이 일상을 남겼습니다", "daily-1")

	want := []string{"bob", "carol"}
	if got := repo.recipients(); !equalStrings(got, want) {
		t.Errorf("persisted recipients = %v, want %v", got, want)
	}
	if got := pusher.recipients(); !equalStrings(got, want) {
		t.Errorf("pushed recipients = %v, want %v", got, want)
	}
	if broadcaster.count() != 2 {
		t.Errorf("broadcast count = %d, want 2", broadcaster.count())
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, a := range repo.created {
		if a.ActorID != "alice" || a.ActivityType != activitydomain.ActivityDailyPost {
			t.Errorf("unexpected activity record: %+v", a)
		}
		if a.IsRead {
			t.Error("new activity must not be marked read")
		}
	}
}

func TestNotifySuppressesSelfNotification(t *testing.T) {
	repo := &fakeActivityRepo{}
	pusher := &fakePusher{}
	// The resolver should already exclude the actor, but a record keyed to the
	// actor must never be created even if it slips through.
	uc := NewActivityUsecase(repo, &fakeResolver{recipients: []string{"alice", "bob"}}, &fakeBroadcaster{}, pusher)

	uc.Notify("alice", "앨리스", activitydomain.ActivityWishAdded, "msg", "wish-1")

	want := []string{"bob"}
	if got := repo.recipients(); !equalStrings(got, want) {
		t.Errorf("persisted recipients = %v, want %v", got, want)
	}
	if got := pusher.recipients(); !equalStrings(got, want) {
		t.Errorf("pushed recipients = %v, want %v", got, want)
	}
}

func TestNotifyResolverFailureIsQuiet(t *testing.T) {
	repo := &fakeActivityRepo{}
	pusher := &fakePusher{}
	uc := NewActivityUsecase(repo, &fakeResolver{err: errors.New("db down")}, &fakeBroadcaster{}, pusher)

	uc.Notify("alice", "앨리스", activitydomain.ActivityComment, "msg", "")

	if len(repo.recipients()) != 0 || len(pusher.recipients()) != 0 {
		t.Error("nothing should be delivered when recipients cannot be resolved")
	}
}

func TestNotifyRecipientChainsAreIndependent(t *testing.T) {
	repo := &fakeActivityRepo{failFor: map[string]bool{"bob": true}}
	broadcaster := &fakeBroadcaster{}
	pusher := &fakePusher{failFor: map[string]bool{"carol": true}}
	uc := NewActivityUsecase(repo, &fakeResolver{recipients: []string{"bob", "carol", "dave"}}, broadcaster, pusher)

	uc.Notify("alice", "앨리스", activitydomain.ActivityDailyLike, "msg", "daily-1")

	// bob's persist fails but his broadcast and push still happen; carol's
	// push fails but her record is stored.
	if got, want := repo.recipients(), []string{"carol", "dave"}; !equalStrings(got, want) {
		t.Errorf("persisted recipients = %v, want %v", got, want)
	}
	if got, want := pusher.recipients(), []string{"bob", "dave"}; !equalStrings(got, want) {
		t.Errorf("pushed recipients = %v, want %v", got, want)
	}
	if broadcaster.count() != 3 {
		t.Errorf("broadcast count = %d, want 3", broadcaster.count())
	}
}

func TestNotifyNoRecipientsIsNoOp(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewActivityUsecase(repo, &fakeResolver{}, &fakeBroadcaster{}, &fakePusher{})

	uc.Notify("alice", "앨리스", activitydomain.ActivityProfileUpdated, "msg", "")

	if len(repo.recipients()) != 0 {
		t.Error("no records expected for an empty household")
	}
}

func TestListForUserClampsLimit(t *testing.T) {
	calls := []int{}
	repo := &limitRecordingRepo{limits: &calls}
	uc := NewActivityUsecase(repo, &fakeResolver{}, &fakeBroadcaster{}, &fakePusher{})

	uc.ListForUser("bob", 0)
	uc.ListForUser("bob", 500)
	uc.ListForUser("bob", 10)

	want := []int{50, 50, 10}
	for i, limit := range calls {
		if limit != want[i] {
			t.Errorf("call %d used limit %d, want %d", i, limit, want[i])
		}
	}
}

type limitRecordingRepo struct {
	fakeActivityRepo
	limits *[]int
}

func (r *limitRecordingRepo) FindByRecipient(recipientID string, limit int) ([]activitydomain.Activity, error) {
	*r.limits = append(*r.limits, limit)
	return nil, nil
}
