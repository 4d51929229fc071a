package repository

import (
	"testing"
	"time"

	notifdomain "hongddo-backend/internal/notification/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) DeviceTokenRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&notifdomain.DeviceToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewDeviceTokenRepository(db)
}

func saveToken(t *testing.T, repo DeviceTokenRepository, token, userID string, lastUsed time.Time) {
	t.Helper()
	err := repo.Save(&notifdomain.DeviceToken{
		Token:        token,
		UserID:       userID,
		Platform:     "web",
		RegisteredAt: lastUsed,
		LastUsedAt:   lastUsed,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestSaveAndFindByUserID(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now()

	saveToken(t, repo, "token-a", "alice", now)
	saveToken(t, repo, "token-b", "bob", now)

	tokens, err := repo.FindByUserID("alice")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Token != "token-a" {
		t.Errorf("got %+v, want alice's single token", tokens)
	}
}

func TestSaveReassignsTokenToNewUser(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now()

	// Same browser profile, new login: the token row moves to the new user
	// instead of duplicating.
	saveToken(t, repo, "token-a", "alice", now)
	saveToken(t, repo, "token-a", "bob", now)

	aliceTokens, _ := repo.FindByUserID("alice")
	if len(aliceTokens) != 0 {
		t.Errorf("alice still owns %d tokens, want 0", len(aliceTokens))
	}
	bobTokens, _ := repo.FindByUserID("bob")
	if len(bobTokens) != 1 {
		t.Errorf("bob owns %d tokens, want 1", len(bobTokens))
	}
}

func TestDeleteMissingTokenIsNoError(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Delete("no-such-token"); err != nil {
		t.Errorf("delete of absent token: %v", err)
	}
}

func TestTouchRefreshesLastUsed(t *testing.T) {
	repo := newTestRepo(t)
	old := time.Now().Add(-48 * time.Hour)

	saveToken(t, repo, "token-a", "alice", old)
	if err := repo.Touch("token-a"); err != nil {
		t.Fatalf("touch: %v", err)
	}

	tokens, _ := repo.FindByUserID("alice")
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	if !tokens[0].LastUsedAt.After(old) {
		t.Error("touch did not refresh last_used_at")
	}
}

func TestDeleteStaleEvictsByLastUsed(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now()

	saveToken(t, repo, "stale", "alice", now.Add(-120*24*time.Hour))
	saveToken(t, repo, "fresh", "bob", now)

	count, err := repo.DeleteStale(now.Add(-90 * 24 * time.Hour))
	if err != nil {
		t.Fatalf("delete stale: %v", err)
	}
	if count != 1 {
		t.Errorf("evicted = %d, want 1", count)
	}

	all, _ := repo.FindAll()
	if len(all) != 1 || all[0].Token != "fresh" {
		t.Errorf("remaining tokens = %+v, want only the fresh one", all)
	}
}
