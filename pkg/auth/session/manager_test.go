package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprintf("%v", value)
	return nil
}

func (m *mockStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (m *mockStore) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) AccessSessionKey(accessID string) string {
	return "sess:" + accessID
}

func newTestManager() (*Manager, *mockStore) {
	store := newMockStore()
	return &Manager{store: store, keyer: store, ttl: time.Hour}, store
}

func TestGenerateStoresToken(t *testing.T) {
	mgr, store := newTestManager()
	ctx := context.Background()

	accessID := NewAccessID()
	token, err := mgr.Generate(ctx, accessID)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Generate returned empty token")
	}

	stored, err := store.Get(ctx, store.AccessSessionKey(accessID))
	if err != nil {
		t.Fatalf("session was not persisted: %v", err)
	}
	if stored != token {
		t.Fatalf("stored token mismatch: %q vs %q", stored, token)
	}
}

func TestGenerateRequiresAccessID(t *testing.T) {
	mgr, _ := newTestManager()
	if _, err := mgr.Generate(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank access id")
	}
}

func TestRotateReplacesSession(t *testing.T) {
	mgr, store := newTestManager()
	ctx := context.Background()

	oldID := NewAccessID()
	oldToken, err := mgr.Generate(ctx, oldID)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	newID, newToken, err := mgr.Rotate(ctx, oldID, oldToken)
	if err != nil {
		t.Fatalf("Rotate returned error: %v", err)
	}
	if newID == oldID {
		t.Fatal("Rotate should issue a fresh access id")
	}
	if newToken == oldToken {
		t.Fatal("Rotate should issue a fresh refresh token")
	}

	// Old session must be gone, new session live.
	if _, err := store.Get(ctx, store.AccessSessionKey(oldID)); err != redislib.Nil {
		t.Fatalf("expected old session removed, got err=%v", err)
	}
	ok, err := mgr.HasSession(ctx, newID)
	if err != nil || !ok {
		t.Fatalf("new session not active: ok=%v err=%v", ok, err)
	}
}

func TestRotateRejectsWrongToken(t *testing.T) {
	mgr, _ := newTestManager()
	ctx := context.Background()

	accessID := NewAccessID()
	if _, err := mgr.Generate(ctx, accessID); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, _, err := mgr.Rotate(ctx, accessID, "forged-token"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}

	// A failed rotation must not revoke the current session.
	ok, err := mgr.HasSession(ctx, accessID)
	if err != nil || !ok {
		t.Fatalf("session should survive failed rotation: ok=%v err=%v", ok, err)
	}
}

func TestRotateUnknownSession(t *testing.T) {
	mgr, _ := newTestManager()
	if _, _, err := mgr.Rotate(context.Background(), NewAccessID(), "whatever"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	mgr, _ := newTestManager()
	ctx := context.Background()

	accessID := NewAccessID()
	if _, err := mgr.Generate(ctx, accessID); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if err := mgr.Revoke(ctx, accessID); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}

	ok, err := mgr.HasSession(ctx, accessID)
	if err != nil {
		t.Fatalf("HasSession returned error: %v", err)
	}
	if ok {
		t.Fatal("session should be gone after revoke")
	}
}
