package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

type stubStore struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
	loadErr  error
	release  chan struct{}
}

func newStubStore() *stubStore {
	return &stubStore{sessions: make(map[string]entity.Session)}
}

func (s *stubStore) Load(_ context.Context, sid string) (entity.Session, error) {
	if s.release != nil {
		<-s.release
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadErr != nil {
		return entity.Session{}, s.loadErr
	}

	sess, ok := s.sessions[sid]
	if !ok {
		return entity.Session{}, entity.ErrNoSession
	}

	return sess, nil
}

func (s *stubStore) Save(_ context.Context, sess entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = sess

	return nil
}

func (s *stubStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sid)

	return nil
}

type stubRefresher struct {
	identity entity.Identity
	err      error
	calls    int
}

func (r *stubRefresher) Refresh(_ context.Context, _ string) (entity.Identity, error) {
	r.calls++
	return r.identity, r.err
}

func waitReady(t *testing.T, c *Context) (entity.Session, bool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	sess, ok, err := c.Wait(ctx)
	require.NoError(t, err)

	return sess, ok
}

func TestManager_OpenRestoresPersistedSession(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.sessions["sid-1"] = entity.Session{ID: "sid-1", Email: "user@example.com", ExpiresAt: time.Now().Add(time.Hour)}

	m := NewManager(store, &stubRefresher{}, time.Minute)

	c := m.Open(context.Background(), "sid-1")
	sess, ok := waitReady(t, c)
	require.True(t, ok)
	require.Equal(t, "user@example.com", sess.Email)

	require.Same(t, c, m.Open(context.Background(), "sid-1"))
}

func TestManager_OpenUnknownSession(t *testing.T) {
	t.Parallel()

	m := NewManager(newStubStore(), &stubRefresher{}, time.Minute)

	_, ok := waitReady(t, m.Open(context.Background(), "missing"))
	require.False(t, ok)
}

func TestManager_OpenStoreFailureReportsSignedOut(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.loadErr = errors.New("connection refused")

	m := NewManager(store, &stubRefresher{}, time.Minute)

	_, ok := waitReady(t, m.Open(context.Background(), "sid-1"))
	require.False(t, ok)
}

func TestManager_OpenRefreshesExpiredSession(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.sessions["sid-1"] = entity.Session{
		ID:           "sid-1",
		Email:        "user@example.com",
		IDToken:      "old",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}

	refresher := &stubRefresher{identity: entity.Identity{IDToken: "new", ExpiresAt: time.Now().Add(time.Hour)}}
	m := NewManager(store, refresher, time.Minute)

	sess, ok := waitReady(t, m.Open(context.Background(), "sid-1"))
	require.True(t, ok)
	require.Equal(t, "new", sess.IDToken)
	require.Equal(t, "refresh", sess.RefreshToken)
	require.Equal(t, 1, refresher.calls)
	require.Equal(t, "new", store.sessions["sid-1"].IDToken)
}

func TestManager_OpenRefreshFailureSignsOut(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.sessions["sid-1"] = entity.Session{ID: "sid-1", RefreshToken: "r", ExpiresAt: time.Now().Add(-time.Minute)}

	m := NewManager(store, &stubRefresher{err: errors.New("TOKEN_EXPIRED")}, time.Minute)

	_, ok := waitReady(t, m.Open(context.Background(), "sid-1"))
	require.False(t, ok)
	require.Empty(t, store.sessions)
}

func TestManager_SignInAndSignOutReachSubscriber(t *testing.T) {
	t.Parallel()

	m := NewManager(newStubStore(), &stubRefresher{}, time.Minute)

	c := m.Open(context.Background(), "sid-1")
	_, ok := waitReady(t, c)
	require.False(t, ok)

	sess, err := m.SignIn(context.Background(), "sid-1", entity.Identity{UID: "u1", Email: "user@example.com"})
	require.NoError(t, err)
	require.Equal(t, "sid-1", sess.ID)

	got, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, "u1", got.UID)

	require.NoError(t, m.SignOut(context.Background(), "sid-1"))

	_, ok = c.Current()
	require.False(t, ok)
}

func TestManager_SignInOpensContext(t *testing.T) {
	t.Parallel()

	m := NewManager(newStubStore(), &stubRefresher{}, time.Minute)

	_, err := m.SignIn(context.Background(), "sid-new", entity.Identity{UID: "u1", Email: "user@example.com"})
	require.NoError(t, err)

	c := m.Open(context.Background(), "sid-new")
	require.False(t, c.Loading())

	sess, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, "user@example.com", sess.Email)
}

func TestManager_Close(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	m := NewManager(store, &stubRefresher{}, time.Minute)

	_, err := m.SignIn(context.Background(), "sid-1", entity.Identity{UID: "u1", Email: "user@example.com"})
	require.NoError(t, err)

	c := m.Open(context.Background(), "sid-1")

	require.NoError(t, m.Close(context.Background(), "sid-1"))

	_, ok := c.Current()
	require.False(t, ok)

	store.mu.Lock()
	require.NotContains(t, store.sessions, "sid-1")
	store.mu.Unlock()

	reopened := m.Open(context.Background(), "sid-1")
	require.NotSame(t, c, reopened)

	_, ok = waitReady(t, reopened)
	require.False(t, ok)
}

func TestManager_SignInBeforeRestoreWins(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.release = make(chan struct{})

	m := NewManager(store, &stubRefresher{}, time.Minute)
	c := m.Open(context.Background(), "sid-1")

	_, err := m.SignIn(context.Background(), "sid-1", entity.Identity{Email: "user@example.com"})
	require.NoError(t, err)

	store.mu.Lock()
	delete(store.sessions, "sid-1")
	store.mu.Unlock()
	close(store.release)

	sess, ok := waitReady(t, c)
	require.True(t, ok)
	require.Equal(t, "user@example.com", sess.Email)
}

func TestManager_SingleSubscriptionPerBrowserSession(t *testing.T) {
	t.Parallel()

	m := NewManager(newStubStore(), &stubRefresher{}, time.Minute)
	m.Open(context.Background(), "sid-1")

	m.mu.Lock()
	err := m.subscribeLocked("sid-1", func(*entity.Session) {})
	m.mu.Unlock()

	require.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestManager_Fresh(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	refresher := &stubRefresher{identity: entity.Identity{IDToken: "new", ExpiresAt: time.Now().Add(time.Hour)}}
	m := NewManager(store, refresher, time.Minute)

	valid := entity.Session{ID: "sid-1", IDToken: "current", ExpiresAt: time.Now().Add(time.Hour)}

	got, err := m.Fresh(context.Background(), valid)
	require.NoError(t, err)
	require.Equal(t, "current", got.IDToken)
	require.Zero(t, refresher.calls)

	expired := entity.Session{ID: "sid-1", IDToken: "old", RefreshToken: "r", ExpiresAt: time.Now().Add(-time.Second)}

	got, err = m.Fresh(context.Background(), expired)
	require.NoError(t, err)
	require.Equal(t, "new", got.IDToken)
	require.Equal(t, 1, refresher.calls)
}

func TestManager_Sweep(t *testing.T) {
	t.Parallel()

	m := NewManager(newStubStore(), &stubRefresher{}, time.Minute)

	c := m.Open(context.Background(), "sid-1")
	waitReady(t, c)

	require.Empty(t, m.Sweep(context.Background()))

	c.lastSeen.Store(time.Now().Add(-time.Hour).UnixNano())

	require.Equal(t, []string{"sid-1"}, m.Sweep(context.Background()))

	m.mu.Lock()
	defer m.mu.Unlock()

	require.Empty(t, m.contexts)
	require.Empty(t, m.listeners)
}
