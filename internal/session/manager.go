package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

var ErrAlreadySubscribed = errors.New("browser session already subscribed")

// Listener receives every identity change of one browser session. nil means signed out.
type Listener func(sess *entity.Session)

type Store interface {
	Load(ctx context.Context, sid string) (entity.Session, error)
	Save(ctx context.Context, sess entity.Session) error
	Delete(ctx context.Context, sid string) error
}

type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (entity.Identity, error)
}

// Manager publishes identity changes and keeps the open Contexts.
type Manager struct {
	store     Store
	refresher Refresher
	idleTTL   time.Duration

	mu        sync.Mutex
	contexts  map[string]*Context
	listeners map[string]Listener
}

func NewManager(store Store, refresher Refresher, idleTTL time.Duration) *Manager {
	return &Manager{
		store:     store,
		refresher: refresher,
		idleTTL:   idleTTL,
		contexts:  make(map[string]*Context),
		listeners: make(map[string]Listener),
	}
}

func NewID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// subscribeLocked registers the listener of a browser session. Only one is allowed per session.
func (m *Manager) subscribeLocked(sid string, l Listener) error {
	if _, ok := m.listeners[sid]; ok {
		return ErrAlreadySubscribed
	}

	m.listeners[sid] = l

	return nil
}

// Open returns the Context of sid. A new Context is subscribed and its persisted
// state is restored in the background.
func (m *Manager) Open(ctx context.Context, sid string) *Context {
	m.mu.Lock()

	if c, ok := m.contexts[sid]; ok {
		m.mu.Unlock()
		c.touch()

		return c
	}

	c := newContext(sid)

	// contexts and listeners only change together under mu
	err := m.subscribeLocked(sid, c.apply)
	if err != nil {
		m.mu.Unlock()
		slog.ErrorContext(ctx, "subscribe browser session", "error", err)

		return Anonymous(sid)
	}

	m.contexts[sid] = c
	m.mu.Unlock()

	go m.restore(context.WithoutCancel(ctx), sid)

	return c
}

func (m *Manager) restore(ctx context.Context, sid string) {
	sess, err := m.store.Load(ctx, sid)
	if err != nil {
		if !errors.Is(err, entity.ErrNoSession) {
			slog.ErrorContext(ctx, "restore session", "error", err)
		}

		m.initial(sid, nil)

		return
	}

	if sess.Expired(time.Now()) {
		sess, err = m.refresh(ctx, sess)
		if err != nil {
			slog.WarnContext(ctx, "refresh session", "error", err)

			err = m.store.Delete(ctx, sid)
			if err != nil {
				slog.ErrorContext(ctx, "delete session", "error", err)
			}

			m.initial(sid, nil)

			return
		}
	}

	m.initial(sid, &sess)
}

func (m *Manager) initial(sid string, sess *entity.Session) {
	m.mu.Lock()
	c := m.contexts[sid]
	m.mu.Unlock()

	if c != nil {
		c.applyInitial(sess)
	}
}

func (m *Manager) refresh(ctx context.Context, sess entity.Session) (entity.Session, error) {
	if sess.RefreshToken == "" {
		return entity.Session{}, entity.ErrNoSession
	}

	identity, err := m.refresher.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		return entity.Session{}, fmt.Errorf("refresh token: %w", err)
	}

	sess = sess.Refreshed(identity)

	err = m.store.Save(ctx, sess)
	if err != nil {
		return entity.Session{}, fmt.Errorf("save session: %w", err)
	}

	return sess, nil
}

// SignIn establishes a session for sid and announces it. A browser session
// not opened yet gets its Context here, already signed in.
func (m *Manager) SignIn(ctx context.Context, sid string, identity entity.Identity) (entity.Session, error) {
	sess := entity.NewSession(sid, identity)

	err := m.store.Save(ctx, sess)
	if err != nil {
		return entity.Session{}, fmt.Errorf("save session: %w", err)
	}

	m.mu.Lock()

	if _, ok := m.contexts[sid]; !ok {
		c := newContext(sid)
		if m.subscribeLocked(sid, c.apply) == nil {
			m.contexts[sid] = c
		}
	}

	m.mu.Unlock()

	m.notify(sid, &sess)

	return sess, nil
}

// Fresh returns sess with a valid provider token, refreshing and announcing it when expired.
func (m *Manager) Fresh(ctx context.Context, sess entity.Session) (entity.Session, error) {
	if !sess.Expired(time.Now()) {
		return sess, nil
	}

	sess, err := m.refresh(ctx, sess)
	if err != nil {
		return entity.Session{}, err
	}

	m.notify(sess.ID, &sess)

	return sess, nil
}

func (m *Manager) SignOut(ctx context.Context, sid string) error {
	err := m.store.Delete(ctx, sid)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	m.notify(sid, nil)

	return nil
}

// Close retires a browser session ID: its stored session is dropped, its Context
// sees the sign-out and is forgotten.
func (m *Manager) Close(ctx context.Context, sid string) error {
	err := m.store.Delete(ctx, sid)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	m.notify(sid, nil)

	m.mu.Lock()
	delete(m.contexts, sid)
	delete(m.listeners, sid)
	m.mu.Unlock()

	return nil
}

func (m *Manager) notify(sid string, sess *entity.Session) {
	m.mu.Lock()
	l := m.listeners[sid]
	m.mu.Unlock()

	if l != nil {
		l(sess)
	}
}

// Sweep closes Contexts not used for longer than the idle TTL and returns their IDs.
func (m *Manager) Sweep(_ context.Context) []string {
	deadline := time.Now().Add(-m.idleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	var closed []string

	for sid, c := range m.contexts {
		if c.Loading() || c.idleSince().After(deadline) {
			continue
		}

		delete(m.contexts, sid)
		delete(m.listeners, sid)

		closed = append(closed, sid)
	}

	return closed
}
