package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

// Context is the view one browser session has of the current identity.
// It stays loading until the first identity change is delivered to it.
type Context struct {
	id string

	mu      sync.RWMutex
	session *entity.Session

	ready     chan struct{}
	readyOnce sync.Once

	lastSeen atomic.Int64
}

func newContext(id string) *Context {
	c := &Context{
		id:    id,
		ready: make(chan struct{}),
	}
	c.touch()

	return c
}

// Anonymous returns a ready Context without a session.
func Anonymous(id string) *Context {
	c := newContext(id)
	c.apply(nil)

	return c
}

func (c *Context) ID() string {
	return c.id
}

func (c *Context) Loading() bool {
	select {
	case <-c.ready:
		return false
	default:
		return true
	}
}

// Current returns the session without waiting. ok is false while loading or signed out.
func (c *Context) Current() (entity.Session, bool) {
	if c.Loading() {
		return entity.Session{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.session == nil {
		return entity.Session{}, false
	}

	return *c.session, true
}

// Wait blocks until the initial state is known and returns the session, if any.
func (c *Context) Wait(ctx context.Context) (entity.Session, bool, error) {
	select {
	case <-ctx.Done():
		return entity.Session{}, false, ctx.Err()
	case <-c.ready:
	}

	sess, ok := c.Current()

	return sess, ok, nil
}

// apply is the identity-change listener of this browser session.
func (c *Context) apply(sess *entity.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setLocked(sess)
}

// applyInitial reports the restored state unless a change already arrived.
func (c *Context) applyInitial(sess *entity.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.Loading() {
		return
	}

	c.setLocked(sess)
}

func (c *Context) setLocked(sess *entity.Session) {
	if sess != nil {
		cp := *sess
		c.session = &cp
	} else {
		c.session = nil
	}

	c.readyOnce.Do(func() { close(c.ready) })
}

func (c *Context) touch() {
	c.lastSeen.Store(time.Now().UnixNano())
}

func (c *Context) idleSince() time.Time {
	return time.Unix(0, c.lastSeen.Load())
}

type ctxKey struct{}

func WithContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

func FromContext(ctx context.Context) (*Context, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Context)
	return c, ok
}
