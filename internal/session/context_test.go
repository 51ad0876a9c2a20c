package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

func TestContext_LoadingUntilFirstChange(t *testing.T) {
	t.Parallel()

	c := newContext("sid-1")
	require.True(t, c.Loading())

	_, ok := c.Current()
	require.False(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, err := c.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	c.apply(&entity.Session{ID: "sid-1", Email: "user@example.com"})
	require.False(t, c.Loading())

	sess, ok, err := c.Wait(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "user@example.com", sess.Email)
}

func TestContext_SignOut(t *testing.T) {
	t.Parallel()

	c := newContext("sid-1")
	c.apply(&entity.Session{Email: "user@example.com"})
	c.apply(nil)

	_, ok := c.Current()
	require.False(t, ok)
	require.False(t, c.Loading())
}

func TestContext_InitialDoesNotOverrideChange(t *testing.T) {
	t.Parallel()

	c := newContext("sid-1")
	c.apply(&entity.Session{Email: "fresh@example.com"})
	c.applyInitial(nil)

	sess, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, "fresh@example.com", sess.Email)
}

func TestAnonymous(t *testing.T) {
	t.Parallel()

	c := Anonymous("sid-2")
	require.False(t, c.Loading())
	require.Equal(t, "sid-2", c.ID())

	_, ok, err := c.Wait(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	_, ok := FromContext(context.Background())
	require.False(t, ok)

	c := Anonymous("sid-3")
	got, ok := FromContext(WithContext(context.Background(), c))
	require.True(t, ok)
	require.Same(t, c, got)
}
