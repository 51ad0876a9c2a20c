package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
	"github.com/smoralesusma/olsoftware-dashboard/internal/session"
)

func TestTokens(t *testing.T) {
	t.Parallel()

	tokens := session.NewTokens("secret", time.Hour)

	token, expiresAt, err := tokens.Issue("sid-1")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	sid, err := tokens.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "sid-1", sid)

	_, err = session.NewTokens("other", time.Hour).Parse(token)
	require.Error(t, err)

	_, err = tokens.Parse("garbage")
	require.Error(t, err)
}

func TestTokens_Expired(t *testing.T) {
	t.Parallel()

	tokens := session.NewTokens("secret", -time.Minute)

	token, _, err := tokens.Issue("sid-1")
	require.NoError(t, err)

	_, err = tokens.Parse(token)
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}
