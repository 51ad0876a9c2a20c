package entity

import "time"

const (
	ProviderPassword  = "password"
	ProviderFederated = "federated"
)

// Identity is what the identity provider hands back on sign-in, sign-up or refresh.
type Identity struct {
	UID          string
	Email        string
	DisplayName  string
	Provider     string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// Session is the signed-in principal of one browser session.
type Session struct {
	ID           string    `json:"-"`
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName,omitempty"`
	Provider     string    `json:"provider"`
	IDToken      string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"-"`
}

func NewSession(id string, identity Identity) Session {
	return Session{
		ID:           id,
		UID:          identity.UID,
		Email:        identity.Email,
		DisplayName:  identity.DisplayName,
		Provider:     identity.Provider,
		IDToken:      identity.IDToken,
		RefreshToken: identity.RefreshToken,
		ExpiresAt:    identity.ExpiresAt,
	}
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Refreshed returns the session carrying the tokens of identity.
func (s Session) Refreshed(identity Identity) Session {
	s.IDToken = identity.IDToken
	if identity.RefreshToken != "" {
		s.RefreshToken = identity.RefreshToken
	}

	s.ExpiresAt = identity.ExpiresAt

	return s
}
