package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/smoralesusma/olsoftware-dashboard/internal/session"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/config"
)

const (
	stateCookieName = "olsoftware_federated_state"
	stateCookiePath = "/api/auth/federated"
	stateCookieTTL  = 10 * time.Minute
)

// Cookies issues the browser session cookie and the federated state cookie.
type Cookies struct {
	tokens *session.Tokens
	cfg    config.SessionConfig
}

func NewCookies(tokens *session.Tokens, cfg config.SessionConfig) *Cookies {
	return &Cookies{
		tokens: tokens,
		cfg:    cfg,
	}
}

// SessionID returns the browser session ID of a valid session cookie.
func (c *Cookies) SessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(c.cfg.CookieName)
	if err != nil {
		return "", err
	}

	return c.tokens.Parse(cookie.Value)
}

func (c *Cookies) SetSession(w http.ResponseWriter, sid string) error {
	token, expiresAt, err := c.tokens.Issue(sid)
	if err != nil {
		return fmt.Errorf("issue session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   c.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (c *Cookies) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *Cookies) SetState(w http.ResponseWriter, state string) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     stateCookiePath,
		MaxAge:   int(stateCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *Cookies) State(r *http.Request) string {
	cookie, err := r.Cookie(stateCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func (c *Cookies) ClearState(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     stateCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
