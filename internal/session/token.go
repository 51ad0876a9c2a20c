package session

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

const issuer = "olsoftware-dashboard"

// Tokens signs and verifies the session cookie. The token ID is the browser session ID.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

func (t *Tokens) Issue(sid string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(t.ttl)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        sid,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}

	return token, expiresAt, nil
}

// Parse returns the session ID carried by a valid token.
func (t *Tokens) Parse(token string) (string, error) {
	var claims jwt.RegisteredClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return t.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("session token expired: %w", entity.ErrUnauthorized)
		}

		return "", fmt.Errorf("parse session token: %w", err)
	}

	if !parsed.Valid || claims.ID == "" {
		return "", fmt.Errorf("invalid session token: %w", entity.ErrUnauthorized)
	}

	return claims.ID, nil
}
