package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

const (
	// PathDashboard is where an email/password login lands.
	PathDashboard = "/dashboard"
	// PathEntry is where federated login and registration land. The guarded
	// entry forwards signed-in sessions to the dashboard from there.
	PathEntry = "/"
)

// Login signs in with email and password. The provider receives the salted
// HMAC of the password as typed, never the password itself.
func (s *Service) Login(ctx context.Context, sid, email, password string) (string, error) {
	email = strings.TrimSpace(email)

	err := ValidateEmail(email)
	if err != nil {
		return "", err
	}

	identity, err := s.identity.SignInWithPassword(ctx, email, s.hasher.Hash(password))
	if err != nil {
		return "", fmt.Errorf("sign in: %w", err)
	}

	_, err = s.sessions.SignIn(ctx, sid, identity)
	if err != nil {
		return "", fmt.Errorf("establish session: %w", err)
	}

	return PathDashboard, nil
}

func (s *Service) FederatedAuthURL(state string) string {
	return s.identity.FederatedAuthURL(state)
}

// LoginFederated completes the federated flow with the provider's authorization code.
func (s *Service) LoginFederated(ctx context.Context, sid, code string) (string, error) {
	identity, err := s.identity.SignInWithFederatedCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("federated sign in: %w", err)
	}

	_, err = s.sessions.SignIn(ctx, sid, identity)
	if err != nil {
		return "", fmt.Errorf("establish session: %w", err)
	}

	return PathEntry, nil
}

// Register creates an account after checking the registration PIN.
// A wrong PIN makes no provider call.
func (s *Service) Register(ctx context.Context, sid, email, password, pin string) (string, error) {
	if !s.hasher.Matches(pin, s.pinHash) {
		return "", entity.ErrPINInvalid
	}

	email = strings.TrimSpace(email)

	err := ValidateEmail(email)
	if err != nil {
		return "", err
	}

	identity, err := s.identity.SignUp(ctx, email, s.hasher.Hash(password))
	if err != nil {
		return "", fmt.Errorf("sign up: %w", err)
	}

	_, err = s.sessions.SignIn(ctx, sid, identity)
	if err != nil {
		return "", fmt.Errorf("establish session: %w", err)
	}

	return PathEntry, nil
}

func (s *Service) Logout(ctx context.Context, sid string) error {
	err := s.sessions.SignOut(ctx, sid)
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}

	s.workspaces.Drop(sid)

	return nil
}

// DropWorkspaces forgets the table state of closed browser sessions.
func (s *Service) DropWorkspaces(sids ...string) {
	s.workspaces.Drop(sids...)
}

// DropIdleWorkspaces forgets workspaces unused since before deadline.
func (s *Service) DropIdleWorkspaces(deadline time.Time) int {
	return s.workspaces.DropIdle(deadline)
}
