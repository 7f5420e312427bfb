package router

import (
	"context"
	"time"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/models"
)

type account struct {
	password string
	role     models.Role
}

// Authenticator checks credentials against the two built-in accounts.
// Passwords are compared in plain text; this is a demo gate, not security.
type Authenticator struct {
	delay    time.Duration
	accounts map[string]account
}

// NewAuthenticator waits delay before answering every attempt.
func NewAuthenticator(delay time.Duration) *Authenticator {
	return &Authenticator{
		delay: delay,
		accounts: map[string]account{
			"admin1@arunika.com": {password: "123456", role: models.RoleAdmin},
			"user@arunika.com":   {password: "123456", role: models.RolePublic},
		},
	}
}

// Authenticate returns a logged-in session for a matching pair and
// ErrInvalidCredentials otherwise.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (models.UserSession, error) {
	if a.delay > 0 {
		t := time.NewTimer(a.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return models.UserSession{}, ctx.Err()
		case <-t.C:
		}
	}

	acc, ok := a.accounts[email]
	if !ok || acc.password != password {
		return models.UserSession{}, common.ErrInvalidCredentials
	}
	return models.UserSession{Username: email, Role: acc.role, IsLoggedIn: true}, nil
}
