package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/arunika/internal/common"
)

// Login prompts for email and password and starts a session. A mismatch is
// returned as ErrInvalidCredentials; the caller may prompt again.
func (a *App) Login(ctx context.Context) error {
	if a.lms.Shared() {
		a.println("Shared sessions do not log in")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	a.println(mutedStyle.Render("Verifying..."))
	if err := a.lms.Login(ctx, email, password); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return err
		}
		// The session is live even when persisting it failed.
		a.log.Warn(ctx, "login not persisted", "error", err)
	}

	s := a.lms.Session()
	a.println(doneStyle.Render("Logged in as " + s.Username + " (" + string(s.Role) + ")"))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.lms.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout not persisted", "error", err)
	}
	a.println("Logged out")
	return nil
}
