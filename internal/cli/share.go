package cli

import (
	"context"
	"strings"
)

// Share issues a token for the active course, optionally narrowed to a
// lesson, prints the link and copies it to the clipboard.
func (a *App) Share(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usage("share [lessonId]")
	}
	c, err := a.lms.ActiveCourse()
	if err != nil {
		return usage("open a course first")
	}
	lessonID := ""
	if len(args) == 1 {
		lessonID = args[0]
	}

	t, link, err := a.lms.CreateShare(ctx, c.ID, lessonID)
	if err != nil && t.Token == "" {
		return err
	}
	if err != nil {
		a.log.Warn(ctx, "share token not persisted", "error", err)
	}

	a.println("Token: " + t.Token)
	a.println("Link:  " + link)
	if a.copy(ctx, link) {
		a.println(doneStyle.Render("Link copied"))
	}
	return nil
}

// Tokens lists issued tokens, for one course when an id is given.
func (a *App) Tokens(ctx context.Context, args []string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	tokens := a.lms.ShareTokens()
	if len(args) == 1 {
		tokens = a.lms.ShareTokensFor(args[0])
	}
	a.println(renderTokens(tokens, a.lms.TokenActive))
	return nil
}

func (a *App) Revoke(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("revoke <token>")
	}
	if err := a.lms.RevokeShare(ctx, strings.TrimSpace(args[0])); err != nil {
		return err
	}
	a.println("Token revoked")
	return nil
}
