package app

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/dmitrijs2005/arunika/internal/router"
	"github.com/dmitrijs2005/arunika/internal/share"
)

// SharedView is what a share parameter grants: one course, optionally
// narrowed to one lesson.
type SharedView struct {
	Course   models.Course
	LessonID string
	// Token is set when the parameter matched an issued token rather than
	// a raw course id.
	Token *models.ShareToken
}

// Scoped returns the course with only the granted lesson when the view is
// narrowed to one.
func (v SharedView) Scoped() models.Course {
	c := v.Course.Clone()
	if v.LessonID == "" {
		return c
	}
	if l, ok := c.LessonByID(v.LessonID); ok {
		c.Lessons = []models.Lesson{l}
	} else {
		c.Lessons = []models.Lesson{}
	}
	return c
}

// ResolveShare maps a share parameter to the course it grants. The value is
// tried as a valid token first, then as a raw course id. Anything else,
// including expired tokens, is ErrNoAccess.
func (a *App) ResolveShare(value string) (SharedView, error) {
	if value == "" {
		return SharedView{}, common.ErrNoAccess
	}
	if t, ok := a.registry.Lookup(value); ok {
		c, err := a.catalog.Course(t.CourseID)
		if err != nil {
			return SharedView{}, common.ErrNoAccess
		}
		return SharedView{Course: c, LessonID: t.LessonID, Token: &t}, nil
	}
	if c, err := a.catalog.Course(value); err == nil {
		return SharedView{Course: c}, nil
	}
	return SharedView{}, common.ErrNoAccess
}

// Entry is the startup entry the app was built with.
func (a *App) Entry() router.Entry { return a.entry }

// SharedCourse resolves the share parameter the session started with.
func (a *App) SharedCourse() (SharedView, error) {
	return a.ResolveShare(a.entry.Share)
}

// PublicPreview returns a public course for the preview surface, narrowed
// to lessonID when it is given.
func (a *App) PublicPreview(courseID, lessonID string) (SharedView, error) {
	c, err := a.catalog.Course(courseID)
	if err != nil || !c.Public() {
		return SharedView{}, common.ErrNoAccess
	}
	if lessonID != "" {
		if _, ok := c.LessonByID(lessonID); !ok {
			return SharedView{}, common.ErrNoAccess
		}
	}
	return SharedView{Course: c, LessonID: lessonID}, nil
}

// CreateShare issues a token for the course and optional lesson and
// returns it with its link.
func (a *App) CreateShare(ctx context.Context, courseID, lessonID string) (models.ShareToken, string, error) {
	if err := a.guard(); err != nil {
		return models.ShareToken{}, "", err
	}
	if lessonID != "" {
		if _, err := a.catalog.Lesson(courseID, lessonID); err != nil {
			return models.ShareToken{}, "", err
		}
	} else if _, err := a.catalog.Course(courseID); err != nil {
		return models.ShareToken{}, "", err
	}

	t := a.registry.Create(courseID, lessonID)
	link, err := a.ShareLink(t.Token)
	if err != nil {
		return t, "", err
	}
	a.log.Info(ctx, "share token issued", "course", courseID, "lesson", lessonID)
	return t, link, a.syncer.ShareTokens(ctx, a.registry.List())
}

// ShareLink formats the link for token against the configured base URL.
func (a *App) ShareLink(token string) (string, error) {
	return share.Link(token, a.cfg.BaseURL)
}

func (a *App) ShareTokens() []models.ShareToken { return a.registry.List() }

// TokenActive reports whether t is unexpired by the app clock.
func (a *App) TokenActive(t models.ShareToken) bool { return t.ValidAt(a.now()) }

func (a *App) ShareTokensFor(courseID string) []models.ShareToken {
	return a.registry.ForCourse(courseID)
}

// RevokeShare deletes token locally. Links already handed out stop working
// on this store only.
func (a *App) RevokeShare(ctx context.Context, token string) error {
	if err := a.guard(); err != nil {
		return err
	}
	if !a.registry.Revoke(token) {
		return fmt.Errorf("token %s: %w", token, common.ErrNotFound)
	}
	return a.syncer.ShareTokens(ctx, a.registry.List())
}
