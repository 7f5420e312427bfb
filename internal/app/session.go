package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/dmitrijs2005/arunika/internal/router"
)

func (a *App) Screen() router.Screen { return a.router.Screen() }

func (a *App) State() router.State { return a.router.State() }

func (a *App) Session() models.UserSession { return a.router.State().Session }

// Login checks the credentials and, on success, starts a session on the
// dashboard. A failed attempt leaves the current session unchanged.
func (a *App) Login(ctx context.Context, email, password string) error {
	s, err := a.auth.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.log.Info(ctx, "login rejected", "user", email)
		}
		return err
	}
	a.router.Login(s)
	a.log.Info(ctx, "logged in", "user", s.Username, "role", s.Role)

	return errors.Join(a.syncer.Session(ctx, s), a.syncViewPointers(ctx))
}

// Logout clears the session and the view pointers. Catalog and progress
// are not per-user and stay as they are.
func (a *App) Logout(ctx context.Context) error {
	a.router.Logout()
	return errors.Join(a.syncer.Session(ctx, models.UserSession{}), a.syncViewPointers(ctx))
}

// SelectCourse opens the player on courseID. A shared session stays on its
// shared course.
func (a *App) SelectCourse(ctx context.Context, courseID string) error {
	if _, err := a.Course(courseID); err != nil {
		return err
	}
	if err := a.router.SelectCourse(courseID); err != nil {
		return err
	}
	return a.syncViewPointers(ctx)
}

// SelectLesson picks a lesson of the active course.
func (a *App) SelectLesson(ctx context.Context, lessonID string) error {
	st := a.router.State()
	if _, err := a.Lesson(st.ActiveCourse, lessonID); err != nil {
		return err
	}
	if err := a.router.SelectLesson(lessonID); err != nil {
		return err
	}
	return a.syncViewPointers(ctx)
}

func (a *App) OpenAdmin(ctx context.Context) error {
	if err := a.router.OpenAdmin(); err != nil {
		return fmt.Errorf("open admin: %w", err)
	}
	return a.syncViewPointers(ctx)
}

func (a *App) GoDashboard(ctx context.Context) error {
	if err := a.router.GoDashboard(); err != nil {
		return err
	}
	return a.syncViewPointers(ctx)
}

// ActiveCourse returns the course the player shows.
func (a *App) ActiveCourse() (models.Course, error) {
	return a.Course(a.router.State().ActiveCourse)
}

// ActiveLesson returns the selected lesson, or the first lesson of the
// active course when none is selected.
func (a *App) ActiveLesson() (models.Lesson, error) {
	c, err := a.ActiveCourse()
	if err != nil {
		return models.Lesson{}, err
	}
	st := a.router.State()
	if st.ActiveLesson != "" {
		if l, ok := c.LessonByID(st.ActiveLesson); ok {
			return l, nil
		}
	}
	if len(c.Lessons) == 0 {
		return models.Lesson{}, fmt.Errorf("course %s has no lessons: %w", c.ID, common.ErrNotFound)
	}
	return c.Lessons[0], nil
}

func (a *App) syncViewPointers(ctx context.Context) error {
	st := a.router.State()
	return a.syncer.ViewPointers(ctx, st.View, st.ActiveCourse, st.ActiveLesson)
}
