package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/dmitrijs2005/arunika/internal/router"
)

// Show renders the current screen.
func (a *App) Show(ctx context.Context) error {
	switch a.lms.Screen() {
	case router.ScreenPlayer:
		return a.showPlayer()
	case router.ScreenAdmin:
		return a.showAdmin()
	case router.ScreenDashboard:
		return a.Courses(ctx)
	}
	a.println(mutedStyle.Render("Logged out"))
	return nil
}

// Courses lists the catalog with per-course completion. A shared session
// only ever sees its shared course.
func (a *App) Courses(ctx context.Context) error {
	if a.lms.Shared() {
		if _, err := a.lms.SharedCourse(); err != nil {
			return err
		}
	}
	a.println(renderHeader(a.lms.Brand(), "dashboard"))
	a.println(renderDashboard(a.lms.Courses(), a.lms.Completion))
	return nil
}

func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("open <courseId>")
	}
	if err := a.lms.SelectCourse(ctx, args[0]); err != nil {
		return err
	}
	return a.showPlayer()
}

func (a *App) Lesson(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("lesson <lessonId>")
	}
	if err := a.lms.SelectLesson(ctx, args[0]); err != nil {
		return err
	}
	return a.showPlayer()
}

// Done toggles completion of a lesson.
func (a *App) Done(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("done <lessonId>")
	}
	done, err := a.lms.ToggleLesson(ctx, args[0])
	if errors.Is(err, common.ErrNoAccess) {
		return err
	}
	if err != nil {
		a.log.Warn(ctx, "progress not persisted", "error", err)
	}
	if done {
		a.println(doneStyle.Render("✓ " + args[0] + " completed"))
	} else {
		a.println(args[0] + " marked as not completed")
	}
	if c, err := a.lms.ActiveCourse(); err == nil {
		a.println(c.Title + "  " + progressBar(a.lms.Completion(c)))
	}
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	if err := a.lms.GoDashboard(ctx); err != nil {
		return err
	}
	return a.Courses(ctx)
}

func (a *App) showPlayer() error {
	c, err := a.lms.ActiveCourse()
	if err != nil {
		return err
	}
	l, _ := a.lms.ActiveLesson()
	a.println(renderPlayer(c, l, a.lms.IsCompleted, a.lms.Completion(c)))
	return nil
}

func (a *App) showShared() error {
	v, err := a.lms.SharedCourse()
	if err != nil {
		return err
	}
	c := v.Scoped()
	l, _ := a.lms.ActiveLesson()
	a.println(renderHeader(a.lms.Brand(), "shared"))
	a.println(renderPlayer(c, l, a.lms.IsCompleted, a.lms.Completion(c)))
	return nil
}

// showPreview renders a public course before the login gate.
func (a *App) showPreview(courseID, lessonID string) error {
	v, err := a.lms.PublicPreview(courseID, lessonID)
	if err != nil {
		return err
	}
	c := v.Scoped()
	var l models.Lesson
	if len(c.Lessons) > 0 {
		l = c.Lessons[0]
	}
	a.println(renderHeader(a.lms.Brand(), "preview"))
	a.println(renderPlayer(c, l, a.lms.IsCompleted, a.lms.Completion(c)))
	return nil
}

func (a *App) showAdmin() error {
	a.println(renderHeader(a.lms.Brand(), "admin"))
	for _, c := range a.lms.Courses() {
		visibility := "private"
		if c.Public() {
			visibility = "public"
		}
		a.println(fmt.Sprintf("%s  %s  %s  %d lessons  %d share tokens",
			titleStyle.Render(c.Title), mutedStyle.Render(c.ID), visibility, len(c.Lessons), len(a.lms.ShareTokensFor(c.ID))))
	}
	rc := a.lms.RemoteConfig()
	status := "not connected"
	if rc.Connected() {
		status = "connected to " + rc.URL
	}
	a.println(mutedStyle.Render("Cloud sync: " + status))
	return nil
}
