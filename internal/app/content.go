package app

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/models"
)

// Courses lists the catalog. A shared session sees only its shared course,
// narrowed to the shared lesson.
func (a *App) Courses() []models.Course {
	st := a.router.State()
	if !st.Shared {
		return a.catalog.Courses()
	}
	c, err := a.Course(st.SharedCourse)
	if err != nil {
		return []models.Course{}
	}
	return []models.Course{c}
}

func (a *App) PublicCourses() []models.Course {
	if !a.router.State().Shared {
		return a.catalog.Public()
	}
	return slices.DeleteFunc(a.Courses(), func(c models.Course) bool { return !c.Public() })
}

func (a *App) Course(id string) (models.Course, error) {
	if !a.router.InScope(id, "") {
		return models.Course{}, common.ErrNoAccess
	}
	c, err := a.catalog.Course(id)
	if err != nil {
		return models.Course{}, err
	}
	return a.scoped(c), nil
}

func (a *App) Lesson(courseID, lessonID string) (models.Lesson, error) {
	if !a.router.InScope(courseID, lessonID) {
		return models.Lesson{}, common.ErrNoAccess
	}
	return a.catalog.Lesson(courseID, lessonID)
}

// scoped narrows c to the shared lesson of a lesson-scoped share.
func (a *App) scoped(c models.Course) models.Course {
	st := a.router.State()
	if !st.Shared || st.SharedLesson == "" {
		return c
	}
	return SharedView{Course: c, LessonID: st.SharedLesson}.Scoped()
}

func (a *App) AddCourse(ctx context.Context, c models.Course) (models.Course, error) {
	c, err := a.catalog.AddCourse(c)
	if err != nil {
		return models.Course{}, err
	}
	return c, a.syncCourses(ctx)
}

func (a *App) UpdateCourse(ctx context.Context, c models.Course) error {
	if err := a.catalog.UpdateCourse(c); err != nil {
		return err
	}
	return a.syncCourses(ctx)
}

// DeleteCourse removes the course. Progress entries for its lessons are
// kept.
func (a *App) DeleteCourse(ctx context.Context, id string) error {
	if err := a.catalog.DeleteCourse(id); err != nil {
		return err
	}
	return a.syncCourses(ctx)
}

func (a *App) SetVisibility(ctx context.Context, courseID string, public bool) error {
	if err := a.catalog.SetVisibility(courseID, public); err != nil {
		return err
	}
	return a.syncCourses(ctx)
}

func (a *App) AddLesson(ctx context.Context, courseID string, l models.Lesson) (models.Lesson, error) {
	l, err := a.catalog.AddLesson(courseID, l)
	if err != nil {
		return models.Lesson{}, err
	}
	return l, a.syncCourses(ctx)
}

func (a *App) UpdateLesson(ctx context.Context, courseID string, l models.Lesson) error {
	if err := a.catalog.UpdateLesson(courseID, l); err != nil {
		return err
	}
	return a.syncCourses(ctx)
}

func (a *App) DeleteLesson(ctx context.Context, courseID, lessonID string) error {
	if err := a.catalog.DeleteLesson(courseID, lessonID); err != nil {
		return err
	}
	return a.syncCourses(ctx)
}

func (a *App) AddAsset(ctx context.Context, courseID, lessonID string, as models.Asset) (models.Asset, error) {
	as, err := a.catalog.AddAsset(courseID, lessonID, as)
	if err != nil {
		return models.Asset{}, err
	}
	return as, a.syncCourses(ctx)
}

func (a *App) DeleteAsset(ctx context.Context, courseID, lessonID, assetID string) error {
	if err := a.catalog.DeleteAsset(courseID, lessonID, assetID); err != nil {
		return err
	}
	return a.syncCourses(ctx)
}

// ToggleLesson flips completion of lessonID and reports the new value.
// Progress is not content, so any session may toggle it; shared sessions
// just never persist it.
func (a *App) ToggleLesson(ctx context.Context, lessonID string) (bool, error) {
	if st := a.router.State(); st.Shared {
		if _, err := a.Lesson(st.SharedCourse, lessonID); err != nil {
			return false, common.ErrNoAccess
		}
	}
	done := a.progress.Toggle(lessonID)
	return done, a.syncer.Progress(ctx, a.progress.State())
}

func (a *App) IsCompleted(lessonID string) bool { return a.progress.IsCompleted(lessonID) }

func (a *App) Progress() models.ProgressState { return a.progress.State() }

// Completion is the rounded percentage of c's lessons completed.
func (a *App) Completion(c models.Course) int { return a.progress.CourseCompletion(c) }

func (a *App) syncCourses(ctx context.Context) error {
	return a.syncer.Courses(ctx, a.catalog.Courses())
}
