// Package catalog owns the in-memory course list. Every mutation checks the
// content guard first and leaves the catalog untouched when it is denied.
// Lesson and asset edits replace their whole course.
package catalog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/google/uuid"
)

// Guard reports whether content may be mutated right now.
type Guard func() bool

type Catalog struct {
	mu      sync.RWMutex
	courses []models.Course
	guard   Guard
	newID   func() string
}

// New starts from courses. A nil guard denies every mutation.
func New(courses []models.Course, guard Guard) *Catalog {
	if guard == nil {
		guard = func() bool { return false }
	}
	return &Catalog{
		courses: models.CloneCourses(courses),
		guard:   guard,
		newID:   uuid.NewString,
	}
}

// Courses returns a deep copy of the catalog in display order.
func (c *Catalog) Courses() []models.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := models.CloneCourses(c.courses)
	if out == nil {
		out = []models.Course{}
	}
	return out
}

// Public returns the courses flagged public.
func (c *Catalog) Public() []models.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []models.Course{}
	for _, co := range c.courses {
		if co.Public() {
			out = append(out, co.Clone())
		}
	}
	return out
}

func (c *Catalog) Course(id string) (models.Course, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.index(id)
	if i < 0 {
		return models.Course{}, fmt.Errorf("course %s: %w", id, common.ErrNotFound)
	}
	return c.courses[i].Clone(), nil
}

func (c *Catalog) Lesson(courseID, lessonID string) (models.Lesson, error) {
	co, err := c.Course(courseID)
	if err != nil {
		return models.Lesson{}, err
	}
	l, ok := co.LessonByID(lessonID)
	if !ok {
		return models.Lesson{}, fmt.Errorf("lesson %s: %w", lessonID, common.ErrNotFound)
	}
	return l, nil
}

// AddCourse appends a course, assigning an id when it has none.
func (c *Catalog) AddCourse(co models.Course) (models.Course, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.guard() {
		return models.Course{}, common.ErrReadOnly
	}
	co = co.Clone()
	if co.ID == "" {
		co.ID = c.newID()
	}
	if c.index(co.ID) >= 0 {
		return models.Course{}, fmt.Errorf("%w: duplicate course id %s", common.ErrInvalidInput, co.ID)
	}
	co.Normalize()
	for i := range co.Lessons {
		if co.Lessons[i].ID == "" {
			co.Lessons[i].ID = c.newID()
		}
	}

	c.courses = append(c.courses, co)
	return co.Clone(), nil
}

// UpdateCourse replaces the stored course with the same id.
func (c *Catalog) UpdateCourse(co models.Course) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.guard() {
		return common.ErrReadOnly
	}
	i := c.index(co.ID)
	if i < 0 {
		return fmt.Errorf("course %s: %w", co.ID, common.ErrNotFound)
	}
	co = co.Clone()
	co.Normalize()
	c.courses[i] = co
	return nil
}

func (c *Catalog) DeleteCourse(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.guard() {
		return common.ErrReadOnly
	}
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("course %s: %w", id, common.ErrNotFound)
	}
	c.courses = slices.Delete(c.courses, i, i+1)
	return nil
}

// SetVisibility sets the course's public flag.
func (c *Catalog) SetVisibility(courseID string, public bool) error {
	return c.replace(courseID, func(co *models.Course) error {
		co.IsPublic = &public
		return nil
	})
}

// AddLesson appends l to the course, assigning an id when it has none.
func (c *Catalog) AddLesson(courseID string, l models.Lesson) (models.Lesson, error) {
	if l.ID == "" {
		l.ID = c.newID()
	}
	l.Assets = append([]models.Asset{}, l.Assets...)
	err := c.replace(courseID, func(co *models.Course) error {
		if _, ok := co.LessonByID(l.ID); ok {
			return fmt.Errorf("%w: duplicate lesson id %s", common.ErrInvalidInput, l.ID)
		}
		co.Lessons = append(co.Lessons, l)
		return nil
	})
	if err != nil {
		return models.Lesson{}, err
	}
	return l, nil
}

func (c *Catalog) UpdateLesson(courseID string, l models.Lesson) error {
	return c.replace(courseID, func(co *models.Course) error {
		i := lessonIndex(*co, l.ID)
		if i < 0 {
			return fmt.Errorf("lesson %s: %w", l.ID, common.ErrNotFound)
		}
		l.Assets = append([]models.Asset{}, l.Assets...)
		co.Lessons[i] = l
		return nil
	})
}

func (c *Catalog) DeleteLesson(courseID, lessonID string) error {
	return c.replace(courseID, func(co *models.Course) error {
		i := lessonIndex(*co, lessonID)
		if i < 0 {
			return fmt.Errorf("lesson %s: %w", lessonID, common.ErrNotFound)
		}
		co.Lessons = slices.Delete(co.Lessons, i, i+1)
		return nil
	})
}

// AddAsset attaches a to the lesson, assigning an id when it has none.
func (c *Catalog) AddAsset(courseID, lessonID string, a models.Asset) (models.Asset, error) {
	if !a.Type.Valid() {
		return models.Asset{}, fmt.Errorf("%w: asset type %q", common.ErrInvalidInput, a.Type)
	}
	if a.ID == "" {
		a.ID = c.newID()
	}
	err := c.replace(courseID, func(co *models.Course) error {
		i := lessonIndex(*co, lessonID)
		if i < 0 {
			return fmt.Errorf("lesson %s: %w", lessonID, common.ErrNotFound)
		}
		co.Lessons[i].Assets = append(co.Lessons[i].Assets, a)
		return nil
	})
	if err != nil {
		return models.Asset{}, err
	}
	return a, nil
}

func (c *Catalog) DeleteAsset(courseID, lessonID, assetID string) error {
	return c.replace(courseID, func(co *models.Course) error {
		i := lessonIndex(*co, lessonID)
		if i < 0 {
			return fmt.Errorf("lesson %s: %w", lessonID, common.ErrNotFound)
		}
		n := len(co.Lessons[i].Assets)
		co.Lessons[i].Assets = slices.DeleteFunc(co.Lessons[i].Assets, func(a models.Asset) bool { return a.ID == assetID })
		if len(co.Lessons[i].Assets) == n {
			return fmt.Errorf("asset %s: %w", assetID, common.ErrNotFound)
		}
		return nil
	})
}

// replace applies fn to a copy of the course and swaps the copy in only
// when fn succeeds.
func (c *Catalog) replace(courseID string, fn func(co *models.Course) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.guard() {
		return common.ErrReadOnly
	}
	i := c.index(courseID)
	if i < 0 {
		return fmt.Errorf("course %s: %w", courseID, common.ErrNotFound)
	}
	co := c.courses[i].Clone()
	if err := fn(&co); err != nil {
		return err
	}
	co.Normalize()
	c.courses[i] = co
	return nil
}

func (c *Catalog) index(id string) int {
	return slices.IndexFunc(c.courses, func(co models.Course) bool { return co.ID == id })
}

func lessonIndex(co models.Course, id string) int {
	return slices.IndexFunc(co.Lessons, func(l models.Lesson) bool { return l.ID == id })
}
