// Package progress tracks which lessons the viewer has completed. The set
// is global: it is not scoped to a course or a user, and ids of deleted
// lessons stay in it.
package progress

import (
	"math"
	"slices"
	"sync"

	"github.com/dmitrijs2005/arunika/internal/models"
)

type Tracker struct {
	mu        sync.RWMutex
	completed []string
}

// NewTracker starts from a stored progress state. Repeated ids collapse to
// their first occurrence so a single Toggle always clears a lesson.
func NewTracker(state models.ProgressState) *Tracker {
	completed := make([]string, 0, len(state.CompletedLessons))
	seen := make(map[string]struct{}, len(state.CompletedLessons))
	for _, id := range state.CompletedLessons {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		completed = append(completed, id)
	}
	return &Tracker{completed: completed}
}

// Toggle flips lessonID and reports whether it is now completed.
func (t *Tracker) Toggle(lessonID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i := slices.Index(t.completed, lessonID); i >= 0 {
		t.completed = slices.Delete(t.completed, i, i+1)
		return false
	}
	t.completed = append(t.completed, lessonID)
	return true
}

func (t *Tracker) IsCompleted(lessonID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Contains(t.completed, lessonID)
}

// Completed returns the completed ids in completion order.
func (t *Tracker) Completed() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.completed)
}

// State returns the persisted form of the tracker.
func (t *Tracker) State() models.ProgressState {
	return models.ProgressState{CompletedLessons: t.Completed()}
}

// CourseCompletion is the share of the course's lessons that are completed,
// as a whole percent rounded to nearest. A course without lessons is 0.
func (t *Tracker) CourseCompletion(c models.Course) int {
	return Percent(c, t.State())
}

// Percent computes CourseCompletion against an explicit state.
func Percent(c models.Course, state models.ProgressState) int {
	if len(c.Lessons) == 0 {
		return 0
	}
	done := 0
	for _, l := range c.Lessons {
		if state.Has(l.ID) {
			done++
		}
	}
	return int(math.Round(float64(done) * 100 / float64(len(c.Lessons))))
}
