package progress

import (
	"testing"

	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func course(ids ...string) models.Course {
	c := models.Course{ID: "c"}
	for _, id := range ids {
		c.Lessons = append(c.Lessons, models.Lesson{ID: id})
	}
	return c
}

func TestToggle_TwiceRestores(t *testing.T) {
	tr := NewTracker(models.ProgressState{CompletedLessons: []string{"a"}})
	before := tr.State()

	require.True(t, tr.Toggle("b"))
	require.True(t, tr.IsCompleted("b"))
	require.False(t, tr.Toggle("b"))

	assert.Equal(t, before, tr.State())
}

func TestToggle_RemovesExisting(t *testing.T) {
	tr := NewTracker(models.ProgressState{CompletedLessons: []string{"a", "b", "c"}})
	assert.False(t, tr.Toggle("b"))
	assert.Equal(t, []string{"a", "c"}, tr.Completed())
}

func TestNewTracker_CollapsesDuplicates(t *testing.T) {
	tr := NewTracker(models.ProgressState{CompletedLessons: []string{"a", "b", "a", "c", "b"}})
	assert.Equal(t, []string{"a", "b", "c"}, tr.Completed())

	assert.False(t, tr.Toggle("a"))
	assert.False(t, tr.IsCompleted("a"), "one toggle clears a stored duplicate")
	assert.True(t, tr.Toggle("a"))
	assert.Equal(t, []string{"b", "c", "a"}, tr.Completed())
}

func TestNewTracker_DoesNotAliasState(t *testing.T) {
	st := models.ProgressState{CompletedLessons: []string{"a"}}
	tr := NewTracker(st)
	tr.Toggle("a")
	assert.Equal(t, []string{"a"}, st.CompletedLessons)
	assert.Equal(t, []string{}, tr.Completed())
}

func TestCourseCompletion(t *testing.T) {
	tests := []struct {
		name      string
		course    models.Course
		completed []string
		want      int
	}{
		{name: "one of four", course: course("1", "2", "3", "4"), completed: []string{"1"}, want: 25},
		{name: "no lessons", course: course(), completed: []string{"1"}, want: 0},
		{name: "all", course: course("1", "2"), completed: []string{"2", "1"}, want: 100},
		{name: "one third rounds down", course: course("1", "2", "3"), completed: []string{"1"}, want: 33},
		{name: "two thirds rounds up", course: course("1", "2", "3"), completed: []string{"1", "2"}, want: 67},
		{name: "orphans ignored", course: course("1", "2"), completed: []string{"gone", "other"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(models.ProgressState{CompletedLessons: tt.completed})
			assert.Equal(t, tt.want, tr.CourseCompletion(tt.course))
		})
	}
}
