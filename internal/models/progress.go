package models

import "slices"

// ProgressState is the global set of completed lesson ids. It is not scoped
// to a course or a user.
type ProgressState struct {
	CompletedLessons []string `json:"completedLessons" validate:"required,dive,required"`
}

// Has reports whether lessonID is completed.
func (p ProgressState) Has(lessonID string) bool {
	return slices.Contains(p.CompletedLessons, lessonID)
}

// Clone returns a copy that does not share the backing array.
func (p ProgressState) Clone() ProgressState {
	if p.CompletedLessons == nil {
		return ProgressState{CompletedLessons: []string{}}
	}
	return ProgressState{CompletedLessons: slices.Clone(p.CompletedLessons)}
}
