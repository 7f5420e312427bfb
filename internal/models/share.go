package models

import "time"

// ShareToken grants read-only access to one course, optionally narrowed to
// one lesson. Timestamps are milliseconds since the Unix epoch.
type ShareToken struct {
	Token     string `json:"token" validate:"required"`
	CourseID  string `json:"courseId" validate:"required"`
	LessonID  string `json:"lessonId,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	ExpiresAt *int64 `json:"expiresAt,omitempty"`
}

// ValidAt reports whether the token is usable at now. A token without
// expiry never expires; otherwise it is usable up to and including ExpiresAt.
func (t ShareToken) ValidAt(now time.Time) bool {
	if t.ExpiresAt == nil {
		return true
	}
	return now.UnixMilli() <= *t.ExpiresAt
}

// Expiry returns ExpiresAt as time and whether it is set.
func (t ShareToken) Expiry() (time.Time, bool) {
	if t.ExpiresAt == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*t.ExpiresAt), true
}
