// Package common contains store keys, shared constants and sentinel errors
// used across the Arunika components.
package common

import "time"

// Store keys. Each key holds one independently persisted slice.
const (
	KeySession      = "lms_session"
	KeyCourses      = "lms_courses"
	KeyProgress     = "lms_progress"
	KeyBrandName    = "lms_brand_name"
	KeyBrandLogo    = "lms_brand_logo"
	KeyView         = "lms_view"
	KeyActiveCourse = "lms_active_course"
	KeyActiveLesson = "lms_active_lesson"
	KeyShareTokens  = "lms_share_tokens"
	KeyRemoteConfig = "lms_remote_config"
)

// Query parameters recognised at startup.
const (
	ParamShare         = "share"
	ParamPublicCourse  = "publicCourse"
	ParamPublicLesson  = "publicLesson"
	DefaultBrandName   = "Arunika"
	DefaultShareTTL    = 30 * 24 * time.Hour
	DefaultLoginDelay  = 600 * time.Millisecond
	DefaultCopiedReset = 2 * time.Second
)
