package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourse_CloneDoesNotAlias(t *testing.T) {
	reviews := 12
	public := true
	c := Course{
		ID:       "course-1",
		Author:   &Author{Name: "Rina"},
		Reviews:  &reviews,
		IsPublic: &public,
		Lessons:  []Lesson{{ID: "l1", Assets: []Asset{{ID: "a1", Type: AssetLink}}}},
	}

	cp := c.Clone()
	cp.Author.Name = "Other"
	*cp.Reviews = 0
	*cp.IsPublic = false
	cp.Lessons[0].Title = "changed"
	cp.Lessons[0].Assets[0].Name = "changed"

	assert.Equal(t, "Rina", c.Author.Name)
	assert.Equal(t, 12, *c.Reviews)
	assert.True(t, c.Public())
	assert.Empty(t, c.Lessons[0].Title)
	assert.Empty(t, c.Lessons[0].Assets[0].Name)
}

func TestCourse_LessonByID(t *testing.T) {
	c := Course{Lessons: []Lesson{{ID: "l1"}, {ID: "l2", Title: "Two"}}}

	l, ok := c.LessonByID("l2")
	require.True(t, ok)
	assert.Equal(t, "Two", l.Title)

	_, ok = c.LessonByID("l3")
	assert.False(t, ok)
}

func TestCourse_JSONShape(t *testing.T) {
	c := Course{ID: "c", Lessons: []Lesson{{ID: "l", VideoURL: "v"}}}
	b, err := json.Marshal(c)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Contains(t, m, "lessons")
	assert.NotContains(t, m, "isPublic")
	assert.NotContains(t, m, "author")
	lesson := m["lessons"].([]any)[0].(map[string]any)
	assert.Equal(t, "v", lesson["videoUrl"])
}

func TestAssetType_Valid(t *testing.T) {
	assert.True(t, AssetFile.Valid())
	assert.True(t, AssetSpreadsheet.Valid())
	assert.True(t, AssetLink.Valid())
	assert.False(t, AssetType("pdf").Valid())
}

func TestSession_IsAdmin(t *testing.T) {
	assert.True(t, UserSession{Username: "a", Role: RoleAdmin, IsLoggedIn: true}.IsAdmin())
	assert.False(t, UserSession{Username: "a", Role: RoleAdmin}.IsAdmin())
	assert.False(t, UserSession{Username: "u", Role: RolePublic, IsLoggedIn: true}.IsAdmin())
}

func TestRemoteConfig_Connected(t *testing.T) {
	assert.False(t, RemoteConfig{}.Connected())
	assert.False(t, RemoteConfig{URL: "https://x.supabase.co"}.Connected())
	assert.True(t, RemoteConfig{URL: "https://x.supabase.co", Key: "anon"}.Connected())
}

func TestShareToken_ValidAt(t *testing.T) {
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	exp := created.Add(time.Hour).UnixMilli()
	tok := ShareToken{Token: "t", CourseID: "c", CreatedAt: created.UnixMilli(), ExpiresAt: &exp}

	assert.True(t, tok.ValidAt(created))
	assert.True(t, tok.ValidAt(time.UnixMilli(exp)), "valid at the expiry instant")
	assert.False(t, tok.ValidAt(time.UnixMilli(exp+1)))

	noExpiry := ShareToken{Token: "t", CourseID: "c"}
	assert.True(t, noExpiry.ValidAt(created.AddDate(10, 0, 0)))
	_, ok := noExpiry.Expiry()
	assert.False(t, ok)
}

func TestProgressState_CloneAndHas(t *testing.T) {
	p := ProgressState{CompletedLessons: []string{"l1"}}
	cp := p.Clone()
	cp.CompletedLessons[0] = "x"

	assert.True(t, p.Has("l1"))
	assert.False(t, p.Has("x"))
	assert.Equal(t, []string{}, ProgressState{}.Clone().CompletedLessons)
}

func TestCourse_Normalize(t *testing.T) {
	c := Course{ID: "c", Lessons: []Lesson{{ID: "l"}}}
	c.Normalize()
	assert.NotNil(t, c.Lessons[0].Assets)

	empty := Course{ID: "e"}
	empty.Normalize()
	assert.NotNil(t, empty.Lessons)
}
