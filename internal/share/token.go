// Package share issues and checks share tokens: opaque strings granting
// read-only access to one course, optionally narrowed to one lesson.
//
// Tokens are built from the ids, a short random string and a millisecond
// timestamp. They are not unguessable and must not be used as a security
// boundary.
package share

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/gosimple/slug"
)

const (
	prefix  = "share"
	randLen = 7
)

// Generate builds a new token for courseID and the optional lessonID,
// expiring ttl after now.
func Generate(courseID, lessonID string, now time.Time, ttl time.Duration) models.ShareToken {
	parts := []string{prefix, segment(courseID)}
	if lessonID != "" {
		parts = append(parts, segment(lessonID))
	}
	parts = append(parts, common.RandString(randLen), fmt.Sprint(now.UnixMilli()))

	exp := now.Add(ttl).UnixMilli()
	return models.ShareToken{
		Token:     strings.Join(parts, "-"),
		CourseID:  courseID,
		LessonID:  lessonID,
		CreatedAt: now.UnixMilli(),
		ExpiresAt: &exp,
	}
}

// segment keeps ids URL-safe inside the token. The token is matched as a
// whole string, so the original id is never recovered from it.
func segment(id string) string {
	s := slug.Make(id)
	if s == "" {
		return "x"
	}
	return s
}

// Validate looks token up by exact match and returns it while it is not
// expired at now.
func Validate(token string, tokens []models.ShareToken, now time.Time) (models.ShareToken, bool) {
	for _, t := range tokens {
		if t.Token == token {
			if !t.ValidAt(now) {
				return models.ShareToken{}, false
			}
			return t, true
		}
	}
	return models.ShareToken{}, false
}

// Link appends the token to baseURL as the share query parameter, keeping
// any query already present.
func Link(token, baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	q := u.Query()
	q.Set(common.ParamShare, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseLink returns the share parameter of link.
func ParseLink(link string) (string, bool) {
	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	v := u.Query().Get(common.ParamShare)
	return v, v != ""
}
