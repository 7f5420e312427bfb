package share

import (
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/models"
)

// Registry holds every issued token. Revocation is local deletion and
// expired tokens are kept until revoked.
type Registry struct {
	mu     sync.RWMutex
	tokens []models.ShareToken
	ttl    time.Duration

	// Now is the clock used for issuing and validating.
	Now func() time.Time
}

// NewRegistry starts from the stored token list. A non-positive ttl falls
// back to the 30 day default.
func NewRegistry(tokens []models.ShareToken, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = common.DefaultShareTTL
	}
	return &Registry{tokens: slices.Clone(tokens), ttl: ttl, Now: time.Now}
}

// Create issues a token and adds it to the registry.
func (r *Registry) Create(courseID, lessonID string) models.ShareToken {
	t := Generate(courseID, lessonID, r.Now(), r.ttl)

	r.mu.Lock()
	r.tokens = append(r.tokens, t)
	r.mu.Unlock()
	return t
}

// Lookup validates token against the registry at the current time.
func (r *Registry) Lookup(token string) (models.ShareToken, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Validate(token, r.tokens, r.Now())
}

// Revoke deletes token and reports whether it was present.
func (r *Registry) Revoke(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.tokens)
	r.tokens = slices.DeleteFunc(r.tokens, func(t models.ShareToken) bool { return t.Token == token })
	return len(r.tokens) != n
}

// List returns a copy of all tokens, expired ones included.
func (r *Registry) List() []models.ShareToken {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ShareToken, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// ForCourse returns the tokens issued for courseID.
func (r *Registry) ForCourse(courseID string) []models.ShareToken {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.ShareToken{}
	for _, t := range r.tokens {
		if t.CourseID == courseID {
			out = append(out, t)
		}
	}
	return out
}
