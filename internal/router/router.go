// Package router is the session and view state machine. It decides which
// screen is shown and owns the single content-mutation guard.
package router

import (
	"net/url"
	"sync"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/models"
)

// Screen is what the client renders. It is View plus the login gate.
type Screen string

const (
	ScreenLoggedOut Screen = "loggedOut"
	ScreenDashboard Screen = "dashboard"
	ScreenPlayer    Screen = "player"
	ScreenAdmin     Screen = "admin"
)

// CanMutateContent is the only access check for content edits: a logged-in
// admin outside a shared session.
func CanMutateContent(session models.UserSession, shared bool) bool {
	return session.IsAdmin() && !shared
}

// Entry is what the startup URL asked for.
type Entry struct {
	Share        string
	PublicCourse string
	PublicLesson string
}

// EntryFromQuery reads the recognised startup parameters and ignores the rest.
func EntryFromQuery(q url.Values) Entry {
	return Entry{
		Share:        q.Get(common.ParamShare),
		PublicCourse: q.Get(common.ParamPublicCourse),
		PublicLesson: q.Get(common.ParamPublicLesson),
	}
}

// Shared reports whether the entry starts a read-only shared session.
func (e Entry) Shared() bool { return e.Share != "" }

// State is the full router state.
type State struct {
	Session      models.UserSession
	View         models.View
	ActiveCourse string
	ActiveLesson string
	Shared       bool
	// SharedCourse and SharedLesson bound a shared session. An empty
	// SharedCourse means the share value did not resolve and nothing is
	// visible.
	SharedCourse string
	SharedLesson string
}

type Router struct {
	mu sync.RWMutex
	st State
}

// New restores a router from persisted state. An unknown view, or an admin
// view the restored session may not open, becomes the dashboard.
func New(st State) *Router {
	if !st.View.Valid() {
		st.View = models.ViewDashboard
	}
	if st.View == models.ViewAdmin && !CanMutateContent(st.Session, st.Shared) {
		st.View = models.ViewDashboard
	}
	return &Router{st: st}
}

// EnterShared jumps straight to the player in shared mode, bypassing the
// login gate. The stored session is dropped: a visitor never inherits the
// owner's login. An empty lessonID grants the whole course.
func (r *Router) EnterShared(courseID, lessonID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.st = State{
		View:         models.ViewPlayer,
		ActiveCourse: courseID,
		ActiveLesson: lessonID,
		Shared:       true,
		SharedCourse: courseID,
		SharedLesson: lessonID,
	}
}

// InScope reports whether the current session may see the course, and the
// lesson when lessonID is not empty.
func (r *Router) InScope(courseID, lessonID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.inScope(courseID, lessonID)
}

func (r *Router) inScope(courseID, lessonID string) bool {
	if !r.st.Shared {
		return true
	}
	if r.st.SharedCourse == "" || courseID != r.st.SharedCourse {
		return false
	}
	return lessonID == "" || r.st.SharedLesson == "" || lessonID == r.st.SharedLesson
}

func (r *Router) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.st
}

func (r *Router) Screen() Screen {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.st.Shared && !r.st.Session.IsLoggedIn {
		return ScreenLoggedOut
	}
	return Screen(r.st.View)
}

func (r *Router) CanMutate() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return CanMutateContent(r.st.Session, r.st.Shared)
}

// Login stores the session and shows the dashboard.
func (r *Router) Login(s models.UserSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.st.Session = s
	r.st.View = models.ViewDashboard
}

// Logout clears the session and view pointers. Shared mode is kept.
func (r *Router) Logout() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.st.Session = models.UserSession{}
	r.st.View = models.ViewDashboard
	r.st.ActiveCourse = ""
	r.st.ActiveLesson = ""
}

// SelectCourse opens the player on courseID with no lesson selected.
func (r *Router) SelectCourse(courseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.requireEntered(); err != nil {
		return err
	}
	if !r.inScope(courseID, "") {
		return common.ErrNoAccess
	}
	r.st.View = models.ViewPlayer
	r.st.ActiveCourse = courseID
	r.st.ActiveLesson = r.st.SharedLesson
	return nil
}

// SelectLesson picks a lesson of the active course.
func (r *Router) SelectLesson(lessonID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.requireEntered(); err != nil {
		return err
	}
	if r.st.ActiveCourse == "" {
		return common.ErrNotFound
	}
	if !r.inScope(r.st.ActiveCourse, lessonID) {
		return common.ErrNoAccess
	}
	r.st.View = models.ViewPlayer
	r.st.ActiveLesson = lessonID
	return nil
}

// OpenAdmin switches to the admin screen when content may be mutated.
func (r *Router) OpenAdmin() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !CanMutateContent(r.st.Session, r.st.Shared) {
		return common.ErrForbidden
	}
	r.st.View = models.ViewAdmin
	return nil
}

// GoDashboard shows the dashboard. A shared session whose share value did
// not resolve has nothing to show.
func (r *Router) GoDashboard() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.requireEntered(); err != nil {
		return err
	}
	if r.st.Shared && r.st.SharedCourse == "" {
		return common.ErrNoAccess
	}
	r.st.View = models.ViewDashboard
	return nil
}

func (r *Router) requireEntered() error {
	if !r.st.Shared && !r.st.Session.IsLoggedIn {
		return common.ErrForbidden
	}
	return nil
}
