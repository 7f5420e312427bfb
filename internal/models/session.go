package models

// Role is the permission level of a logged-in user.
type Role string

const (
	RolePublic Role = "public"
	RoleAdmin  Role = "admin"
)

// UserSession is the persisted login state. A zero value means logged out.
type UserSession struct {
	Username   string `json:"username" validate:"required_if=IsLoggedIn true"`
	Role       Role   `json:"role" validate:"omitempty,oneof=public admin"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// IsAdmin reports a logged-in admin.
func (s UserSession) IsAdmin() bool {
	return s.IsLoggedIn && s.Role == RoleAdmin
}

// View is the top-level screen.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewPlayer    View = "player"
	ViewAdmin     View = "admin"
)

// Valid reports whether v is a known screen.
func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewPlayer, ViewAdmin:
		return true
	}
	return false
}

// Brand is the global display name and logo.
type Brand struct {
	Name string
	Logo string
}

// RemoteConfig is the cloud-sync endpoint shown in admin settings.
// Nothing ever connects to it.
type RemoteConfig struct {
	URL string `json:"url" validate:"omitempty,url"`
	Key string `json:"key"`
}

// Connected is true when both the URL and the key are filled in.
func (r RemoteConfig) Connected() bool {
	return r.URL != "" && r.Key != ""
}
