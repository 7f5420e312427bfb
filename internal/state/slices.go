package state

import (
	"context"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/kvstore"
	"github.com/dmitrijs2005/arunika/internal/logging"
	"github.com/dmitrijs2005/arunika/internal/models"
)

// Slices is the named set of persisted slices.
type Slices struct {
	Session      *Slice[models.UserSession]
	Courses      *Slice[[]models.Course]
	Progress     *Slice[models.ProgressState]
	BrandName    *Slice[string]
	BrandLogo    *Slice[string]
	View         *Slice[string]
	ActiveCourse *Slice[string]
	ActiveLesson *Slice[string]
	ShareTokens  *Slice[[]models.ShareToken]
	RemoteConfig *Slice[models.RemoteConfig]

	store kvstore.Store
}

// NewSlices binds every slice to store. seed supplies the catalog used when
// no valid catalog is stored.
func NewSlices(store kvstore.Store, log logging.Logger, seed func() []models.Course) *Slices {
	log = log.With("component", "state")

	return &Slices{
		store: store,
		Session: NewSlice(store, log, common.KeySession, JSON[models.UserSession](),
			func() models.UserSession { return models.UserSession{} }),
		Courses: NewSlice(store, log, common.KeyCourses, JSON[[]models.Course](), seed),
		Progress: NewSlice(store, log, common.KeyProgress, JSON[models.ProgressState](),
			func() models.ProgressState { return models.ProgressState{CompletedLessons: []string{}} }),
		BrandName: NewSlice(store, log, common.KeyBrandName, String(nonEmpty),
			func() string { return common.DefaultBrandName }),
		BrandLogo: NewSlice(store, log, common.KeyBrandLogo, String(nil),
			func() string { return "" }),
		View: NewSlice(store, log, common.KeyView, String(func(s string) bool { return models.View(s).Valid() }),
			func() string { return string(models.ViewDashboard) }),
		ActiveCourse: NewSlice(store, log, common.KeyActiveCourse, String(nil),
			func() string { return "" }),
		ActiveLesson: NewSlice(store, log, common.KeyActiveLesson, String(nil),
			func() string { return "" }),
		ShareTokens: NewSlice(store, log, common.KeyShareTokens, JSON[[]models.ShareToken](),
			func() []models.ShareToken { return []models.ShareToken{} }),
		RemoteConfig: NewSlice(store, log, common.KeyRemoteConfig, JSON[models.RemoteConfig](),
			func() models.RemoteConfig { return models.RemoteConfig{} }),
	}
}

// Snapshot is every slice loaded at once, the startup seed of the app.
type Snapshot struct {
	Session      models.UserSession
	Courses      []models.Course
	Progress     models.ProgressState
	BrandName    string
	BrandLogo    string
	View         models.View
	ActiveCourse string
	ActiveLesson string
	ShareTokens  []models.ShareToken
	RemoteConfig models.RemoteConfig
}

// LoadAll reads each slice independently, falling back per slice.
func (s *Slices) LoadAll(ctx context.Context) Snapshot {
	return Snapshot{
		Session:      s.Session.Load(ctx),
		Courses:      s.Courses.Load(ctx),
		Progress:     s.Progress.Load(ctx),
		BrandName:    s.BrandName.Load(ctx),
		BrandLogo:    s.BrandLogo.Load(ctx),
		View:         models.View(s.View.Load(ctx)),
		ActiveCourse: s.ActiveCourse.Load(ctx),
		ActiveLesson: s.ActiveLesson.Load(ctx),
		ShareTokens:  s.ShareTokens.Load(ctx),
		RemoteConfig: s.RemoteConfig.Load(ctx),
	}
}

func nonEmpty(s string) bool { return s != "" }
