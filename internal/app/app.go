package app

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/arunika/internal/catalog"
	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/config"
	"github.com/dmitrijs2005/arunika/internal/kvstore"
	"github.com/dmitrijs2005/arunika/internal/logging"
	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/dmitrijs2005/arunika/internal/progress"
	"github.com/dmitrijs2005/arunika/internal/router"
	"github.com/dmitrijs2005/arunika/internal/share"
	"github.com/dmitrijs2005/arunika/internal/state"
)

// Deps are the collaborators App is built from.
type Deps struct {
	Store  kvstore.Store
	Config *config.Config
	Log    logging.Logger

	// Seed is the catalog used when none is stored. Defaults to catalog.Seed.
	Seed func() []models.Course
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
	// Shared forces a read-only shared session even without a share entry.
	Shared bool
}

type App struct {
	cfg   *config.Config
	log   logging.Logger
	store kvstore.Store
	now   func() time.Time

	slices   *state.Slices
	syncer   *state.Syncer
	router   *router.Router
	auth     *router.Authenticator
	catalog  *catalog.Catalog
	progress *progress.Tracker
	registry *share.Registry
	entry    router.Entry

	mu     sync.RWMutex
	brand  models.Brand
	remote models.RemoteConfig
}

// New loads the stored state and applies entry.
func New(ctx context.Context, d Deps, entry router.Entry) (*App, error) {
	if d.Config == nil {
		d.Config = &config.Config{}
		d.Config.LoadDefaults()
	}
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	if d.Seed == nil {
		d.Seed = catalog.Seed
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	slices := state.NewSlices(d.Store, d.Log, d.Seed)
	snap := slices.LoadAll(ctx)

	a := &App{
		cfg:    d.Config,
		log:    d.Log.With("component", "app"),
		store:  d.Store,
		now:    d.Now,
		slices: slices,
		syncer: state.NewSyncer(slices, d.Log),
		router: router.New(router.State{
			Session:      snap.Session,
			View:         snap.View,
			ActiveCourse: snap.ActiveCourse,
			ActiveLesson: snap.ActiveLesson,
		}),
		auth:     router.NewAuthenticator(d.Config.LoginDelay),
		progress: progress.NewTracker(snap.Progress),
		registry: share.NewRegistry(snap.ShareTokens, d.Config.ShareTTL),
		entry:    entry,
		brand:    models.Brand{Name: snap.BrandName, Logo: snap.BrandLogo},
		remote:   snap.RemoteConfig,
	}
	a.registry.Now = d.Now
	a.catalog = catalog.New(snap.Courses, a.router.CanMutate)

	if entry.Shared() || d.Shared {
		a.syncer.Disable()
		courseID, lessonID := a.resolveEntry(entry.Share)
		a.router.EnterShared(courseID, lessonID)
		a.log.Debug(ctx, "shared session started", "course", courseID)
	}

	return a, nil
}

func (a *App) resolveEntry(value string) (string, string) {
	if value == "" {
		return "", ""
	}
	v, err := a.ResolveShare(value)
	if err != nil {
		return "", ""
	}
	return v.Course.ID, v.LessonID
}

// Ping checks the store.
func (a *App) Ping(ctx context.Context) error {
	return a.store.Ping(ctx)
}

func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) Config() *config.Config { return a.cfg }

// Shared reports whether this is a read-only shared session.
func (a *App) Shared() bool { return a.router.State().Shared }

// CanMutate is the content guard for the current session.
func (a *App) CanMutate() bool { return a.router.CanMutate() }

func (a *App) guard() error {
	if !a.router.CanMutate() {
		return common.ErrReadOnly
	}
	return nil
}
