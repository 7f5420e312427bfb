package state

import (
	"context"
	"sync/atomic"

	"github.com/dmitrijs2005/arunika/internal/logging"
	"github.com/dmitrijs2005/arunika/internal/models"
)

// Syncer mirrors slice changes into the store.
type Syncer struct {
	slices   *Slices
	log      logging.Logger
	disabled atomic.Bool
}

func NewSyncer(slices *Slices, log logging.Logger) *Syncer {
	return &Syncer{slices: slices, log: log.With("component", "sync")}
}

// Disable stops all further writes. Shared sessions run disabled so a
// visitor never overwrites the owner's stored state.
func (s *Syncer) Disable() { s.disabled.Store(true) }

func (s *Syncer) Enabled() bool { return !s.disabled.Load() }

func save[T any](ctx context.Context, s *Syncer, slice *Slice[T], v T) error {
	if !s.Enabled() {
		s.log.Debug(ctx, "write skipped in shared session", "key", slice.Key())
		return nil
	}
	if err := slice.Save(ctx, v); err != nil {
		s.log.Error(ctx, "slice write failed", "key", slice.Key(), "error", err)
		return err
	}
	return nil
}

func (s *Syncer) Session(ctx context.Context, v models.UserSession) error {
	return save(ctx, s, s.slices.Session, v)
}

func (s *Syncer) Courses(ctx context.Context, v []models.Course) error {
	return save(ctx, s, s.slices.Courses, v)
}

func (s *Syncer) Progress(ctx context.Context, v models.ProgressState) error {
	return save(ctx, s, s.slices.Progress, v)
}

func (s *Syncer) BrandName(ctx context.Context, v string) error {
	return save(ctx, s, s.slices.BrandName, v)
}

func (s *Syncer) BrandLogo(ctx context.Context, v string) error {
	return save(ctx, s, s.slices.BrandLogo, v)
}

func (s *Syncer) ShareTokens(ctx context.Context, v []models.ShareToken) error {
	return save(ctx, s, s.slices.ShareTokens, v)
}

func (s *Syncer) RemoteConfig(ctx context.Context, v models.RemoteConfig) error {
	return save(ctx, s, s.slices.RemoteConfig, v)
}

// ViewPointers writes view, active course and active lesson in one atomic
// store call. The three keys stay separate.
func (s *Syncer) ViewPointers(ctx context.Context, view models.View, courseID, lessonID string) error {
	if !s.Enabled() {
		s.log.Debug(ctx, "write skipped in shared session", "key", s.slices.View.Key())
		return nil
	}

	values := make(map[string][]byte, 3)
	for _, p := range []struct {
		slice *Slice[string]
		v     string
	}{
		{s.slices.View, string(view)},
		{s.slices.ActiveCourse, courseID},
		{s.slices.ActiveLesson, lessonID},
	} {
		b, err := p.slice.Encode(p.v)
		if err != nil {
			return err
		}
		values[p.slice.Key()] = b
	}

	if err := s.slices.store.SetMany(ctx, values); err != nil {
		s.log.Error(ctx, "view pointer write failed", "error", err)
		return err
	}
	return nil
}
