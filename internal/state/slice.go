package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/kvstore"
	"github.com/dmitrijs2005/arunika/internal/logging"
)

// Slice is one independently persisted unit of state.
type Slice[T any] struct {
	key   string
	codec Codec[T]
	def   func() T
	store kvstore.Store
	log   logging.Logger
}

// NewSlice binds key to store with the given codec and default factory.
func NewSlice[T any](store kvstore.Store, log logging.Logger, key string, codec Codec[T], def func() T) *Slice[T] {
	return &Slice[T]{key: key, codec: codec, def: def, store: store, log: log.With("key", key)}
}

func (s *Slice[T]) Key() string { return s.key }

// Default returns a fresh default value.
func (s *Slice[T]) Default() T { return s.def() }

// Load reads the slice. It returns the default when the key is missing,
// unreadable or holds data that fails to decode; the latter two are logged.
func (s *Slice[T]) Load(ctx context.Context) T {
	v, err := s.TryLoad(ctx)
	if err == nil {
		return v
	}
	if errors.Is(err, common.ErrNotFound) {
		return s.def()
	}
	if errors.Is(err, common.ErrInvalidSlice) {
		s.log.Warn(ctx, "stored slice rejected, using default", "error", err)
	} else {
		s.log.Error(ctx, "reading slice failed, using default", "error", err)
	}
	return s.def()
}

// TryLoad is Load without the fallback.
func (s *Slice[T]) TryLoad(ctx context.Context) (T, error) {
	var zero T
	b, err := s.store.Get(ctx, s.key)
	if err != nil {
		return zero, err
	}
	return s.codec.Decode(b)
}

// Encode returns the stored form of v.
func (s *Slice[T]) Encode(v T) ([]byte, error) {
	b, err := s.codec.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", s.key, err)
	}
	return b, nil
}

// Save writes v under the slice key.
func (s *Slice[T]) Save(ctx context.Context, v T) error {
	b, err := s.Encode(v)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, s.key, b)
}
