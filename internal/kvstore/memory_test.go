package kvstore

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Basics(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, common.KeyCourses)
	require.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, s.Set(ctx, common.KeyCourses, []byte("[]")))
	v, err := s.Get(ctx, common.KeyCourses)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(v))

	require.NoError(t, s.SetMany(ctx, map[string][]byte{"a": []byte("1"), "b": []byte("2")}))
	m, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 3)

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Clear(ctx))
	m, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []byte("player")
	require.NoError(t, s.Set(ctx, common.KeyView, in))
	in[0] = 'X'

	out, err := s.Get(ctx, common.KeyView)
	require.NoError(t, err)
	assert.Equal(t, "player", string(out))

	out[0] = 'Y'
	again, _ := s.Get(ctx, common.KeyView)
	assert.Equal(t, "player", string(again))
}

func TestReadOnly_RejectsWrites(t *testing.T) {
	base := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, base.Set(ctx, common.KeyBrandName, []byte("Arunika")))

	ro := ReadOnly(base)

	v, err := ro.Get(ctx, common.KeyBrandName)
	require.NoError(t, err)
	assert.Equal(t, "Arunika", string(v))

	assert.ErrorIs(t, ro.Set(ctx, common.KeyBrandName, []byte("x")), common.ErrReadOnly)
	assert.ErrorIs(t, ro.SetMany(ctx, map[string][]byte{"a": nil}), common.ErrReadOnly)
	assert.ErrorIs(t, ro.Delete(ctx, common.KeyBrandName), common.ErrReadOnly)
	assert.ErrorIs(t, ro.Clear(ctx), common.ErrReadOnly)

	v, _ = base.Get(ctx, common.KeyBrandName)
	assert.Equal(t, "Arunika", string(v))
}
