package kvstore

import (
	"context"

	"github.com/dmitrijs2005/arunika/internal/common"
)

type readOnly struct {
	Store
}

// ReadOnly returns a view of s whose writes all fail with common.ErrReadOnly.
// Reads, Ping and Close pass through.
func ReadOnly(s Store) Store {
	return readOnly{Store: s}
}

func (readOnly) Set(context.Context, string, []byte) error        { return common.ErrReadOnly }
func (readOnly) SetMany(context.Context, map[string][]byte) error { return common.ErrReadOnly }
func (readOnly) Delete(context.Context, string) error             { return common.ErrReadOnly }
func (readOnly) Clear(context.Context) error                      { return common.ErrReadOnly }
