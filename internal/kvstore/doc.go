// Package kvstore is the persistent key-value store every state slice is
// mirrored into.
//
// # Overview
//
// Store is a synchronous string-keyed byte store. SQLStore keeps the pairs in
// a single kv table, either in a local SQLite file (modernc.org/sqlite, the
// default) or in PostgreSQL through pgx. Open picks the dialect from the
// driver name and applies the embedded goose migrations. MemoryStore keeps
// everything in process and is what tests use. ReadOnly wraps any Store so
// that every write fails with common.ErrReadOnly.
//
// # Semantics
//
// Keys are independent: a write to one key never touches another. The only
// multi-key write is SetMany, which is atomic in SQLStore (one transaction)
// and under one lock in MemoryStore. Last write wins; there is no versioning.
//
// Typical Usage
//
//	store, err := kvstore.Open(ctx, "sqlite", "arunika.db")
//	_ = store.Set(ctx, common.KeyBrandName, []byte("Arunika"))
//	v, err := store.Get(ctx, common.KeyBrandName) // common.ErrNotFound when absent
package kvstore
