// Package app is the composition root of Arunika. It loads every persisted
// slice once at startup, applies the startup entry, and exposes the
// operations the terminal client and the preview server call.
//
// Every mutation follows the same order: check the guard, change the
// in-memory slice, then ask the syncer to persist that slice. A failed
// write is returned but the in-memory change stays.
package app
