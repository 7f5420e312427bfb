// Package state holds the independently persisted slices of application
// state and the rules for mirroring them into the key-value store.
//
// Each Slice owns one store key, a codec and a default. Loading never fails:
// a missing key yields the default, and data that does not parse or does not
// pass the shape check is logged and replaced by the default. Saving writes
// the whole slice under its key.
//
// Syncer is the write-back side. It writes each slice on every change,
// independently of the others, except for the view pointers (view, active
// course, active lesson) which go out together in one atomic SetMany. A
// disabled Syncer, used for shared sessions, writes nothing.
package state
