// Package cli provides the interactive Arunika terminal client.
//
// It is the view layer over app.App: a login prompt, the course dashboard,
// the lesson player and the admin commands. Typical flow: open the store,
// prompt for credentials until they match (skipped for shared sessions),
// then execute user commands until exit.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
