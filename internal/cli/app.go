package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/arunika/internal/app"
	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/logging"
	"github.com/dmitrijs2005/arunika/internal/router"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

type App struct {
	lms    *app.App
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	copied *copiedFlag
}

// NewApp builds the client over lms, reading commands from in and writing
// to out.
func NewApp(lms *app.App, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		lms:    lms,
		log:    log.With("component", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
		copied: newCopiedFlag(lms.Config().CopiedReset),
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) isLoggedIn() bool {
	return a.lms.Session().IsLoggedIn || a.lms.Shared()
}

func (a *App) canMutate() bool {
	return a.lms.CanMutate()
}

func (a *App) getStatus() string {
	var parts []string
	st := a.lms.State()
	if st.Shared {
		parts = append(parts, "shared")
	} else if st.Session.IsLoggedIn {
		parts = append(parts, st.Session.Username, string(st.Session.Role))
	}
	parts = append(parts, string(a.lms.Screen()))
	if a.copied.On() {
		parts = append(parts, "copied")
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Root greets the user, runs the login gate and then the REPL. A shared
// session skips the login gate.
func (a *App) Root(ctx context.Context) {
	a.println(renderHeader(a.lms.Brand(), ""))
	a.println("Welcome to Arunika (type 'help' for commands)")

	if a.lms.Shared() {
		if err := a.showShared(); err != nil {
			a.println(renderError(message(err)))
		}
	} else {
		if e := a.lms.Entry(); e.PublicCourse != "" {
			if err := a.showPreview(e.PublicCourse, e.PublicLesson); err != nil {
				a.println(renderError(message(err)))
			}
		}
		for a.lms.Screen() == router.ScreenLoggedOut {
			err := a.Login(ctx)
			if err == nil {
				break
			}
			if !errors.Is(err, common.ErrInvalidCredentials) {
				return
			}
			a.println(renderError(message(err)))
		}
		_ = a.Show(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// message is the user-facing text for err.
func message(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, common.ErrReadOnly):
		return "Read-only: only an admin outside a shared session can change content"
	case errors.Is(err, common.ErrNoAccess):
		return "No access"
	case errors.Is(err, common.ErrForbidden):
		return "Not allowed here"
	case errors.Is(err, errUsage):
		return err.Error()
	}
	return "error: " + err.Error()
}

var errUsage = errors.New("usage")

func usage(s string) error {
	return fmt.Errorf("%w: %s", errUsage, s)
}
