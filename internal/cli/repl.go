package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	canMutate() bool

	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Show(ctx context.Context) error
	Courses(ctx context.Context) error
	Open(ctx context.Context, args []string) error
	Lesson(ctx context.Context, args []string) error
	Done(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error

	Admin(ctx context.Context) error
	AddCourse(ctx context.Context) error
	EditCourse(ctx context.Context, args []string) error
	DeleteCourse(ctx context.Context, args []string) error
	AddLesson(ctx context.Context, args []string) error
	EditLesson(ctx context.Context, args []string) error
	DeleteLesson(ctx context.Context, args []string) error
	AddAsset(ctx context.Context, args []string) error
	DeleteAsset(ctx context.Context, args []string) error
	Publish(ctx context.Context, args []string) error
	Thumbnail(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	Brand(ctx context.Context) error
	Logo(ctx context.Context, args []string) error
	Remote(ctx context.Context) error
	Report(ctx context.Context, args []string) error

	Share(ctx context.Context, args []string) error
	Tokens(ctx context.Context, args []string) error
	Revoke(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login, exit"
	helpViewer    = "Available commands: courses, open <courseId>, lesson <lessonId>, done <lessonId>, dashboard, logout, exit"
	helpAdmin     = "Admin commands: admin, addcourse, editcourse <id>, delcourse <id>, addlesson <courseId>, editlesson <courseId> <lessonId>, " +
		"dellesson <courseId> <lessonId>, addasset <courseId> <lessonId>, delasset <courseId> <lessonId> <assetId>, publish <courseId> on|off, " +
		"thumb <courseId> <file>, avatar <courseId> <file>, brand, logo <file>, remote, report <file.xlsx>, share [lessonId], tokens [courseId], revoke <token>"
)

// runREPL starts a simple read–eval–print loop for the Arunika client.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Unknown commands are reported back to the user. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Errors returned by handlers are printed as one line; the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("arunika %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn(renderError(message(err)))
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		switch {
		case !a.isLoggedIn():
			printlnFn(helpLoggedOut)
		case a.canMutate():
			printlnFn(helpViewer)
			printlnFn(helpAdmin)
		default:
			printlnFn(helpViewer)
		}
		return nil
	case "login":
		return a.Login(ctx)
	}

	if !a.isLoggedIn() {
		printlnFn("Please log in first (type 'login')")
		return nil
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "show":
		return a.Show(ctx)
	case "courses", "l":
		return a.Courses(ctx)
	case "open":
		return a.Open(ctx, args)
	case "lesson":
		return a.Lesson(ctx, args)
	case "done":
		return a.Done(ctx, args)
	case "dashboard":
		return a.Dashboard(ctx)
	case "admin":
		return a.Admin(ctx)
	case "addcourse":
		return a.AddCourse(ctx)
	case "editcourse":
		return a.EditCourse(ctx, args)
	case "delcourse":
		return a.DeleteCourse(ctx, args)
	case "addlesson":
		return a.AddLesson(ctx, args)
	case "editlesson":
		return a.EditLesson(ctx, args)
	case "dellesson":
		return a.DeleteLesson(ctx, args)
	case "addasset":
		return a.AddAsset(ctx, args)
	case "delasset":
		return a.DeleteAsset(ctx, args)
	case "publish":
		return a.Publish(ctx, args)
	case "thumb":
		return a.Thumbnail(ctx, args)
	case "avatar":
		return a.Avatar(ctx, args)
	case "brand":
		return a.Brand(ctx)
	case "logo":
		return a.Logo(ctx, args)
	case "remote":
		return a.Remote(ctx)
	case "report":
		return a.Report(ctx, args)
	case "share":
		return a.Share(ctx, args)
	case "tokens":
		return a.Tokens(ctx, args)
	case "revoke":
		return a.Revoke(ctx, args)
	}

	printlnFn("Unknown command:", cmd)
	return nil
}
