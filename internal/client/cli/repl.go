package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	List(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	ClearSearch(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Image(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	Admin(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Status(ctx context.Context) error
}

const (
	helpPublic = "Available commands: (l)ist [page], next, prev, search <text>, clear, show <id>, img next|prev, login, status, exit"
	helpAdmin  = "Available commands: (l)ist [page], next, prev, search <text>, clear, show <id>, img next|prev, admin, create, edit <id>, delete <id>, logout, status, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// It returns on EOF, on "exit"/"quit", or when ctx is done.
//
// Errors from command handlers are not printed here; handlers report their
// own failures so the loop stays focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printFn(fmt.Sprintf("showcase %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) > 0 {
			if quit := dispatch(ctx, a, parts[0], parts[1:]); quit {
				return
			}
		}

		if err != nil {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) bool {
	switch strings.ToLower(cmd) {
	case "help", "?":
		if a.isLoggedIn() {
			printlnFn(helpAdmin)
		} else {
			printlnFn(helpPublic)
		}

	case "l", "list":
		_ = a.List(ctx, args)

	case "next", "n":
		_ = a.Next(ctx)

	case "prev", "p":
		_ = a.Prev(ctx)

	case "search", "s":
		_ = a.Search(ctx, args)

	case "clear":
		_ = a.ClearSearch(ctx)

	case "show":
		_ = a.Show(ctx, args)

	case "img", "image":
		_ = a.Image(ctx, args)

	case "login":
		_ = a.Login(ctx, args)

	case "logout":
		_ = a.Logout(ctx)

	case "admin":
		_ = a.Admin(ctx)

	case "create", "new":
		_ = a.Create(ctx)

	case "edit":
		_ = a.Edit(ctx, args)

	case "delete", "rm":
		_ = a.Delete(ctx, args)

	case "status":
		_ = a.Status(ctx)

	case "exit", "quit":
		printlnFn("Bye!")
		return true

	default:
		printlnFn("Unknown command:", cmd)
	}
	return false
}
