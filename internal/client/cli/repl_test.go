package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) List(ctx context.Context, args []string) error {
	return f.record("list", args)
}
func (f *fakeExec) Next(ctx context.Context) error        { return f.record("next", nil) }
func (f *fakeExec) Prev(ctx context.Context) error        { return f.record("prev", nil) }
func (f *fakeExec) ClearSearch(ctx context.Context) error { return f.record("clear", nil) }
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	return f.record("search", args)
}
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	return f.record("show", args)
}
func (f *fakeExec) Image(ctx context.Context, args []string) error {
	return f.record("img", args)
}
func (f *fakeExec) Login(ctx context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Admin(ctx context.Context) error  { return f.record("admin", nil) }
func (f *fakeExec) Create(ctx context.Context) error { return f.record("create", nil) }
func (f *fakeExec) Edit(ctx context.Context, args []string) error {
	return f.record("edit", args)
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	return f.record("delete", args)
}
func (f *fakeExec) Status(ctx context.Context) error { return f.record("status", nil) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var out []string
	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = toString(v)
		}
		out = append(out, strings.Join(parts, " "))
		return 0, nil
	}
	printFn = func(a ...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })
	return &out
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func TestRunREPL_DispatchesCommandsAndAliases(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"l 2",
		"n",
		"prev",
		"s react go",
		"clear",
		"show 7",
		"image next",
		"login admin",
		"help",
		"admin",
		"new",
		"edit 7",
		"rm 7",
		"status",
		"logout",
		"foobar",
		"",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"list", "next", "prev", "search", "clear", "show", "img", "login",
		"admin", "create", "edit", "delete", "status", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"2"}, exec.args[0])
	assert.Equal(t, []string{"react", "go"}, exec.args[3])
	assert.Equal(t, []string{"admin"}, exec.args[7])

	require.GreaterOrEqual(t, len(*out), 4)
	assert.Equal(t, helpPublic, (*out)[0])
	assert.Equal(t, helpAdmin, (*out)[1])
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("status")))
	assert.Equal(t, []string{"status"}, exec.calls)
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	captureOutput(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("status\n")))
	assert.Empty(t, exec.calls)
}
