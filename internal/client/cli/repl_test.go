package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) rec(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}

func (f *fakeExec) Signup(_ context.Context, args []string) error { return f.rec("signup", args) }
func (f *fakeExec) Login(_ context.Context, args []string) error {
	f.loggedIn = true
	return f.rec("login", args)
}
func (f *fakeExec) Logout(_ context.Context, args []string) error {
	f.loggedIn = false
	return f.rec("logout", args)
}
func (f *fakeExec) Profile(_ context.Context, args []string) error  { return f.rec("profile", args) }
func (f *fakeExec) Update(_ context.Context, args []string) error   { return f.rec("update", args) }
func (f *fakeExec) Avatar(_ context.Context, args []string) error   { return f.rec("avatar", args) }
func (f *fakeExec) Progress(_ context.Context, args []string) error { return f.rec("progress", args) }
func (f *fakeExec) Log(_ context.Context, args []string) error      { return f.rec("log", args) }
func (f *fakeExec) Plans(_ context.Context, args []string) error    { return f.rec("plans", args) }
func (f *fakeExec) SubscribePlan(_ context.Context, args []string) error {
	return f.rec("subscribe", args)
}
func (f *fakeExec) Cancel(_ context.Context, args []string) error { return f.rec("cancel", args) }
func (f *fakeExec) Subscription(_ context.Context, args []string) error {
	return f.rec("subscription", args)
}
func (f *fakeExec) Meals(_ context.Context, args []string) error { return f.rec("meals", args) }
func (f *fakeExec) Restaurants(_ context.Context, args []string) error {
	return f.rec("restaurants", args)
}
func (f *fakeExec) Favorite(_ context.Context, args []string) error { return f.rec("favorite", args) }
func (f *fakeExec) Language(_ context.Context, args []string) error { return f.rec("language", args) }
func (f *fakeExec) Reset(_ context.Context, args []string) error    { return f.rec("reset", args) }

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

// capturePrintln records everything the REPL prints.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var got []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		got = append(got, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &got
}

func lines(s ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(s, "\n") + "\n"))
}

func TestRunREPL_DispatchesWithArgs(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, lines(
		"login ana@example.com",
		"",
		"LOG 500 30 40 10",
		"log meal 4",
		"update goals 2000 120 200 60",
		"meals -t lunch",
		"r vegan",
		"fav 2",
		"subscribe 2 gym",
		"plan",
		"cancel -y",
		"lang ar",
		"register",
		"logout",
		"exit",
		"profile",
	))

	assert.Equal(t, []string{
		"login ana@example.com",
		"log 500 30 40 10",
		"log meal 4",
		"update goals 2000 120 200 60",
		"meals -t lunch",
		"restaurants vegan",
		"favorite 2",
		"subscribe 2 gym",
		"subscription",
		"cancel -y",
		"language ar",
		"signup",
		"logout",
	}, exec.calls, "commands after exit are not read")
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, lines("help", "login", "help", "quit"))

	assert.Contains(t, *out, guestHelp)
	assert.Contains(t, *out, userHelp)
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, lines("foobar"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "nutrio s > ")
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	silencePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "s" }, lines("plans"))

	assert.Empty(t, exec.calls)
}
