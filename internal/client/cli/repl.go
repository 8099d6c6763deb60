package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
// Every handler receives the words typed after the command.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	Update(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	Progress(ctx context.Context, args []string) error
	Log(ctx context.Context, args []string) error
	Plans(ctx context.Context, args []string) error
	SubscribePlan(ctx context.Context, args []string) error
	Cancel(ctx context.Context, args []string) error
	Subscription(ctx context.Context, args []string) error
	Meals(ctx context.Context, args []string) error
	Restaurants(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	Language(ctx context.Context, args []string) error
	Reset(ctx context.Context, args []string) error
}

const (
	guestHelp = "Available commands: signup, login, meals, restaurants, favorite, plans, subscribe, subscription, language, reset, exit"
	userHelp  = "Available commands: profile, update, avatar, progress, log, meals, restaurants, favorite, plans, subscribe, subscription, cancel, language, logout, reset, exit"
)

// runREPL starts a simple read-eval-print loop for the nutrio client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens. Unknown commands
// are reported back to the user. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                               - show available commands
//	  - meals [-q text] [-c cat] [-t time] - list meals
//	  - restaurants [query]                - search restaurants
//	  - favorite <restaurant-id>           - toggle a favorite
//	  - plans                              - list subscription plans
//	  - subscribe <plan-id> [gym]          - subscribe to a plan
//	  - subscription                       - show the current subscription
//	  - language [en|ar]                   - show or switch the language
//	  - reset                              - wipe locally persisted state
//	  - exit | quit                        - leave the program
//
//	Not logged in:
//	  - signup | register                  - create an account
//	  - login                              - authenticate
//
//	Logged in:
//	  - profile                            - show the profile
//	  - update name <name> | update goals <kcal> <protein> <carbs> <fat>
//	  - avatar <file>                      - upload a profile picture
//	  - progress                           - show the last seven days
//	  - log <kcal> [protein carbs fat] | log meal <meal-id>
//	  - cancel                             - cancel the subscription
//	  - logout                             - log out
//
// Handlers report their own errors to the user; the returned error is
// ignored here so the loop stays focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("nutrio %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(userHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "signup", "register":
			_ = a.Signup(ctx, args)
		case "login":
			_ = a.Login(ctx, args)
		case "logout":
			_ = a.Logout(ctx, args)

		case "profile":
			_ = a.Profile(ctx, args)
		case "update":
			_ = a.Update(ctx, args)
		case "avatar":
			_ = a.Avatar(ctx, args)
		case "progress":
			_ = a.Progress(ctx, args)
		case "log":
			_ = a.Log(ctx, args)

		case "plans":
			_ = a.Plans(ctx, args)
		case "subscribe":
			_ = a.SubscribePlan(ctx, args)
		case "cancel":
			_ = a.Cancel(ctx, args)
		case "subscription", "plan":
			_ = a.Subscription(ctx, args)

		case "meals":
			_ = a.Meals(ctx, args)
		case "restaurants", "r":
			_ = a.Restaurants(ctx, args)
		case "favorite", "fav":
			_ = a.Favorite(ctx, args)

		case "language", "lang":
			_ = a.Language(ctx, args)
		case "reset":
			_ = a.Reset(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
