package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/avatars"
	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/nutrio/internal/client/store"
	"github.com/dmitrijs2005/nutrio/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single connectivity probe.
const pingTimeout = 3 * time.Second

// Deps are the collaborators an App is built from.
type Deps struct {
	Gateway gateway.Gateway
	KV      metadata.Repository
	// Avatars may be nil; avatar upload is then reported as unavailable.
	Avatars avatars.Storage
	Logger  logging.Logger
	// Now is the clock handed to the stores; nil means time.Now.
	Now func() time.Time
	// In and Out default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer
}

type App struct {
	gw  gateway.Gateway
	kv  metadata.Repository
	log logging.Logger

	users   *store.UserStore
	subs    *store.SubscriptionStore
	catalog *store.CatalogStore
	lang    *store.LanguageStore

	reader *bufio.Reader
	out    io.Writer

	mu   sync.RWMutex
	mode Mode

	closers []func() error
}

// New builds the stores on top of d.
func New(d Deps) *App {
	log := d.Logger
	if log == nil {
		log = logging.Nop()
	}
	in, out := d.In, d.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	opts := []store.Option{store.WithLogger(log)}
	if d.Now != nil {
		opts = append(opts, store.WithClock(d.Now))
	}
	if d.Avatars != nil {
		opts = append(opts, store.WithAvatars(d.Avatars))
	}

	users := store.NewUserStore(d.Gateway, d.KV, opts...)
	return &App{
		gw:      d.Gateway,
		kv:      d.KV,
		log:     log.With("component", "cli"),
		users:   users,
		subs:    store.NewSubscriptionStore(d.Gateway, users, d.KV, opts...),
		catalog: store.NewCatalogStore(d.Gateway, d.KV, opts...),
		lang:    store.NewLanguageStore(d.KV, log),
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// onClose registers fn to run from Close, last registered first.
func (a *App) onClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

// Close releases the stores and everything registered with onClose.
func (a *App) Close() error {
	a.users.Close()
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "switched mode", "mode", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.users.Snapshot().IsAuthenticated
}

// Init restores persisted state and resolves the session. It never fails;
// every problem degrades to guest or mock data inside the stores.
func (a *App) Init(ctx context.Context) {
	a.lang.Load(ctx)
	a.catalog.Load(ctx)
	a.subs.Load(ctx)
	a.users.InitializeUser(ctx)
	a.subs.FetchSubscription(ctx)
	a.probe(ctx)
}

// Run initializes the stores, starts the connectivity watcher and blocks in
// the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context, checkInterval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.Init(ctx)
	a.println("Welcome to nutrio (type 'help' for commands)")
	if snap := a.users.Snapshot(); snap.IsAuthenticated && snap.User != nil {
		a.println(a.lang.T("welcome", snap.User.Name))
	}

	go a.StartOnlineStatusWatcher(ctx, checkInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// probe pings the backend once and records the resulting mode.
func (a *App) probe(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.gw.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher pings the backend every interval until ctx is
// done, switching between online and offline mode.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if snap := a.users.Snapshot(); snap.IsAuthenticated && snap.User != nil {
		s = snap.User.Email + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if lang := a.lang.Language(); lang != "" {
		s = s + " " + string(lang)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
