package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/showcase/internal/client/actions"
	"github.com/dmitrijs2005/showcase/internal/client/client"
	"github.com/dmitrijs2005/showcase/internal/client/config"
	"github.com/dmitrijs2005/showcase/internal/client/router"
	"github.com/dmitrijs2005/showcase/internal/client/services"
	"github.com/dmitrijs2005/showcase/internal/client/session"
	"github.com/dmitrijs2005/showcase/internal/client/storage"
	"github.com/dmitrijs2005/showcase/internal/client/store"
	"github.com/dmitrijs2005/showcase/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Pinger reports whether the server answers its health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config  *config.Config
	actions *actions.Actions
	session *session.Store
	store   *store.Store
	router  *router.Router
	probe   Pinger
	render  *Renderer
	reader  *bufio.Reader
	logger  logging.Logger
	closers []io.Closer

	mu   sync.RWMutex
	mode Mode

	page     int
	carousel Carousel
}

// NewApp wires every client component from c: the session database, the
// session and collection stores, the router, the HTTP adapter, the health
// probe and the view actions.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	repos, err := storage.Open(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	sess := session.NewStore()
	if err := session.Restore(ctx, sess, repos.Sessions); err != nil {
		logger.Warn(ctx, "could not restore session", "err", err)
	}
	session.Persist(sess, repos.Sessions, logger.With("module", "session"))

	st := store.New()
	rt := router.New(sess)

	api, err := client.NewHTTPClient(c.APIBaseURL, sess, rt, client.WithLogger(logger.With("module", "http")))
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	probe, err := client.NewHealthProbe(c.HealthAddr)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	acts := actions.New(
		services.NewAuthService(api),
		services.NewProjectService(api),
		sess, st, rt, logger,
		actions.Options{PageSize: c.PageSize, AdminPageSize: c.AdminPageSize},
	)

	app := newApp(c, acts, sess, st, rt, probe, NewRenderer(os.Stdout, DetectStyled(os.Stdout)), bufio.NewReader(os.Stdin), logger)
	app.closers = []io.Closer{probe, repos}
	return app, nil
}

func newApp(
	c *config.Config,
	acts *actions.Actions,
	sess *session.Store,
	st *store.Store,
	rt *router.Router,
	probe Pinger,
	render *Renderer,
	reader *bufio.Reader,
	logger logging.Logger,
) *App {
	return &App{
		config:  c,
		actions: acts,
		session: sess,
		store:   st,
		router:  rt,
		probe:   probe,
		render:  render,
		reader:  reader,
		logger:  logger.With("module", "cli"),
		page:    1,
	}
}

// Run starts the watcher and the REPL and blocks until the user exits or ctx
// is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.render.Info("Welcome to the project showcase (type 'help' for commands)")
	if u, ok := a.session.User(); ok {
		a.render.Info(fmt.Sprintf("Signed in as %s", u.Username))
	}
	_ = a.List(ctx, nil)

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
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
		a.logger.Info(ctx, "switched mode", "mode", mode)
	}
}

func (a *App) getStatus() string {
	s := ""
	if u, ok := a.session.User(); ok {
		s = u.Username + " "
	}
	if m := a.Mode(); m != ModeUnknown {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
