package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/dutch/internal/client/client"
	"github.com/dmitrijs2005/dutch/internal/client/config"
	"github.com/dmitrijs2005/dutch/internal/client/models"
	"github.com/dmitrijs2005/dutch/internal/client/repositories/currencies"
	"github.com/dmitrijs2005/dutch/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/dutch/internal/client/services"
	"github.com/dmitrijs2005/dutch/internal/client/session"
	"github.com/dmitrijs2005/dutch/internal/logging"
	"github.com/dmitrijs2005/dutch/internal/notify"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config    *config.Config
	db        *sql.DB
	log       logging.Logger
	transport client.Transport
	session   *session.State
	auth      services.AuthService
	cache     *services.CurrencyCache
	prefs     *services.PreferenceService
	toasts    *notify.Queue
	nav       *navigator
	env       environment
	reader    *bufio.Reader
	out       io.Writer

	unsubscribe []func()

	modeMu sync.Mutex
	Mode   Mode
}

// NewApp wires the client. When the local database cannot be opened the app
// keeps running with in-memory state only.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	log, err := logging.New(c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	var (
		metaRepo     metadata.Repository
		currencyRepo currencies.Repository
		store        session.Store
	)
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "local storage unavailable, running in memory", "path", c.DatabasePath, "error", err)
		db = nil
	} else {
		metaRepo = metadata.NewSQLiteRepository(db)
		currencyRepo = currencies.NewSQLiteRepository(db)
		store = session.NewMetadataStore(metaRepo)
	}

	transport := client.NewHTTPTransport(c.ServerEndpointURL, &http.Client{})
	transport.Timeout = c.RequestTimeout
	transport.MaxResponseBytes = c.MaxResponseBytes

	a := &App{
		config:    c,
		db:        db,
		log:       log,
		transport: transport,
		toasts:    notify.NewQueue(c.NotificationTTL),
		env:       osEnvironment{},
		reader:    bufio.NewReader(in),
		out:       out,
	}
	a.nav = newNavigator(func() { a.println("Please log in (type 'login').") })
	a.session = session.New(ctx, store, log)

	notifier := notify.Multi(a.toasts, notify.NewWriter(out))
	api := client.NewQueryClient(transport, a.session, notifier, a.nav, log)

	a.cache = services.NewCurrencyCache(api, currencyRepo, log)
	a.prefs = services.NewPreferenceService(metaRepo, nil, log)
	a.auth = services.NewAuthService(api, a.session, a.cache, log)

	a.watchSession()
	return a, nil
}

// watchSession clears cached reference data whenever the session ends,
// including a forced logout by the query client.
func (a *App) watchSession() {
	loggedIn := false
	unsubscribe := a.session.Subscribe(func(s models.Session) {
		was := loggedIn
		loggedIn = s.LoggedIn()
		if was && !loggedIn {
			ctx := context.Background()
			if err := a.cache.Clear(ctx); err != nil {
				a.log.Error(ctx, "failed to clear currencies after logout", "error", err)
			}
		}
		if loggedIn {
			a.nav.Go(pathHome)
		}
	})
	a.unsubscribe = append(a.unsubscribe, unsubscribe)
}

// Start restores cached data and fetches currencies when nothing is cached
// and the server answers.
func (a *App) Start(ctx context.Context) {
	if err := a.cache.LoadFromLocalStore(ctx); err != nil {
		a.log.Warn(ctx, "currencies not loaded from local store", "error", err)
	}

	if len(a.cache.Currencies()) == 0 {
		if err := client.Ping(ctx, a.transport); err != nil {
			a.setMode(ModeOffline)
		} else {
			a.setMode(ModeOnline)
			a.cache.Synchronize(ctx)
		}
	}

	if _, _, err := a.prefs.GuessAndStore(ctx, a.env.Timezone(), a.env.Locales()); err != nil {
		a.log.Warn(ctx, "failed to store guessed currency", "error", err)
	}

	if !a.isLoggedIn() {
		a.nav.Go(pathLogin)
	}
}

// Run starts the interactive session and blocks until the user exits.
func (a *App) Run(ctx context.Context) error {
	a.println("Welcome to Dutch CLI (type 'help' for commands)")
	a.Start(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Close releases subscriptions and the local database.
func (a *App) Close() error {
	for _, u := range a.unsubscribe {
		u()
	}
	a.unsubscribe = nil
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().LoggedIn()
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.Mode
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := client.Ping(pingCtx, a.transport)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) outWriter() io.Writer {
	if a.out == nil {
		return os.Stdout
	}
	return a.out
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.outWriter(), args...)
}
