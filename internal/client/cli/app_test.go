package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/dutch/internal/client/client"
	"github.com/dmitrijs2005/dutch/internal/client/config"
	"github.com/dmitrijs2005/dutch/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnv struct {
	tz      string
	locales []string
}

func (f fakeEnv) Timezone() string  { return f.tz }
func (f fakeEnv) Locales() []string { return f.locales }

// fakeServer answers GraphQL requests by operation name.
type fakeServer struct {
	mu        sync.Mutex
	responses map[string]string
	status    map[string]int
	seen      []string
}

func (f *fakeServer) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		f.mu.Lock()
		defer f.mu.Unlock()
		for op, resp := range f.responses {
			if strings.Contains(string(body), op) {
				f.seen = append(f.seen, op)
				if code, ok := f.status[op]; ok {
					w.WriteHeader(code)
				}
				_, _ = io.WriteString(w, resp)
				return
			}
		}
		_, _ = io.WriteString(w, `{"data":{"__typename":"Query"}}`)
	}
}

func (f *fakeServer) calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.seen {
		if s == op {
			n++
		}
	}
	return n
}

const currenciesBody = `{"data":{"currencies":[
	{"id":"1","code":"GBP","name":"Pound","symbol":"£"},
	{"id":"2","code":"EUR","name":"Euro","symbol":"€"}
]}}`

func newTestApp(t *testing.T, srv *fakeServer, dsn string, input string) (*App, *bytes.Buffer) {
	t.Helper()
	ts := httptest.NewServer(srv.handler(t))
	t.Cleanup(ts.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ServerEndpointURL = ts.URL
	cfg.DatabasePath = dsn
	cfg.LogLevel = "error"
	cfg.NotificationTTL = 0

	var out bytes.Buffer
	app, err := NewApp(context.Background(), cfg, strings.NewReader(input), &out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	app.env = fakeEnv{tz: "Europe/Amsterdam"}
	return app, &out
}

func TestApp_StartSyncsWhenCacheEmpty(t *testing.T) {
	srv := &fakeServer{responses: map[string]string{"GetCurrencies": currenciesBody}}
	app, _ := newTestApp(t, srv, ":memory:", "")

	app.Start(context.Background())

	assert.Equal(t, 1, srv.calls("GetCurrencies"))
	assert.Len(t, app.cache.Currencies(), 2)
	assert.Equal(t, ModeOnline, app.mode())
	assert.True(t, app.nav.CurrentPathIsLogin())

	guess, ok, err := app.prefs.Guessed(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "EUR", guess)
}

func TestApp_StartUsesLocalStoreFirst(t *testing.T) {
	dsn := t.TempDir() + "/dutch.db"

	srv := &fakeServer{responses: map[string]string{"GetCurrencies": currenciesBody}}
	first, _ := newTestApp(t, srv, dsn, "")
	first.Start(context.Background())
	require.NoError(t, first.Close())

	second, _ := newTestApp(t, srv, dsn, "")
	second.Start(context.Background())

	assert.Equal(t, 1, srv.calls("GetCurrencies"), "second start must not hit the network")
	assert.Len(t, second.cache.Currencies(), 2)
}

func TestApp_StartOfflineKeepsCacheEmpty(t *testing.T) {
	srv := &fakeServer{}
	app, _ := newTestApp(t, srv, ":memory:", "")
	app.transport = failingTransport{}

	app.Start(context.Background())

	assert.Empty(t, app.cache.Currencies())
	assert.Equal(t, ModeOffline, app.mode())
}

func TestApp_LogoutTransitionClearsCache(t *testing.T) {
	srv := &fakeServer{responses: map[string]string{"GetCurrencies": currenciesBody}}
	app, _ := newTestApp(t, srv, ":memory:", "")
	ctx := context.Background()

	app.session.Login(ctx, "T1", models.User{ID: "u1", Name: "Ann"})
	require.True(t, app.cache.Synchronize(ctx))
	require.NotEmpty(t, app.cache.Currencies())

	app.session.Logout(ctx)

	assert.Empty(t, app.cache.Currencies())
}

func TestApp_ForcedLogoutOnUnauthorized(t *testing.T) {
	srv := &fakeServer{
		responses: map[string]string{"GetCurrencies": ``},
		status:    map[string]int{"GetCurrencies": http.StatusUnauthorized},
	}
	app, out := newTestApp(t, srv, ":memory:", "")
	ctx := context.Background()
	app.session.Login(ctx, "T1", models.User{ID: "u1", Name: "Ann"})

	assert.ErrorIs(t, app.Sync(ctx), errSyncFailed)

	assert.False(t, app.isLoggedIn())
	assert.True(t, app.nav.CurrentPathIsLogin())
	assert.Equal(t, 1, strings.Count(out.String(), "Session expired"))
	assert.NotContains(t, out.String(), "unknown error")
	require.Len(t, app.toasts.Items(), 1)
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	dsn := t.TempDir() + "/dutch.db"
	srv := &fakeServer{}

	first, _ := newTestApp(t, srv, dsn, "")
	first.session.Login(context.Background(), "T1", models.User{ID: "u1", Name: "Ann"})
	require.NoError(t, first.Close())

	second, _ := newTestApp(t, srv, dsn, "")
	assert.Equal(t, "T1", second.session.Token())
	assert.Equal(t, "(Ann )", second.getStatus())
}

func TestApp_InMemoryWhenDatabaseUnavailable(t *testing.T) {
	srv := &fakeServer{responses: map[string]string{"GetCurrencies": currenciesBody}}
	app, out := newTestApp(t, srv, t.TempDir()+"/missing/dir/dutch.db", "")

	assert.False(t, app.cache.Persistent())
	require.NoError(t, app.Sync(context.Background()))
	assert.Contains(t, out.String(), "not saved locally")
}

func TestSetMode(t *testing.T) {
	srv := &fakeServer{}
	app, _ := newTestApp(t, srv, ":memory:", "")

	app.setMode(ModeOnline)
	assert.Equal(t, ModeOnline, app.mode())
	app.setMode(ModeOffline)
	assert.Equal(t, "(offline)", app.getStatus())
}

func TestStartOnlineStatusWatcher(t *testing.T) {
	srv := &fakeServer{}
	app, _ := newTestApp(t, srv, ":memory:", "")
	app.setMode(ModeOffline)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return app.mode() == ModeOnline }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

type failingTransport struct{}

func (failingTransport) Do(context.Context, client.Request) (client.Response, error) {
	return client.Response{}, io.ErrUnexpectedEOF
}
