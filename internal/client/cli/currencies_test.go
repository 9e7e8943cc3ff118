package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencies_MarksDefault(t *testing.T) {
	srv := &fakeServer{responses: map[string]string{"GetCurrencies": currenciesBody}}
	app, out := newTestApp(t, srv, ":memory:", "")
	ctx := context.Background()

	require.NoError(t, app.Sync(ctx))
	require.NoError(t, app.Guess(ctx))
	out.Reset()

	require.NoError(t, app.Currencies(ctx))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "  GBP"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "* EUR"), lines[1])
}

func TestCurrencies_Empty(t *testing.T) {
	app, out := newTestApp(t, &fakeServer{}, ":memory:", "")

	require.NoError(t, app.Currencies(context.Background()))
	assert.Contains(t, out.String(), "No currencies cached")
}

func TestClear(t *testing.T) {
	srv := &fakeServer{responses: map[string]string{"GetCurrencies": currenciesBody}}
	app, out := newTestApp(t, srv, ":memory:", "")
	ctx := context.Background()
	require.NoError(t, app.Sync(ctx))

	require.NoError(t, app.Clear(ctx))

	assert.Empty(t, app.cache.Currencies())
	assert.Contains(t, out.String(), "Currency cache cleared")
}

func TestGuess_NoMatch(t *testing.T) {
	app, out := newTestApp(t, &fakeServer{}, ":memory:", "")
	app.env = fakeEnv{}

	require.NoError(t, app.Guess(context.Background()))
	assert.Contains(t, out.String(), "Could not guess")
}

func TestSync_Failure(t *testing.T) {
	srv := &fakeServer{responses: map[string]string{"GetCurrencies": `{"errors":[{"message":"maintenance"}]}`}}
	app, out := newTestApp(t, srv, ":memory:", "")

	assert.ErrorIs(t, app.Sync(context.Background()), errSyncFailed)
	assert.Contains(t, out.String(), "[error] maintenance")
}
