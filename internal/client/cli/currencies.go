package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var errSyncFailed = errors.New("currency synchronization failed")

// Sync fetches the currency list from the server.
func (a *App) Sync(ctx context.Context) error {
	if !a.cache.Synchronize(ctx) {
		return errSyncFailed
	}
	n := len(a.cache.Currencies())
	suffix := ""
	if !a.cache.Persistent() {
		suffix = " (not saved locally)"
	}
	a.println(fmt.Sprintf("%d currencies synchronized%s", n, suffix))
	return nil
}

// Currencies prints the cached list, marking the default currency.
func (a *App) Currencies(ctx context.Context) error {
	list := a.cache.Currencies()
	if len(list) == 0 {
		a.println("No currencies cached (type 'sync').")
		return nil
	}

	def, _ := a.prefs.DefaultCurrency(ctx, list)
	var b strings.Builder
	for _, c := range list {
		marker := " "
		if c.ID == def.ID {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %-4s %-3s %s\n", marker, c.Code, c.Symbol, c.Name)
	}
	_, _ = fmt.Fprint(a.outWriter(), b.String())
	return nil
}

// Clear empties the cached currencies in memory and on disk.
func (a *App) Clear(ctx context.Context) error {
	if err := a.cache.Clear(ctx); err != nil {
		return err
	}
	a.println("Currency cache cleared")
	return nil
}

// Guess re-runs the location heuristic and stores its result.
func (a *App) Guess(ctx context.Context) error {
	code, ok, err := a.prefs.GuessAndStore(ctx, a.env.Timezone(), a.env.Locales())
	if err != nil {
		return err
	}
	if !ok {
		a.println("Could not guess a currency from your location")
		return nil
	}
	a.println(fmt.Sprintf("Guessed currency: %s", code))
	return nil
}
