// Package services contains the application services of the Dutch client:
// the currency reference cache, authentication flows and the guessed
// currency preference.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/dutch/internal/client/client"
	"github.com/dmitrijs2005/dutch/internal/client/models"
	"github.com/dmitrijs2005/dutch/internal/client/repositories/currencies"
	"github.com/dmitrijs2005/dutch/internal/logging"
	"github.com/dmitrijs2005/dutch/internal/observable"
)

// ErrStorageUnavailable is returned by operations that need the local store
// when the service was built without one.
var ErrStorageUnavailable = errors.New("local storage unavailable")

type currenciesResponse struct {
	Currencies []models.Currency `json:"currencies"`
}

// CurrencyCache keeps the currency list in memory, mirrors it to the local
// store and publishes every change to subscribers.
type CurrencyCache struct {
	// mu serializes store writes with the publication that follows them.
	mu   sync.Mutex
	list *observable.Value[[]models.Currency]
	repo currencies.Repository
	api  client.Executor
	log  logging.Logger
}

// NewCurrencyCache builds a cache. A nil repo keeps the list in memory only.
func NewCurrencyCache(api client.Executor, repo currencies.Repository, log logging.Logger) *CurrencyCache {
	if log == nil {
		log = logging.NewNop()
	}
	return &CurrencyCache{
		list: observable.New[[]models.Currency](nil),
		repo: repo,
		api:  api,
		log:  log,
	}
}

// Currencies returns a copy of the current list.
func (c *CurrencyCache) Currencies() []models.Currency {
	return clone(c.list.Get())
}

// Subscribe calls fn with the current list and after every change.
func (c *CurrencyCache) Subscribe(fn func([]models.Currency)) (unsubscribe func()) {
	return c.list.Subscribe(func(list []models.Currency) { fn(clone(list)) })
}

// Persistent reports whether the cache is backed by a local store.
func (c *CurrencyCache) Persistent() bool {
	return c.repo != nil
}

// Synchronize fetches the list from the server, stores it and publishes it.
// It returns false and leaves everything untouched when the query produced
// no currencies.
func (c *CurrencyCache) Synchronize(ctx context.Context) bool {
	resp := client.Execute[currenciesResponse](ctx, c.api, currenciesQuery, nil)
	if resp == nil || resp.Currencies == nil {
		c.log.Warn(ctx, "no currencies returned from API")
		return false
	}

	list := dedupeByID(resp.Currencies)
	for i := range list {
		list[i].SortOrder = i
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.repo != nil {
		if err := c.repo.ReplaceAll(ctx, list); err != nil {
			c.log.Error(ctx, "failed to persist currencies", "error", err)
		}
	}
	c.list.Set(list)

	c.log.Debug(ctx, "currencies synchronized", "count", len(list))
	return true
}

// LoadFromLocalStore publishes the stored list without network access. An
// empty store leaves the current list as it is.
func (c *CurrencyCache) LoadFromLocalStore(ctx context.Context) error {
	if c.repo == nil {
		return ErrStorageUnavailable
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	list, err := c.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load currencies: %w", err)
	}
	if len(list) == 0 {
		c.log.Debug(ctx, "local currency store is empty")
		return nil
	}

	c.list.Set(list)
	return nil
}

// Clear empties the local store and then the in-memory list. When the store
// cannot be cleared the in-memory list is left as it is.
func (c *CurrencyCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.repo != nil {
		if err := c.repo.Clear(ctx); err != nil {
			return fmt.Errorf("clear currencies: %w", err)
		}
	}
	c.list.Set(nil)
	return nil
}

// dedupeByID keeps the last entry for every id, at that entry's position,
// so the published list matches what the keyed store ends up holding.
func dedupeByID(in []models.Currency) []models.Currency {
	last := make(map[string]int, len(in))
	for i, cur := range in {
		last[cur.ID] = i
	}
	out := make([]models.Currency, 0, len(last))
	for i, cur := range in {
		if last[cur.ID] == i {
			out = append(out, cur)
		}
	}
	return out
}

func clone(list []models.Currency) []models.Currency {
	if list == nil {
		return nil
	}
	out := make([]models.Currency, len(list))
	copy(out, list)
	return out
}
