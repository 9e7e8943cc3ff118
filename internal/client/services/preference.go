package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dutch/internal/client/locale"
	"github.com/dmitrijs2005/dutch/internal/client/models"
	"github.com/dmitrijs2005/dutch/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/dutch/internal/logging"
)

// GuessedCurrencyKey is the metadata key of the guessed currency code.
const GuessedCurrencyKey = "guessed_currency"

// PreferenceService stores the currency guessed from the user's location.
// The guess is kept apart from the currency list and is never validated
// against it.
type PreferenceService struct {
	repo  metadata.Repository
	table []locale.Rule
	log   logging.Logger

	// memory holds the guess when there is no repo.
	memory string
}

// NewPreferenceService builds the service. A nil repo keeps the guess in
// memory; a nil table means locale.DefaultTable.
func NewPreferenceService(repo metadata.Repository, table []locale.Rule, log logging.Logger) *PreferenceService {
	if table == nil {
		table = locale.DefaultTable
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &PreferenceService{repo: repo, table: table, log: log}
}

// GuessAndStore runs the heuristic and overwrites the stored guess with the
// result. No match removes any previous guess.
func (p *PreferenceService) GuessAndStore(ctx context.Context, tz string, locales []string) (string, bool, error) {
	code, ok := locale.GuessCurrencyCode(tz, locales, p.table)
	p.log.Debug(ctx, "currency guessed", "tz", tz, "locales", locales, "code", code, "matched", ok)

	if p.repo == nil {
		p.memory = code
		return code, ok, nil
	}

	if !ok {
		if err := p.repo.Delete(ctx, GuessedCurrencyKey); err != nil {
			return "", false, fmt.Errorf("clear guessed currency: %w", err)
		}
		return "", false, nil
	}
	if err := p.repo.Set(ctx, GuessedCurrencyKey, []byte(code)); err != nil {
		return code, true, fmt.Errorf("store guessed currency: %w", err)
	}
	return code, true, nil
}

// Guessed returns the stored guess.
func (p *PreferenceService) Guessed(ctx context.Context) (string, bool, error) {
	if p.repo == nil {
		return p.memory, p.memory != "", nil
	}
	v, ok, err := p.repo.Get(ctx, GuessedCurrencyKey)
	if err != nil {
		return "", false, fmt.Errorf("read guessed currency: %w", err)
	}
	if !ok || len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

// DefaultCurrency picks the guessed currency when it is in list, else the
// first entry of list. It returns false for an empty list.
func (p *PreferenceService) DefaultCurrency(ctx context.Context, list []models.Currency) (models.Currency, bool) {
	if len(list) == 0 {
		return models.Currency{}, false
	}
	code, ok, err := p.Guessed(ctx)
	if err != nil {
		p.log.Warn(ctx, "failed to read guessed currency", "error", err)
	}
	if ok {
		for _, c := range list {
			if c.Code == code {
				return c, true
			}
		}
	}
	return list[0], true
}
