package currencies

import (
	"context"

	"github.com/dmitrijs2005/dutch/internal/client/models"
)

// Repository describes the operations the currency cache needs from the store.
type Repository interface {
	// ReplaceAll atomically swaps the stored batch for list. Each currency is
	// stored with its SortOrder as given.
	ReplaceAll(ctx context.Context, list []models.Currency) error

	// GetAll returns every stored currency ordered by SortOrder ascending.
	GetAll(ctx context.Context) ([]models.Currency, error)

	// Clear removes every stored currency.
	Clear(ctx context.Context) error
}
