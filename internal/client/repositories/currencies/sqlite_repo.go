package currencies

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/dutch/internal/client/models"
	"github.com/dmitrijs2005/dutch/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, list []models.Currency) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM currencies`); err != nil {
			return fmt.Errorf("failed to clear currencies: %w", err)
		}

		query := `
			INSERT INTO currencies (id, code, name, symbol, sort_order) VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				code = excluded.code,
				name = excluded.name,
				symbol = excluded.symbol,
				sort_order = excluded.sort_order
		`
		for _, c := range list {
			if _, err := tx.ExecContext(ctx, query, c.ID, c.Code, c.Name, c.Symbol, c.SortOrder); err != nil {
				return fmt.Errorf("failed to insert currency %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Currency, error) {
	query := `SELECT id, code, name, symbol, sort_order FROM currencies ORDER BY sort_order ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select currencies: %w", err)
	}
	defer rows.Close()

	result := []models.Currency{}
	for rows.Next() {
		var c models.Currency
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Symbol, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan currency row: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate currency rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM currencies`); err != nil {
		return fmt.Errorf("failed to clear currencies: %w", err)
	}
	return nil
}
