// Package currencies provides the local persistence layer for the cached
// currency list.
//
// # Data Model
//
// Rows are keyed by currency id and carry a sort_order column assigned from
// the position in the last fetched list. Reads always return rows ordered by
// sort_order, so the remote order survives a restart.
//
// # Consistency
//
// ReplaceAll deletes every row and inserts the new batch inside a single
// transaction (see dbx.WithTx). Readers on other connections observe either
// the previous batch or the new one, never a mix.
//
// Typical Usage
//
//	repo := currencies.NewSQLiteRepository(db)
//	_ = repo.ReplaceAll(ctx, list)
//	list, _ := repo.GetAll(ctx)
//	_ = repo.Clear(ctx)
package currencies
