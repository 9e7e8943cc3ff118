package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dmitrijs2005/dutch/internal/client/client"
	"github.com/dmitrijs2005/dutch/internal/client/models"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fakeAPI answers every query with data on success or with the given
// failure kind.
type fakeAPI struct {
	kind    client.Kind
	data    string
	queries []string
	vars    []map[string]any
}

func (f *fakeAPI) Do(ctx context.Context, query string, vars map[string]any, decode func(json.RawMessage) error) client.Outcome {
	f.queries = append(f.queries, query)
	f.vars = append(f.vars, vars)
	if f.kind != client.KindSuccess {
		return client.Outcome{Kind: f.kind, Err: errors.New(f.kind.String())}
	}
	out := client.Outcome{Kind: client.KindSuccess, Data: json.RawMessage(f.data)}
	if decode != nil && out.HasData() {
		if err := decode(out.Data); err != nil {
			return client.Outcome{Kind: client.KindTransportFailure, Err: err}
		}
	}
	return out
}

func codes(list []models.Currency) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Code)
	}
	return out
}
