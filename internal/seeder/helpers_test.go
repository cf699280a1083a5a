package seeder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Rana718/clothseed/internal/config"
	"github.com/Rana718/clothseed/internal/database"
	"github.com/Rana718/clothseed/template"
	"github.com/stretchr/testify/require"
)

// newCatalogDB opens a fresh SQLite file with the catalog schema applied.
func newCatalogDB(t *testing.T) database.DatabaseAdapter {
	t.Helper()
	ctx := context.Background()

	adapter, err := database.Open(ctx, "sqlite", filepath.Join(t.TempDir(), "catalog.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	ddl := template.NewProjectTemplate(template.SQLite).GetSchema(config.Default().Tables)
	_, err = adapter.Session().ExecContext(ctx, ddl)
	require.NoError(t, err)

	return adapter
}

func countRows(t *testing.T, adapter database.DatabaseAdapter, table string) int {
	t.Helper()
	rows, err := adapter.Session().QueryContext(context.Background(), "SELECT COUNT(*) FROM "+adapter.QuoteIdent(table))
	require.NoError(t, err)
	defer rows.Close()

	var n int
	require.True(t, rows.Next())
	require.NoError(t, rows.Scan(&n))
	return n
}

func productRows(n int) [][]interface{} {
	return toRows(NewDataGenerator(42).Products(n))
}
