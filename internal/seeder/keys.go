package seeder

import (
	"context"
	"fmt"

	"github.com/Rana718/clothseed/internal/database"
)

// FetchRecentIDs returns the n highest values of pkColumn in table, highest
// first. It is only correct while this session is the table's sole writer.
func FetchRecentIDs(ctx context.Context, adapter database.DatabaseAdapter, table, pkColumn string, n int) ([]int64, error) {
	if !isValidIdentifier(table) || !isValidIdentifier(pkColumn) {
		return nil, &FetchError{Table: table, Err: fmt.Errorf("invalid identifier %s.%s", table, pkColumn)}
	}
	if n <= 0 {
		return nil, nil
	}

	pk := adapter.QuoteIdent(pkColumn)
	query, args, err := adapter.Builder().
		Select(pk).
		From(adapter.QuoteIdent(table)).
		OrderBy(pk + " DESC").
		Limit(uint64(n)).
		ToSql()
	if err != nil {
		return nil, &FetchError{Table: table, Err: err}
	}

	rows, err := adapter.Session().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &FetchError{Table: table, Err: err}
	}
	defer rows.Close()

	ids := make([]int64, 0, n)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, &FetchError{Table: table, Err: fmt.Errorf("failed to scan id: %w", err)}
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &FetchError{Table: table, Err: err}
	}

	if len(ids) < n {
		return nil, &FetchError{Table: table, Err: fmt.Errorf("expected %d ids, found %d", n, len(ids))}
	}
	return ids, nil
}
