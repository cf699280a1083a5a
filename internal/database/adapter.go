package database

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/clothseed/internal/database/common"
)

type Session = common.Session

type DatabaseAdapter interface {
	Connect(ctx context.Context, dsn string) error
	Close() error

	// Session returns the pinned connection. Nil before Connect.
	Session() Session

	// SQL dialect
	Provider() string
	Builder() squirrel.StatementBuilderType
	QuoteIdent(name string) string
	TruncateStatements(table string) []string
}

// ConnectionError reports that no database session could be established.
type ConnectionError struct {
	Provider string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Provider, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Open creates the adapter for provider and connects it. On failure nothing
// is left open and the error is a *ConnectionError.
func Open(ctx context.Context, provider, dsn string) (DatabaseAdapter, error) {
	adapter := NewAdapter(provider)
	if err := adapter.Connect(ctx, dsn); err != nil {
		adapter.Close()
		return nil, &ConnectionError{Provider: adapter.Provider(), Err: err}
	}
	return adapter, nil
}
