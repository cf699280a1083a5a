package common

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Session is the single database session a seeding run executes on.
// *sql.Conn and *sql.DB both satisfy it.
type Session interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// OpenSession opens a pool capped at one connection and pins that connection,
// so every statement of a run goes through the same database session.
func OpenSession(ctx context.Context, driverName, dsn string) (*sql.DB, *sql.Conn, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s connection: %w", driverName, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(15 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to acquire session: %w", err)
	}

	return db, conn, nil
}

// CloseSession releases the pinned connection before the pool. Nil values are ignored.
func CloseSession(db *sql.DB, conn *sql.Conn) error {
	var errs []string
	if conn != nil {
		if err := conn.Close(); err != nil && err != sql.ErrConnDone {
			errs = append(errs, err.Error())
		}
	}
	if db != nil {
		if err := db.Close(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// QuoteWith wraps an identifier in the given quote rune, doubling any embedded quote.
func QuoteWith(name string, quote string) string {
	return quote + strings.ReplaceAll(name, quote, quote+quote) + quote
}
