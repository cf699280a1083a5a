package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/clothseed/internal/database/common"
	_ "github.com/mattn/go-sqlite3"
)

type Adapter struct {
	db   *sql.DB
	conn *sql.Conn
	qb   squirrel.StatementBuilderType
	path string
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?_foreign_keys=on"
	}

	s.path = strings.TrimPrefix(url, "sqlite://")
	if idx := strings.Index(s.path, "?"); idx > 0 {
		s.path = s.path[:idx]
	}

	db, conn, err := common.OpenSession(ctx, "sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("sqlite %s: %w", s.path, err)
	}

	s.db = db
	s.conn = conn
	return nil
}

func (s *Adapter) Close() error {
	err := common.CloseSession(s.db, s.conn)
	s.db, s.conn = nil, nil
	return err
}

func (s *Adapter) Session() common.Session {
	if s.conn == nil {
		return nil
	}
	return s.conn
}

func (s *Adapter) Provider() string {
	return "sqlite"
}

func (s *Adapter) Builder() squirrel.StatementBuilderType {
	return s.qb
}

func (s *Adapter) QuoteIdent(name string) string {
	return common.QuoteWith(name, `"`)
}

// TruncateStatements leaves sqlite_sequence alone; it only exists once an
// AUTOINCREMENT table has been created.
func (s *Adapter) TruncateStatements(table string) []string {
	return []string{fmt.Sprintf("DELETE FROM %s", s.QuoteIdent(table))}
}
