package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/clothseed/internal/database/common"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
)

type Adapter struct {
	db   *sql.DB
	conn *sql.Conn
	qb   squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	// pgx accepts both postgres:// and postgresql:// URLs as well as key=value strings
	url = strings.TrimSpace(url)

	db, conn, err := common.OpenSession(ctx, "pgx", url)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}

	p.db = db
	p.conn = conn
	return nil
}

func (p *Adapter) Close() error {
	err := common.CloseSession(p.db, p.conn)
	p.db, p.conn = nil, nil
	return err
}

func (p *Adapter) Session() common.Session {
	if p.conn == nil {
		return nil
	}
	return p.conn
}

func (p *Adapter) Provider() string {
	return "postgresql"
}

func (p *Adapter) Builder() squirrel.StatementBuilderType {
	return p.qb
}

func (p *Adapter) QuoteIdent(name string) string {
	return pq.QuoteIdentifier(name)
}

func (p *Adapter) TruncateStatements(table string) []string {
	return []string{fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", p.QuoteIdent(table))}
}
