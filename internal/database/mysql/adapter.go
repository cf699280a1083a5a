package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/clothseed/internal/database/common"
	_ "github.com/go-sql-driver/mysql"
)

type Adapter struct {
	db        *sql.DB
	conn      *sql.Conn
	qb        squirrel.StatementBuilderType
	currentDB string
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// normalizeDSN converts mysql:// URLs into the driver's DSN form and leaves
// anything else untouched.
func normalizeDSN(url string) string {
	if !strings.HasPrefix(url, "mysql://") {
		return url
	}

	dsn := strings.TrimPrefix(url, "mysql://")
	atIndex := strings.LastIndex(dsn, "@")
	if atIndex <= 0 {
		return dsn
	}

	credentials := dsn[:atIndex]
	remainder := dsn[atIndex+1:]

	slashIndex := strings.Index(remainder, "/")
	if slashIndex <= 0 {
		return fmt.Sprintf("%s@tcp(%s)/", credentials, remainder)
	}

	hostPort := remainder[:slashIndex]
	dbAndParams := remainder[slashIndex+1:]

	dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=REQUIRED", "tls=skip-verify")
	dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=DISABLED", "tls=false")
	dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=require", "tls=skip-verify")
	dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=disable", "tls=false")

	return fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
}

func (m *Adapter) Connect(ctx context.Context, url string) error {
	dsn := normalizeDSN(url)

	if idx := strings.Index(dsn, "/"); idx > 0 {
		dbPart := dsn[idx+1:]
		if qIdx := strings.Index(dbPart, "?"); qIdx >= 0 {
			m.currentDB = dbPart[:qIdx]
		} else {
			m.currentDB = dbPart
		}
	}

	db, conn, err := common.OpenSession(ctx, "mysql", dsn)
	if err != nil {
		return fmt.Errorf("mysql %s: %w", m.currentDB, err)
	}

	m.db = db
	m.conn = conn
	return nil
}

func (m *Adapter) Close() error {
	err := common.CloseSession(m.db, m.conn)
	m.db, m.conn = nil, nil
	return err
}

func (m *Adapter) Session() common.Session {
	if m.conn == nil {
		return nil
	}
	return m.conn
}

func (m *Adapter) Provider() string {
	return "mysql"
}

func (m *Adapter) Builder() squirrel.StatementBuilderType {
	return m.qb
}

func (m *Adapter) QuoteIdent(name string) string {
	return common.QuoteWith(name, "`")
}

func (m *Adapter) TruncateStatements(table string) []string {
	return []string{
		"SET FOREIGN_KEY_CHECKS = 0",
		fmt.Sprintf("TRUNCATE TABLE %s", m.QuoteIdent(table)),
		"SET FOREIGN_KEY_CHECKS = 1",
	}
}
