package seeder

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/clothseed/internal/database"
	"github.com/rs/zerolog/log"
)

// validIdentifier validates SQL identifiers (table/column names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

const DefaultBatchSize = 100

// ProgressFunc is called after each committed chunk with the cumulative row count.
type ProgressFunc func(table string, done, total int)

// BatchWriter inserts rows in bounded chunks, one transaction per chunk.
type BatchWriter struct {
	session    database.Session
	qb         squirrel.StatementBuilderType
	quote      func(string) string
	BatchSize  int
	OnProgress ProgressFunc
}

func NewBatchWriter(adapter database.DatabaseAdapter, batchSize int) *BatchWriter {
	return &BatchWriter{
		session:   adapter.Session(),
		qb:        adapter.Builder(),
		quote:     adapter.QuoteIdent,
		BatchSize: batchSize,
	}
}

// isValidIdentifier checks if a string is a valid SQL identifier
func isValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// Insert writes rows into table in chunks of at most BatchSize rows. Each
// chunk is one multi-row INSERT committed on its own; a failing chunk is
// rolled back and reported as a *WriteError while earlier chunks stay committed.
// It returns the number of rows committed.
func (w *BatchWriter) Insert(ctx context.Context, table string, columns []string, rows [][]interface{}) (int, error) {
	if err := validateInsert(table, columns, rows); err != nil {
		return 0, &WriteError{Table: table, Err: err}
	}

	batchSize := w.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = w.quote(col)
	}

	total := len(rows)
	done := 0
	for chunk, start := 1, 0; start < total; chunk, start = chunk+1, start+batchSize {
		end := min(start+batchSize, total)

		if err := w.insertChunk(ctx, table, quoted, rows[start:end]); err != nil {
			return done, &WriteError{Table: table, Chunk: chunk, Offset: start, Rows: end - start, Err: err}
		}

		done = end
		log.Debug().Str("table", table).Int("chunk", chunk).Int("rows", end-start).Int("done", done).Msg("chunk committed")
		if w.OnProgress != nil {
			w.OnProgress(table, done, total)
		}
	}

	return done, nil
}

func (w *BatchWriter) insertChunk(ctx context.Context, table string, columns []string, rows [][]interface{}) error {
	builder := w.qb.Insert(w.quote(table)).Columns(columns...)
	for _, row := range rows {
		builder = builder.Values(row...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	tx, err := w.session.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func validateInsert(table string, columns []string, rows [][]interface{}) error {
	if !isValidIdentifier(table) {
		return fmt.Errorf("invalid table name: %s", table)
	}
	if len(columns) == 0 {
		return fmt.Errorf("no columns given")
	}
	for _, col := range columns {
		if !isValidIdentifier(col) {
			return fmt.Errorf("invalid column name: %s", col)
		}
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("row %d has %d values, want %d", i, len(row), len(columns))
		}
	}
	return nil
}
