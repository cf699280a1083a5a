package seeder

import "fmt"

// WriteError reports a failed chunk insert or commit. Chunks before Chunk
// were committed and stay in the database.
type WriteError struct {
	Table  string
	Chunk  int // 1-based; 0 when the rows were rejected before any SQL ran
	Offset int // index of the chunk's first row
	Rows   int
	Err    error
}

func (e *WriteError) Error() string {
	if e.Chunk == 0 {
		return fmt.Sprintf("insert into %s rejected: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("insert into %s failed at chunk %d (rows %d-%d): %v",
		e.Table, e.Chunk, e.Offset+1, e.Offset+e.Rows, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// FetchError reports that generated identifiers could not be read back.
type FetchError struct {
	Table string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching ids from %s failed: %v", e.Table, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
