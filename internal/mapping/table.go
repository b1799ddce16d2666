package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"tm-migrator/internal/record"
	"tm-migrator/internal/sentinel"
	"tm-migrator/internal/storage"
)

// LoadFile reads and parses the mapping table at path.
func LoadFile(src storage.Source, path string) ([]Row, error) {
	f, err := src.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping table %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse parses a mapping table. A table with a header and no rows is valid
// and yields no rows.
func Parse(r io.Reader, name string) ([]Row, error) {
	t, err := record.ParseTable(r, name)
	if err != nil && !errors.Is(err, sentinel.ErrEmptyTable) {
		return nil, err
	}

	rows, err := record.Decode[Row](t)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Encode converts rows to a table in the fixed column order.
func Encode(rows []Row) (*record.Table, error) {
	return record.Encode(FileName, rows)
}

// Write writes rows as a mapping table.
func Write(w io.Writer, rows []Row) error {
	t, err := Encode(rows)
	if err != nil {
		return err
	}

	return record.WriteTable(w, t)
}

// WriteFile writes rows to path through sink.
func WriteFile(sink storage.Sink, path string, rows []Row) error {
	var buf bytes.Buffer

	if err := Write(&buf, rows); err != nil {
		return fmt.Errorf("failed to encode mapping table: %w", err)
	}

	if err := sink.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write mapping table %s: %w", path, err)
	}

	return nil
}
