package record

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/transform"

	"tm-migrator/internal/sentinel"
)

// Table is a parsed tabular extract: a header and string rows of equal width.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewTable creates an empty table with the given header.
func NewTable(name string, header ...string) *Table {
	t := &Table{
		Name:   name,
		Header: header,
	}
	t.reindex()

	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Column returns the position of a header field.
func (t *Table) Column(name string) (int, bool) {
	if t.index == nil {
		t.reindex()
	}

	i, ok := t.index[name]

	return i, ok
}

// Value returns the cell at row for the named column, or "" if the column is absent.
func (t *Table) Value(row int, column string) string {
	i, ok := t.Column(column)
	if !ok {
		return ""
	}

	return t.Rows[row][i]
}

// Append adds a row. The row is padded or cut to the header width.
func (t *Table) Append(values ...string) {
	row := make([]string, len(t.Header))
	copy(row, values)
	t.Rows = append(t.Rows, row)
}

// Records returns every row as a header -> value map.
func (t *Table) Records() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))

	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Header))
		for i, h := range t.Header {
			rec[h] = row[i]
		}

		out = append(out, rec)
	}

	return out
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		t.index[h] = i
	}
}

// Reader streams rows from a delimited extract one at a time.
type Reader struct {
	name   string
	csv    *csv.Reader
	header []string
	row    int
}

// NewReader reads the header row of r. The header must be present, non-empty
// and free of duplicate names.
func NewReader(r io.Reader, name string) (*Reader, error) {
	cr := csv.NewReader(transform.NewReader(r, bomDecoder()))
	// Column counts are checked per row so the error names the row.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &sentinel.ParseError{File: name, Err: errors.New("no header row")}
		}

		return nil, &sentinel.ParseError{File: name, Err: fmt.Errorf("read header: %w", err)}
	}

	seen := make(map[string]struct{}, len(header))

	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, &sentinel.ParseError{File: name, Err: fmt.Errorf("header column %d is empty", i+1)}
		}

		if _, dup := seen[h]; dup {
			return nil, &sentinel.ParseError{File: name, Err: fmt.Errorf("duplicate header column %q", h)}
		}

		seen[h] = struct{}{}
		header[i] = h
	}

	return &Reader{
		name:   name,
		csv:    cr,
		header: header,
	}, nil
}

// Header returns the trimmed header fields.
func (r *Reader) Header() []string { return r.header }

// Row returns the 1-indexed number of the last row returned by Next.
func (r *Reader) Row() int { return r.row }

// Next returns the next data row, or io.EOF after the last one.
func (r *Reader) Next() ([]string, error) {
	values, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}

	r.row++

	if err != nil {
		return nil, &sentinel.ParseError{File: r.name, Row: r.row, Err: err}
	}

	if len(values) != len(r.header) {
		return nil, &sentinel.ParseError{
			File: r.name,
			Row:  r.row,
			Err:  fmt.Errorf("row has %d columns, expected %d", len(values), len(r.header)),
		}
	}

	return values, nil
}

// ParseTable reads a whole extract. A header with no data rows returns the
// empty table together with an error matching sentinel.ErrEmptyTable.
func ParseTable(r io.Reader, name string) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	decoded, _, err := DetectAndDecode(data)
	if err != nil {
		return nil, &sentinel.ParseError{File: name, Err: err}
	}

	reader, err := NewReader(bytes.NewReader(decoded), name)
	if err != nil {
		return nil, err
	}

	table := NewTable(name, reader.Header()...)

	for {
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		table.Rows = append(table.Rows, row)
	}

	if table.Len() == 0 {
		return table, fmt.Errorf("%s: %w", name, sentinel.ErrEmptyTable)
	}

	return table, nil
}

// WriteTable writes the header and rows of t as comma-separated text.
func WriteTable(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write %s header: %w", t.Name, err)
	}

	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write %s rows: %w", t.Name, err)
	}

	return nil
}
