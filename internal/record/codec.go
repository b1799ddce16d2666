package record

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"tm-migrator/internal/sentinel"
)

type fieldSpec struct {
	index    int
	column   string
	required bool
	kind     reflect.Kind
}

// specsFor reads the `csv:"Column[,required]"` tags of struct type t.
func specsFor(t reflect.Type) ([]fieldSpec, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s is not a struct: %w", t, sentinel.ErrType)
	}

	var specs []fieldSpec

	for i := range t.NumField() {
		f := t.Field(i)

		tag, ok := f.Tag.Lookup("csv")
		if !ok || tag == "-" {
			continue
		}

		column, opts, _ := strings.Cut(tag, ",")

		switch f.Type.Kind() {
		case reflect.String, reflect.Bool, reflect.Int:
		default:
			return nil, fmt.Errorf("field %s.%s has unsupported type %s: %w", t.Name(), f.Name, f.Type, sentinel.ErrType)
		}

		specs = append(specs, fieldSpec{
			index:    i,
			column:   column,
			required: opts == "required",
			kind:     f.Type.Kind(),
		})
	}

	return specs, nil
}

// Decode converts every row of t into a T using its `csv` struct tags.
// Columns tagged required must be present in the header; untagged and
// unknown columns are ignored.
func Decode[T any](t *Table) ([]T, error) {
	specs, err := specsFor(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	columns := make([]int, len(specs))

	for i, s := range specs {
		col, ok := t.Column(s.column)
		if !ok {
			if s.required {
				return nil, &sentinel.ParseError{File: t.Name, Err: fmt.Errorf("missing required column %q", s.column)}
			}

			col = -1
		}

		columns[i] = col
	}

	out := make([]T, 0, len(t.Rows))

	for r, row := range t.Rows {
		var rec T

		v := reflect.ValueOf(&rec).Elem()

		for i, s := range specs {
			if columns[i] < 0 {
				continue
			}

			if err := setField(v.Field(s.index), s.kind, row[columns[i]]); err != nil {
				return nil, &sentinel.ParseError{File: t.Name, Row: r + 1, Err: fmt.Errorf("column %s: %w", s.column, err)}
			}
		}

		out = append(out, rec)
	}

	return out, nil
}

// Encode builds a table named name from records, with one column per tagged field.
func Encode[T any](name string, records []T) (*Table, error) {
	specs, err := specsFor(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	header := make([]string, len(specs))
	for i, s := range specs {
		header[i] = s.column
	}

	t := NewTable(name, header...)

	for _, rec := range records {
		v := reflect.ValueOf(rec)
		row := make([]string, len(specs))

		for i, s := range specs {
			row[i] = formatField(v.Field(s.index), s.kind)
		}

		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

func setField(f reflect.Value, kind reflect.Kind, raw string) error {
	raw = strings.TrimSpace(raw)

	switch kind {
	case reflect.String:
		f.SetString(raw)
	case reflect.Bool:
		b, err := parseBool(raw)
		if err != nil {
			return err
		}

		f.SetBool(b)
	case reflect.Int:
		if raw == "" {
			return nil
		}

		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}

		f.SetInt(int64(n))
	}

	return nil
}

// parseBool accepts the spellings seen in data-loader exports.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "", "false", "0", "no":
		return false, nil
	case "true", "1", "yes":
		return true, nil
	default:
		return false, errors.New("invalid boolean " + strconv.Quote(raw))
	}
}

func formatField(f reflect.Value, kind reflect.Kind) string {
	switch kind {
	case reflect.Bool:
		return strconv.FormatBool(f.Bool())
	case reflect.Int:
		return strconv.FormatInt(f.Int(), 10)
	default:
		return f.String()
	}
}
