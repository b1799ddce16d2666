package destination

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"tm-migrator/internal/record"
	"tm-migrator/internal/sentinel"
)

// BuildAssociationRecords streams the association file at path and returns
// it with every placeholder cell replaced by its Territory2 ID. It succeeds
// at most once per Context; a failed attempt leaves the Context updated.
func (c *Context) BuildAssociationRecords(path string) (*record.Table, error) {
	switch c.state {
	case StateAssociationsBuilt:
		return nil, fmt.Errorf("build association records: %w", sentinel.ErrAlreadyBuilt)
	case StateUpdated:
	default:
		return nil, fmt.Errorf("build association records: %w", sentinel.ErrNotUpdated)
	}

	f, err := c.src.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open association file: %w", err)
	}
	defer f.Close()

	reader, err := record.NewReader(f, path)
	if err != nil {
		return nil, err
	}

	out := record.NewTable(strings.TrimSuffix(path, ".pending.csv")+".csv", reader.Header()...)
	missing := &sentinel.DeveloperNameNotFoundError{Suggestions: map[string][]string{}}
	resolved := 0

	for {
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		replaced := false

		for i, cell := range row {
			if !IsPlaceholder(cell) {
				continue
			}

			id, ok, err := c.ResolvePlaceholder(cell)
			if err != nil {
				return nil, err
			}

			if !ok {
				missing.Names = append(missing.Names, strings.TrimPrefix(cell, PlaceholderPrefix))
				continue
			}

			row[i] = id
			replaced = true
			resolved++
		}

		c.metrics.IncrementPlaceholder(replaced)
		out.Rows = append(out.Rows, row)
	}

	if len(missing.Names) > 0 {
		missing.Names = dedupe(missing.Names)
		candidates := sortedKeys(c.byDeveloperName)

		for _, name := range missing.Names {
			if s := suggest(name, candidates); len(s) > 0 {
				missing.Suggestions[name] = s
			}
		}

		return nil, fmt.Errorf("build association records from %s: %w", path, missing)
	}

	c.state = StateAssociationsBuilt

	c.logger.Info("association records built", "path", path, "rows", out.Len(), "resolved", resolved)

	return out, nil
}
