package destination

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"tm-migrator/internal/common"
	"tm-migrator/internal/diagnostic"
	"tm-migrator/internal/mapping"
	"tm-migrator/internal/metrics"
	"tm-migrator/internal/record"
	"tm-migrator/internal/sentinel"
	"tm-migrator/internal/storage"
)

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records placeholder lookups.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Context) {
		c.metrics = m
	}
}

// Context owns the mapping rows and the index of Territory2 records.
// It is not safe for concurrent use.
type Context struct {
	src     storage.Source
	logger  *slog.Logger
	metrics *metrics.Metrics

	state State
	rows  []mapping.Row

	byDeveloperName map[string]record.Territory2
	byID            map[string]record.Territory2

	diags diagnostic.Diagnostics
}

// Prepare loads the mapping table and indexes whichever of extractPaths
// exist. Before deploy there are usually none.
func Prepare(src storage.Source, mappingTablePath string, extractPaths []string, opts ...Option) (*Context, error) {
	c := &Context{
		src:    src,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	rows, err := mapping.LoadFile(src, mappingTablePath)
	if err != nil {
		return nil, err
	}

	if diags := mapping.Validate(rows); diags.HasErrors() {
		return nil, &sentinel.ParseError{File: mappingTablePath, Err: diags.Error()}
	}

	var records []record.Territory2

	for _, p := range extractPaths {
		exists, err := src.Exists(p)
		if err != nil {
			return nil, err
		}

		if !exists {
			c.logger.Debug("no destination extract", "path", p)
			continue
		}

		found, err := readTerritory2(src, p)
		if err != nil && !errors.Is(err, sentinel.ErrEmptyExtract) {
			return nil, err
		}

		records = append(records, found...)
	}

	c.rows = rows
	c.index(records)
	c.state = StatePrepared

	c.logger.Info("destination context prepared", "mappings", len(rows), "territory2", len(records))

	return c, nil
}

// UpdateRecordMaps re-reads the post-deploy extract at extractPath and
// fills in the destination IDs of every mapping row. Either every row
// resolves or nothing changes.
func (c *Context) UpdateRecordMaps(extractPath string) error {
	if c.state == StateAssociationsBuilt {
		return fmt.Errorf("update record maps: %w", sentinel.ErrAlreadyBuilt)
	}

	records, err := readTerritory2(c.src, extractPath)
	if err != nil {
		return err
	}

	byName := common.IndexBy(records, func(t record.Territory2) string { return t.DeveloperName })

	rows := make([]mapping.Row, len(c.rows))
	missing := &sentinel.DeveloperNameNotFoundError{Suggestions: map[string][]string{}}

	var diags diagnostic.Diagnostics

	for i, r := range c.rows {
		dest, ok := byName[r.DeveloperName]
		if !ok {
			missing.Names = append(missing.Names, r.DeveloperName)
			continue
		}

		r.DestinationID = dest.Id
		r.ParentDestinationID = ""

		if r.ParentDeveloperName != "" {
			parent, ok := byName[r.ParentDeveloperName]
			if !ok {
				missing.Names = append(missing.Names, r.ParentDeveloperName)
				continue
			}

			r.ParentDestinationID = parent.Id

			if dest.ParentTerritory2Id != "" && dest.ParentTerritory2Id != parent.Id {
				diags.AddWarning(
					"parent_mismatch",
					fmt.Sprintf("deployed parent is %s, mapping expects %s (%s)", dest.ParentTerritory2Id, parent.Id, r.ParentDeveloperName),
					record.KindTerritory2.String(),
					r.DeveloperName,
				)
			}
		}

		rows[i] = r
	}

	if len(missing.Names) > 0 {
		missing.Names = dedupe(missing.Names)
		candidates := sortedKeys(byName)

		for _, name := range missing.Names {
			if s := suggest(name, candidates); len(s) > 0 {
				missing.Suggestions[name] = s
			}
		}

		c.logger.Error("developer names missing from destination extract", "path", extractPath, "missing", len(missing.Names))

		return fmt.Errorf("update record maps from %s: %w", extractPath, missing)
	}

	c.rows = rows
	c.diags = diags
	c.index(records)
	c.state = StateUpdated

	c.logger.Info("record maps updated", "path", extractPath, "mappings", len(rows), "territory2", len(records))

	return nil
}

// State returns the phase the Context has reached.
func (c *Context) State() State { return c.state }

// Mappings returns a copy of the mapping rows.
func (c *Context) Mappings() []mapping.Row { return slices.Clone(c.rows) }

// Diagnostics returns findings from the last successful update.
func (c *Context) Diagnostics() diagnostic.Diagnostics { return c.diags }

// Territory2 looks up an indexed destination record by ID.
func (c *Context) Territory2(id string) (record.Territory2, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// WriteMappingTable writes the current mapping rows to path.
func (c *Context) WriteMappingTable(sink storage.Sink, path string) error {
	return mapping.WriteFile(sink, path, c.rows)
}

func (c *Context) index(records []record.Territory2) {
	c.byDeveloperName = common.IndexBy(records, func(t record.Territory2) string { return t.DeveloperName })
	c.byID = common.IndexBy(records, func(t record.Territory2) string { return t.Id })
}

// readTerritory2 parses a Territory2 extract. An extract without rows
// returns an error matching sentinel.ErrEmptyExtract.
func readTerritory2(src storage.Source, name string) ([]record.Territory2, error) {
	data, err := src.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read destination extract: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%s: %w", name, sentinel.ErrEmptyExtract)
	}

	t, err := record.ParseTable(bytes.NewReader(data), name)
	if errors.Is(err, sentinel.ErrEmptyTable) {
		return nil, fmt.Errorf("%s: %w", name, sentinel.ErrEmptyExtract)
	}

	if err != nil {
		return nil, err
	}

	return record.Decode[record.Territory2](t)
}
