package source

import (
	"errors"
	"fmt"
	"path"

	"golang.org/x/sync/errgroup"

	"tm-migrator/internal/metadata"
	"tm-migrator/internal/record"
	"tm-migrator/internal/sentinel"
	"tm-migrator/internal/storage"
)

func (c *Context) build(opts Options) error {
	var (
		e   extract
		err error
	)

	if e.Territories, err = readTable[record.Territory](c, opts.DataDir, record.KindTerritory, !opts.allowEmpty); err != nil {
		return err
	}

	if e.Rules, err = readTable[record.AssignmentRule](c, opts.DataDir, record.KindAssignmentRule, false); err != nil {
		return err
	}

	if e.Items, err = readTable[record.AssignmentRuleItem](c, opts.DataDir, record.KindAssignmentRuleItem, false); err != nil {
		return err
	}

	if e.Users, err = readTable[record.UserAssignment](c, opts.DataDir, record.KindUserAssignment, false); err != nil {
		return err
	}

	if e.Shares, err = readTable[record.RecordShare](c, opts.DataDir, record.KindRecordShare, false); err != nil {
		return err
	}

	objects, err := readMetadata(c.src, opts.MetadataDir, opts.objects())
	if err != nil {
		return err
	}

	for _, o := range objects {
		c.metrics.AddSharingRules(o.Object, len(o.Rules), o.Discarded)

		if !o.Present {
			c.logger.Info("no sharing rules file", "object", o.Object)
			continue
		}

		c.logger.Debug("sharing rules read", "object", o.Object, "kept", len(o.Rules), "discarded", o.Discarded)
		e.SharingRules = append(e.SharingRules, o.Rules...)
	}

	e.index()
	e.assignNames(c.metrics)
	e.check()

	c.data = &e

	c.logger.Info("source extract ready",
		"territories", len(e.Territories),
		"rules", len(e.Rules),
		"items", len(e.Items),
		"users", len(e.Users),
		"shares", len(e.Shares),
		"sharing_rules", len(e.SharingRules),
		"renamed", e.Renamed,
	)

	return nil
}

// readTable parses one extract into typed records. An extract with a header
// and no rows is accepted unless required is set.
func readTable[T any](c *Context, dir string, kind record.Kind, required bool) ([]T, error) {
	name := path.Join(dir, kind.FileName())

	f, err := c.src.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s extract: %w", kind, err)
	}
	defer f.Close()

	t, err := record.ParseTable(f, name)
	if err != nil {
		if !errors.Is(err, sentinel.ErrEmptyTable) || required {
			return nil, err
		}

		c.logger.Warn("extract has no rows", "kind", kind.String(), "file", name)
	}

	rows, err := record.Decode[T](t)
	if err != nil {
		return nil, err
	}

	c.metrics.AddRecords(kind.String(), len(rows))
	c.logger.Debug("extract parsed", "kind", kind.String(), "rows", len(rows))

	return rows, nil
}

// readMetadata reads every object's rule file concurrently. Results keep
// the order of objects.
func readMetadata(src storage.Source, dir string, objects []string) ([]metadata.ObjectRules, error) {
	results := make([]metadata.ObjectRules, len(objects))

	var g errgroup.Group

	for i, object := range objects {
		g.Go(func() error {
			res, err := metadata.ReadObject(src, dir, object)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
