package workflow

import (
	"fmt"

	"tm-migrator/internal/destination"
	"tm-migrator/internal/mapping"
	"tm-migrator/internal/record"
	"tm-migrator/internal/transform"
)

// ResolveResult lists what the resolve stage wrote.
type ResolveResult struct {
	Mappings []mapping.Row
	Files    []string
}

// Resolve reads the post-deploy Territory2 extract, fills in the mapping
// table and writes every pending association file with real IDs. Each
// association file gets its own destination context. Nothing is written
// until every file has resolved.
func (r *Runner) Resolve() (*ResolveResult, error) {
	var out *ResolveResult

	err := r.timed(StageResolve, func() error {
		mappingPath := r.outputPath(mapping.FileName)
		extract := r.cfg.Destination.ExtractPath

		pending := []string{
			transform.FileUserAssociationPending,
			transform.FileObjectAssociationPending,
		}

		var (
			resolved *destination.Context
			tables   []*record.Table
		)

		for _, name := range pending {
			dst, err := destination.Prepare(r.fs, mappingPath, []string{extract},
				destination.WithLogger(r.logger),
				destination.WithMetrics(r.metrics),
			)
			if err != nil {
				return err
			}

			if err := dst.UpdateRecordMaps(extract); err != nil {
				return err
			}

			table, err := dst.BuildAssociationRecords(r.outputPath(name))
			if err != nil {
				return err
			}

			if resolved == nil {
				resolved = dst
			}

			tables = append(tables, table)
		}

		for _, d := range resolved.Diagnostics().Warnings {
			r.logger.Warn("destination", "code", d.Code, "subject", d.Subject, "message", d.Message)
		}

		res := &ResolveResult{Mappings: resolved.Mappings()}

		if err := resolved.WriteMappingTable(r.fs, mappingPath); err != nil {
			return err
		}

		res.Files = append(res.Files, mappingPath)

		for _, table := range tables {
			if err := r.writeTable(table); err != nil {
				return err
			}

			res.Files = append(res.Files, table.Name)
		}

		out = res

		return nil
	})

	return out, err
}

func (r *Runner) writeTable(t *record.Table) error {
	f, err := r.fs.Create(t.Name)
	if err != nil {
		return err
	}

	if err := record.WriteTable(f, t); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", t.Name, err)
	}

	return nil
}
