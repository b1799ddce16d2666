package mapping

import (
	"fmt"

	"tm-migrator/internal/diagnostic"
	"tm-migrator/internal/naming"
)

const kindMapping = "mapping"

// Validate checks a mapping table for structural problems: empty or
// malformed DeveloperNames, duplicates, and parents that are not in the table.
func Validate(rows []Row) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	sources := make(map[string]struct{}, len(rows))
	names := make(map[string]struct{}, len(rows))

	for i, r := range rows {
		subject := r.SourceID
		if subject == "" {
			subject = fmt.Sprintf("row %d", i+1)
		}

		if r.SourceID == "" {
			res.AddError("missing_source_id", "row has no sourceId", kindMapping, subject)
		} else if _, dup := sources[r.SourceID]; dup {
			res.AddError("duplicate_source_id", fmt.Sprintf("sourceId %q appears more than once", r.SourceID), kindMapping, subject)
		}

		sources[r.SourceID] = struct{}{}

		if !naming.IsValid(r.DeveloperName) || len(r.DeveloperName) > naming.MaxLength {
			res.AddError("invalid_developer_name", fmt.Sprintf("developer name %q is not valid", r.DeveloperName), kindMapping, subject)
		}

		if _, dup := names[r.DeveloperName]; dup {
			res.AddError("duplicate_developer_name", fmt.Sprintf("developer name %q appears more than once", r.DeveloperName), kindMapping, subject)
		}

		names[r.DeveloperName] = struct{}{}
	}

	for _, r := range rows {
		if r.ParentDeveloperName == "" {
			continue
		}

		if _, ok := names[r.ParentDeveloperName]; !ok {
			res.AddWarning("unknown_parent", fmt.Sprintf("parent %q is not in the table", r.ParentDeveloperName), kindMapping, r.SourceID)
		}
	}

	return res
}
