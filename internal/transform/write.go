package transform

import (
	"bufio"
	"fmt"
	"path"

	"tm-migrator/internal/mapping"
	"tm-migrator/internal/metadata"
	"tm-migrator/internal/record"
	"tm-migrator/internal/report"
	"tm-migrator/internal/storage"
)

// Write stores artifacts under dir and returns the paths written, in
// write order.
func Write(sink storage.Sink, dir string, a *Artifacts) ([]string, error) {
	w := &writer{sink: sink, dir: dir}

	writeTable(w, FileTerritory2, a.Territories)
	writeTable(w, FileRule, a.Rules)
	writeTable(w, FileRuleItem, a.RuleItems)
	writeTable(w, FileRuleAssociation, a.RuleAssociations)
	writeTable(w, FileUserAssociationPending, a.UserAssociations)
	writeTable(w, FileObjectAssociationPending, a.ObjectAssociations)

	for _, object := range a.Objects {
		w.xml(object, a.SharingRules[object])
	}

	if w.err == nil {
		name := path.Join(dir, mapping.FileName)
		if err := mapping.WriteFile(sink, name, a.Mappings); err != nil {
			return w.files, err
		}

		w.files = append(w.files, name)
	}

	return w.files, w.err
}

// Report summarizes artifacts for the transformation snapshot.
func Report(a *Artifacts, input report.Counts, analysisRunID string, files []string) *report.TransformationReport {
	sharing := 0
	for _, rules := range a.SharingRules {
		sharing += len(rules)
	}

	return &report.TransformationReport{
		Run:                report.NewRun(),
		AnalysisRunID:      analysisRunID,
		Input:              input,
		Territories:        len(a.Territories),
		AssignmentRules:    len(a.Rules),
		RuleItems:          len(a.RuleItems),
		UserAssociations:   len(a.UserAssociations),
		ObjectAssociations: len(a.ObjectAssociations),
		SharingRules:       sharing,
		Files:              files,
		Diagnostics:        a.Diagnostics,
	}
}

// writer stops at the first error and remembers it.
type writer struct {
	sink  storage.Sink
	dir   string
	files []string
	err   error
}

func writeTable[T any](w *writer, name string, rows []T) {
	if w.err != nil {
		return
	}

	t, err := record.Encode(name, rows)
	if err != nil {
		w.err = err
		return
	}

	target := path.Join(w.dir, name)

	f, err := w.sink.Create(target)
	if err != nil {
		w.err = err
		return
	}

	bw := bufio.NewWriter(f)

	if err := record.WriteTable(bw, t); err != nil {
		f.Close()
		w.err = err

		return
	}

	if err := bw.Flush(); err != nil {
		f.Close()
		w.err = fmt.Errorf("write %s: %w", target, err)

		return
	}

	if err := f.Close(); err != nil {
		w.err = fmt.Errorf("close %s: %w", target, err)
		return
	}

	w.files = append(w.files, target)
}

func (w *writer) xml(object string, rules []metadata.SharingRule) {
	if w.err != nil {
		return
	}

	data, err := metadata.MarshalSharingRules(rules)
	if err != nil {
		w.err = err
		return
	}

	target := metadata.FilePath(path.Join(w.dir, MetadataDir), object)

	if err := w.sink.WriteFile(target, data); err != nil {
		w.err = err
		return
	}

	w.files = append(w.files, target)
}
