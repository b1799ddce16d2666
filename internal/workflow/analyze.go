package workflow

import (
	"tm-migrator/internal/report"
)

// Analyze parses the configured TM1 extract and writes analysis.json. When
// a source snapshot path is configured the parsed extract is saved too, so
// later stages reuse the same DeveloperNames.
func (r *Runner) Analyze() (*report.AnalysisReport, error) {
	var out *report.AnalysisReport

	err := r.timed(StageAnalyze, func() error {
		src := r.newSource()
		if err := ready(src, src.Build(r.sourceOptions())); err != nil {
			return err
		}

		counts, err := src.Counts()
		if err != nil {
			return err
		}

		renamed, err := src.Renamed()
		if err != nil {
			return err
		}

		diags, err := src.Diagnostics()
		if err != nil {
			return err
		}

		out = &report.AnalysisReport{
			Run:         report.NewRun(),
			MetadataDir: r.cfg.Source.MetadataDir,
			DataDir:     r.cfg.Source.DataDir,
			Objects:     r.cfg.Source.Objects,
			Counts:      counts,
			Renamed:     renamed,
			Diagnostics: diags,
		}

		if r.cfg.Source.Snapshot != "" {
			if err := src.Save(r.fs, r.cfg.Source.Snapshot); err != nil {
				return err
			}
		}

		return report.Save(r.fs, r.reportPath(report.AnalysisFile), out)
	})

	return out, err
}
