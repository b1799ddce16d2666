package workflow

import (
	"tm-migrator/internal/report"
)

// Validate re-parses the extract under metadataDir and dataDir and compares
// it with analysis.json. Count differences are reported in the returned
// report and in extraction.json; they are not errors.
func (r *Runner) Validate(metadataDir, dataDir string) (*report.ExtractionReport, error) {
	var out *report.ExtractionReport

	err := r.timed(StageValidate, func() error {
		analysis, err := r.loadAnalysis()
		if err != nil {
			return err
		}

		if analysis == nil {
			return errNoAnalysis
		}

		res, err := r.newSource().Validate(analysis, metadataDir, dataDir)
		if err != nil {
			return err
		}

		for _, d := range res.Diagnostics.Warnings {
			r.logger.Warn("validation", "kind", d.Kind, "message", d.Message)
		}

		out = &report.ExtractionReport{
			Run:           report.NewRun(),
			AnalysisRunID: analysis.RunID,
			MetadataDir:   metadataDir,
			DataDir:       dataDir,
			Counts:        res.Actual(),
			Validation:    res,
		}

		return report.Save(r.fs, r.reportPath(report.ExtractionFile), out)
	})

	return out, err
}
