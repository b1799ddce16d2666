package workflow

import (
	"tm-migrator/internal/report"
	"tm-migrator/internal/source"
	"tm-migrator/internal/transform"
)

// Transform writes the TM2 artifacts and transformation.json. The source
// extract is loaded from the configured snapshot when one exists and
// parsed again otherwise.
func (r *Runner) Transform() (*report.TransformationReport, error) {
	var out *report.TransformationReport

	err := r.timed(StageTransform, func() error {
		if err := r.cfg.Validate(); err != nil {
			return err
		}

		analysis, err := r.loadAnalysis()
		if err != nil {
			return err
		}

		analysisRunID := ""
		if analysis != nil {
			analysisRunID = analysis.RunID
		} else {
			r.logger.Warn("transforming without an analysis snapshot")
		}

		src, err := r.openSource()
		if err != nil {
			return err
		}

		artifacts, err := transform.New(r.logger).Build(src, transform.Options{
			ModelDeveloperName: r.cfg.Model.DeveloperName,
			TypeDeveloperName:  r.cfg.Model.TypeDeveloperName,
			ObjectType:         r.cfg.Model.ObjectType,
		})
		if err != nil {
			return err
		}

		files, err := transform.Write(r.fs, r.cfg.Output.Dir, artifacts)
		if err != nil {
			return err
		}

		counts, err := src.Counts()
		if err != nil {
			return err
		}

		out = transform.Report(artifacts, counts, analysisRunID, files)

		return report.Save(r.fs, r.reportPath(report.TransformationFile), out)
	})

	return out, err
}

func (r *Runner) openSource() (*source.Context, error) {
	src := r.newSource()

	if snap := r.cfg.Source.Snapshot; snap != "" {
		ok, err := r.fs.Exists(snap)
		if err != nil {
			return nil, err
		}

		if ok {
			r.logger.Info("loading source snapshot", "path", snap)

			opts := r.sourceOptions()
			opts.SnapshotPath = snap

			return src, ready(src, src.Load(opts))
		}
	}

	return src, ready(src, src.Build(r.sourceOptions()))
}
