package source

import (
	"fmt"

	"tm-migrator/internal/report"
	"tm-migrator/internal/sentinel"
)

// Validate parses the extract under metadataDir and dataDir on a new
// Context and compares its counts with analysis. The receiver's own state
// is never consulted, so a stale or loaded Context cannot hide missing
// records. Count differences are reported, not returned as errors.
func (c *Context) Validate(analysis *report.AnalysisReport, metadataDir, dataDir string) (*report.ValidationReport, error) {
	if analysis == nil {
		return nil, fmt.Errorf("validate: analysis report is nil: %w", sentinel.ErrType)
	}

	fresh := New(c.src, WithLogger(c.logger))

	err := fresh.Build(Options{
		MetadataDir: metadataDir,
		DataDir:     dataDir,
		Objects:     analysis.Objects,
		allowEmpty:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	actual, err := fresh.Counts()
	if err != nil {
		return nil, err
	}

	res := report.Compare(analysis.Counts, actual)

	for _, kind := range res.Mismatched() {
		check, _ := res.Check(kind)
		c.logger.Warn("count mismatch", "kind", kind, "expected", check.Expected, "actual", check.Actual)
	}

	return res, nil
}
