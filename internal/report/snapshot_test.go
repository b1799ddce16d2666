package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tm-migrator/internal/storage"
)

func TestSaveLoadAnalysis(t *testing.T) {
	fs := storage.NewMemory()

	in := &AnalysisReport{
		Run:         NewRun(),
		MetadataDir: "metadata",
		DataDir:     "data",
		Objects:     []string{"Account"},
		Counts:      sample(),
	}

	_, err := uuid.Parse(in.RunID)
	require.NoError(t, err)

	require.NoError(t, Save(fs, "reports/"+AnalysisFile, in))

	out, err := Load[AnalysisReport](fs, "reports/"+AnalysisFile)
	require.NoError(t, err)

	assert.Equal(t, in.RunID, out.RunID)
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	assert.Equal(t, in.Counts, out.Counts)
	assert.Equal(t, in.Objects, out.Objects)
}

func TestSnapshotFieldNames(t *testing.T) {
	fs := storage.NewMemory()

	r := Compare(Counts{Territory: 10}, Counts{Territory: 8})
	require.NoError(t, Save(fs, ExtractionFile, &ExtractionReport{Validation: r}))

	data, err := fs.ReadFile(ExtractionFile)
	require.NoError(t, err)

	for _, key := range []string{`"runId"`, `"createdAt"`, `"analysisRunId"`, `"counts"`, `"validation"`, `"checks"`, `"expected"`, `"actual"`, `"match"`} {
		assert.Contains(t, string(data), key)
	}

	assert.Contains(t, string(data), `"severity": "warning"`)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load[AnalysisReport](storage.NewMemory(), AnalysisFile)
	require.Error(t, err)
}
