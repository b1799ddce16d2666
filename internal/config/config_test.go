package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tm-migrator/internal/lifecycle"
	"tm-migrator/internal/sentinel"
)

func TestParseMinimalAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
model:
  developerName: FY27
  typeDeveloperName: Sales
`))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "extract/metadata", cfg.Source.MetadataDir)
	assert.Equal(t, "extract/data", cfg.Source.DataDir)
	assert.Equal(t, StringOrArray{"Account", "Opportunity", "Case"}, cfg.Source.Objects)
	assert.Equal(t, "deploy/Territory2.csv", cfg.Destination.ExtractPath)
	assert.Equal(t, "Account", cfg.Model.ObjectType)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "out/reports", cfg.Output.ReportsDir)
	assert.Equal(t, lifecycle.Raise, cfg.ErrorMode.ErrorMode)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel.Level)
	require.NoError(t, cfg.Validate())
}

func TestParseFull(t *testing.T) {
	cfg, err := Parse([]byte(`
version: "1"
root: /srv/migration
source:
  metadataDir: meta
  dataDir: data
  objects: Account
  snapshot: out/extraction.snapshot.json
destination:
  extractPath: deployed/Territory2.csv
model:
  developerName: FY27
  typeDeveloperName: Sales
  objectType: Lead
output:
  dir: build
errorMode: trap
logLevel: debug
metrics:
  textfile: build/run.prom
`))
	require.NoError(t, err)

	assert.Equal(t, "/srv/migration", cfg.Root)
	assert.Equal(t, StringOrArray{"Account"}, cfg.Source.Objects)
	assert.Equal(t, "out/extraction.snapshot.json", cfg.Source.Snapshot)
	assert.Equal(t, "Lead", cfg.Model.ObjectType)
	assert.Equal(t, "build/reports", cfg.Output.ReportsDir)
	assert.Equal(t, lifecycle.Trap, cfg.ErrorMode.ErrorMode)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel.Level)
	assert.Equal(t, "build/run.prom", cfg.Metrics.Textfile)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad error mode", "errorMode: explode\n"},
		{"bad log level", "logLevel: loud\n"},
		{"objects map", "source:\n  objects: {a: b}\n"},
		{"not yaml", "source: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}

	_, err := Parse([]byte("errorMode: explode\n"))
	assert.ErrorIs(t, err, sentinel.ErrType)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.ErrorIs(t, cfg.Validate(), sentinel.ErrType)

	cfg.Model.DeveloperName = "FY27"
	require.ErrorIs(t, cfg.Validate(), sentinel.ErrType)

	cfg.Model.TypeDeveloperName = "Sales"
	require.NoError(t, cfg.Validate())
}

func TestLoadFileAndMarshal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("errorMode: trap\nlogLevel: warn\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "errorMode: trap")
	assert.Contains(t, string(data), "logLevel: WARN")

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
