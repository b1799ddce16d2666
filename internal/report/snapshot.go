package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tm-migrator/internal/diagnostic"
	"tm-migrator/internal/storage"
)

// Snapshot file names.
const (
	AnalysisFile       = "analysis.json"
	ExtractionFile     = "extraction.json"
	TransformationFile = "transformation.json"
)

// Run identifies the stage execution that wrote a snapshot.
type Run struct {
	RunID     string    `json:"runId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRun stamps a fresh run ID and the current UTC time.
func NewRun() Run {
	return Run{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// AnalysisReport records what the source extract contained when the
// migration was planned. Later stages are validated against it.
type AnalysisReport struct {
	Run

	MetadataDir string                 `json:"metadataDir"`
	DataDir     string                 `json:"dataDir"`
	Objects     []string               `json:"objects"`
	Counts      Counts                 `json:"counts"`
	Renamed     int                    `json:"renamed"`
	Diagnostics diagnostic.Diagnostics `json:"diagnostics"`
}

// ExtractionReport records a validated re-extraction.
type ExtractionReport struct {
	Run

	AnalysisRunID string            `json:"analysisRunId"`
	MetadataDir   string            `json:"metadataDir"`
	DataDir       string            `json:"dataDir"`
	Counts        Counts            `json:"counts"`
	Validation    *ValidationReport `json:"validation"`
}

// TransformationReport records what the transform stage produced.
type TransformationReport struct {
	Run

	AnalysisRunID string `json:"analysisRunId"`
	Input         Counts `json:"input"`

	Territories        int `json:"territories"`
	AssignmentRules    int `json:"assignmentRules"`
	RuleItems          int `json:"ruleItems"`
	UserAssociations   int `json:"userAssociations"`
	ObjectAssociations int `json:"objectAssociations"`
	SharingRules       int `json:"sharingRules"`

	Files       []string               `json:"files"`
	Diagnostics diagnostic.Diagnostics `json:"diagnostics"`
}

// Save writes v as indented JSON to path.
func Save(sink storage.Sink, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	if err := sink.WriteFile(path, append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Load reads a snapshot of type T from path.
func Load[T any](src storage.Source, path string) (*T, error) {
	data, err := src.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &v, nil
}
