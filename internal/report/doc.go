// Package report defines the JSON snapshots each stage persists and the
// count comparison used to detect records lost between stages.
//
// Snapshot field names are read back by later stages and by external
// tooling; renaming one is a breaking change.
package report
