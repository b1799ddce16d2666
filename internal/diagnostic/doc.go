// Package diagnostic collects non-fatal findings produced while analysing,
// transforming and validating a migration run.
//
// Key capabilities:
//   - Count mismatches between stages
//   - Renamed DeveloperNames (collision suffixes)
//   - Discarded sharing rules and skipped association rows
package diagnostic
