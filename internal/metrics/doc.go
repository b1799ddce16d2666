// Package metrics holds the Prometheus counters a migration run records.
// A nil *Metrics is valid and records nothing.
package metrics
