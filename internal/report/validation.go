package report

import (
	"fmt"

	"tm-migrator/internal/diagnostic"
	"tm-migrator/internal/sentinel"
)

// Check is the expected-versus-actual comparison for one kind.
type Check struct {
	Kind     string `json:"kind"`
	Expected int    `json:"expected"`
	Actual   int    `json:"actual"`
	Match    bool   `json:"match"`
}

// ValidationReport compares an analysis snapshot with a fresh extract.
// Mismatches are findings, not failures: they appear as count_mismatch
// warnings and the caller decides whether to stop.
type ValidationReport struct {
	Checks      []Check                `json:"checks"`
	Diagnostics diagnostic.Diagnostics `json:"diagnostics"`
}

// Compare builds a report with one check per kind.
func Compare(expected, actual Counts) *ValidationReport {
	r := &ValidationReport{Checks: make([]Check, 0, len(Kinds))}

	for _, kind := range Kinds {
		c := Check{
			Kind:     kind,
			Expected: expected.Get(kind),
			Actual:   actual.Get(kind),
		}
		c.Match = c.Expected == c.Actual

		if !c.Match {
			r.Diagnostics.AddWarning(
				"count_mismatch",
				fmt.Sprintf("expected %d, found %d", c.Expected, c.Actual),
				kind,
				"",
			)
		}

		r.Checks = append(r.Checks, c)
	}

	return r
}

// Check returns the comparison for kind.
func (r *ValidationReport) Check(kind string) (Check, bool) {
	for _, c := range r.Checks {
		if c.Kind == kind {
			return c, true
		}
	}

	return Check{}, false
}

// Match reports whether kind matched. Unknown kinds never match.
func (r *ValidationReport) Match(kind string) bool {
	c, ok := r.Check(kind)
	return ok && c.Match
}

// Actual returns the counts found in the validated extract.
func (r *ValidationReport) Actual() Counts {
	var c Counts
	for _, check := range r.Checks {
		c.Set(check.Kind, check.Actual)
	}

	return c
}

// AllMatch reports whether every kind matched.
func (r *ValidationReport) AllMatch() bool {
	for _, c := range r.Checks {
		if !c.Match {
			return false
		}
	}

	return true
}

// Mismatched returns the kinds that did not match, in report order.
func (r *ValidationReport) Mismatched() []string {
	var out []string

	for _, c := range r.Checks {
		if !c.Match {
			out = append(out, c.Kind)
		}
	}

	return out
}

// Err returns an error matching sentinel.ErrCountMismatch when any kind
// differs, and nil otherwise.
func (r *ValidationReport) Err() error {
	if r.AllMatch() {
		return nil
	}

	return fmt.Errorf("%v: %w", r.Mismatched(), sentinel.ErrCountMismatch)
}
