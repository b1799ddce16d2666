// Package source holds the indexed, read-only view of one TM1 extract.
//
// A Context is built from the five tabular extracts and the per-object
// sharing-rule files, or loaded from a snapshot written by Save. Once ready
// it answers lookups by ID, groups rules by territory and items by rule, and
// owns the DeveloperNames assigned to every Territory and AssignmentRule.
//
// Territories and rules are named in separate namespaces, in extract order.
// When two display names share a slug the later record receives a numeric
// suffix; which record wins is a property of the extract order only.
//
// A Context is not safe for concurrent use.
package source
