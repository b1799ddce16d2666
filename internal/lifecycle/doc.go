// Package lifecycle tracks the readiness of domain objects that must be
// explicitly initialised before use.
//
// A Lifecycle wraps two hooks supplied by the owning object: Build, which
// constructs state from raw inputs, and Load, which restores state from a
// previously persisted form. Exactly one of them succeeds per instance;
// Refresh replays the one that did with the options it was given.
//
// State transitions:
//
//	Unready --Build|Load--> Ready --Refresh--> Ready
//	Unready|Ready --hook failure--> Failed
//
// Failed is terminal for an instance. Recovery means constructing a new one.
package lifecycle
