// Package main provides the CLI entrypoint for tm-migrate.
//
// tm-migrate moves a Territory Management 1.0 org onto Territory
// Management 2.0:
//   - analyze parses the TM1 extract and records what it contains
//   - validate checks a later extract against that analysis
//   - transform writes TM2 load files with DeveloperName placeholders
//   - resolve fills in deployed Territory2 IDs and finishes the
//     association files
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
