// Package workflow runs the migration stages against one configuration:
//
//	analyze    parse the TM1 extract, record counts (analysis.json)
//	validate   re-parse an extract and compare with the analysis (extraction.json)
//	transform  write TM2 artifacts with placeholders (transformation.json)
//	resolve    after deploy, fill in Territory2 IDs and finish association files
//
// Stages only talk to each other through files under the output directory.
package workflow
