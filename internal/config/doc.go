// Package config loads the YAML run configuration shared by every stage.
//
// A minimal file names the extract and the TM2 model:
//
//	source:
//	  metadataDir: extract/metadata
//	  dataDir: extract/data
//	model:
//	  developerName: FY27
//	  typeDeveloperName: Sales
//
// Everything else has a default (see applyDefaults). Command-line flags
// override file values.
package config
