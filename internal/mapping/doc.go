// Package mapping reads and writes the DeveloperName mapping table that
// carries territory identities across the deploy step.
//
// The table has one row per source Territory:
//
//	sourceId,developerName,parentDeveloperName,destinationId,parentDestinationId
//	0MI000000000001,North_America,,,
//	0MI000000000002,East_Region,North_America,,
//
// The transform stage writes it with the last two columns empty. They are
// filled in once the destination extract is available.
package mapping
