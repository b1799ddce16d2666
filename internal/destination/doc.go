// Package destination resolves DeveloperNames to TM2 record IDs once the
// deploy step has created the records.
//
// A Context moves through three states:
//
//	Prepared           mapping table loaded, index over any existing Territory2 records
//	Updated            index rebuilt from the post-deploy extract, every mapping row resolved
//	AssociationsBuilt  placeholder tokens in an association file replaced by record IDs
//
// Association files are written before deploy with a placeholder in place
// of every Territory2 ID (see Placeholder). BuildAssociationRecords can run
// once per Context; use one Context per association file.
package destination
