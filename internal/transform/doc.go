// Package transform turns a ready source.Context into the TM2 artifacts
// the deploy step consumes: Territory2 and assignment-rule tables, the
// pending association files, rewritten sharing rules and the DeveloperName
// mapping table.
//
// Association files carry a placeholder instead of a Territory2 ID; the
// destination package swaps in real IDs after deploy.
package transform
