// Package metadata converts sharing-rule metadata documents into the subset
// of rules that matter to a territory migration.
//
// A document holds criteria-based, owner-based and territory-based rules.
// Each rule shares records to a group and, for owner and territory rules,
// from a group. Only rules where either side is a territory group
// ("territory" or "territoryAndSubordinates") are kept; everything else is
// dropped during parsing.
//
// Repeatable elements (rules, criteria items, group members) always decode
// into slices, so a document with one criteria item and a document with five
// produce the same shape.
package metadata
