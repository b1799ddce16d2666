package record

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies one tabular extract.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindTerritory
	KindAssignmentRule
	KindAssignmentRuleItem
	KindUserAssignment
	KindRecordShare
	KindTerritory2
)

// SourceKinds are the five extracts every source run must provide, in the
// order they are parsed.
var SourceKinds = []Kind{
	KindTerritory,
	KindAssignmentRule,
	KindAssignmentRuleItem,
	KindUserAssignment,
	KindRecordShare,
}

// FileName is the extract file name for the kind, named after the
// source-system object it was queried from.
func (k Kind) FileName() string {
	switch k {
	case KindTerritory:
		return "Territory.csv"
	case KindAssignmentRule:
		return "AccountTerritoryAssignmentRule.csv"
	case KindAssignmentRuleItem:
		return "AccountTerritoryAssignmentRuleItem.csv"
	case KindUserAssignment:
		return "UserTerritory.csv"
	case KindRecordShare:
		return "AccountShare.csv"
	case KindTerritory2:
		return "Territory2.csv"
	default:
		return ""
	}
}
