package report

// Entity kinds compared by validation. These are also the JSON keys.
const (
	KindTerritory          = "territory"
	KindAssignmentRule     = "assignmentRule"
	KindAssignmentRuleItem = "assignmentRuleItem"
	KindUserAssignment     = "userAssignment"
	KindRecordShare        = "recordShare"
	KindSharingRules       = "sharingRules"
)

// Kinds lists every compared kind in report order.
var Kinds = []string{
	KindTerritory,
	KindAssignmentRule,
	KindAssignmentRuleItem,
	KindUserAssignment,
	KindRecordShare,
	KindSharingRules,
}

// Counts is the number of entities of each kind found in one extract.
// SharingRules counts territory-referencing rules across all objects.
type Counts struct {
	Territory          int `json:"territory"`
	AssignmentRule     int `json:"assignmentRule"`
	AssignmentRuleItem int `json:"assignmentRuleItem"`
	UserAssignment     int `json:"userAssignment"`
	RecordShare        int `json:"recordShare"`
	SharingRules       int `json:"sharingRules"`
}

// Get returns the count for kind, or 0 for an unknown kind.
func (c Counts) Get(kind string) int {
	switch kind {
	case KindTerritory:
		return c.Territory
	case KindAssignmentRule:
		return c.AssignmentRule
	case KindAssignmentRuleItem:
		return c.AssignmentRuleItem
	case KindUserAssignment:
		return c.UserAssignment
	case KindRecordShare:
		return c.RecordShare
	case KindSharingRules:
		return c.SharingRules
	default:
		return 0
	}
}

// Set stores n as the count for kind. Unknown kinds are ignored.
func (c *Counts) Set(kind string, n int) {
	switch kind {
	case KindTerritory:
		c.Territory = n
	case KindAssignmentRule:
		c.AssignmentRule = n
	case KindAssignmentRuleItem:
		c.AssignmentRuleItem = n
	case KindUserAssignment:
		c.UserAssignment = n
	case KindRecordShare:
		c.RecordShare = n
	case KindSharingRules:
		c.SharingRules = n
	}
}

// Total is the sum over all kinds.
func (c Counts) Total() int {
	total := 0
	for _, k := range Kinds {
		total += c.Get(k)
	}

	return total
}
