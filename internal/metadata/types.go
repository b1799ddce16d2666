package metadata

// Namespace is the metadata API namespace written on emitted documents.
const Namespace = "http://soap.sforce.com/2006/04/metadata"

// DefaultObjects are the objects whose sharing rules are read when a run
// does not configure its own list.
var DefaultObjects = []string{"Account", "Opportunity", "Case"}

// Variant is the sharing-rule flavour.
type Variant string

const (
	VariantCriteria  Variant = "criteria"
	VariantOwner     Variant = "owner"
	VariantTerritory Variant = "territory"
)

// Group types that reference territories.
const (
	GroupTerritory                 = "territory"
	GroupTerritoryAndSubordinates = "territoryAndSubordinates"
)

// SharingGroup is the group on one side of a sharing rule.
type SharingGroup struct {
	Type   string `json:"type"`
	Member string `json:"member"`
}

// IsTerritory reports whether the group is territory-typed.
func (g SharingGroup) IsTerritory() bool {
	return g.Type == GroupTerritory || g.Type == GroupTerritoryAndSubordinates
}

// CriteriaItem is one field/operator/value filter line.
type CriteriaItem struct {
	Field     string `json:"field"`
	Operation string `json:"operation"`
	Value     string `json:"value,omitempty"`
}

// AccountSettings holds the related-object access levels of Account rules.
type AccountSettings struct {
	CaseAccessLevel        string `json:"caseAccessLevel,omitempty"`
	ContactAccessLevel     string `json:"contactAccessLevel,omitempty"`
	OpportunityAccessLevel string `json:"opportunityAccessLevel,omitempty"`
}

// SharingRule is one rule of an object's sharing-rule document.
type SharingRule struct {
	Object          string           `json:"object"`
	Variant         Variant          `json:"variant"`
	FullName        string           `json:"fullName"`
	Label           string           `json:"label,omitempty"`
	Description     string           `json:"description,omitempty"`
	AccessLevel     string           `json:"accessLevel"`
	AccountSettings *AccountSettings `json:"accountSettings,omitempty"`
	SharedTo        SharingGroup     `json:"sharedTo"`
	SharedFrom      *SharingGroup    `json:"sharedFrom,omitempty"`
	BooleanFilter   string           `json:"booleanFilter,omitempty"`
	CriteriaItems   []CriteriaItem   `json:"criteriaItems,omitempty"`
}

// ReferencesTerritory reports whether either side of the rule is a territory group.
func (r SharingRule) ReferencesTerritory() bool {
	if r.SharedTo.IsTerritory() {
		return true
	}

	return r.SharedFrom != nil && r.SharedFrom.IsTerritory()
}

// Groups returns the groups on both sides of the rule, recipient first.
func (r SharingRule) Groups() []SharingGroup {
	if r.SharedFrom == nil {
		return []SharingGroup{r.SharedTo}
	}

	return []SharingGroup{r.SharedTo, *r.SharedFrom}
}
