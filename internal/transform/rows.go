package transform

// Output file names, relative to the output directory.
const (
	FileTerritory2               = "Territory2.csv"
	FileRule                     = "ObjectTerritory2AssignmentRule.csv"
	FileRuleItem                 = "ObjectTerritory2AssignmentRuleItem.csv"
	FileRuleAssociation          = "RuleTerritory2Association.csv"
	FileUserAssociationPending   = "UserTerritory2Association.pending.csv"
	FileObjectAssociationPending = "ObjectTerritory2Association.pending.csv"
	MetadataDir                  = "metadata"
)

// Territory2Row is one territory to create in the destination model.
type Territory2Row struct {
	DeveloperName          string `csv:"DeveloperName"`
	Name                   string `csv:"Name"`
	Description            string `csv:"Description"`
	ParentDeveloperName    string `csv:"ParentTerritory2.DeveloperName"`
	ModelDeveloperName     string `csv:"Territory2Model.DeveloperName"`
	TypeDeveloperName      string `csv:"Territory2Type.DeveloperName"`
	AccountAccessLevel     string `csv:"AccountAccessLevel"`
	OpportunityAccessLevel string `csv:"OpportunityAccessLevel"`
	CaseAccessLevel        string `csv:"CaseAccessLevel"`
	ContactAccessLevel     string `csv:"ContactAccessLevel"`
}

// RuleRow is one object assignment rule.
type RuleRow struct {
	DeveloperName      string `csv:"DeveloperName"`
	MasterLabel        string `csv:"MasterLabel"`
	ObjectType         string `csv:"ObjectType"`
	BooleanFilter      string `csv:"BooleanFilter"`
	IsActive           bool   `csv:"IsActive"`
	ModelDeveloperName string `csv:"Territory2Model.DeveloperName"`
}

// RuleItemRow is one criteria line of a rule.
type RuleItemRow struct {
	RuleDeveloperName string `csv:"Rule.DeveloperName"`
	SortOrder         int    `csv:"SortOrder"`
	Field             string `csv:"Field"`
	Operation         string `csv:"Operation"`
	Value             string `csv:"Value"`
}

// RuleAssociationRow links a rule to the territory it assigns to.
type RuleAssociationRow struct {
	RuleDeveloperName      string `csv:"Rule.DeveloperName"`
	TerritoryDeveloperName string `csv:"Territory2.DeveloperName"`
	IsInherited            bool   `csv:"IsInherited"`
}

// UserAssociationRow places a user in a territory. Territory2Id holds a
// placeholder until the destination IDs are known.
type UserAssociationRow struct {
	UserId           string `csv:"UserId"`
	Territory2Id     string `csv:"Territory2Id"`
	RoleInTerritory2 string `csv:"RoleInTerritory2"`
}

// ObjectAssociationRow assigns a record to a territory by hand.
type ObjectAssociationRow struct {
	ObjectId         string `csv:"ObjectId"`
	Territory2Id     string `csv:"Territory2Id"`
	AssociationCause string `csv:"AssociationCause"`
}

// AssociationCauseManual marks a manual object assignment.
const AssociationCauseManual = "Territory2Manual"
