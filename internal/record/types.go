package record

// Territory is one row of the source Territory extract.
type Territory struct {
	Id                     string `csv:"Id,required"             json:"id"`
	Name                   string `csv:"Name,required"           json:"name"`
	DeveloperName          string `csv:"DeveloperName"           json:"developerName,omitempty"`
	ParentTerritoryId      string `csv:"ParentTerritoryId"       json:"parentTerritoryId,omitempty"`
	Description            string `csv:"Description"             json:"description,omitempty"`
	AccountAccessLevel     string `csv:"AccountAccessLevel"      json:"accountAccessLevel,omitempty"`
	OpportunityAccessLevel string `csv:"OpportunityAccessLevel"  json:"opportunityAccessLevel,omitempty"`
	CaseAccessLevel        string `csv:"CaseAccessLevel"         json:"caseAccessLevel,omitempty"`
	ContactAccessLevel     string `csv:"ContactAccessLevel"      json:"contactAccessLevel,omitempty"`
}

// AssignmentRule is an account assignment rule owned by a Territory.
type AssignmentRule struct {
	Id            string `csv:"Id,required"          json:"id"`
	Name          string `csv:"Name,required"        json:"name"`
	TerritoryId   string `csv:"TerritoryId,required" json:"territoryId"`
	BooleanFilter string `csv:"BooleanFilter"        json:"booleanFilter,omitempty"`
	IsActive      bool   `csv:"IsActive"             json:"isActive"`
	IsInherited   bool   `csv:"IsInherited"          json:"isInherited"`
}

// AssignmentRuleItem is one criteria line of an AssignmentRule.
type AssignmentRuleItem struct {
	Id        string `csv:"Id,required"     json:"id"`
	RuleId    string `csv:"RuleId,required" json:"ruleId"`
	SortOrder int    `csv:"SortOrder"       json:"sortOrder"`
	Field     string `csv:"Field"           json:"field"`
	Operation string `csv:"Operation"       json:"operation"`
	Value     string `csv:"Value"           json:"value,omitempty"`
}

// UserAssignment places a user in a Territory.
type UserAssignment struct {
	Id          string `csv:"Id,required"          json:"id"`
	UserId      string `csv:"UserId,required"      json:"userId"`
	TerritoryId string `csv:"TerritoryId,required" json:"territoryId"`
	IsActive    bool   `csv:"IsActive"             json:"isActive"`
}

// RecordShare is an account share granted to a territory group.
// TerritoryId is the group's related territory, extracted through the
// UserOrGroup relationship.
type RecordShare struct {
	Id            string `csv:"Id,required"           json:"id"`
	AccountId     string `csv:"AccountId,required"    json:"accountId"`
	UserOrGroupId string `csv:"UserOrGroupId"         json:"userOrGroupId,omitempty"`
	TerritoryId   string `csv:"UserOrGroup.RelatedId" json:"territoryId,omitempty"`
	RowCause      string `csv:"RowCause"              json:"rowCause"`
}

// RowCauseManual marks a share created by hand rather than by assignment rules.
const RowCauseManual = "TerritoryManual"

// IsManual reports whether the share was granted manually.
func (s RecordShare) IsManual() bool { return s.RowCause == RowCauseManual }

// Territory2 is one row of a destination Territory2 extract.
type Territory2 struct {
	Id                 string `csv:"Id,required"            json:"id"`
	DeveloperName      string `csv:"DeveloperName,required" json:"developerName"`
	Name               string `csv:"Name"                   json:"name,omitempty"`
	ParentTerritory2Id string `csv:"ParentTerritory2Id"     json:"parentTerritory2Id,omitempty"`
}
