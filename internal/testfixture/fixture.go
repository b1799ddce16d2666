package testfixture

import (
	"path"
	"strings"

	"tm-migrator/internal/metadata"
	"tm-migrator/internal/storage"
)

// Locations of the sample extract.
const (
	MetadataDir = "extract/metadata"
	DataDir     = "extract/data"
)

// Territory is the sample Territory extract: a root and two children.
const Territory = `Id,Name,DeveloperName,ParentTerritoryId,AccountAccessLevel,OpportunityAccessLevel,CaseAccessLevel
T1,North America,North_America,,Edit,Read,Read
T2,East Region,East,T1,Edit,Read,None
T3,West Region,West,T1,Read,None,None
`

// AssignmentRule holds two rules whose names share a slug.
const AssignmentRule = `Id,Name,TerritoryId,BooleanFilter,IsActive,IsInherited
R1,East Region,T2,,true,false
R2,East-Region,T2,1 OR 2,true,false
R3,West Tech,T3,,false,false
`

// AssignmentRuleItem lists R2's items out of SortOrder.
const AssignmentRuleItem = `Id,RuleId,SortOrder,Field,Operation,Value
I1,R2,2,Account.Industry,equals,Technology
I2,R2,1,Account.BillingState,equals,NY
I3,R3,1,Account.Industry,equals,Technology
`

// UserTerritory places two users.
const UserTerritory = `Id,UserId,TerritoryId,IsActive
U1,005A,T2,true
U2,005B,T3,true
`

// AccountShare has one manual and one rule-driven share.
const AccountShare = `Id,AccountId,UserOrGroupId,UserOrGroup.RelatedId,RowCause
S1,001A,00G1,T2,TerritoryManual
S2,001B,00G2,T3,Territory
`

// AccountRules keeps East_Share and discards Role_Share.
const AccountRules = `<?xml version="1.0" encoding="UTF-8"?>
<SharingRules xmlns="http://soap.sforce.com/2006/04/metadata">
    <sharingCriteriaRules>
        <fullName>East_Share</fullName>
        <accessLevel>Edit</accessLevel>
        <accountSettings>
            <caseAccessLevel>Read</caseAccessLevel>
            <contactAccessLevel>Read</contactAccessLevel>
            <opportunityAccessLevel>None</opportunityAccessLevel>
        </accountSettings>
        <label>East share</label>
        <sharedTo>
            <territory>East</territory>
        </sharedTo>
        <criteriaItems>
            <field>Industry</field>
            <operation>equals</operation>
            <value>Technology</value>
        </criteriaItems>
    </sharingCriteriaRules>
    <sharingCriteriaRules>
        <fullName>Role_Share</fullName>
        <accessLevel>Read</accessLevel>
        <label>Role share</label>
        <sharedTo>
            <role>CEO</role>
        </sharedTo>
        <criteriaItems>
            <field>Industry</field>
            <operation>equals</operation>
            <value>Energy</value>
        </criteriaItems>
    </sharingCriteriaRules>
</SharingRules>
`

// OpportunityRules shares West's tree with a public group.
const OpportunityRules = `<?xml version="1.0" encoding="UTF-8"?>
<SharingRules xmlns="http://soap.sforce.com/2006/04/metadata">
    <sharingOwnerRules>
        <fullName>West_Tree</fullName>
        <accessLevel>Read</accessLevel>
        <label>West tree</label>
        <sharedTo>
            <group>Sales_Ops</group>
        </sharedTo>
        <sharedFrom>
            <territoryAndSubordinates>West</territoryAndSubordinates>
        </sharedFrom>
    </sharingOwnerRules>
</SharingRules>
`

// Files maps every sample file to its content. Case has no rule file.
func Files() map[string]string {
	return map[string]string{
		path.Join(DataDir, "Territory.csv"):                          Territory,
		path.Join(DataDir, "AccountTerritoryAssignmentRule.csv"):     AssignmentRule,
		path.Join(DataDir, "AccountTerritoryAssignmentRuleItem.csv"): AssignmentRuleItem,
		path.Join(DataDir, "UserTerritory.csv"):                      UserTerritory,
		path.Join(DataDir, "AccountShare.csv"):                       AccountShare,
		metadata.FilePath(MetadataDir, "Account"):                    AccountRules,
		metadata.FilePath(MetadataDir, "Opportunity"):                OpportunityRules,
	}
}

// New returns an in-memory filesystem holding the sample extract, with
// overrides replacing (or, when empty, removing) individual files.
func New(overrides map[string]string) (*storage.FS, error) {
	files := Files()

	for name, content := range overrides {
		if content == "" {
			delete(files, name)
			continue
		}

		files[name] = content
	}

	fs := storage.NewMemory()

	for name, content := range files {
		if err := fs.WriteFile(name, []byte(content)); err != nil {
			return nil, err
		}
	}

	return fs, nil
}

// Write copies the sample extract into sink under the given directories.
func Write(sink storage.Sink, metadataDir, dataDir string) error {
	for name, content := range Files() {
		target := name

		switch {
		case strings.HasPrefix(name, DataDir+"/"):
			target = path.Join(dataDir, strings.TrimPrefix(name, DataDir+"/"))
		case strings.HasPrefix(name, MetadataDir+"/"):
			target = path.Join(metadataDir, strings.TrimPrefix(name, MetadataDir+"/"))
		}

		if err := sink.WriteFile(target, []byte(content)); err != nil {
			return err
		}
	}

	return nil
}

// Counts of the sample extract, per kind.
const (
	Territories     = 3
	Rules           = 3
	RuleItems       = 3
	UserAssignments = 2
	RecordShares    = 2
	SharingRules    = 2
)
