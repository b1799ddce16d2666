package transform

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tm-migrator/internal/destination"
	"tm-migrator/internal/mapping"
	"tm-migrator/internal/metadata"
	"tm-migrator/internal/record"
	"tm-migrator/internal/sentinel"
	"tm-migrator/internal/source"
	"tm-migrator/internal/storage"
	"tm-migrator/internal/testfixture"
)

var testOptions = Options{ModelDeveloperName: "FY27", TypeDeveloperName: "Sales"}

func sourceFor(t *testing.T, overrides map[string]string) (*source.Context, *storage.FS) {
	t.Helper()

	fs, err := testfixture.New(overrides)
	require.NoError(t, err)

	src, err := source.Prepare(fs, testfixture.MetadataDir, testfixture.DataDir)
	require.NoError(t, err)

	return src, fs
}

func build(t *testing.T, overrides map[string]string) *Artifacts {
	t.Helper()

	src, _ := sourceFor(t, overrides)

	a, err := New(nil).Build(src, testOptions)
	require.NoError(t, err)

	return a
}

func TestBuildTerritories(t *testing.T) {
	a := build(t, nil)

	require.Len(t, a.Territories, 3)
	assert.Equal(t, Territory2Row{
		DeveloperName:          "East",
		Name:                   "East Region",
		ParentDeveloperName:    "North_America",
		ModelDeveloperName:     "FY27",
		TypeDeveloperName:      "Sales",
		AccountAccessLevel:     "Edit",
		OpportunityAccessLevel: "Read",
		CaseAccessLevel:        "None",
	}, a.Territories[1])

	assert.Equal(t, []mapping.Row{
		{SourceID: "T1", DeveloperName: "North_America"},
		{SourceID: "T2", DeveloperName: "East", ParentDeveloperName: "North_America"},
		{SourceID: "T3", DeveloperName: "West", ParentDeveloperName: "North_America"},
	}, a.Mappings)

	assert.False(t, mapping.Validate(a.Mappings).HasErrors())
}

func TestBuildRules(t *testing.T) {
	a := build(t, nil)

	require.Len(t, a.Rules, 3)
	assert.Equal(t, "East_Region", a.Rules[0].DeveloperName)
	assert.Equal(t, "East_Region_2", a.Rules[1].DeveloperName)
	assert.Equal(t, "East-Region", a.Rules[1].MasterLabel)
	assert.Equal(t, "Account", a.Rules[1].ObjectType)
	assert.Equal(t, "1 OR 2", a.Rules[1].BooleanFilter)

	assert.Equal(t, []RuleItemRow{
		{RuleDeveloperName: "East_Region_2", SortOrder: 1, Field: "Account.BillingState", Operation: "equals", Value: "NY"},
		{RuleDeveloperName: "East_Region_2", SortOrder: 2, Field: "Account.Industry", Operation: "equals", Value: "Technology"},
		{RuleDeveloperName: "West_Tech", SortOrder: 1, Field: "Account.Industry", Operation: "equals", Value: "Technology"},
	}, a.RuleItems)

	assert.Equal(t, RuleAssociationRow{RuleDeveloperName: "West_Tech", TerritoryDeveloperName: "West"}, a.RuleAssociations[2])
}

func TestBuildAssociationsUsePlaceholders(t *testing.T) {
	a := build(t, nil)

	assert.Equal(t, []UserAssociationRow{
		{UserId: "005A", Territory2Id: destination.Placeholder("East")},
		{UserId: "005B", Territory2Id: destination.Placeholder("West")},
	}, a.UserAssociations)

	assert.Equal(t, []ObjectAssociationRow{
		{ObjectId: "001A", Territory2Id: "PENDING:East", AssociationCause: AssociationCauseManual},
	}, a.ObjectAssociations, "only manual shares become object associations")
}

func TestBuildRewritesSharingRuleMembers(t *testing.T) {
	a := build(t, map[string]string{
		testfixture.DataDir + "/Territory.csv": `Id,Name,DeveloperName,ParentTerritoryId
T1,North America,North_America,
T2,East Coast,East-Coast,T1
T3,West Region,West,T1
`,
		metadata.FilePath(testfixture.MetadataDir, "Account"): strings.ReplaceAll(testfixture.AccountRules, "<territory>East</territory>", "<territory>East-Coast</territory>"),
	})

	assert.Equal(t, []string{"Account", "Opportunity"}, a.Objects)

	account := a.SharingRules["Account"]
	require.Len(t, account, 1, spew.Sdump(account))
	assert.Equal(t, metadata.SharingGroup{Type: metadata.GroupTerritory, Member: "East_Coast"}, account[0].SharedTo)

	opportunity := a.SharingRules["Opportunity"]
	require.Len(t, opportunity, 1)
	assert.Equal(t, metadata.SharingGroup{Type: "group", Member: "Sales_Ops"}, opportunity[0].SharedTo)
	require.NotNil(t, opportunity[0].SharedFrom)
	assert.Equal(t, "West", opportunity[0].SharedFrom.Member)

	assert.Equal(t, "East_Coast", a.Territories[1].DeveloperName)
}

func TestBuildSkipsUnknownReferences(t *testing.T) {
	a := build(t, map[string]string{
		testfixture.DataDir + "/UserTerritory.csv": "Id,UserId,TerritoryId,IsActive\nU1,005A,T9,true\nU2,005B,T2,false\n",
		metadata.FilePath(testfixture.MetadataDir, "Case"): `<SharingRules xmlns="http://soap.sforce.com/2006/04/metadata">
    <sharingOwnerRules>
        <fullName>Ghost</fullName>
        <accessLevel>Read</accessLevel>
        <sharedTo><territory>Nowhere</territory></sharedTo>
        <sharedFrom><group>All</group></sharedFrom>
    </sharingOwnerRules>
</SharingRules>`,
	})

	assert.Empty(t, a.UserAssociations)
	assert.Len(t, a.Diagnostics.ByCode("user_assignment_skipped"), 1)
	assert.Len(t, a.Diagnostics.ByCode("inactive_user_skipped"), 1)
	assert.Len(t, a.Diagnostics.ByCode("sharing_rule_skipped"), 1)
	assert.NotContains(t, a.Objects, "Case")
}

func TestBuildOrdersParentsFirst(t *testing.T) {
	a := build(t, map[string]string{
		testfixture.DataDir + "/Territory.csv": `Id,Name,DeveloperName,ParentTerritoryId
T3,Leaf,Leaf,T2
T2,Middle,Middle,T1
T1,Root,Root,
`,
	})

	var names []string
	for _, t := range a.Territories {
		names = append(names, t.DeveloperName)
	}

	assert.Equal(t, []string{"Root", "Middle", "Leaf"}, names)
}

func TestParentsFirstCycle(t *testing.T) {
	ordered, cyclic := parentsFirst([]record.Territory{
		{Id: "A", ParentTerritoryId: "B"},
		{Id: "B", ParentTerritoryId: "A"},
		{Id: "C"},
	})

	require.Len(t, ordered, 3)
	assert.Equal(t, "C", ordered[0].Id)
	assert.Equal(t, []string{"A", "B"}, cyclic)
}

func TestBuildErrors(t *testing.T) {
	_, err := New(nil).Build(nil, testOptions)
	require.ErrorIs(t, err, sentinel.ErrType)

	src, _ := sourceFor(t, nil)
	_, err = New(nil).Build(src, Options{})
	require.ErrorIs(t, err, sentinel.ErrType)

	fs, ferr := testfixture.New(nil)
	require.NoError(t, ferr)

	_, err = New(nil).Build(source.New(fs), testOptions)
	require.ErrorIs(t, err, sentinel.ErrNotReady)
}
