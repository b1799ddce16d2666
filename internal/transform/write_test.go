package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tm-migrator/internal/destination"
	"tm-migrator/internal/mapping"
	"tm-migrator/internal/metadata"
	"tm-migrator/internal/storage"
)

func TestWrite(t *testing.T) {
	src, _ := sourceFor(t, nil)

	a, err := New(nil).Build(src, testOptions)
	require.NoError(t, err)

	out := storage.NewMemory()

	files, err := Write(out, "out", a)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"out/Territory2.csv",
		"out/ObjectTerritory2AssignmentRule.csv",
		"out/ObjectTerritory2AssignmentRuleItem.csv",
		"out/RuleTerritory2Association.csv",
		"out/UserTerritory2Association.pending.csv",
		"out/ObjectTerritory2Association.pending.csv",
		"out/metadata/sharingRules/Account.sharingRules",
		"out/metadata/sharingRules/Opportunity.sharingRules",
		"out/territory_mapping.csv",
	}, files)

	users, err := out.ReadFile("out/" + FileUserAssociationPending)
	require.NoError(t, err)
	assert.Equal(t, "UserId,Territory2Id,RoleInTerritory2\n005A,PENDING:East,\n005B,PENDING:West,\n", string(users))

	territories, err := out.ReadFile("out/" + FileTerritory2)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(territories), "DeveloperName,Name,Description,ParentTerritory2.DeveloperName,"))

	rows, err := mapping.LoadFile(out, "out/"+mapping.FileName)
	require.NoError(t, err)
	assert.Equal(t, a.Mappings, rows)

	xml, err := out.ReadFile(metadata.FilePath("out/metadata", "Account"))
	require.NoError(t, err)

	rules, err := metadata.ParseSharingRules("Account", xml)
	require.NoError(t, err)
	assert.Equal(t, a.SharingRules["Account"], rules)
}

func TestWriteThenResolve(t *testing.T) {
	src, _ := sourceFor(t, nil)

	a, err := New(nil).Build(src, testOptions)
	require.NoError(t, err)

	fs := storage.NewMemory()
	_, err = Write(fs, "out", a)
	require.NoError(t, err)

	require.NoError(t, fs.WriteFile("deploy/Territory2.csv", []byte(
		"Id,DeveloperName,ParentTerritory2Id\n0MI1,North_America,\n0MI2,East,0MI1\n0MI3,West,0MI1\n")))

	dst, err := destination.Prepare(fs, "out/"+mapping.FileName, nil)
	require.NoError(t, err)
	require.NoError(t, dst.UpdateRecordMaps("deploy/Territory2.csv"))

	table, err := dst.BuildAssociationRecords("out/" + FileObjectAssociationPending)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"001A", "0MI2", AssociationCauseManual}}, table.Rows)
}

func TestReport(t *testing.T) {
	src, _ := sourceFor(t, nil)

	a, err := New(nil).Build(src, testOptions)
	require.NoError(t, err)

	counts, err := src.Counts()
	require.NoError(t, err)

	r := Report(a, counts, "run-1", []string{"x"})
	assert.Equal(t, 3, r.Territories)
	assert.Equal(t, 3, r.AssignmentRules)
	assert.Equal(t, 3, r.RuleItems)
	assert.Equal(t, 2, r.UserAssociations)
	assert.Equal(t, 1, r.ObjectAssociations)
	assert.Equal(t, 2, r.SharingRules)
	assert.Equal(t, "run-1", r.AnalysisRunID)
	assert.NotEmpty(t, r.RunID)
}
