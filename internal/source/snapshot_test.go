package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tm-migrator/internal/sentinel"
	"tm-migrator/internal/testfixture"
)

func TestSaveThenLoad(t *testing.T) {
	fs := fixture(t, nil)

	built, err := Prepare(fs, testfixture.MetadataDir, testfixture.DataDir)
	require.NoError(t, err)
	require.NoError(t, built.Save(fs, "snapshots/"+SnapshotFile))

	loaded := New(fs)
	require.NoError(t, loaded.Load(Options{SnapshotPath: "snapshots/" + SnapshotFile}))

	assert.True(t, loaded.Loaded())
	assert.False(t, loaded.Built())

	wantCounts, err := built.Counts()
	require.NoError(t, err)
	gotCounts, err := loaded.Counts()
	require.NoError(t, err)
	assert.Equal(t, wantCounts, gotCounts)

	for _, id := range []string{"R1", "R2", "R3"} {
		want, _, err := built.RuleDeveloperName(id)
		require.NoError(t, err)
		got, ok, err := loaded.RuleDeveloperName(id)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	items, err := loaded.ItemsForRule("R2")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "I2", items[0].Id)

	rules, err := loaded.SharingRules()
	require.NoError(t, err)
	builtRules, err := built.SharingRules()
	require.NoError(t, err)
	assert.Equal(t, builtRules, rules)

	require.NoError(t, loaded.Refresh())
	assert.True(t, loaded.Loaded(), "refresh replays load")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", "{", sentinel.ErrParse},
		{"wrong version", `{"version":9,"extract":{}}`, sentinel.ErrParse},
		{"missing names", `{"version":1,"extract":{"territories":[{"id":"T1","name":"A"}]}}`, sentinel.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := fixture(t, map[string]string{"snap.json": tt.data})

			c := New(fs)
			err := c.Load(Options{SnapshotPath: "snap.json"})
			require.ErrorIs(t, err, tt.want)
			assert.True(t, c.Failed())
		})
	}

	c := New(fixture(t, nil))
	require.ErrorIs(t, c.Load(Options{}), sentinel.ErrType)
}
