package diagnostic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsError(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())

	d.AddWarning("count_mismatch", "expected 10, got 8", "Territory", "")
	assert.NoError(t, d.Error())
	assert.True(t, d.HasWarnings())

	d.AddError("unresolved", "no destination record", "Territory2", "East_Region")
	d.AddError("empty", "nothing deployed", "", "")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[Territory2] East_Region: [unresolved] no destination record; [empty] nothing deployed",
		err.Error())
}

func TestDiagnosticsMergeAndByCode(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("renamed", "East_Region -> East_Region_2", "AssignmentRule", "01Q2")
	b.AddWarning("renamed", "truncated", "Territory", "0MI1")
	b.AddWarning("rule_discarded", "role group", "Account", "Share_All")

	a.Merge(b)

	assert.Len(t, a.ByCode("renamed"), 2)
	assert.Len(t, a.ByCode("rule_discarded"), 1)
	assert.Empty(t, a.ByCode("missing"))
}

func TestSeverityJSON(t *testing.T) {
	var d Diagnostics
	d.AddWarning("count_mismatch", "expected 1, got 0", "RecordShare", "")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"severity":"warning"`)

	var back Diagnostics
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)

	var s Severity
	assert.Error(t, s.UnmarshalText([]byte("fatal")))
}
