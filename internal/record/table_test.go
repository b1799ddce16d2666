package record

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tm-migrator/internal/sentinel"
)

func TestParseTable(t *testing.T) {
	in := "Id, Name ,ParentTerritoryId\n0MI1,East,\n0MI2,\"North, East\",0MI1\n"

	table, err := ParseTable(strings.NewReader(in), "Territory.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"Id", "Name", "ParentTerritoryId"}, table.Header)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "North, East", table.Value(1, "Name"))
	assert.Equal(t, "0MI1", table.Value(1, "ParentTerritoryId"))
	assert.Equal(t, "", table.Value(0, "Missing"))
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantRow int
	}{
		{"no header", "", 0},
		{"empty header column", "Id,,Name\n1,2,3\n", 0},
		{"duplicate header", "Id,Id\n1,2\n", 0},
		{"short row", "Id,Name\n1,East\n2\n", 2},
		{"long row", "Id,Name\n1,East,extra\n", 1},
		{"bare quote", "Id,Name\n1,Ea\"st\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable(strings.NewReader(tt.input), "Territory.csv")
			require.ErrorIs(t, err, sentinel.ErrParse)

			var pe *sentinel.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "Territory.csv", pe.File)
			assert.Equal(t, tt.wantRow, pe.Row)
		})
	}
}

func TestParseTableHeaderOnly(t *testing.T) {
	table, err := ParseTable(strings.NewReader("Id,Name\n"), "UserTerritory.csv")

	require.ErrorIs(t, err, sentinel.ErrEmptyTable)
	assert.NotErrorIs(t, err, sentinel.ErrParse)
	require.NotNil(t, table)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, []string{"Id", "Name"}, table.Header)
}

func TestParseTableUTF16(t *testing.T) {
	// "Id,Name\n1,Zürich\n" in UTF-16 LE with BOM.
	text := "Id,Name\n1,Zürich\n"
	data := []byte{0xFF, 0xFE}

	for _, r := range text {
		data = append(data, byte(r), byte(r>>8))
	}

	table, err := ParseTable(bytes.NewReader(data), "Territory.csv")
	require.NoError(t, err)
	assert.Equal(t, "Zürich", table.Value(0, "Name"))
}

func TestReaderStreamsRows(t *testing.T) {
	r, err := NewReader(strings.NewReader("\xEF\xBB\xBFUserId,Territory2Id\nu1,PENDING:East\nu2,PENDING:West\n"), "pending.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"UserId", "Territory2Id"}, r.Header())

	var rows [][]string

	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		rows = append(rows, row)
	}

	assert.Equal(t, [][]string{{"u1", "PENDING:East"}, {"u2", "PENDING:West"}}, rows)
	assert.Equal(t, 2, r.Row())
}

func TestWriteTable(t *testing.T) {
	table := NewTable("out.csv", "DeveloperName", "Name")
	table.Append("East_Region", "East, Region")
	table.Append("West")

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, table))

	assert.Equal(t, "DeveloperName,Name\nEast_Region,\"East, Region\"\nWest,\n", buf.String())

	back, err := ParseTable(&buf, "out.csv")
	require.NoError(t, err)
	assert.Equal(t, table.Rows, back.Rows)
}

func TestRecords(t *testing.T) {
	table := NewTable("t.csv", "Id", "Name")
	table.Append("1", "East")

	assert.Equal(t, []map[string]string{{"Id": "1", "Name": "East"}}, table.Records())
}
