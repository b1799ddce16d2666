package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectAndDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		want     string
		encoding string
	}{
		{"plain", []byte("Id,Name"), "Id,Name", "utf-8"},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "Id"...), "Id", "utf-8-bom"},
		{"utf-16 be", []byte{0xFE, 0xFF, 0x00, 'I', 0x00, 'd'}, "Id", "utf-16be"},
		{"latin-1", []byte{'M', 0xFC, 'n'}, "Mün", "latin-1"},
		{"empty", nil, "", "utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, enc, err := DetectAndDecode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assert.Equal(t, tt.encoding, enc)
		})
	}
}
