package record

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectAndDecode strips any byte order mark and returns UTF-8 bytes along
// with the name of the detected encoding. Input that is neither marked nor
// valid UTF-8 is read as Latin-1, which is what spreadsheet exports fall back to.
func DetectAndDecode(data []byte) ([]byte, string, error) {
	switch {
	case len(data) == 0:
		return data, "utf-8", nil
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], "utf-8-bom", nil
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		name := "utf-16le"
		if bytes.HasPrefix(data, bomUTF16BE) {
			name = "utf-16be"
		}

		decoded, _, err := transform.Bytes(bomDecoder(), data)
		if err != nil {
			return nil, "", fmt.Errorf("%s decode failed: %w", name, err)
		}

		return decoded, name, nil
	case utf8.Valid(data):
		return data, "utf-8", nil
	default:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, "", fmt.Errorf("latin-1 decode failed: %w", err)
		}

		return decoded, "latin-1", nil
	}
}

// bomDecoder passes UTF-8 through and switches to UTF-16 when the input
// starts with a UTF-16 byte order mark.
func bomDecoder() transform.Transformer {
	return unicode.BOMOverride(encoding.Nop.NewDecoder())
}
