package material

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeStrategy turns raw bytes into decoded text, reporting whether the
// bytes are plausible under its encoding.
type decodeStrategy struct {
	name   string
	decode func(raw []byte) (string, bool)
}

// decodeStrategies is the ordered list of text encodings probed when given a
// raw byte buffer. The first strategy whose output parses as delimited
// tabular text wins.
var decodeStrategies = []decodeStrategy{
	{name: "utf-8", decode: decodeUTF8},
	{name: "shift_jis", decode: decoderFor(japanese.ShiftJIS)},
	{name: "euc-jp", decode: decoderFor(japanese.EUCJP)},
}

// Resolve parses a raw byte buffer as CSV and maps it into the canonical
// material schema. Any decoding or parsing failure yields an empty table
// rather than an error.
func Resolve(raw []byte) Table {
	header, rows, ok := decodeCSV(raw)
	if !ok {
		return Table{}
	}
	return ResolveRows(header, rows)
}

func decodeCSV(raw []byte) (header []string, rows [][]string, ok bool) {
	for _, strat := range decodeStrategies {
		text, ok := strat.decode(raw)
		if !ok {
			continue
		}
		reader := csv.NewReader(strings.NewReader(text))
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		if err != nil || len(records) == 0 {
			continue
		}
		return records[0], records[1:], true
	}
	return nil, nil, false
}

func decodeUTF8(raw []byte) (string, bool) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// decoderFor rejects input the encoding cannot represent. The x/text
// decoders substitute U+FFFD for invalid byte sequences instead of failing,
// so the replacement rune doubles as the rejection signal here.
func decoderFor(enc encoding.Encoding) func([]byte) (string, bool) {
	return func(raw []byte) (string, bool) {
		decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
		if err != nil {
			return "", false
		}
		text := string(decoded)
		if strings.ContainsRune(text, utf8.RuneError) {
			return "", false
		}
		return text, true
	}
}
