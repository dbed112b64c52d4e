// Package input turns operator supplied free text into an ordered list of identifiers.
package input

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"
)

const separator = ","

// Normalize parses raw as a JSON array of identifiers, falling back to comma separated text.
// Pieces are trimmed but never dropped, so empty entries keep their position.
func Normalize(raw string) []string {
	var value json.RawMessage
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return split(raw)
	}

	trimmed := bytes.TrimSpace(value)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return split(raw)
		}
		ids := make([]string, 0, len(elems))
		for _, elem := range elems {
			if isNull(elem) {
				ids = append(ids, "")
				continue
			}
			ids = append(ids, strings.TrimSpace(stringify(elem)))
		}
		return ids
	}

	if isNull(trimmed) {
		return split(raw)
	}
	return split(stringify(trimmed))
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// stringify returns the string form of a single JSON value.
func stringify(value json.RawMessage) string {
	value = bytes.TrimSpace(value)
	if len(value) == 0 {
		return ""
	}
	switch value[0] {
	case '"':
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			// undecodable contents such as invalid UTF-8 are kept as is, without the quotes
			return string(bytes.TrimSuffix(value[1:], []byte{'"'}))
		}
		return s
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, value); err != nil {
			return string(value)
		}
		return buf.String()
	}
}

func split(s string) []string {
	parts := strings.Split(s, separator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
