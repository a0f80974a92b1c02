// Package output serializes encoded documents to JSON.
//
// Token counts are defined over this package's byte output, so every
// serialization in the pipeline must go through it: HTML escaping is
// disabled so non-ASCII text keeps its UTF-8 length.
package output

import (
	"bytes"
	"encoding/json"
)

// Marshal serializes v as compact JSON without HTML escaping.
func Marshal(v any) ([]byte, error) {
	return marshal(v, "")
}

// MarshalIndent serializes v as two-space-indented JSON without HTML
// escaping.
func MarshalIndent(v any) ([]byte, error) {
	return marshal(v, "  ")
}

func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// JSONString returns the JSON string literal for s, unescaped beyond what
// JSON requires.
func JSONString(s string) string {
	b, err := Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
