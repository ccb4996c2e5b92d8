package parser

import (
	"bytes"
	"encoding/json"
	"io"

	"apismoke/internal/domain"
)

// DisplayLimit is the number of characters of a raw body shown in diagnostics
const DisplayLimit = 200

// JSONParser decodes response bodies as JSON, falling back to raw text
type JSONParser struct{}

// NewJSONParser creates a new JSONParser
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse returns an empty body for blank input, a JSON body when the whole
// input is one JSON value, and a text body otherwise.
func (p *JSONParser) Parse(raw []byte) domain.Body {
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.EmptyBody
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return domain.TextBody(string(raw))
	}
	// Trailing data after the first value means this is not a JSON document
	if _, err := dec.Token(); err != io.EOF {
		return domain.TextBody(string(raw))
	}
	return domain.JSONBody(v)
}

// Truncate returns at most n characters of s
func Truncate(s string, n int) string {
	if n < 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
