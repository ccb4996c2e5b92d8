package domain

import (
	"encoding/json"
)

// BodyKind tells which variant a Body holds
type BodyKind int

const (
	BodyEmpty BodyKind = iota
	BodyJSON
	BodyText
)

func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	case BodyText:
		return "text"
	default:
		return "empty"
	}
}

// Body is a parsed response body: nothing, a decoded JSON value, or raw text
type Body struct {
	Kind  BodyKind
	Value any    // Decoded JSON when Kind is BodyJSON
	Text  string // Raw text when Kind is BodyText
}

// EmptyBody is returned on every failure path
var EmptyBody = Body{Kind: BodyEmpty}

// JSONBody wraps a decoded JSON value
func JSONBody(v any) Body {
	return Body{Kind: BodyJSON, Value: v}
}

// TextBody wraps a body that is not JSON
func TextBody(s string) Body {
	return Body{Kind: BodyText, Text: s}
}

// Field returns a top-level member of a JSON object body
func (b Body) Field(key string) (any, bool) {
	if b.Kind != BodyJSON {
		return nil, false
	}
	obj, ok := b.Value.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := obj[key]
	return v, ok
}

// Len returns the number of records of a JSON array body
func (b Body) Len() (int, bool) {
	if b.Kind != BodyJSON {
		return 0, false
	}
	arr, ok := b.Value.([]any)
	if !ok {
		return 0, false
	}
	return len(arr), true
}

// String renders the body for display, JSON indented by two spaces
func (b Body) String() string {
	switch b.Kind {
	case BodyJSON:
		data, err := json.MarshalIndent(b.Value, "", "  ")
		if err != nil {
			return ""
		}
		return string(data)
	case BodyText:
		return b.Text
	default:
		return "{}"
	}
}
