package things

import (
	"bytes"
	"encoding/json"
	"errors"
)

var null = []byte("null")

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), null)
}

// firstByte returns the first non-space byte of raw, or 0 if raw is blank.
func firstByte(raw []byte) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// objectFields splits a JSON object into its members without decoding them.
// Anything other than an object is a TypeMismatch attributed to typ.
func objectFields(raw []byte, typ string) (map[string]json.RawMessage, error) {
	if firstByte(raw) != '{' {
		return nil, mismatch("", typ, raw, errors.New("expected a JSON object"))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, mismatch("", typ, raw, err)
	}
	return fields, nil
}

// present returns the member named key unless it is absent or null.
func present(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

// optionalString decodes an absent-or-null-or-string member.
func optionalString(fields map[string]json.RawMessage, key, typ string) (*string, error) {
	raw, ok := present(fields, key)
	if !ok {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, mismatch(key, typ, raw, err)
	}
	return &s, nil
}

// Unmarshal is json.Unmarshal for a complete response body, except that
// syntax errors are reported as a MalformedJSON *DecodeError.
func Unmarshal(b []byte, v any) error {
	if !json.Valid(b) {
		var syntaxErr error = errors.New("invalid JSON")
		var probe any
		if err := json.Unmarshal(b, &probe); err != nil {
			syntaxErr = err
		}
		return &DecodeError{Kind: MalformedJSON, Err: syntaxErr}
	}
	return json.Unmarshal(b, v)
}
