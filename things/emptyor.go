package things

import (
	"bytes"
	"encoding/json"
)

var emptyString = []byte(`""`)

// EmptyOr holds a field that the API sends as an empty string when unset and
// as a value of type T when set. A nested listing in a comment's "replies" is
// the typical case. Errors from decoding T are returned unchanged.
type EmptyOr[T any] struct {
	value *T
}

// Present returns an EmptyOr holding v.
func Present[T any](v T) EmptyOr[T] {
	return EmptyOr[T]{value: &v}
}

// Get returns the held value and whether the field was set.
func (e EmptyOr[T]) Get() (T, bool) {
	if e.value == nil {
		var zero T
		return zero, false
	}
	return *e.value, true
}

// IsSet reports whether the field held a value rather than "".
func (e EmptyOr[T]) IsSet() bool {
	return e.value != nil
}

func (e *EmptyOr[T]) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, emptyString) {
		*e = EmptyOr[T]{}
		return nil
	}
	if isNull(raw) {
		return ShapeError("", "", json.RawMessage(raw))
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*e = EmptyOr[T]{value: &v}
	return nil
}
