package things

import (
	"bytes"
	"encoding/json"
	"time"
)

var jsonFalse = []byte("false")

// FalseOr holds a field that the API sends as the literal false when unset
// and as a value of type T when set. Any other shape is rejected, including
// true and null.
type FalseOr[T any] struct {
	value T
	ok    bool
}

// Some returns a FalseOr holding v.
func Some[T any](v T) FalseOr[T] {
	return FalseOr[T]{value: v, ok: true}
}

// Get returns the held value and whether the field was set.
func (f FalseOr[T]) Get() (T, bool) {
	return f.value, f.ok
}

// IsSet reports whether the field held a value rather than false.
func (f FalseOr[T]) IsSet() bool {
	return f.ok
}

func (f *FalseOr[T]) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, jsonFalse) {
		*f = FalseOr[T]{}
		return nil
	}

	switch firstByte(raw) {
	case 't', 'n':
		return ShapeError("", "", json.RawMessage(raw))
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return ShapeError("", "", json.RawMessage(raw))
	}
	*f = Some(v)
	return nil
}

// Edited is the "edited" marker on submissions and comments: false when the
// item was never edited, otherwise the Unix time of the last edit. Fractional
// seconds are kept.
type Edited struct {
	FalseOr[float64]
}

// NotEdited is the Edited value of an item that was never edited.
var NotEdited = Edited{}

// EditedAt returns the Edited value for an edit at Unix time ts.
func EditedAt(ts float64) Edited {
	return Edited{Some(ts)}
}

// IsEdited reports whether the item was edited.
func (e Edited) IsEdited() bool {
	return e.IsSet()
}

// At returns the Unix time of the last edit.
func (e Edited) At() (float64, bool) {
	return e.Get()
}

// Time returns the time of the last edit in UTC.
func (e Edited) Time() (time.Time, bool) {
	ts, ok := e.Get()
	if !ok {
		return time.Time{}, false
	}
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC(), true
}

func (e Edited) String() string {
	t, ok := e.Time()
	if !ok {
		return "not edited"
	}
	return "edited at " + t.Format(time.RFC3339)
}
