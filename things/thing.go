// Package things decodes the {kind, data} envelopes and paginated listings
// that wrap every object returned by the Reddit JSON API.
//
// Decoding is strict and atomic: a required key that is absent, a value of
// the wrong JSON type, or a polymorphic field in an undocumented shape fails
// the whole call with a *DecodeError, and the caller gets the zero value.
package things

import (
	"encoding/json"
)

// Kind is the type discriminator of an envelope. It is passed through as
// received and never checked against the payload type.
type Kind string

const (
	KindComment   Kind = "t1"
	KindAccount   Kind = "t2"
	KindLink      Kind = "t3"
	KindMessage   Kind = "t4"
	KindSubreddit Kind = "t5"
	KindAward     Kind = "t6"
	KindListing   Kind = "Listing"
	KindMore      Kind = "more"
)

// Thing pairs a kind with exactly one payload of type T.
type Thing[T any] struct {
	Kind Kind
	Data T
}

func (t *Thing[T]) UnmarshalJSON(b []byte) error {
	const typ = "Thing"

	fields, err := objectFields(b, typ)
	if err != nil {
		return err
	}

	rawKind, ok := present(fields, "kind")
	if !ok {
		return missing("kind", typ)
	}
	var kind string
	if err := json.Unmarshal(rawKind, &kind); err != nil {
		return mismatch("kind", typ, rawKind, err)
	}

	rawData, ok := present(fields, "data")
	if !ok {
		return missing("data", typ)
	}
	var data T
	if err := json.Unmarshal(rawData, &data); err != nil {
		return err
	}

	*t = Thing[T]{Kind: Kind(kind), Data: data}
	return nil
}

// Decode decodes b as an envelope holding a T. On failure the zero Thing is
// returned together with a *DecodeError, or with the error T's own decoding
// produced.
func Decode[T any](b []byte) (Thing[T], error) {
	var t Thing[T]
	if err := Unmarshal(b, &t); err != nil {
		return Thing[T]{}, err
	}
	return t, nil
}
