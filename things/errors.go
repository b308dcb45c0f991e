package things

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind is a stable category for programmatic handling of decode failures.
// Branch on the kind, not on the Error() string.
type ErrorKind string

const (
	// MissingField means a required key was absent from a JSON object.
	MissingField ErrorKind = "MissingField"
	// TypeMismatch means a key was present with the wrong JSON type.
	TypeMismatch ErrorKind = "TypeMismatch"
	// UnexpectedFieldShape means a polymorphic field held none of its documented shapes.
	UnexpectedFieldShape ErrorKind = "UnexpectedFieldShape"
	// ChildDecodeFailure means one element of a sequence failed. Index locates it.
	ChildDecodeFailure ErrorKind = "ChildDecodeFailure"
	// MalformedJSON means the input was not valid JSON.
	MalformedJSON ErrorKind = "MalformedJSON"
)

// DecodeError describes why a decode call failed. Field and Type name the key
// and the enclosing record, Raw holds the offending JSON value when there is one.
type DecodeError struct {
	Kind  ErrorKind
	Field string
	Type  string
	Index int
	Raw   json.RawMessage
	Err   error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("%s: missing field %q in %s", e.Kind, e.Field, e.Type)
	case ChildDecodeFailure:
		return fmt.Sprintf("%s: element %d: %v", e.Kind, e.Index, e.Err)
	case MalformedJSON:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}

	msg := fmt.Sprintf("%s: field %q in %s", e.Kind, e.Field, e.Type)
	if len(e.Raw) > 0 {
		msg += fmt.Sprintf(": got %s", truncate(e.Raw, 64))
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is, or wraps, a *DecodeError of the given kind.
// Only the outermost *DecodeError is inspected, so a ChildDecodeFailure
// wrapping a MissingField reports ChildDecodeFailure.
func IsKind(err error, kind ErrorKind) bool {
	var de *DecodeError
	if !errors.As(err, &de) {
		return false
	}
	return de.Kind == kind
}

// Cause returns the innermost *DecodeError in err's chain, skipping over
// ChildDecodeFailure wrappers. It returns nil if err holds no *DecodeError.
func Cause(err error) *DecodeError {
	var last *DecodeError
	for err != nil {
		var de *DecodeError
		if !errors.As(err, &de) {
			break
		}
		last = de
		err = de.Err
	}
	return last
}

func missing(field, typ string) error {
	return &DecodeError{Kind: MissingField, Field: field, Type: typ}
}

func mismatch(field, typ string, raw json.RawMessage, err error) error {
	return &DecodeError{Kind: TypeMismatch, Field: field, Type: typ, Raw: raw, Err: err}
}

// ChildError wraps err as the failure of element index in a sequence.
func ChildError(index int, err error) error {
	return &DecodeError{Kind: ChildDecodeFailure, Index: index, Err: err}
}

// ShapeError reports that a polymorphic value held none of its documented shapes.
func ShapeError(field, typ string, raw json.RawMessage) error {
	return &DecodeError{Kind: UnexpectedFieldShape, Field: field, Type: typ, Raw: raw}
}

func truncate(raw []byte, n int) string {
	if len(raw) <= n {
		return string(raw)
	}
	return string(raw[:n]) + "..."
}
