package things

import (
	"encoding/json"
	"errors"
)

// Listing is one page of a cursor-paginated collection. It is always carried
// inside a Thing of kind "Listing".
//
// Before and After are opaque cursors. They are never parsed; pass them back
// verbatim as the before/after query parameters of the next request. A nil
// After means the server reported no further page in that direction.
type Listing[T any] struct {
	Modhash  *string
	Before   *string
	After    *string
	Dist     *int
	Children []Thing[T]
}

func (l *Listing[T]) UnmarshalJSON(b []byte) error {
	const typ = "Listing"

	fields, err := objectFields(b, typ)
	if err != nil {
		return err
	}

	var out Listing[T]
	if out.Modhash, err = optionalString(fields, "modhash", typ); err != nil {
		return err
	}
	if out.Before, err = optionalString(fields, "before", typ); err != nil {
		return err
	}
	if out.After, err = optionalString(fields, "after", typ); err != nil {
		return err
	}
	if raw, ok := present(fields, "dist"); ok {
		var dist int
		if err := json.Unmarshal(raw, &dist); err != nil {
			return mismatch("dist", typ, raw, err)
		}
		out.Dist = &dist
	}

	rawChildren, ok := present(fields, "children")
	if !ok {
		return missing("children", typ)
	}
	if firstByte(rawChildren) != '[' {
		return mismatch("children", typ, rawChildren, errors.New("expected a JSON array"))
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(rawChildren, &elems); err != nil {
		return mismatch("children", typ, rawChildren, err)
	}

	out.Children = make([]Thing[T], len(elems))
	for i, elem := range elems {
		if err := json.Unmarshal(elem, &out.Children[i]); err != nil {
			return ChildError(i, err)
		}
	}

	*l = out
	return nil
}

// NextCursor returns the cursor for the following page.
func (l Listing[T]) NextCursor() (string, bool) {
	if l.After == nil {
		return "", false
	}
	return *l.After, true
}

// PrevCursor returns the cursor for the preceding page.
func (l Listing[T]) PrevCursor() (string, bool) {
	if l.Before == nil {
		return "", false
	}
	return *l.Before, true
}

// HasMore reports whether the server handed out a cursor for a following page.
// An empty page with an after cursor still reports true.
func (l Listing[T]) HasMore() bool {
	return l.After != nil
}

func (l Listing[T]) Len() int {
	return len(l.Children)
}

// Items returns the payloads of the children in server order.
func (l Listing[T]) Items() []T {
	items := make([]T, len(l.Children))
	for i, child := range l.Children {
		items[i] = child.Data
	}
	return items
}

// DecodeListing decodes b as an envelope holding a listing of T.
func DecodeListing[T any](b []byte) (Thing[Listing[T]], error) {
	return Decode[Listing[T]](b)
}
