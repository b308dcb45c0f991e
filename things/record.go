package things

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// DecodeRecord decodes a JSON object into the struct pointed to by v, field by
// field, using each field's json tag as its key.
//
// Pointer fields are optional: an absent or null key leaves them nil, so an
// absent value is never confused with a genuine zero. Every other field is
// required: an absent key is a MissingField error and a null is a
// TypeMismatch, unless the field's type implements json.Unmarshaler, in
// which case that type decides what null means. Keys without a matching
// field are ignored.
//
// Leaf records call DecodeRecord from their own UnmarshalJSON.
func DecodeRecord(b []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode record: need a non-nil struct pointer, got %T", v)
	}
	rv = rv.Elem()
	rt := rv.Type()
	typ := rt.Name()

	fields, err := objectFields(b, typ)
	if err != nil {
		return err
	}

	var out = reflect.New(rt).Elem()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		key, ok := fieldKey(sf)
		if !ok {
			continue
		}

		raw, found := fields[key]
		optional := sf.Type.Kind() == reflect.Pointer

		switch {
		case !found && optional:
			continue
		case !found:
			return missing(key, typ)
		case isNull(raw) && optional:
			continue
		case isNull(raw) && !handlesNull(sf.Type):
			return mismatch(key, typ, raw, errors.New("null for a required field"))
		}

		if err := json.Unmarshal(raw, out.Field(i).Addr().Interface()); err != nil {
			return fieldError(key, typ, raw, err)
		}
	}

	rv.Set(out)
	return nil
}

func fieldKey(sf reflect.StructField) (string, bool) {
	if !sf.IsExported() {
		return "", false
	}

	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}
	return name, true
}

func handlesNull(t reflect.Type) bool {
	return t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType)
}

// fieldError attributes err to key inside typ. Structured errors from custom
// field types keep their own kind.
func fieldError(key, typ string, raw json.RawMessage, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		if de.Field == "" {
			de.Field = key
		}
		if de.Type == "" {
			de.Type = typ
		}
		if de.Kind == UnexpectedFieldShape && len(de.Raw) == 0 {
			de.Raw = raw
		}
		return err
	}
	return mismatch(key, typ, raw, err)
}
