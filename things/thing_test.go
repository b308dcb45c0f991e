package things

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_KindRoundTrips(t *testing.T) {
	kinds := []string{"t3", "t1", "Listing", "something_new"}

	for _, kind := range kinds {
		t.Run(kind, func(t *testing.T) {
			thing, err := Decode[post]([]byte(`{"kind":"` + kind + `","data":` + postA + `}`))
			require.NoError(t, err)
			assert.Equal(t, Kind(kind), thing.Kind)
			assert.Equal(t, "a", thing.Data.ID)
		})
	}
}

func TestDecode_MissingData(t *testing.T) {
	thing, err := Decode[post]([]byte(`{"kind":"t3"}`))

	require.Error(t, err)
	assert.True(t, IsKind(err, MissingField))
	de := Cause(err)
	assert.Equal(t, "data", de.Field)
	assert.Equal(t, "Thing", de.Type)
	assert.Equal(t, Thing[post]{}, thing)
}

func TestDecode_NullDataIsMissing(t *testing.T) {
	_, err := Decode[post]([]byte(`{"kind":"t3","data":null}`))

	assert.True(t, IsKind(err, MissingField))
	assert.Equal(t, "data", Cause(err).Field)
}

func TestDecode_MissingKind(t *testing.T) {
	_, err := Decode[post]([]byte(`{"data":` + postA + `}`))

	assert.True(t, IsKind(err, MissingField))
	assert.Equal(t, "kind", Cause(err).Field)
}

func TestDecode_KindWrongType(t *testing.T) {
	_, err := Decode[post]([]byte(`{"kind":3,"data":` + postA + `}`))

	assert.True(t, IsKind(err, TypeMismatch))
	assert.Equal(t, "kind", Cause(err).Field)
}

func TestDecode_NotAnObject(t *testing.T) {
	_, err := Decode[post]([]byte(`["t3"]`))

	assert.True(t, IsKind(err, TypeMismatch))
	assert.Equal(t, "Thing", Cause(err).Type)
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode[post]([]byte(`{"kind":"t3",`))

	assert.True(t, IsKind(err, MalformedJSON))
}

func TestDecode_DataErrorPropagatesFromLeafField(t *testing.T) {
	_, err := Decode[post]([]byte(`{"kind":"t3","data":{"id":"a","title":"x","score":"high","created_utc":1,"edited":false}}`))

	require.Error(t, err)
	de := Cause(err)
	assert.Equal(t, TypeMismatch, de.Kind)
	assert.Equal(t, "score", de.Field)
	assert.Equal(t, "post", de.Type)
	assert.JSONEq(t, `"high"`, string(de.Raw))
}

func TestDecode_PayloadCanBeAnyType(t *testing.T) {
	thing, err := Decode[map[string]int]([]byte(`{"kind":"KarmaList","data":{"golang":12}}`))

	require.NoError(t, err)
	assert.Equal(t, 12, thing.Data["golang"])
}
