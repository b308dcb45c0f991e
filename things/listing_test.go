package things

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrapListing(data string) []byte {
	return []byte(`{"kind":"Listing","data":` + data + `}`)
}

func TestDecodeListing_EmptyFinalPage(t *testing.T) {
	listing, err := DecodeListing[post](wrapListing(`{"before":null,"after":null,"children":[]}`))

	require.NoError(t, err)
	assert.Equal(t, KindListing, listing.Kind)
	assert.NotNil(t, listing.Data.Children)
	assert.Empty(t, listing.Data.Children)
	assert.Nil(t, listing.Data.After)
	assert.False(t, listing.Data.HasMore())
}

func TestDecodeListing_EmptyPageKeepsCursor(t *testing.T) {
	listing, err := DecodeListing[post](wrapListing(`{"after":"t3_zzz","children":[]}`))

	require.NoError(t, err)
	assert.Empty(t, listing.Data.Children)
	assert.True(t, listing.Data.HasMore())
	cursor, ok := listing.Data.NextCursor()
	assert.True(t, ok)
	assert.Equal(t, "t3_zzz", cursor)
}

func TestDecodeListing_PreservesOrder(t *testing.T) {
	body := `{"children":[
		{"kind":"t3","data":` + postC + `},
		{"kind":"t3","data":` + postA + `},
		{"kind":"t3","data":` + postB + `}
	]}`

	listing, err := DecodeListing[post](wrapListing(body))

	require.NoError(t, err)
	ids := make([]string, 0, 3)
	for _, p := range listing.Data.Items() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
	assert.Equal(t, 3, listing.Data.Len())
}

func TestDecodeListing_BadChildFailsWholeListing(t *testing.T) {
	body := `{"after":"t3_c","children":[
		{"kind":"t3","data":` + postA + `},
		{"kind":"t3","data":` + postB + `},
		{"kind":"t3","data":{"id":"c","title":"third","score":"lots","created_utc":1,"edited":false}}
	]}`

	listing, err := DecodeListing[post](wrapListing(body))

	require.Error(t, err)
	assert.True(t, IsKind(err, ChildDecodeFailure))
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Index)
	assert.Equal(t, TypeMismatch, Cause(err).Kind)
	assert.Equal(t, "score", Cause(err).Field)
	assert.Nil(t, listing.Data.Children)
	assert.Equal(t, Thing[Listing[post]]{}, listing)
}

func TestDecodeListing_ChildWithoutData(t *testing.T) {
	_, err := DecodeListing[post](wrapListing(`{"children":[{"kind":"t3"}]}`))

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ChildDecodeFailure, de.Kind)
	assert.Equal(t, 0, de.Index)
	assert.Equal(t, MissingField, Cause(err).Kind)
	assert.Equal(t, "data", Cause(err).Field)
}

func TestDecodeListing_MissingChildren(t *testing.T) {
	_, err := DecodeListing[post](wrapListing(`{"after":"t3_x"}`))

	assert.True(t, IsKind(err, MissingField))
	assert.Equal(t, "children", Cause(err).Field)
	assert.Equal(t, "Listing", Cause(err).Type)
}

func TestDecodeListing_ChildrenNotArray(t *testing.T) {
	_, err := DecodeListing[post](wrapListing(`{"children":{}}`))

	assert.True(t, IsKind(err, TypeMismatch))
	assert.Equal(t, "children", Cause(err).Field)
}

func TestDecodeListing_CursorsAreOpaque(t *testing.T) {
	body := `{"modhash":"","before":"  weird/cursor==","after":"t3_abc?x=1&y=2","dist":0,"children":[]}`

	listing, err := DecodeListing[post](wrapListing(body))

	require.NoError(t, err)
	prev, ok := listing.Data.PrevCursor()
	assert.True(t, ok)
	assert.Equal(t, "  weird/cursor==", prev)
	next, _ := listing.Data.NextCursor()
	assert.Equal(t, "t3_abc?x=1&y=2", next)
	require.NotNil(t, listing.Data.Modhash)
	assert.Equal(t, "", *listing.Data.Modhash)
	require.NotNil(t, listing.Data.Dist)
	assert.Equal(t, 0, *listing.Data.Dist)
}

func TestDecodeListing_CursorWrongType(t *testing.T) {
	_, err := DecodeListing[post](wrapListing(`{"after":123,"children":[]}`))

	assert.True(t, IsKind(err, TypeMismatch))
	assert.Equal(t, "after", Cause(err).Field)
}

func TestDecodeListing_EndToEnd(t *testing.T) {
	body := `{"kind":"Listing","data":{"before":null,"after":"t3_abc","children":[{"kind":"t3","data":` + postA + `}]}}`

	listing, err := DecodeListing[post]([]byte(body))

	require.NoError(t, err)
	require.Len(t, listing.Data.Children, 1)
	assert.Equal(t, NotEdited, listing.Data.Children[0].Data.Edited)
	assert.Equal(t, "t3_abc", *listing.Data.After)
	assert.Nil(t, listing.Data.Before)
}
