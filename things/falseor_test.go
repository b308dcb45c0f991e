package things

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdited_ValidShapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Edited
	}{
		{name: "false", input: `false`, expected: NotEdited},
		{name: "whole timestamp", input: `1609459200`, expected: EditedAt(1609459200)},
		{name: "fractional timestamp", input: `1609459200.5`, expected: EditedAt(1609459200.5)},
		{name: "zero timestamp", input: `0`, expected: EditedAt(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Edited
			require.NoError(t, json.Unmarshal([]byte(tt.input), &e))
			assert.Equal(t, tt.expected, e)
		})
	}
}

func TestEdited_ZeroIsNotFalse(t *testing.T) {
	var e Edited
	require.NoError(t, json.Unmarshal([]byte(`0`), &e))

	assert.True(t, e.IsEdited())
	assert.NotEqual(t, NotEdited, e)
}

func TestEdited_RejectedShapes(t *testing.T) {
	inputs := map[string]string{
		"true":    `true`,
		"null":    `null`,
		"string":  `"1609459200"`,
		"object":  `{"at":1609459200}`,
		"array":   `[1609459200]`,
		"empty":   `""`,
		"boolish": `"false"`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			var e Edited
			err := json.Unmarshal([]byte(input), &e)
			require.Error(t, err)
			assert.True(t, IsKind(err, UnexpectedFieldShape))
			assert.JSONEq(t, input, string(Cause(err).Raw))
		})
	}
}

func TestEdited_InRecordCarriesFieldName(t *testing.T) {
	var p post
	err := json.Unmarshal([]byte(`{"id":"a","title":"x","score":1,"created_utc":1,"edited":true}`), &p)

	require.Error(t, err)
	de := Cause(err)
	assert.Equal(t, UnexpectedFieldShape, de.Kind)
	assert.Equal(t, "edited", de.Field)
	assert.Equal(t, "post", de.Type)
	assert.Equal(t, "true", string(de.Raw))
}

func TestEdited_NullInRecordIsShapeError(t *testing.T) {
	var p post
	err := json.Unmarshal([]byte(`{"id":"a","title":"x","score":1,"created_utc":1,"edited":null}`), &p)

	assert.True(t, IsKind(err, UnexpectedFieldShape))
}

func TestEdited_Time(t *testing.T) {
	ts, ok := EditedAt(1609459200).Time()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), ts)

	_, ok = NotEdited.Time()
	assert.False(t, ok)

	at, ok := EditedAt(1609459200.25).At()
	assert.True(t, ok)
	assert.Equal(t, 1609459200.25, at)
}

func TestEdited_String(t *testing.T) {
	assert.Equal(t, "not edited", NotEdited.String())
	assert.Equal(t, "edited at 2021-01-01T00:00:00Z", EditedAt(1609459200).String())
}

func TestFalseOr_OtherPayloads(t *testing.T) {
	var s FalseOr[string]
	require.NoError(t, json.Unmarshal([]byte(`"moderator"`), &s))
	v, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "moderator", v)

	require.NoError(t, json.Unmarshal([]byte(`false`), &s))
	assert.False(t, s.IsSet())

	err := json.Unmarshal([]byte(`12`), &s)
	assert.True(t, IsKind(err, UnexpectedFieldShape))
}

func TestEmptyOr(t *testing.T) {
	var e EmptyOr[Thing[Listing[post]]]
	require.NoError(t, json.Unmarshal([]byte(`""`), &e))
	assert.False(t, e.IsSet())

	require.NoError(t, json.Unmarshal(wrapListing(`{"children":[{"kind":"t3","data":`+postB+`}]}`), &e))
	listing, ok := e.Get()
	require.True(t, ok)
	assert.Equal(t, "b", listing.Data.Children[0].Data.ID)

	err := json.Unmarshal([]byte(`null`), &e)
	assert.True(t, IsKind(err, UnexpectedFieldShape))

	err = json.Unmarshal(wrapListing(`{}`), &e)
	assert.True(t, IsKind(err, MissingField))
	assert.Equal(t, "children", Cause(err).Field)
}
