package jsonparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataslice/jqlite/internal/jsonval"
)

func TestParsePrimitives(t *testing.T) {
	cases := []struct {
		in   string
		want jsonval.Value
	}{
		{"null", jsonval.NewNull()},
		{"true", jsonval.NewBool(true)},
		{"false", jsonval.NewBool(false)},
		{"42", jsonval.NewNumber(42)},
		{"-3.5", jsonval.NewNumber(-3.5)},
		{"1.5e2", jsonval.NewNumber(150)},
		{`"hi"`, jsonval.NewString("hi")},
		{`'hi'`, jsonval.NewString("hi")},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		require.NoError(t, err, c.in)
		assert.True(t, c.want.Equal(got), "parsing %q: got %v want %v", c.in, got, c.want)
	}
}

func TestParseStringEscapes(t *testing.T) {
	got, err := Parse(`"a\nb\tcA"`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\tcA", got.Str)
}

func TestParseArrayAndObject(t *testing.T) {
	got, err := Parse(`[1, 2, {"a": true}]`)
	require.NoError(t, err)
	require.Equal(t, jsonval.Array, got.Kind)
	require.Len(t, got.Arr, 3)
	assert.Equal(t, jsonval.Object, got.Arr[2].Kind)
	assert.Equal(t, []string{"a"}, got.Arr[2].Keys)
}

func TestParseEmptyArrayAndObject(t *testing.T) {
	got, err := Parse(`[]`)
	require.NoError(t, err)
	assert.Empty(t, got.Arr)

	got, err = Parse(`{}`)
	require.NoError(t, err)
	assert.Empty(t, got.Keys)
}

func TestParseTrailingInputIsError(t *testing.T) {
	_, err := Parse(`1 2`)
	require.Error(t, err)
}

func TestParseUnterminatedStringIsError(t *testing.T) {
	_, err := Parse(`"unterminated`)
	require.Error(t, err)
}

func TestParseMissingDelimiterIsError(t *testing.T) {
	_, err := Parse(`[1, 2`)
	require.Error(t, err)
}

func TestExportedLiteralHelpers(t *testing.T) {
	_, _, ok, err := ParseNull("null")
	require.NoError(t, err)
	assert.True(t, ok)

	_, _, ok, err = ParseBool("false")
	require.NoError(t, err)
	assert.True(t, ok)

	v, rest, ok, err := ParseNumber("10 rest")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, float64(10), v.Num)
	assert.Equal(t, " rest", rest)

	_, _, ok, err = ParseString(`"not a number"`)
	require.NoError(t, err)
	assert.True(t, ok)

	_, _, ok, err = ParseString("123")
	require.NoError(t, err)
	assert.False(t, ok, "ParseString should report no-match, not error, on a non-string lead token")
}
