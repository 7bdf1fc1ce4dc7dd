package filterparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataslice/jqlite/internal/ast"
)

func TestParseIdentity(t *testing.T) {
	n, err := Parse(".")
	require.NoError(t, err)
	assert.Equal(t, ast.Identity, n.Kind)
}

func TestParseEmptyIsError(t *testing.T) {
	_, err := Parse("   ")
	require.Error(t, err)
}

func TestParseIdChain(t *testing.T) {
	n, err := Parse(".a.b")
	require.NoError(t, err)
	require.Equal(t, ast.IdChain, n.Kind)
	require.Len(t, n.Items, 2)
	assert.Equal(t, "a", n.Items[0].Str)
	assert.Equal(t, "b", n.Items[1].Str)
}

func TestParseBracketIndex(t *testing.T) {
	n, err := Parse(".a[0]")
	require.NoError(t, err)
	require.Equal(t, ast.IdChain, n.Kind)
	require.Len(t, n.Items, 2)
	assert.Equal(t, ast.ArrayLit, n.Items[1].Kind)
}

func TestParseSlice(t *testing.T) {
	n, err := Parse(".[1:3]")
	require.NoError(t, err)
	require.Equal(t, ast.Slice, n.Kind)
	require.NotNil(t, n.Lo)
	require.NotNil(t, n.Hi)
	assert.Equal(t, 1, *n.Lo)
	assert.Equal(t, 3, *n.Hi)
}

func TestParseOpenSliceBounds(t *testing.T) {
	n, err := Parse(".[:3]")
	require.NoError(t, err)
	require.Equal(t, ast.Slice, n.Kind)
	assert.Nil(t, n.Lo)
	require.NotNil(t, n.Hi)
	assert.Equal(t, 3, *n.Hi)
}

func TestParsePipeAndComma(t *testing.T) {
	n, err := Parse(".a | .b")
	require.NoError(t, err)
	assert.Equal(t, ast.Pipe, n.Kind)

	n, err = Parse(".a, .b")
	require.NoError(t, err)
	assert.Equal(t, ast.Comma, n.Kind)
}

func TestParseArithmeticAndPrecedenceOverPipe(t *testing.T) {
	n, err := Parse(".a + 1 | .b")
	require.NoError(t, err)
	require.Equal(t, ast.Pipe, n.Kind, "pipe is lower precedence than arithmetic")
	assert.Equal(t, ast.Add, n.A.Kind)
}

func TestParseComparisonAndLogic(t *testing.T) {
	n, err := Parse(".a > 1 and .b < 2")
	require.NoError(t, err)
	assert.Equal(t, ast.And, n.Kind)
	assert.Equal(t, ast.Gt, n.A.Kind)
	assert.Equal(t, ast.Lt, n.B.Kind)
}

func TestParseNot(t *testing.T) {
	n, err := Parse("not .a")
	require.NoError(t, err)
	assert.Equal(t, ast.Not, n.Kind)
}

func TestParseIfThenElse(t *testing.T) {
	n, err := Parse("if .x then 1 else 2 end")
	require.NoError(t, err)
	require.Equal(t, ast.IfStatement, n.Kind)
	require.NotNil(t, n.Else)
}

func TestParseIfThenNoElse(t *testing.T) {
	n, err := Parse("if .x then 1 end")
	require.NoError(t, err)
	require.Equal(t, ast.IfStatement, n.Kind)
	assert.Nil(t, n.Else)
}

func TestParseNestedIf(t *testing.T) {
	n, err := Parse("if .a then if .b then 1 end else 2 end")
	require.NoError(t, err)
	require.Equal(t, ast.IfStatement, n.Kind)
	require.Equal(t, ast.IfStatement, n.Then.Kind)
}

func TestParseAlternative(t *testing.T) {
	n, err := Parse(". // 42")
	require.NoError(t, err)
	assert.Equal(t, ast.Alternative, n.Kind)
}

func TestParseOptional(t *testing.T) {
	n, err := Parse(".a?")
	require.NoError(t, err)
	assert.Equal(t, ast.Optional, n.Kind)
}

func TestParseRecursive(t *testing.T) {
	n, err := Parse("..")
	require.NoError(t, err)
	assert.Equal(t, ast.Recursive, n.Kind)
}

func TestParseIterator(t *testing.T) {
	n, err := Parse(".[]")
	require.NoError(t, err)
	assert.Equal(t, ast.Iterator, n.Kind)
}

func TestParseJSONLiterals(t *testing.T) {
	n, err := Parse("42")
	require.NoError(t, err)
	require.Equal(t, ast.Literal, n.Kind)
	assert.Equal(t, float64(42), n.Lit.Num)

	n, err = Parse("-3")
	require.NoError(t, err)
	require.Equal(t, ast.Literal, n.Kind)
	assert.Equal(t, float64(-3), n.Lit.Num)
}

func TestParseArrayLiteral(t *testing.T) {
	n, err := Parse("[1, 2, 3]")
	require.NoError(t, err)
	require.Equal(t, ast.ArrayLit, n.Kind)
	assert.Len(t, n.Items, 3)
}

func TestParseObjectLiteral(t *testing.T) {
	n, err := Parse(`{"a": .x, "b": 2}`)
	require.NoError(t, err)
	require.Equal(t, ast.ObjectLit, n.Kind)
	require.Len(t, n.Pairs, 2)
}

func TestParseObjectLiteralWithNestedSlice(t *testing.T) {
	n, err := Parse(`{"s": .a[1:3]}`)
	require.NoError(t, err)
	require.Equal(t, ast.ObjectLit, n.Kind)
	require.Len(t, n.Pairs, 1)
}

func TestParseBuiltinCalls(t *testing.T) {
	n, err := Parse("length")
	require.NoError(t, err)
	assert.Equal(t, ast.Length, n.Kind)
	assert.Nil(t, n.A)

	n, err = Parse("has(\"x\")")
	require.NoError(t, err)
	assert.Equal(t, ast.Has, n.Kind)
	require.NotNil(t, n.A)
}

func TestParseMapCall(t *testing.T) {
	n, err := Parse("map(.n + 10)")
	require.NoError(t, err)
	require.Equal(t, ast.Map, n.Kind)
	assert.Equal(t, ast.Add, n.A.Kind)
}
