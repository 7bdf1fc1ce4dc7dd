package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataslice/jqlite/internal/ast"
	"github.com/dataslice/jqlite/internal/filterparser"
	"github.com/dataslice/jqlite/internal/jsonparser"
	"github.com/dataslice/jqlite/internal/jsonval"
	"github.com/dataslice/jqlite/internal/printer"
)

// run parses jsonIn as a single JSON value and filterExpr as a filter,
// evaluates the filter against that one value, and returns the resulting
// value stream rendered compactly for easy comparison against the worked
// scenarios in spec.md §8.
func run(t *testing.T, jsonIn, filterExpr string) []string {
	t.Helper()
	doc, err := jsonparser.Parse(jsonIn)
	require.NoError(t, err)
	node, err := filterparser.Parse(filterExpr)
	require.NoError(t, err)
	out, err := Eval([]jsonval.Value{doc}, node)
	require.NoError(t, err)
	got := make([]string, len(out))
	for i, v := range out {
		got[i] = printer.Compact(v)
	}
	return got
}

func TestScenario1_NestedIndex(t *testing.T) {
	assert.Equal(t, []string{"2"}, run(t, `{"a":{"b":[1,2,3]}}`, ".a.b[1]"))
}

func TestScenario2_CommaFieldAccess(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, run(t, `{"a":1,"b":2}`, ".a, .b"))
}

func TestScenario3_Slice(t *testing.T) {
	assert.Equal(t, []string{"[2,3]"}, run(t, `[1,2,3,4]`, ".[1:3]"))
}

func TestScenario4_IteratorPipeArithmetic(t *testing.T) {
	assert.Equal(t, []string{"2", "4", "6"}, run(t, `[1,2,3]`, ".[] | . * 2"))
}

func TestScenario5_IfThenElse(t *testing.T) {
	assert.Equal(t, []string{`"big"`}, run(t, `{"x":10}`, `if .x > 5 then "big" else "small" end`))
}

func TestScenario6_Alternative(t *testing.T) {
	assert.Equal(t, []string{"42"}, run(t, `null`, `. // 42`))
}

func TestScenario7_Length(t *testing.T) {
	assert.Equal(t, []string{"3"}, run(t, `{"a":[1,2,3]}`, ".a | length"))
}

func TestScenario8_OptionalMissingKey(t *testing.T) {
	assert.Equal(t, []string{"null"}, run(t, `{"a":1}`, ".b?"))
}

func TestScenario9_MapFlattensIntoOneArray(t *testing.T) {
	assert.Equal(t, []string{"[11,12]"}, run(t, `[{"n":1},{"n":2}]`, "map(.n + 10)"))
}

func TestInvariantIdentity(t *testing.T) {
	for _, in := range []string{"1", `"s"`, "null", "[1,2]", `{"a":1}`} {
		assert.Equal(t, []string{in}, run(t, in, "."))
	}
}

func TestInvariantPipeWithIdentity(t *testing.T) {
	assert.Equal(t, run(t, `{"a":1}`, ".a"), run(t, `{"a":1}`, ". | .a"))
	assert.Equal(t, run(t, `{"a":1}`, ".a"), run(t, `{"a":1}`, ".a | ."))
}

func TestInvariantCommaConcatenatesInOrder(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, run(t, `[1,2,3]`, ".[0], .[1], .[2]"))
}

func TestInvariantASTHashConsistentWithEquality(t *testing.T) {
	a, err := filterparser.Parse(".a.b[0] | . * 2")
	require.NoError(t, err)
	b, err := filterparser.Parse(".a.b[0] | . * 2")
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestInvariantJSONRoundTrip(t *testing.T) {
	in := `{"a":1,"b":[1,2,"x",true,null]}`
	doc, err := jsonparser.Parse(in)
	require.NoError(t, err)
	reparsed, err := jsonparser.Parse(printer.Compact(doc))
	require.NoError(t, err)
	assert.True(t, doc.Equal(reparsed))
}

func TestArithmeticAcrossTypes(t *testing.T) {
	assert.Equal(t, []string{`"ab"`}, run(t, `"a"`, `. + "b"`))
	assert.Equal(t, []string{"[1,2,3,4]"}, run(t, `[1,2]`, ". + [3,4]"))
	assert.Equal(t, []string{`{"a":1, "b":2}`}, run(t, `{"a":1}`, `. + {"b":2}`))
	assert.Equal(t, []string{"1"}, run(t, `null`, ". + 1"))
	assert.Equal(t, []string{"[1,3]"}, run(t, `[1,2,3]`, ". - [2]"))
}

func TestComparisonMixedKindIsError(t *testing.T) {
	_, err := Eval([]jsonval.Value{jsonval.NewNumber(1)}, ast.NewCompare(ast.Gt, 0, ast.NewLiteral(0, jsonval.NewNumber(1)), ast.NewLiteral(0, jsonval.NewString("a"))))
	assert.Error(t, err)
}

func TestLogicNonBooleanIsFalseNotError(t *testing.T) {
	assert.Equal(t, []string{"false"}, run(t, `1`, `. and true`))
}

func TestNotRequiresBoolean(t *testing.T) {
	_, err := Eval([]jsonval.Value{jsonval.NewNumber(1)}, ast.NewNot(0, ast.NewIdentity(0)))
	assert.Error(t, err)
}

func TestRecursivePreOrder(t *testing.T) {
	assert.Equal(t, []string{"[1,2]", "1", "2"}, run(t, `[1,2]`, ".."))
}

func TestKeysSorted(t *testing.T) {
	assert.Equal(t, []string{`["a","b","z"]`}, run(t, `{"z":1,"a":2,"b":3}`, "keys"))
}

func TestSliceLoGreaterThanHiEmitsEmptyArray(t *testing.T) {
	assert.Equal(t, []string{"[]"}, run(t, `[1,2,3]`, ".[2:1]"))
}

func TestHasAndIn(t *testing.T) {
	assert.Equal(t, []string{"true"}, run(t, `{"a":1}`, `has("a")`))
	assert.Equal(t, []string{"false"}, run(t, `{"a":1}`, `has("z")`))
	assert.Equal(t, []string{"true"}, run(t, `"a"`, `in({"a":1})`))
}

func TestObjectLiteralEmitsSeparatePairsNotMerged(t *testing.T) {
	assert.Equal(t, []string{`{"a":1}`, `{"b":2}`}, run(t, `{"a":1,"b":2}`, `{"a": .a, "b": .b}`))
}
