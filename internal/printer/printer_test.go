package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dataslice/jqlite/internal/jsonval"
)

func TestCompactCommaSpacingAsymmetry(t *testing.T) {
	arr := jsonval.NewArray([]jsonval.Value{jsonval.NewNumber(1), jsonval.NewNumber(2)})
	assert.Equal(t, "[1,2]", Compact(arr))

	obj := jsonval.NewObject([]string{"a", "b"}, map[string]jsonval.Value{
		"a": jsonval.NewNumber(1), "b": jsonval.NewNumber(2),
	})
	assert.Equal(t, `{"a":1, "b":2}`, Compact(obj))
}

func TestCompactNumberFormatting(t *testing.T) {
	assert.Equal(t, "5", Compact(jsonval.NewNumber(5)))
	assert.Equal(t, "2.5", Compact(jsonval.NewNumber(2.5)))
}

func TestPrettyEmptyContainers(t *testing.T) {
	assert.Equal(t, "[]", Pretty(jsonval.NewArray(nil)))
	assert.Equal(t, "{}", Pretty(jsonval.NewObject(nil, nil)))
}

func TestPrettyNestedIndent(t *testing.T) {
	v := jsonval.NewObject([]string{"a"}, map[string]jsonval.Value{
		"a": jsonval.NewArray([]jsonval.Value{jsonval.NewNumber(1), jsonval.NewNumber(2)}),
	})
	want := "{\n  \"a\": [\n    1,\n    2\n  ]\n}"
	assert.Equal(t, want, Pretty(v))
}

func TestWriteQuotedEscaping(t *testing.T) {
	assert.Equal(t, `"a\"b\\c"`, Compact(jsonval.NewString(`a"b\c`)))
}
