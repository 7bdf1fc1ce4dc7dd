package lexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipSpace(t *testing.T) {
	assert.Equal(t, "abc", SkipSpace("   abc"))
	assert.Equal(t, "abc", SkipSpace("\t\n\rabc"))
	assert.Equal(t, "", SkipSpace("   "))
}

func TestChar(t *testing.T) {
	rest, ok := Char("  {abc", '{')
	require.True(t, ok)
	assert.Equal(t, "abc", rest)

	_, ok = Char("abc", '{')
	assert.False(t, ok)
}

func TestWord(t *testing.T) {
	rest, ok := Word("  null, true", "null")
	require.True(t, ok)
	assert.Equal(t, ", true", rest)

	_, ok = Word("nullable", "null")
	assert.True(t, ok, "Word does not enforce a word boundary by design")
}

func TestUnsignedInt(t *testing.T) {
	n, rest, ok := UnsignedInt("  123abc")
	require.True(t, ok)
	assert.Equal(t, 123, n)
	assert.Equal(t, "abc", rest)

	_, _, ok = UnsignedInt("abc")
	assert.False(t, ok)
}

func TestIdent(t *testing.T) {
	name, rest, ok := Ident(" foo_bar2 rest")
	require.True(t, ok)
	assert.Equal(t, "foo_bar2", name)
	assert.Equal(t, " rest", rest)

	_, _, ok = Ident("2abc")
	assert.False(t, ok)
}
