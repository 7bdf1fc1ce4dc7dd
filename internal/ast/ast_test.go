package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dataslice/jqlite/internal/jsonval"
)

func TestEqualIgnoresPosition(t *testing.T) {
	a := NewIdentity(0)
	b := NewIdentity(42)
	assert.True(t, a.Equal(b), "Equal must not depend on source position")
}

func TestEqualStructural(t *testing.T) {
	a := NewPipe(0, NewIdentity(0), NewId(1, "foo"))
	b := NewPipe(0, NewIdentity(5), NewId(2, "foo"))
	c := NewPipe(0, NewIdentity(0), NewId(1, "bar"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := NewArith(Add, 0, NewLiteral(0, jsonval.NewNumber(1)), NewLiteral(0, jsonval.NewNumber(2)))
	b := NewArith(Add, 9, NewLiteral(1, jsonval.NewNumber(1)), NewLiteral(2, jsonval.NewNumber(2)))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestNilNodeEqualAndHash(t *testing.T) {
	var n *Node
	assert.True(t, n.Equal(nil))
	assert.Equal(t, uint64(0), n.Hash())
}

func TestNodeAsMapKeyUsesPointerIdentity(t *testing.T) {
	a := NewId(0, "k")
	b := NewId(0, "k")
	m := map[*Node]bool{}
	assert.False(t, a == b, "distinct allocations")
	assert.True(t, a.Equal(b))
	m[a] = true
	// Equal *Node values are still distinct map keys by pointer identity;
	// the guarantee this package provides is that Equal/Hash let callers
	// who want value-based deduplication build their own keying on top.
	assert.Len(t, m, 1)
}
