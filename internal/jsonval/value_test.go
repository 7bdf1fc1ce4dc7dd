package jsonval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualNumbersByBitPattern(t *testing.T) {
	nan := NewNumber(math.NaN())
	assert.True(t, nan.Equal(nan), "NaN must equal itself under bit-pattern comparison")

	assert.True(t, NewNumber(0).Equal(NewNumber(0)))
	assert.False(t, NewNumber(0).Equal(NewNumber(math.Copysign(0, -1))),
		"+0 and -0 have distinct bit patterns and must compare unequal")
}

func TestEqualStructural(t *testing.T) {
	a := NewArray([]Value{NewNumber(1), NewString("x")})
	b := NewArray([]Value{NewNumber(1), NewString("x")})
	assert.True(t, a.Equal(b))

	o1 := NewObject([]string{"a", "b"}, map[string]Value{"a": NewNumber(1), "b": NewNumber(2)})
	o2 := NewObject([]string{"b", "a"}, map[string]Value{"b": NewNumber(2), "a": NewNumber(1)})
	assert.True(t, o1.Equal(o2), "object equality ignores key order")
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := NewObject([]string{"a"}, map[string]Value{"a": NewNumber(math.NaN())})
	b := NewObject([]string{"a"}, map[string]Value{"a": NewNumber(math.NaN())})
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestIsTruthy(t *testing.T) {
	assert.False(t, NewNull().IsTruthy())
	assert.False(t, NewBool(false).IsTruthy())
	assert.True(t, NewBool(true).IsTruthy())
	assert.True(t, NewNumber(0).IsTruthy())
	assert.True(t, NewString("").IsTruthy())
}

func TestSortedKeys(t *testing.T) {
	o := NewObject([]string{"z", "a", "m"}, map[string]Value{"z": NewNull(), "a": NewNull(), "m": NewNull()})
	assert.Equal(t, []string{"a", "m", "z"}, o.SortedKeys())
}
