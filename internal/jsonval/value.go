// Package jsonval implements the JSON value model shared by the JSON
// parser, the filter interpreter, and the printer: a tagged variant over
// Null, Boolean, Number, String, Array, and Object, rendered as a single
// Go struct tagged by Kind (the same flat-struct-with-tag shape used for
// the filter AST in internal/ast, rather than an interface hierarchy —
// it gives every consumer a single concrete type to switch on). Value holds
// slice and map fields, so it is not comparable with ==; use Equal and Hash.
package jsonval

import (
	"math"
	"sort"
)

// Kind tags which case of the JSON value variant a Value holds.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// Value is a JSON value. Only the field(s) matching Kind are meaningful.
// Numbers are always float64 (§3.1: integers are representable exactly up
// to ±2^53). Object preserves Keys as a parallel ordered slice purely for
// stable, human-friendly printing — key order is not semantically
// significant and the interpreter never relies on it.
type Value struct {
	Kind Kind
	Bool bool
	Num  float64
	Str  string
	Arr  []Value
	// Obj and Keys are parallel: Keys gives the insertion order, Obj the
	// lookup table. Both are always nil for non-Object values.
	Obj  map[string]Value
	Keys []string
}

// NewNull returns the Null value.
func NewNull() Value { return Value{Kind: Null} }

// NewBool returns a Boolean value.
func NewBool(b bool) Value { return Value{Kind: Bool, Bool: b} }

// NewNumber returns a Number value.
func NewNumber(n float64) Value { return Value{Kind: Number, Num: n} }

// NewString returns a String value.
func NewString(s string) Value { return Value{Kind: String, Str: s} }

// NewArray returns an Array value wrapping elems. elems is retained, not
// copied; callers should not mutate it afterward.
func NewArray(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{Kind: Array, Arr: elems}
}

// NewObject returns an Object value. keys gives insertion order and must
// list exactly the keys present in obj.
func NewObject(keys []string, obj map[string]Value) Value {
	if obj == nil {
		obj = map[string]Value{}
	}
	if keys == nil {
		keys = []string{}
	}
	return Value{Kind: Object, Obj: obj, Keys: keys}
}

// IsTruthy reports whether v is truthy in the jq sense: every value is
// truthy except Null and Boolean(false). The interpreter's and/or do not
// use it (they require boolean operands), and if/alternative test
// IsNullOrFalse instead.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case Null:
		return false
	case Bool:
		return v.Bool
	default:
		return true
	}
}

// IsNullOrFalse reports whether v is the Null value or Boolean(false) —
// the condition §4.5's conditional and alternative semantics test for.
func (v Value) IsNullOrFalse() bool {
	return v.Kind == Null || (v.Kind == Bool && !v.Bool)
}

// Equal reports structural equality per §3.1: numbers compare by IEEE-754
// bit pattern so that NaN equals itself, which this language's `==`
// operator requires (and which Node.Hash/Equal in internal/ast reuses for
// AST-literal totality).
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Null:
		return true
	case Bool:
		return v.Bool == o.Bool
	case Number:
		return math.Float64bits(v.Num) == math.Float64bits(o.Num)
	case String:
		return v.Str == o.Str
	case Array:
		if len(v.Arr) != len(o.Arr) {
			return false
		}
		for i := range v.Arr {
			if !v.Arr[i].Equal(o.Arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.Keys) != len(o.Keys) {
			return false
		}
		for k, vv := range v.Obj {
			ov, ok := o.Obj[k]
			if !ok || !vv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Hash returns a hash consistent with Equal: bit-pattern hashing for
// numbers gives totality (NaN hashes equal to itself), matching §3.2's
// requirement that AST literals (which embed a Value) hash totally.
func (v Value) Hash() uint64 {
	const fnvOffset = 14695981039346656037
	const fnvPrime = 1099511628211

	h := uint64(fnvOffset)
	mix := func(x uint64) {
		h ^= x
		h *= fnvPrime
	}
	mixStr := func(s string) {
		for i := 0; i < len(s); i++ {
			mix(uint64(s[i]))
		}
	}

	mix(uint64(v.Kind))
	switch v.Kind {
	case Null:
	case Bool:
		if v.Bool {
			mix(1)
		} else {
			mix(0)
		}
	case Number:
		mix(math.Float64bits(v.Num))
	case String:
		mixStr(v.Str)
	case Array:
		for _, e := range v.Arr {
			mix(e.Hash())
		}
	case Object:
		keys := append([]string(nil), v.Keys...)
		sort.Strings(keys)
		for _, k := range keys {
			mixStr(k)
			mix(v.Obj[k].Hash())
		}
	}
	return h
}

// TypeName returns the lowercase name used in runtime error messages
// ("number", "string", "array", "object", "boolean", "null").
func (v Value) TypeName() string {
	switch v.Kind {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// SortedKeys returns v's object keys in lexicographic order, used by the
// `keys` built-in (§4.6, §9: sorted for determinism rather than
// insertion-order).
func (v Value) SortedKeys() []string {
	keys := append([]string(nil), v.Keys...)
	sort.Strings(keys)
	return keys
}
