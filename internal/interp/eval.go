// Package interp implements the filter-expression interpreter (spec.md
// §4.4–§4.6): the value-stream semantics where every evaluation produces a
// sequence of JSON outputs rather than a single value. Eval has no
// context.Context parameter — spec.md §5 states plainly "There is no
// cancellation mechanism," which is a deliberate divergence from the
// teacher's evaluator (sandrolain/gosonata's pkg/evaluator.Evaluator
// threads context.Context throughout for timeout/cancellation); here the
// interpreter is a pure function of (inputs, AST).
//
// Split by concern the way the teacher splits its evaluator package
// (eval_path.go, eval_operators.go, eval_functions.go, ...), scaled to this
// language's much smaller node set: this file holds core dispatch
// (Identity/Pipe/Comma/Id/IdChain/Slice/Iterator/Recursive/Optional/
// ArrayLit/ObjectLit); arith.go holds binary arithmetic; compare.go holds
// comparison/logic/conditional/alternative; builtins.go holds
// abs/length/keys/has/in/map.
package interp

import (
	"math"

	"github.com/dataslice/jqlite/internal/ast"
	"github.com/dataslice/jqlite/internal/jqerr"
	"github.com/dataslice/jqlite/internal/jsonval"
)

// Eval evaluates node against each of inputs in turn (§4.4), concatenating
// the per-input sequences in input order.
func Eval(inputs []jsonval.Value, node *ast.Node) ([]jsonval.Value, error) {
	var out []jsonval.Value
	for _, x := range inputs {
		vs, err := evalOne(x, node)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	return out, nil
}

// evalOne evaluates node against a single input value, returning its value
// stream.
func evalOne(x jsonval.Value, node *ast.Node) ([]jsonval.Value, error) {
	switch node.Kind {
	case ast.Identity, ast.Input:
		return []jsonval.Value{x}, nil

	case ast.Literal:
		return []jsonval.Value{node.Lit}, nil

	case ast.Pipe:
		left, err := evalOne(x, node.A)
		if err != nil {
			return nil, err
		}
		var out []jsonval.Value
		for _, v := range left {
			right, err := evalOne(v, node.B)
			if err != nil {
				return nil, err
			}
			out = append(out, right...)
		}
		return out, nil

	case ast.Comma:
		left, err := evalOne(x, node.A)
		if err != nil {
			return nil, err
		}
		right, err := evalOne(x, node.B)
		if err != nil {
			return nil, err
		}
		return append(append([]jsonval.Value{}, left...), right...), nil

	case ast.Id:
		return evalStandaloneId(x, node.Str)

	case ast.IdChain:
		return evalIdChain(x, node.Items)

	case ast.Slice:
		return evalSlice(x, node.Lo, node.Hi)

	case ast.Iterator:
		return evalIterator(x)

	case ast.Recursive:
		return recursiveEmit(x), nil

	case ast.Optional:
		vs, err := evalOne(x, node.A)
		if err != nil {
			return []jsonval.Value{jsonval.NewNull()}, nil
		}
		return vs, nil

	case ast.Parenthesis:
		return evalOne(x, node.A)

	case ast.ArrayLit:
		var elems []jsonval.Value
		for _, child := range node.Items {
			vs, err := evalOne(x, child)
			if err != nil {
				return nil, err
			}
			elems = append(elems, vs...)
		}
		return []jsonval.Value{jsonval.NewArray(elems)}, nil

	case ast.ObjectLit:
		return evalObjectLit(x, node.Pairs)

	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Mod:
		return evalArith(x, node)

	case ast.Eq, ast.NotEq, ast.Gt, ast.Gte, ast.Lt, ast.Lte:
		return evalCompare(x, node)

	case ast.And, ast.Or:
		return evalLogic(x, node)

	case ast.Not:
		return evalNot(x, node)

	case ast.IfStatement:
		return evalIf(x, node)

	case ast.Alternative:
		return evalAlternative(x, node)

	case ast.Abs, ast.Length, ast.Keys:
		return evalOptionalArgBuiltin(x, node)

	case ast.Has, ast.In, ast.Map:
		return evalRequiredArgBuiltin(x, node)

	default:
		return nil, jqerr.New(jqerr.CodeRuntimeTypeMismatch, node.Pos, "unhandled AST node kind %d", node.Kind)
	}
}

// evalStandaloneId implements §4.4's Id(k) case exactly: error on a
// missing key. In practice the parser never emits a bare Id outside an
// IdChain (see internal/filterparser), where a missing key instead emits
// null (evalIdChainOp below) — spec.md §4.4 draws that distinction
// explicitly ("Id appears standalone only rarely; usually consumed by
// IdChain").
func evalStandaloneId(x jsonval.Value, key string) ([]jsonval.Value, error) {
	if x.Kind != jsonval.Object {
		return nil, jqerr.New(jqerr.CodeRuntimeNotObject, 0, "cannot index %s with %q", x.TypeName(), key)
	}
	v, ok := x.Obj[key]
	if !ok {
		return nil, jqerr.New(jqerr.CodeRuntimeMissingKey, 0, "object has no key %q", key)
	}
	return []jsonval.Value{v}, nil
}

// evalIdChain interprets ops left-to-right against x, per §4.4: each op may
// fan out (array index set, iterator, slice) or narrow (field, single
// index); the per-op output sequence becomes the next op's set of inputs.
func evalIdChain(x jsonval.Value, ops []*ast.Node) ([]jsonval.Value, error) {
	cur := []jsonval.Value{x}
	for _, op := range ops {
		var next []jsonval.Value
		for _, v := range cur {
			vs, err := evalIdChainOp(v, op)
			if err != nil {
				return nil, err
			}
			next = append(next, vs...)
		}
		cur = next
	}
	return cur, nil
}

func evalIdChainOp(v jsonval.Value, op *ast.Node) ([]jsonval.Value, error) {
	switch op.Kind {
	case ast.Id:
		return evalIdOp(v, op.Str)
	case ast.ArrayLit:
		return evalIndexSetOp(v, op.Items)
	case ast.Slice:
		return evalSlice(v, op.Lo, op.Hi)
	case ast.Iterator:
		return evalIterator(v)
	default:
		return nil, jqerr.New(jqerr.CodeRuntimeTypeMismatch, op.Pos, "invalid id-chain operation")
	}
}

// evalIdOp implements the IdChain field-access rule: missing key emits
// null rather than erroring, and applying an Id op to an array maps it
// over the array's elements (§4.4).
func evalIdOp(v jsonval.Value, key string) ([]jsonval.Value, error) {
	switch v.Kind {
	case jsonval.Object:
		if val, ok := v.Obj[key]; ok {
			return []jsonval.Value{val}, nil
		}
		return []jsonval.Value{jsonval.NewNull()}, nil
	case jsonval.Array:
		var out []jsonval.Value
		for _, elem := range v.Arr {
			vs, err := evalIdOp(elem, key)
			if err != nil {
				return nil, err
			}
			out = append(out, vs...)
		}
		return out, nil
	default:
		return nil, jqerr.New(jqerr.CodeRuntimeNotObject, 0, "cannot index %s with %q", v.TypeName(), key)
	}
}

// evalIndexSetOp evaluates each index expression in items against v,
// fanning out over every index emitted by every expression (§4.4: "Index
// operations on arrays take the floor of the numeric key"). Out-of-range
// single-index access yields null, matching the IdChain convention that a
// missing element is null rather than an error (spec.md §9's error-vs-null
// question is explicit only for Slice; this follows the same convention
// for consistency).
func evalIndexSetOp(v jsonval.Value, items []*ast.Node) ([]jsonval.Value, error) {
	var out []jsonval.Value
	for _, item := range items {
		idxVals, err := evalOne(v, item)
		if err != nil {
			return nil, err
		}
		for _, idx := range idxVals {
			val, err := indexOne(v, idx)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
	}
	return out, nil
}

func indexOne(v, idx jsonval.Value) (jsonval.Value, error) {
	switch v.Kind {
	case jsonval.Array:
		if idx.Kind != jsonval.Number {
			return jsonval.Value{}, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "array index must be a number, got %s", idx.TypeName())
		}
		i := int(math.Floor(idx.Num))
		if i < 0 || i >= len(v.Arr) {
			return jsonval.NewNull(), nil
		}
		return v.Arr[i], nil
	case jsonval.Object:
		if idx.Kind != jsonval.String {
			return jsonval.Value{}, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "object key must be a string, got %s", idx.TypeName())
		}
		if val, ok := v.Obj[idx.Str]; ok {
			return val, nil
		}
		return jsonval.NewNull(), nil
	default:
		return jsonval.Value{}, jqerr.New(jqerr.CodeRuntimeNotContainer, 0, "cannot index %s", v.TypeName())
	}
}

// evalSlice implements §4.4's Slice rule: array input required, absent
// bounds default to the array's extremes, out-of-range explicit bounds are
// an error, and lo > hi emits an empty array (§9's open-question
// resolution).
func evalSlice(v jsonval.Value, lo, hi *int) ([]jsonval.Value, error) {
	if v.Kind != jsonval.Array {
		return nil, jqerr.New(jqerr.CodeRuntimeNotContainer, 0, "cannot slice %s", v.TypeName())
	}
	n := len(v.Arr)
	loVal, hiVal := 0, n
	if lo != nil {
		if *lo < 0 || *lo > n {
			return nil, jqerr.New(jqerr.CodeRuntimeOutOfRange, 0, "slice lower bound %d out of range for length %d", *lo, n)
		}
		loVal = *lo
	}
	if hi != nil {
		if *hi < 0 || *hi > n {
			return nil, jqerr.New(jqerr.CodeRuntimeOutOfRange, 0, "slice upper bound %d out of range for length %d", *hi, n)
		}
		hiVal = *hi
	}
	if loVal > hiVal {
		return []jsonval.Value{jsonval.NewArray(nil)}, nil
	}
	elems := append([]jsonval.Value{}, v.Arr[loVal:hiVal]...)
	return []jsonval.Value{jsonval.NewArray(elems)}, nil
}

// evalIterator implements §4.4's Iterator rule: array elements in order,
// or object values in (sorted, for determinism) key order; any other kind
// is an error.
func evalIterator(v jsonval.Value) ([]jsonval.Value, error) {
	switch v.Kind {
	case jsonval.Array:
		return append([]jsonval.Value{}, v.Arr...), nil
	case jsonval.Object:
		keys := v.SortedKeys()
		out := make([]jsonval.Value, 0, len(keys))
		for _, k := range keys {
			out = append(out, v.Obj[k])
		}
		return out, nil
	default:
		return nil, jqerr.New(jqerr.CodeRuntimeNotContainer, 0, "cannot iterate over %s", v.TypeName())
	}
}

// recursiveEmit implements §4.4's Recursive rule: emit v, then every
// descendant, pre-order.
func recursiveEmit(v jsonval.Value) []jsonval.Value {
	out := []jsonval.Value{v}
	switch v.Kind {
	case jsonval.Array:
		for _, e := range v.Arr {
			out = append(out, recursiveEmit(e)...)
		}
	case jsonval.Object:
		for _, k := range v.SortedKeys() {
			out = append(out, recursiveEmit(v.Obj[k])...)
		}
	}
	return out
}

// evalObjectLit implements §4.4's ObjectLit rule: for each pair
// independently, cross-product its key sequence (which must evaluate to
// strings) against its value sequence, emitting one singleton object per
// combination; results across distinct pairs are concatenated rather than
// merged into one object (the "current semantics" §4.4/§9 flag as the
// simpler, adopted behavior).
func evalObjectLit(x jsonval.Value, pairs []ast.Pair) ([]jsonval.Value, error) {
	var out []jsonval.Value
	for _, p := range pairs {
		ks, err := evalOne(x, p.Key)
		if err != nil {
			return nil, err
		}
		vs, err := evalOne(x, p.Val)
		if err != nil {
			return nil, err
		}
		for _, k := range ks {
			if k.Kind != jsonval.String {
				return nil, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "object literal key must be a string, got %s", k.TypeName())
			}
			for _, v := range vs {
				out = append(out, jsonval.NewObject([]string{k.Str}, map[string]jsonval.Value{k.Str: v}))
			}
		}
	}
	return out, nil
}
