package interp

import (
	"math"

	"github.com/dataslice/jqlite/internal/ast"
	"github.com/dataslice/jqlite/internal/jqerr"
	"github.com/dataslice/jqlite/internal/jsonval"
)

// evalOptionalArgBuiltin implements abs/length/keys (§4.6): when an
// argument expression is present it is evaluated against the current
// input first, and the builtin applies to each of its emitted values in
// turn (fanning out); with no argument the builtin applies directly to the
// current input.
func evalOptionalArgBuiltin(x jsonval.Value, node *ast.Node) ([]jsonval.Value, error) {
	subjects, err := argSubjects(x, node.A)
	if err != nil {
		return nil, err
	}
	out := make([]jsonval.Value, 0, len(subjects))
	for _, s := range subjects {
		v, err := applyOptionalArgBuiltin(node.Kind, s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func argSubjects(x jsonval.Value, arg *ast.Node) ([]jsonval.Value, error) {
	if arg == nil {
		return []jsonval.Value{x}, nil
	}
	return evalOne(x, arg)
}

func applyOptionalArgBuiltin(kind ast.Kind, v jsonval.Value) (jsonval.Value, error) {
	switch kind {
	case ast.Abs:
		if v.Kind != jsonval.Number {
			return jsonval.Value{}, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "abs: operand is %s, not a number", v.TypeName())
		}
		return jsonval.NewNumber(math.Abs(v.Num)), nil

	case ast.Length:
		switch v.Kind {
		case jsonval.Null:
			return jsonval.NewNumber(0), nil
		case jsonval.Number:
			return jsonval.NewNumber(math.Abs(v.Num)), nil
		case jsonval.String:
			return jsonval.NewNumber(float64(len(v.Str))), nil
		case jsonval.Array:
			return jsonval.NewNumber(float64(len(v.Arr))), nil
		case jsonval.Object:
			return jsonval.NewNumber(float64(len(v.Keys))), nil
		default:
			return jsonval.Value{}, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "length: unsupported operand %s", v.TypeName())
		}

	case ast.Keys:
		if v.Kind != jsonval.Object {
			return jsonval.Value{}, jqerr.New(jqerr.CodeRuntimeNotObject, 0, "keys: operand is %s, not an object", v.TypeName())
		}
		sorted := v.SortedKeys()
		elems := make([]jsonval.Value, len(sorted))
		for i, k := range sorted {
			elems[i] = jsonval.NewString(k)
		}
		return jsonval.NewArray(elems), nil

	default:
		return jsonval.Value{}, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "unhandled builtin")
	}
}

// evalRequiredArgBuiltin implements has/in/map (§4.6), each of which takes
// its mandatory argument expression evaluated against the current input.
func evalRequiredArgBuiltin(x jsonval.Value, node *ast.Node) ([]jsonval.Value, error) {
	switch node.Kind {
	case ast.Has:
		return evalHas(x, node.A)
	case ast.In:
		return evalIn(x, node.A)
	case ast.Map:
		return evalMap(x, node.A)
	default:
		return nil, jqerr.New(jqerr.CodeRuntimeTypeMismatch, node.Pos, "unhandled builtin")
	}
}

// evalHas implements has(k): x is the container, and k is evaluated
// against x to produce a sequence of keys/indices, fanning out a boolean
// per key (§4.6: "object/string ⇒ contains key; array/number ⇒ index in
// bounds").
func evalHas(x jsonval.Value, keyExpr *ast.Node) ([]jsonval.Value, error) {
	keys, err := evalOne(x, keyExpr)
	if err != nil {
		return nil, err
	}
	out := make([]jsonval.Value, 0, len(keys))
	for _, k := range keys {
		b, err := containerHas(x, k)
		if err != nil {
			return nil, err
		}
		out = append(out, jsonval.NewBool(b))
	}
	return out, nil
}

func containerHas(container, key jsonval.Value) (bool, error) {
	switch container.Kind {
	case jsonval.Object:
		if key.Kind != jsonval.String {
			return false, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "has: key must be a string for object input")
		}
		_, ok := container.Obj[key.Str]
		return ok, nil
	case jsonval.String:
		if key.Kind != jsonval.String {
			return false, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "has: key must be a string for string input")
		}
		return stringsContains(container.Str, key.Str), nil
	case jsonval.Array:
		if key.Kind != jsonval.Number {
			return false, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "has: index must be a number for array input")
		}
		i := int(key.Num)
		return i >= 0 && i < len(container.Arr), nil
	default:
		return false, jqerr.New(jqerr.CodeRuntimeNotContainer, 0, "has: %s is not a container", container.TypeName())
	}
}

func stringsContains(s, sub string) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

// evalIn implements in(c): the reverse of has — x is the key/index, and c
// is evaluated against x to produce a sequence of candidate containers
// (§4.6: "tests whether current input is a key/index of argument").
func evalIn(x jsonval.Value, containerExpr *ast.Node) ([]jsonval.Value, error) {
	containers, err := evalOne(x, containerExpr)
	if err != nil {
		return nil, err
	}
	out := make([]jsonval.Value, 0, len(containers))
	for _, c := range containers {
		b, err := containerHas(c, x)
		if err != nil {
			return nil, err
		}
		out = append(out, jsonval.NewBool(b))
	}
	return out, nil
}

// evalMap implements map(f) (§4.6): f is applied to each element of an
// array, or each value of an object in sorted key order, and all of its
// outputs are concatenated in order into one array, which is the single
// value map emits (`map(.n + 10)` over `[{"n":1},{"n":2}]` emits `[11,12]`;
// per-element outputs are not nested in arrays of their own).
func evalMap(x jsonval.Value, f *ast.Node) ([]jsonval.Value, error) {
	var elems []jsonval.Value
	switch x.Kind {
	case jsonval.Array:
		elems = x.Arr
	case jsonval.Object:
		for _, k := range x.SortedKeys() {
			elems = append(elems, x.Obj[k])
		}
	default:
		return nil, jqerr.New(jqerr.CodeRuntimeNotContainer, 0, "map: %s is not an array or object", x.TypeName())
	}
	var out []jsonval.Value
	for _, e := range elems {
		vs, err := evalOne(e, f)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	return []jsonval.Value{jsonval.NewArray(out)}, nil
}
