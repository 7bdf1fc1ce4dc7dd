package interp

import (
	"github.com/dataslice/jqlite/internal/ast"
	"github.com/dataslice/jqlite/internal/jqerr"
	"github.com/dataslice/jqlite/internal/jsonval"
)

// evalArith implements §4.5's binary arithmetic table: both operands are
// evaluated against the current input independently, then every (l, r)
// pair from the cross product of their value streams is combined.
func evalArith(x jsonval.Value, node *ast.Node) ([]jsonval.Value, error) {
	lefts, err := evalOne(x, node.A)
	if err != nil {
		return nil, err
	}
	rights, err := evalOne(x, node.B)
	if err != nil {
		return nil, err
	}
	var out []jsonval.Value
	for _, l := range lefts {
		for _, r := range rights {
			v, err := arithOp(node.Kind, l, r)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func arithOp(kind ast.Kind, l, r jsonval.Value) (jsonval.Value, error) {
	switch kind {
	case ast.Add:
		return arithAdd(l, r)
	case ast.Sub:
		return arithSub(l, r)
	case ast.Mul:
		return arithMul(l, r)
	case ast.Div:
		return arithDiv(l, r)
	case ast.Mod:
		return arithMod(l, r)
	default:
		return jsonval.Value{}, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "not an arithmetic operator")
	}
}

// arithAdd: number+number, string+string concat, array+array concat,
// object+object right-wins-on-collision merge, and x+null/null+x ⇒ x
// (§4.5).
func arithAdd(l, r jsonval.Value) (jsonval.Value, error) {
	if l.Kind == jsonval.Null {
		return r, nil
	}
	if r.Kind == jsonval.Null {
		return l, nil
	}
	switch {
	case l.Kind == jsonval.Number && r.Kind == jsonval.Number:
		return jsonval.NewNumber(l.Num + r.Num), nil
	case l.Kind == jsonval.String && r.Kind == jsonval.String:
		return jsonval.NewString(l.Str + r.Str), nil
	case l.Kind == jsonval.Array && r.Kind == jsonval.Array:
		elems := append(append([]jsonval.Value{}, l.Arr...), r.Arr...)
		return jsonval.NewArray(elems), nil
	case l.Kind == jsonval.Object && r.Kind == jsonval.Object:
		return mergeObjects(l, r), nil
	default:
		return jsonval.Value{}, typeMismatch("+", l, r)
	}
}

func mergeObjects(l, r jsonval.Value) jsonval.Value {
	obj := make(map[string]jsonval.Value, len(l.Obj)+len(r.Obj))
	keys := append([]string{}, l.Keys...)
	for k, v := range l.Obj {
		obj[k] = v
	}
	for _, k := range r.Keys {
		if _, exists := obj[k]; !exists {
			keys = append(keys, k)
		}
		obj[k] = r.Obj[k]
	}
	return jsonval.NewObject(keys, obj)
}

// arithSub: number-number, and array-array as a set difference that
// preserves the left array's element order (§4.5).
func arithSub(l, r jsonval.Value) (jsonval.Value, error) {
	switch {
	case l.Kind == jsonval.Number && r.Kind == jsonval.Number:
		return jsonval.NewNumber(l.Num - r.Num), nil
	case l.Kind == jsonval.Array && r.Kind == jsonval.Array:
		var out []jsonval.Value
		for _, e := range l.Arr {
			found := false
			for _, rem := range r.Arr {
				if e.Equal(rem) {
					found = true
					break
				}
			}
			if !found {
				out = append(out, e)
			}
		}
		return jsonval.NewArray(out), nil
	default:
		return jsonval.Value{}, typeMismatch("-", l, r)
	}
}

// arithMul: number*number, number*string repeat, and object*object a
// recursive merge that multiplies (deep-merges) overlapping keys (§4.5).
func arithMul(l, r jsonval.Value) (jsonval.Value, error) {
	switch {
	case l.Kind == jsonval.Number && r.Kind == jsonval.Number:
		return jsonval.NewNumber(l.Num * r.Num), nil
	case l.Kind == jsonval.Number && r.Kind == jsonval.String:
		return jsonval.NewString(repeatString(r.Str, l.Num)), nil
	case l.Kind == jsonval.String && r.Kind == jsonval.Number:
		return jsonval.NewString(repeatString(l.Str, r.Num)), nil
	case l.Kind == jsonval.Object && r.Kind == jsonval.Object:
		return deepMergeObjects(l, r), nil
	default:
		return jsonval.Value{}, typeMismatch("*", l, r)
	}
}

func repeatString(s string, n float64) string {
	count := int(n)
	if count <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*count)
	for i := 0; i < count; i++ {
		out = append(out, s...)
	}
	return string(out)
}

// deepMergeObjects recursively multiplies overlapping object-valued keys
// instead of letting the right side simply overwrite them, per §4.5's
// distinction between `+` (shallow, right wins) and `*` (recursive merge).
func deepMergeObjects(l, r jsonval.Value) jsonval.Value {
	obj := make(map[string]jsonval.Value, len(l.Obj)+len(r.Obj))
	keys := append([]string{}, l.Keys...)
	for k, v := range l.Obj {
		obj[k] = v
	}
	for _, k := range r.Keys {
		rv := r.Obj[k]
		if lv, exists := obj[k]; exists && lv.Kind == jsonval.Object && rv.Kind == jsonval.Object {
			obj[k] = deepMergeObjects(lv, rv)
		} else {
			if !exists {
				keys = append(keys, k)
			}
			obj[k] = rv
		}
	}
	return jsonval.NewObject(keys, obj)
}

// arithDiv and arithMod: number/number and number%number only (§4.5).
func arithDiv(l, r jsonval.Value) (jsonval.Value, error) {
	if l.Kind != jsonval.Number || r.Kind != jsonval.Number {
		return jsonval.Value{}, typeMismatch("/", l, r)
	}
	if r.Num == 0 {
		return jsonval.Value{}, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "division by zero")
	}
	return jsonval.NewNumber(l.Num / r.Num), nil
}

func arithMod(l, r jsonval.Value) (jsonval.Value, error) {
	if l.Kind != jsonval.Number || r.Kind != jsonval.Number {
		return jsonval.Value{}, typeMismatch("%", l, r)
	}
	ri := int64(r.Num)
	if ri == 0 {
		return jsonval.Value{}, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "modulo by zero")
	}
	li := int64(l.Num)
	return jsonval.NewNumber(float64(li % ri)), nil
}

func typeMismatch(op string, l, r jsonval.Value) error {
	return jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "%s is not defined for %s and %s", op, l.TypeName(), r.TypeName())
}
