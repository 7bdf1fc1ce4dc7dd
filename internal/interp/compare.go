package interp

import (
	"github.com/dataslice/jqlite/internal/ast"
	"github.com/dataslice/jqlite/internal/jqerr"
	"github.com/dataslice/jqlite/internal/jsonval"
)

// evalCompare implements §4.5's comparison group: `==`/`!=` use structural
// equality over any pair of kinds; ordering comparisons require both
// operands to share one of the comparable kinds (boolean, number, string,
// array) and error otherwise.
func evalCompare(x jsonval.Value, node *ast.Node) ([]jsonval.Value, error) {
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
			v, err := compareOp(node.Kind, l, r)
			if err != nil {
				return nil, err
			}
			out = append(out, jsonval.NewBool(v))
		}
	}
	return out, nil
}

func compareOp(kind ast.Kind, l, r jsonval.Value) (bool, error) {
	if kind == ast.Eq {
		return l.Equal(r), nil
	}
	if kind == ast.NotEq {
		return !l.Equal(r), nil
	}
	ord, err := orderCompare(l, r)
	if err != nil {
		return false, err
	}
	switch kind {
	case ast.Gt:
		return ord > 0, nil
	case ast.Gte:
		return ord >= 0, nil
	case ast.Lt:
		return ord < 0, nil
	case ast.Lte:
		return ord <= 0, nil
	default:
		return false, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "not a comparison operator")
	}
}

// orderCompare returns -1/0/1 for l<r, l==r, l>r, requiring l and r share
// the same comparable kind (§4.5); mismatched kinds are an error.
func orderCompare(l, r jsonval.Value) (int, error) {
	if l.Kind != r.Kind {
		return 0, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0,
			"cannot order-compare %s and %s", l.TypeName(), r.TypeName())
	}
	switch l.Kind {
	case jsonval.Number:
		switch {
		case l.Num < r.Num:
			return -1, nil
		case l.Num > r.Num:
			return 1, nil
		default:
			return 0, nil
		}
	case jsonval.String:
		switch {
		case l.Str < r.Str:
			return -1, nil
		case l.Str > r.Str:
			return 1, nil
		default:
			return 0, nil
		}
	case jsonval.Bool:
		switch {
		case l.Bool == r.Bool:
			return 0, nil
		case !l.Bool && r.Bool:
			return -1, nil
		default:
			return 1, nil
		}
	case jsonval.Array:
		n := len(l.Arr)
		if len(r.Arr) < n {
			n = len(r.Arr)
		}
		for i := 0; i < n; i++ {
			c, err := orderCompare(l.Arr[i], r.Arr[i])
			if err != nil {
				return 0, err
			}
			if c != 0 {
				return c, nil
			}
		}
		switch {
		case len(l.Arr) < len(r.Arr):
			return -1, nil
		case len(l.Arr) > len(r.Arr):
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, jqerr.New(jqerr.CodeRuntimeTypeMismatch, 0, "%s is not order-comparable", l.TypeName())
	}
}

// evalLogic implements §4.5's conservative and/or: both operands must be
// boolean for a pair to combine normally; a non-boolean pair yields false
// rather than an error.
func evalLogic(x jsonval.Value, node *ast.Node) ([]jsonval.Value, error) {
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
			if l.Kind != jsonval.Bool || r.Kind != jsonval.Bool {
				out = append(out, jsonval.NewBool(false))
				continue
			}
			var result bool
			if node.Kind == ast.And {
				result = l.Bool && r.Bool
			} else {
				result = l.Bool || r.Bool
			}
			out = append(out, jsonval.NewBool(result))
		}
	}
	return out, nil
}

// evalNot implements §4.5's not(e): every emitted value must be boolean,
// negated in place; a non-boolean element is an error (stricter than
// and/or, since Not has no second operand to fall back on).
func evalNot(x jsonval.Value, node *ast.Node) ([]jsonval.Value, error) {
	vs, err := evalOne(x, node.A)
	if err != nil {
		return nil, err
	}
	out := make([]jsonval.Value, 0, len(vs))
	for _, v := range vs {
		if v.Kind != jsonval.Bool {
			return nil, jqerr.New(jqerr.CodeRuntimeNotBoolean, node.Pos, "not: operand is %s, not a boolean", v.TypeName())
		}
		out = append(out, jsonval.NewBool(!v.Bool))
	}
	return out, nil
}

// evalIf implements §4.4's if/then/else: the condition is evaluated
// against the current input, and each emitted condition value
// independently selects a branch (false or null takes else, or the input
// unchanged if there is no else clause); the branches' outputs are
// concatenated in condition-emission order.
func evalIf(x jsonval.Value, node *ast.Node) ([]jsonval.Value, error) {
	conds, err := evalOne(x, node.Cond)
	if err != nil {
		return nil, err
	}
	var out []jsonval.Value
	for _, c := range conds {
		var branch *ast.Node
		if c.IsNullOrFalse() {
			branch = node.Else
		} else {
			branch = node.Then
		}
		if branch == nil {
			out = append(out, x)
			continue
		}
		vs, err := evalOne(x, branch)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	return out, nil
}

// evalAlternative implements `a // b` (§4.4): if evaluating a fails
// outright, the whole expression falls back to eval(b); otherwise, every
// null or false value a emits is replaced by eval(b), and every other
// value passes through unchanged.
func evalAlternative(x jsonval.Value, node *ast.Node) ([]jsonval.Value, error) {
	lefts, err := evalOne(x, node.A)
	if err != nil {
		return evalOne(x, node.B)
	}
	var out []jsonval.Value
	for _, l := range lefts {
		if l.IsNullOrFalse() {
			rs, err := evalOne(x, node.B)
			if err != nil {
				return nil, err
			}
			out = append(out, rs...)
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
