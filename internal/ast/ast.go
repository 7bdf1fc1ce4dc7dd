// Package ast defines the filter-expression abstract syntax tree (§3.2).
// Node is a single struct tagged by Kind rather than an interface
// hierarchy — the same flat-node-with-tag design gosonata's pkg/types.
// ASTNode uses for JSONata, generalized here to this language's smaller
// node set (and to the Rust original's Jq enum in
// original_source/src/json/jq_components.rs, which this mirrors case for
// case). The flat shape is what lets Node carry its own total Equal/Hash:
// every node — including ones embedding a float64 literal — compares and
// hashes without exception. ObjectLit keeps its pairs in an ordered []Pair;
// the parser does not build a map keyed by nodes.
package ast

import (
	"github.com/dataslice/jqlite/internal/jsonval"
)

// Kind tags which filter-AST case a Node represents.
type Kind uint8

const (
	Identity Kind = iota
	Input
	Recursive
	Iterator
	Literal
	ArrayLit
	ObjectLit
	Id
	IdChain
	Slice
	Optional
	Parenthesis
	Pipe
	Comma
	Add
	Sub
	Mul
	Div
	Mod
	Eq
	NotEq
	Gt
	Gte
	Lt
	Lte
	And
	Or
	Not
	IfStatement
	Alternative
	Abs
	Length
	Keys
	Has
	In
	Map
)

// Pair is one key/value entry of an ObjectLit (§3.2: "list of (AST,AST)").
type Pair struct {
	Key *Node
	Val *Node
}

// Node is a filter-AST node. Only the fields relevant to Kind are
// meaningful; see the table in spec.md §3.2 for which.
type Node struct {
	Kind Kind
	Pos  int // byte offset in the filter source, for error messages

	Str  string       // Id name / Literal string payload is carried via Lit instead
	Lit  jsonval.Value // Literal payload

	Lo *int // Slice lower bound, if present
	Hi *int // Slice upper bound, if present

	A *Node // left operand of binary forms; sole operand of Not/Optional/Parenthesis/Abs/Length/Keys/Has/In/Map
	B *Node // right operand of binary forms

	Cond *Node // IfStatement condition
	Then *Node
	Else *Node // nil if no else clause

	Items []*Node // ArrayLit children, or IdChain ops
	Pairs []Pair  // ObjectLit pairs
}

func leaf(kind Kind, pos int) *Node { return &Node{Kind: kind, Pos: pos} }

// NewIdentity builds an Identity node.
func NewIdentity(pos int) *Node { return leaf(Identity, pos) }

// NewInput builds an Input node (the sentinel produced by pipe with an
// empty left-hand side, §3.2).
func NewInput(pos int) *Node { return leaf(Input, pos) }

// NewRecursive builds a Recursive (`..`) node.
func NewRecursive(pos int) *Node { return leaf(Recursive, pos) }

// NewIterator builds an Iterator (`.[]`) node.
func NewIterator(pos int) *Node { return leaf(Iterator, pos) }

// NewLiteral builds a Literal node wrapping a JSON value.
func NewLiteral(pos int, v jsonval.Value) *Node {
	return &Node{Kind: Literal, Pos: pos, Lit: v}
}

// NewArrayLit builds an ArrayLit node.
func NewArrayLit(pos int, items []*Node) *Node {
	return &Node{Kind: ArrayLit, Pos: pos, Items: items}
}

// NewObjectLit builds an ObjectLit node.
func NewObjectLit(pos int, pairs []Pair) *Node {
	return &Node{Kind: ObjectLit, Pos: pos, Pairs: pairs}
}

// NewId builds an Id(name) node.
func NewId(pos int, name string) *Node {
	return &Node{Kind: Id, Pos: pos, Str: name}
}

// NewIdChain builds an IdChain(ops) node.
func NewIdChain(pos int, ops []*Node) *Node {
	return &Node{Kind: IdChain, Pos: pos, Items: ops}
}

// NewSlice builds a Slice(lo?,hi?) node.
func NewSlice(pos int, lo, hi *int) *Node {
	return &Node{Kind: Slice, Pos: pos, Lo: lo, Hi: hi}
}

func unary(kind Kind, pos int, arg *Node) *Node {
	return &Node{Kind: kind, Pos: pos, A: arg}
}

// NewOptional builds an Optional(e) node.
func NewOptional(pos int, e *Node) *Node { return unary(Optional, pos, e) }

// NewParenthesis builds a Parenthesis(e) node.
func NewParenthesis(pos int, e *Node) *Node { return unary(Parenthesis, pos, e) }

// NewNot builds a Not(e) node.
func NewNot(pos int, e *Node) *Node { return unary(Not, pos, e) }

func binary(kind Kind, pos int, a, b *Node) *Node {
	return &Node{Kind: kind, Pos: pos, A: a, B: b}
}

// NewPipe builds a Pipe(a,b) node.
func NewPipe(pos int, a, b *Node) *Node { return binary(Pipe, pos, a, b) }

// NewComma builds a Comma(a,b) node.
func NewComma(pos int, a, b *Node) *Node { return binary(Comma, pos, a, b) }

// NewArith builds an arithmetic binary node (Add/Sub/Mul/Div/Mod).
func NewArith(kind Kind, pos int, a, b *Node) *Node { return binary(kind, pos, a, b) }

// NewCompare builds a comparison binary node (Eq/NotEq/Gt/Gte/Lt/Lte).
func NewCompare(kind Kind, pos int, a, b *Node) *Node { return binary(kind, pos, a, b) }

// NewAnd builds an And(a,b) node.
func NewAnd(pos int, a, b *Node) *Node { return binary(And, pos, a, b) }

// NewOr builds an Or(a,b) node.
func NewOr(pos int, a, b *Node) *Node { return binary(Or, pos, a, b) }

// NewAlternative builds an Alternative(a,b) node (`a // b`).
func NewAlternative(pos int, a, b *Node) *Node { return binary(Alternative, pos, a, b) }

// NewIf builds an IfStatement(cond,then,else?) node. els may be nil.
func NewIf(pos int, cond, then, els *Node) *Node {
	return &Node{Kind: IfStatement, Pos: pos, Cond: cond, Then: then, Else: els}
}

// NewOptionalArgBuiltin builds Abs/Length/Keys, whose argument may be nil
// (operate on current input, §3.2).
func NewOptionalArgBuiltin(kind Kind, pos int, arg *Node) *Node {
	return &Node{Kind: kind, Pos: pos, A: arg}
}

// NewRequiredArgBuiltin builds Has/In/Map, whose argument is mandatory.
func NewRequiredArgBuiltin(kind Kind, pos int, arg *Node) *Node {
	return &Node{Kind: kind, Pos: pos, A: arg}
}

// Equal reports whether n and o are structurally identical filter-AST
// nodes, including bit-pattern equality for embedded number literals, so
// that equality is total (NaN literals compare equal to themselves).
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case Identity, Input, Recursive, Iterator:
		return true
	case Literal:
		return n.Lit.Equal(o.Lit)
	case ArrayLit:
		return equalNodeSlices(n.Items, o.Items)
	case ObjectLit:
		if len(n.Pairs) != len(o.Pairs) {
			return false
		}
		for i := range n.Pairs {
			if !n.Pairs[i].Key.Equal(o.Pairs[i].Key) || !n.Pairs[i].Val.Equal(o.Pairs[i].Val) {
				return false
			}
		}
		return true
	case Id:
		return n.Str == o.Str
	case IdChain:
		return equalNodeSlices(n.Items, o.Items)
	case Slice:
		return equalIntPtr(n.Lo, o.Lo) && equalIntPtr(n.Hi, o.Hi)
	case Optional, Parenthesis, Not, Abs, Length, Keys, Has, In, Map:
		return n.A.Equal(o.A)
	case Pipe, Comma, Add, Sub, Mul, Div, Mod, Eq, NotEq, Gt, Gte, Lt, Lte, And, Or, Alternative:
		return n.A.Equal(o.A) && n.B.Equal(o.B)
	case IfStatement:
		return n.Cond.Equal(o.Cond) && n.Then.Equal(o.Then) && n.Else.Equal(o.Else)
	default:
		return false
	}
}

func equalNodeSlices(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// Hash returns a hash consistent with Equal: a == b implies a.Hash() ==
// b.Hash() (spec.md §8's testable property), using FNV-1a mixing of each
// case's fields, with numbers hashed by IEEE-754 bit pattern via
// jsonval.Value.Hash so it stays total even for NaN (§9: "Floats are
// compared and hashed by bit representation to guarantee totality").
func (n *Node) Hash() uint64 {
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
	mixNode := func(m *Node) {
		if m == nil {
			mix(0)
			return
		}
		mix(m.Hash())
	}
	mixIntPtr := func(p *int) {
		if p == nil {
			mix(0)
			return
		}
		mix(1)
		mix(uint64(int64(*p)))
	}

	if n == nil {
		return 0
	}
	mix(uint64(n.Kind))
	switch n.Kind {
	case Identity, Input, Recursive, Iterator:
	case Literal:
		mix(n.Lit.Hash())
	case ArrayLit:
		for _, it := range n.Items {
			mixNode(it)
		}
	case ObjectLit:
		for _, p := range n.Pairs {
			mixNode(p.Key)
			mixNode(p.Val)
		}
	case Id:
		mixStr(n.Str)
	case IdChain:
		for _, it := range n.Items {
			mixNode(it)
		}
	case Slice:
		mixIntPtr(n.Lo)
		mixIntPtr(n.Hi)
	case Optional, Parenthesis, Not, Abs, Length, Keys, Has, In, Map:
		mixNode(n.A)
	case Pipe, Comma, Add, Sub, Mul, Div, Mod, Eq, NotEq, Gt, Gte, Lt, Lte, And, Or, Alternative:
		mixNode(n.A)
		mixNode(n.B)
	case IfStatement:
		mixNode(n.Cond)
		mixNode(n.Then)
		mixNode(n.Else)
	}
	return h
}
