// Package filterparser implements the filter-expression parser described in
// spec.md §4.3: precedence-climbing by balanced-bracket search rather than
// a tokenizer-plus-Pratt-parser. For each AST form, the parser scans the
// remaining input for the form's operator at "depth zero" — outside any
// parenthesis, bracket or brace nesting — and, when found, splits the input there
// and recurses on both halves through the very same top-level dispatcher.
// Grounded on original_source/src/json/jq_parser.rs, whose avoid_parenthesis
// is this package's findAtDepthZero, extended (per spec.md) to the larger
// operator set this language adds beyond the original (comparisons, logic,
// arithmetic, if/then/else, alternative, and the abs/length/keys/has/in/map
// built-ins).
//
// Per spec.md §9's design note, this is deliberately the simple, quadratic
// re-scan design rather than a single-pass tokenized parser, and it shares
// the same known limitation: operator characters inside string literals are
// not specially protected against, since the scanner works directly over
// the raw filter-expression text.
package filterparser

import (
	"strings"

	"github.com/dataslice/jqlite/internal/ast"
	"github.com/dataslice/jqlite/internal/jqerr"
	"github.com/dataslice/jqlite/internal/jsonparser"
	"github.com/dataslice/jqlite/internal/lexutil"
)

// Parse parses a complete filter expression. Per §4.3's top-level wrapper:
// leftover input after a parsed form becomes a further pipeline stage,
// wrapped as Pipe(first, Parse(rest)).
func Parse(s string) (*ast.Node, error) {
	if lexutil.SkipSpace(s) == "" {
		return nil, jqerr.New(jqerr.CodeFilterEmpty, 0, "empty filter expression")
	}
	return parseFull(s, 0)
}

func parseFull(s string, base int) (*ast.Node, error) {
	node, rest, err := parseOne(s, base)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, jqerr.New(jqerr.CodeFilterUnrecognized, base, "unrecognized filter expression near %q", truncate(s))
	}
	if lexutil.SkipSpace(rest) == "" {
		return node, nil
	}
	if rest == s {
		return nil, jqerr.New(jqerr.CodeFilterLeftover, base, "could not parse remaining filter input: %q", truncate(rest))
	}
	nextBase := base + (len(s) - len(rest))
	next, err := parseFull(rest, nextBase)
	if err != nil {
		return nil, err
	}
	return ast.NewPipe(base, node, next), nil
}

func truncate(s string) string {
	const max = 40
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// tryFunc attempts one AST form at the current position. ok is false (node
// nil, err nil) when the form does not apply here and the dispatcher should
// try the next one; err is set only once a form has committed (e.g. it saw
// its leading token) and then failed.
type tryFunc func(s string, base int) (node *ast.Node, rest string, ok bool, err error)

// parseOne tries every filter-AST form in the precedence order of §4.3,
// highest to lowest as the parser attempts them.
func parseOne(s string, base int) (*ast.Node, string, error) {
	tryers := []tryFunc{
		tryParenthesis,
		tryPipe,
		tryComma,
		tryAlternative,
		tryIf,
		tryComparison,
		tryArithmetic,
		tryOptional,
		tryRecursive,
		tryIdChain,
		tryBareSlice,
		tryBuiltinCall,
		tryJSONLiteral,
		tryArrayLit,
		tryObjectLit,
	}
	for _, t := range tryers {
		node, rest, ok, err := t(s, base)
		if err != nil {
			return nil, "", err
		}
		if ok {
			return node, rest, nil
		}
	}
	return nil, "", nil
}

// findAtDepthZero is findAtDepthZero from spec.md §4.3: walk s tracking
// (paren depth, bracket depth), both starting at zero, plus a brace depth so
// that operators inside an object literal's {...} are not split on; report
// the first position where all three are zero and one of needles matches.
// Depth going negative (an unmatched ')', ']' or '}') aborts the search
// entirely, exactly as original_source's avoid_parenthesis does.
func findAtDepthZero(s string, needles []string) (idx int, needle string, ok bool) {
	parenDepth, bracketDepth, braceDepth := 0, 0, 0
	for i := 0; i < len(s); i++ {
		if parenDepth == 0 && bracketDepth == 0 && braceDepth == 0 {
			for _, n := range needles {
				if matchNeedleAt(s, i, n) {
					return i, n, true
				}
			}
		}
		switch s[i] {
		case '(':
			parenDepth++
		case '[':
			bracketDepth++
		case ')':
			if parenDepth == 0 {
				return 0, "", false
			}
			parenDepth--
		case ']':
			if bracketDepth == 0 {
				return 0, "", false
			}
			bracketDepth--
		case '{':
			braceDepth++
		case '}':
			if braceDepth == 0 {
				return 0, "", false
			}
			braceDepth--
		}
	}
	return 0, "", false
}

func matchNeedleAt(s string, i int, needle string) bool {
	if i+len(needle) > len(s) || s[i:i+len(needle)] != needle {
		return false
	}
	if isLetterByte(needle[0]) {
		return wordBoundaryAt(s, i, len(needle))
	}
	return true
}

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func wordBoundaryAt(s string, i, n int) bool {
	if i > 0 && lexutil.IsIdentCont(s[i-1]) {
		return false
	}
	j := i + n
	if j < len(s) && lexutil.IsIdentCont(s[j]) {
		return false
	}
	return true
}

// --- parenthesis ---

func tryParenthesis(s string, base int) (*ast.Node, string, bool, error) {
	rest, ok := lexutil.Char(s, '(')
	if !ok {
		return nil, "", false, nil
	}
	skipped := len(s) - len(rest)
	body, after, err := matchParen(rest)
	if err != nil {
		return nil, "", true, err
	}
	inner, err := parseFull(body, base+skipped)
	if err != nil {
		return nil, "", true, err
	}
	return ast.NewParenthesis(base, inner), after, true, nil
}

func matchParen(s string) (body, rest string, err error) {
	depth := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[:i], s[i+1:], nil
			}
		}
	}
	return "", "", jqerr.New(jqerr.CodeFilterUnmatchedBracket, 0, "unmatched '(' in filter expression")
}

// --- pipe / comma / alternative ---

func tryPipe(s string, base int) (*ast.Node, string, bool, error) {
	idx, _, ok := findAtDepthZero(s, []string{"|"})
	if !ok {
		return nil, "", false, nil
	}
	leftStr := s[:idx]
	var left *ast.Node
	if strings.TrimSpace(leftStr) == "" {
		left = ast.NewInput(base)
	} else {
		var err error
		left, err = parseFull(leftStr, base)
		if err != nil {
			return nil, "", true, err
		}
	}
	right, err := parseFull(s[idx+1:], base+idx+1)
	if err != nil {
		return nil, "", true, err
	}
	return ast.NewPipe(base, left, right), "", true, nil
}

func tryComma(s string, base int) (*ast.Node, string, bool, error) {
	idx, _, ok := findAtDepthZero(s, []string{","})
	if !ok {
		return nil, "", false, nil
	}
	left, err := parseFull(s[:idx], base)
	if err != nil {
		return nil, "", true, err
	}
	right, err := parseFull(s[idx+1:], base+idx+1)
	if err != nil {
		return nil, "", true, err
	}
	return ast.NewComma(base, left, right), "", true, nil
}

func tryAlternative(s string, base int) (*ast.Node, string, bool, error) {
	idx, _, ok := findAtDepthZero(s, []string{"//"})
	if !ok {
		return nil, "", false, nil
	}
	left, err := parseFull(s[:idx], base)
	if err != nil {
		return nil, "", true, err
	}
	right, err := parseFull(s[idx+2:], base+idx+2)
	if err != nil {
		return nil, "", true, err
	}
	return ast.NewAlternative(base, left, right), "", true, nil
}

// --- if...then...[else...]end ---

func tryIf(s string, base int) (*ast.Node, string, bool, error) {
	trimmed := lexutil.SkipSpace(s)
	lead := len(s) - len(trimmed)
	if !matchNeedleAt(trimmed, 0, "if") {
		return nil, "", false, nil
	}
	body := trimmed[2:]
	thenIdx, elseIdx, endIdx, hasElse, ok := scanIfThenElseEnd(body)
	if !ok {
		return nil, "", true, jqerr.New(jqerr.CodeFilterMissingDelimiter, base+lead, "unterminated if statement")
	}

	condBase := base + lead + 2
	cond, err := parseFull(body[:thenIdx], condBase)
	if err != nil {
		return nil, "", true, err
	}

	var thenStr, elseStr string
	var thenBase, elseBase int
	if hasElse {
		thenStr = body[thenIdx+4 : elseIdx]
		elseStr = body[elseIdx+4 : endIdx]
		thenBase = condBase + thenIdx + 4
		elseBase = condBase + elseIdx + 4
	} else {
		thenStr = body[thenIdx+4 : endIdx]
		thenBase = condBase + thenIdx + 4
	}

	then, err := parseFull(thenStr, thenBase)
	if err != nil {
		return nil, "", true, err
	}
	var elseNode *ast.Node
	if hasElse {
		elseNode, err = parseFull(elseStr, elseBase)
		if err != nil {
			return nil, "", true, err
		}
	}
	return ast.NewIf(base+lead, cond, then, elseNode), body[endIdx+3:], true, nil
}

// scanIfThenElseEnd locates the then/else/end keywords belonging to the if
// that has already been consumed, skipping over any nested if...end pairs
// (tracked via ifDepth) as well as parenthesis/bracket nesting.
func scanIfThenElseEnd(s string) (thenIdx, elseIdx, endIdx int, hasElse, ok bool) {
	parenDepth, bracketDepth, ifDepth := 0, 0, 0
	thenIdx, elseIdx, endIdx = -1, -1, -1
	i := 0
	for i < len(s) {
		if parenDepth == 0 && bracketDepth == 0 {
			switch {
			case matchNeedleAt(s, i, "if"):
				ifDepth++
				i += 2
				continue
			case matchNeedleAt(s, i, "then") && ifDepth == 0 && thenIdx == -1:
				thenIdx = i
				i += 4
				continue
			case matchNeedleAt(s, i, "else") && ifDepth == 0 && thenIdx != -1 && elseIdx == -1:
				elseIdx = i
				i += 4
				continue
			case matchNeedleAt(s, i, "end") && ifDepth > 0:
				ifDepth--
				i += 3
				continue
			case matchNeedleAt(s, i, "end") && ifDepth == 0 && thenIdx != -1:
				endIdx = i
				return thenIdx, elseIdx, endIdx, elseIdx != -1, true
			}
		}
		switch s[i] {
		case '(':
			parenDepth++
		case '[':
			bracketDepth++
		case ')':
			if parenDepth == 0 {
				return 0, 0, 0, false, false
			}
			parenDepth--
		case ']':
			if bracketDepth == 0 {
				return 0, 0, 0, false, false
			}
			bracketDepth--
		}
		i++
	}
	return 0, 0, 0, false, false
}

// --- comparison group: not, and, or, ==, !=, >, >=, <, <= ---

func tryComparison(s string, base int) (*ast.Node, string, bool, error) {
	trimmed := lexutil.SkipSpace(s)
	lead := len(s) - len(trimmed)
	if matchNeedleAt(trimmed, 0, "not") {
		inner, err := parseFull(trimmed[3:], base+lead+3)
		if err != nil {
			return nil, "", true, err
		}
		return ast.NewNot(base+lead, inner), "", true, nil
	}

	idx, needle, ok := findAtDepthZero(s, []string{"and", "or"})
	if !ok {
		idx, needle, ok = findAtDepthZero(s, []string{"==", "!=", ">=", "<=", ">", "<"})
	}
	if !ok {
		return nil, "", false, nil
	}
	left, err := parseFull(s[:idx], base)
	if err != nil {
		return nil, "", true, err
	}
	right, err := parseFull(s[idx+len(needle):], base+idx+len(needle))
	if err != nil {
		return nil, "", true, err
	}
	switch needle {
	case "and":
		return ast.NewAnd(base, left, right), "", true, nil
	case "or":
		return ast.NewOr(base, left, right), "", true, nil
	default:
		kinds := map[string]ast.Kind{"==": ast.Eq, "!=": ast.NotEq, ">": ast.Gt, ">=": ast.Gte, "<": ast.Lt, "<=": ast.Lte}
		return ast.NewCompare(kinds[needle], base, left, right), "", true, nil
	}
}

// --- arithmetic group: +, -, *, /, % (one tier, per spec.md §4.3) ---

func tryArithmetic(s string, base int) (*ast.Node, string, bool, error) {
	idx, needle, ok := findArithOp(s)
	if !ok {
		return nil, "", false, nil
	}
	left, err := parseFull(s[:idx], base)
	if err != nil {
		return nil, "", true, err
	}
	right, err := parseFull(s[idx+len(needle):], base+idx+len(needle))
	if err != nil {
		return nil, "", true, err
	}
	kinds := map[string]ast.Kind{"+": ast.Add, "-": ast.Sub, "*": ast.Mul, "/": ast.Div, "%": ast.Mod}
	return ast.NewArith(kinds[needle], base, left, right), "", true, nil
}

// findArithOp is findAtDepthZero restricted to the arithmetic operators,
// additionally treating a leading '-' with nothing but whitespace before it
// as a number's sign rather than subtraction (so "-5" parses as a negative
// literal, not an empty left-hand side).
func findArithOp(s string) (int, string, bool) {
	search := s
	offset := 0
	for {
		idx, needle, ok := findAtDepthZero(search, []string{"+", "-", "*", "/", "%"})
		if !ok {
			return 0, "", false
		}
		if needle == "-" && strings.TrimSpace(search[:idx]) == "" {
			search = search[idx+1:]
			offset += idx + 1
			continue
		}
		return offset + idx, needle, true
	}
}

// --- postfix ? (optional), applied to an id chain per the original ---

func tryOptional(s string, base int) (*ast.Node, string, bool, error) {
	node, rest, matched, err := tryIdChain(s, base)
	if err != nil {
		return nil, "", true, err
	}
	if !matched {
		return nil, "", false, nil
	}
	if after, ok := lexutil.Char(rest, '?'); ok {
		return ast.NewOptional(base, node), after, true, nil
	}
	return nil, "", false, nil
}

// --- .. recursive ---

func tryRecursive(s string, base int) (*ast.Node, string, bool, error) {
	rest, ok := lexutil.Word(s, "..")
	if !ok {
		return nil, "", false, nil
	}
	return ast.NewRecursive(base), rest, true, nil
}

// --- id chain: .a.b[0][1:3], ., .[], .[1:3] ---

func tryIdChain(s string, base int) (*ast.Node, string, bool, error) {
	rest, ok := lexutil.Char(s, '.')
	if !ok {
		return nil, "", false, nil
	}
	var ops []*ast.Node
	cur := rest
	first := true
	for {
		opBase := base + (len(s) - len(cur))
		if op, r, matched, err := parseBracketOp(cur, opBase); err != nil {
			return nil, "", true, err
		} else if matched {
			ops = append(ops, op)
			cur = r
			first = false
			continue
		}
		if first {
			if name, r, matched := lexutil.Ident(cur); matched {
				ops = append(ops, ast.NewId(opBase, name))
				cur = r
				first = false
				continue
			}
			break
		}
		if dotRest, ok2 := lexutil.Char(cur, '.'); ok2 {
			idBase := base + (len(s) - len(dotRest))
			if name, r, matched := lexutil.Ident(dotRest); matched {
				ops = append(ops, ast.NewId(idBase, name))
				cur = r
				continue
			}
		}
		break
	}
	if len(ops) == 0 {
		return ast.NewIdentity(base), cur, true, nil
	}
	if len(ops) == 1 && (ops[0].Kind == ast.Iterator || ops[0].Kind == ast.Slice) {
		return ops[0], cur, true, nil
	}
	return ast.NewIdChain(base, ops), cur, true, nil
}

// parseBracketOp parses one `[...]` subscript: empty brackets are an
// Iterator op, a pure slice pattern is a Slice op, anything else is parsed
// as a (possibly comma-separated) index-set expression, represented as an
// ArrayLit op per spec.md §3.2's "each op is Id, ArrayLit, Slice, or
// Iterator" — mirroring original_source's reuse of its array-literal parser
// for bracket subscripts.
func parseBracketOp(s string, base int) (*ast.Node, string, bool, error) {
	rest, ok := lexutil.Char(s, '[')
	if !ok {
		return nil, "", false, nil
	}
	skipped := len(s) - len(rest)
	body, after, err := matchBracket(rest)
	if err != nil {
		return nil, "", true, err
	}
	if lexutil.SkipSpace(body) == "" {
		return ast.NewIterator(base), after, true, nil
	}
	if lo, hi, sliceRest, ok := sliceBoundsPrefix(body); ok && lexutil.SkipSpace(sliceRest) == "" {
		return ast.NewSlice(base, lo, hi), after, true, nil
	}
	inner, err := parseFull(body, base+skipped)
	if err != nil {
		return nil, "", true, err
	}
	return ast.NewArrayLit(base, unpackComma(inner)), after, true, nil
}

func matchBracket(s string) (body, rest string, err error) {
	depth := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[:i], s[i+1:], nil
			}
		}
	}
	return "", "", jqerr.New(jqerr.CodeFilterUnmatchedBracket, 0, "unmatched '[' in filter expression")
}

func unpackComma(n *ast.Node) []*ast.Node {
	if n.Kind == ast.Comma {
		return append(unpackComma(n.A), unpackComma(n.B)...)
	}
	return []*ast.Node{n}
}

func sliceBoundsPrefix(s string) (lo, hi *int, rest string, ok bool) {
	cur := s
	if n, r, matched := lexutil.UnsignedInt(cur); matched {
		v := n
		lo = &v
		cur = r
	}
	colonRest, matched := lexutil.Char(cur, ':')
	if !matched {
		return nil, nil, "", false
	}
	cur = colonRest
	if n, r, matched := lexutil.UnsignedInt(cur); matched {
		v := n
		hi = &v
		cur = r
	}
	return lo, hi, cur, true
}

// --- bare slice: "lo:hi" with no leading dot/brackets ---

func tryBareSlice(s string, base int) (*ast.Node, string, bool, error) {
	lo, hi, rest, ok := sliceBoundsPrefix(s)
	if !ok {
		return nil, "", false, nil
	}
	return ast.NewSlice(base, lo, hi), rest, true, nil
}

// --- built-in function calls ---

var optionalArgBuiltins = map[string]ast.Kind{
	"abs":    ast.Abs,
	"length": ast.Length,
	"keys":   ast.Keys,
}

var requiredArgBuiltins = map[string]ast.Kind{
	"has": ast.Has,
	"in":  ast.In,
	"map": ast.Map,
}

func tryBuiltinCall(s string, base int) (*ast.Node, string, bool, error) {
	name, rest, ok := lexutil.Ident(s)
	if !ok {
		return nil, "", false, nil
	}
	if kind, isOpt := optionalArgBuiltins[name]; isOpt {
		return parseBuiltinArgs(kind, s, rest, base, false)
	}
	if kind, isReq := requiredArgBuiltins[name]; isReq {
		return parseBuiltinArgs(kind, s, rest, base, true)
	}
	return nil, "", false, nil
}

func parseBuiltinArgs(kind ast.Kind, s, rest string, base int, required bool) (*ast.Node, string, bool, error) {
	argRest := lexutil.SkipSpace(rest)
	paren, ok := lexutil.Char(argRest, '(')
	if !ok {
		if required {
			return nil, "", true, jqerr.New(jqerr.CodeFilterMissingDelimiter, base, "built-in requires a parenthesized argument")
		}
		return ast.NewOptionalArgBuiltin(kind, base, nil), rest, true, nil
	}
	body, after, err := matchParen(paren)
	if err != nil {
		return nil, "", true, err
	}
	arg, err := parseFull(body, base+(len(s)-len(paren)))
	if err != nil {
		return nil, "", true, err
	}
	if required {
		return ast.NewRequiredArgBuiltin(kind, base, arg), after, true, nil
	}
	return ast.NewOptionalArgBuiltin(kind, base, arg), after, true, nil
}

// --- JSON literals: null, bool, number, string (§3.2: literals reuse JSON parsing) ---

func tryJSONLiteral(s string, base int) (*ast.Node, string, bool, error) {
	if v, rest, ok, err := jsonparser.ParseNull(s); ok {
		if err != nil {
			return nil, "", true, err
		}
		return ast.NewLiteral(base, v), rest, true, nil
	}
	if v, rest, ok, err := jsonparser.ParseBool(s); ok {
		if err != nil {
			return nil, "", true, err
		}
		return ast.NewLiteral(base, v), rest, true, nil
	}
	if v, rest, ok, err := jsonparser.ParseNumber(s); ok {
		if err != nil {
			return nil, "", true, err
		}
		return ast.NewLiteral(base, v), rest, true, nil
	}
	if v, rest, ok, err := jsonparser.ParseString(s); ok {
		if err != nil {
			return nil, "", true, err
		}
		return ast.NewLiteral(base, v), rest, true, nil
	}
	return nil, "", false, nil
}

// --- array literal: [ expr (, expr)* ] ---

func tryArrayLit(s string, base int) (*ast.Node, string, bool, error) {
	rest, ok := lexutil.Char(s, '[')
	if !ok {
		return nil, "", false, nil
	}
	skipped := len(s) - len(rest)
	body, after, err := matchBracket(rest)
	if err != nil {
		return nil, "", true, err
	}
	if lexutil.SkipSpace(body) == "" {
		return ast.NewArrayLit(base, nil), after, true, nil
	}
	inner, err := parseFull(body, base+skipped)
	if err != nil {
		return nil, "", true, err
	}
	return ast.NewArrayLit(base, unpackComma(inner)), after, true, nil
}

// --- object literal: { key : val (, key : val)* } ---

func tryObjectLit(s string, base int) (*ast.Node, string, bool, error) {
	rest, ok := lexutil.Char(s, '{')
	if !ok {
		return nil, "", false, nil
	}
	skipped := len(s) - len(rest)
	body, after, err := matchBrace(rest)
	if err != nil {
		return nil, "", true, err
	}
	if lexutil.SkipSpace(body) == "" {
		return ast.NewObjectLit(base, nil), after, true, nil
	}

	segments := splitTopLevel(body, ',')
	pairs := make([]ast.Pair, 0, len(segments))
	offset := base + skipped
	for _, seg := range segments {
		colonIdx, found := findTopLevelChar(seg, ':')
		if !found {
			return nil, "", true, jqerr.New(jqerr.CodeFilterMissingDelimiter, offset, "expected ':' in object literal pair")
		}
		keyNode, err := parseFull(seg[:colonIdx], offset)
		if err != nil {
			return nil, "", true, err
		}
		valNode, err := parseFull(seg[colonIdx+1:], offset+colonIdx+1)
		if err != nil {
			return nil, "", true, err
		}
		pairs = append(pairs, ast.Pair{Key: keyNode, Val: valNode})
		offset += len(seg) + 1
	}
	return ast.NewObjectLit(base, pairs), after, true, nil
}

func matchBrace(s string) (body, rest string, err error) {
	depth := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i], s[i+1:], nil
			}
		}
	}
	return "", "", jqerr.New(jqerr.CodeFilterUnmatchedBracket, 0, "unmatched '{' in filter expression")
}

// splitTopLevel splits s on sep, ignoring occurrences nested inside
// parens/brackets/braces — used for object-literal pair separators. Unlike
// findAtDepthZero, it tolerates an unmatched closing delimiter instead of
// aborting.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	dp, db, dc := 0, 0, 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			dp++
		case ')':
			if dp > 0 {
				dp--
			}
		case '[':
			db++
		case ']':
			if db > 0 {
				db--
			}
		case '{':
			dc++
		case '}':
			if dc > 0 {
				dc--
			}
		default:
			if s[i] == sep && dp == 0 && db == 0 && dc == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, s[last:])
	return parts
}

func findTopLevelChar(s string, target byte) (int, bool) {
	dp, db, dc := 0, 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == target && dp == 0 && db == 0 && dc == 0 {
			return i, true
		}
		switch c {
		case '(':
			dp++
		case ')':
			if dp > 0 {
				dp--
			}
		case '[':
			db++
		case ']':
			if db > 0 {
				db--
			}
		case '{':
			dc++
		case '}':
			if dc > 0 {
				dc--
			}
		}
	}
	return 0, false
}
