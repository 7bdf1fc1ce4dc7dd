// Package jsonparser implements the recursive-descent JSON parser
// described in spec.md §4.2, grounded on
// original_source/src/json/json_parser.rs (the Rust original this spec was
// distilled from): null/boolean/string/number/array/object, each a pure
// function from the remaining input to a (value, rest) pair. Unlike the
// original, single- and double-quoted strings are handled uniformly by one
// helper parameterized on the delimiter, and parse errors are reported
// through internal/jqerr instead of panicking.
package jsonparser

import (
	"math"
	"strconv"
	"strings"

	"github.com/dataslice/jqlite/internal/jqerr"
	"github.com/dataslice/jqlite/internal/jsonval"
	"github.com/dataslice/jqlite/internal/lexutil"
)

// Parse parses a single JSON value from input and requires the entire
// input (modulo trailing whitespace) to be consumed, per §4.2: "Failure to
// consume the entire input after the outermost value is a fatal parse
// error."
func Parse(input string) (jsonval.Value, error) {
	v, rest, err := parseValue(input)
	if err != nil {
		return jsonval.Value{}, err
	}
	if rest = lexutil.SkipSpace(rest); rest != "" {
		return jsonval.Value{}, jqerr.New(jqerr.CodeJSONTrailing, len(input)-len(rest),
			"unexpected trailing input: %q", truncate(rest))
	}
	return v, nil
}

// ParseNull attempts a null literal at the start of input. ok reports
// whether the literal keyword matched; err is only set once matched
// (null never fails once its keyword is seen). Exported so the filter
// parser can reuse JSON literal parsing per spec.md §3.2/§4.3.
func ParseNull(input string) (jsonval.Value, string, bool, error) {
	s := lexutil.SkipSpace(input)
	if rest, ok := lexutil.Word(s, "null"); ok {
		return jsonval.NewNull(), rest, true, nil
	}
	return jsonval.Value{}, "", false, nil
}

// ParseBool attempts a true/false literal at the start of input.
func ParseBool(input string) (jsonval.Value, string, bool, error) {
	s := lexutil.SkipSpace(input)
	if rest, ok := lexutil.Word(s, "true"); ok {
		return jsonval.NewBool(true), rest, true, nil
	}
	if rest, ok := lexutil.Word(s, "false"); ok {
		return jsonval.NewBool(false), rest, true, nil
	}
	return jsonval.Value{}, "", false, nil
}

// ParseNumber attempts a number literal at the start of input.
func ParseNumber(input string) (jsonval.Value, string, bool, error) {
	s := lexutil.SkipSpace(input)
	if s == "" || !(s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) {
		return jsonval.Value{}, "", false, nil
	}
	v, rest, err := parseNumber(s)
	if err != nil {
		return jsonval.Value{}, "", true, err
	}
	return v, rest, true, nil
}

// ParseString attempts a single- or double-quoted string literal at the
// start of input.
func ParseString(input string) (jsonval.Value, string, bool, error) {
	s := lexutil.SkipSpace(input)
	if s == "" || (s[0] != '"' && s[0] != '\'') {
		return jsonval.Value{}, "", false, nil
	}
	v, rest, err := parseString(s)
	if err != nil {
		return jsonval.Value{}, "", true, err
	}
	return v, rest, true, nil
}

func truncate(s string) string {
	const max = 30
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

func parseValue(input string) (jsonval.Value, string, error) {
	s := lexutil.SkipSpace(input)
	if s == "" {
		return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONUnrecognized, len(input), "unexpected end of input")
	}
	switch s[0] {
	case '"', '\'':
		return parseString(s)
	case '[':
		return parseArray(s)
	case '{':
		return parseObject(s)
	case 't', 'f':
		return parseBool(s)
	case 'n':
		return parseNull(s)
	default:
		if s[0] == '-' || (s[0] >= '0' && s[0] <= '9') {
			return parseNumber(s)
		}
	}
	return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONUnrecognized, len(input)-len(s),
		"unrecognized JSON value near %q", truncate(s))
}

func parseNull(s string) (jsonval.Value, string, error) {
	if rest, ok := lexutil.Word(s, "null"); ok {
		return jsonval.NewNull(), rest, nil
	}
	return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONUnrecognized, 0, "expected null")
}

func parseBool(s string) (jsonval.Value, string, error) {
	if rest, ok := lexutil.Word(s, "true"); ok {
		return jsonval.NewBool(true), rest, nil
	}
	if rest, ok := lexutil.Word(s, "false"); ok {
		return jsonval.NewBool(false), rest, nil
	}
	return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONUnrecognized, 0, "expected boolean")
}

// parseString handles both single- and double-quoted strings (§4.2's first
// deviation from standard JSON), recognizing escapes \\, \" or \', \/, \n,
// \t, and \uXXXX.
func parseString(s string) (jsonval.Value, string, error) {
	delim := s[0]
	body := s[1:]

	var b strings.Builder
	i := 0
	for {
		if i >= len(body) {
			return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONUnterminatedString, len(s)-len(body)+i,
				"unterminated string literal")
		}
		c := body[i]
		if c == delim {
			return jsonval.NewString(b.String()), body[i+1:], nil
		}
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONUnterminatedString, len(s)-len(body)+i,
				"unterminated escape sequence")
		}
		esc := body[i+1]
		switch esc {
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case '\'':
			b.WriteByte('\'')
			i += 2
		case '/':
			b.WriteByte('/')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			if i+6 > len(body) {
				return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONBadEscape, len(s)-len(body)+i,
					"truncated \\u escape")
			}
			code, err := strconv.ParseUint(body[i+2:i+6], 16, 32)
			if err != nil {
				return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONBadEscape, len(s)-len(body)+i,
					"invalid \\u escape: %q", body[i+2:i+6])
			}
			b.WriteRune(rune(code))
			i += 6
		default:
			return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONBadEscape, len(s)-len(body)+i,
				"unrecognized escape \\%c", esc)
		}
	}
}

// parseNumber handles an optional leading '-', digits, an optional
// fractional part, and an optional exponent (§4.2's third deviation), per
// original_source/src/json/json_parser.rs's parse_number/get_exponent/
// get_decimals.
func parseNumber(s string) (jsonval.Value, string, error) {
	start := s
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	intPart, rest, ok := lexutil.UnsignedInt(s)
	if !ok {
		return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONBadNumber, 0, "expected digits near %q", truncate(start))
	}
	mantissa := float64(intPart)

	if after, ok := lexutil.Char(rest, '.'); ok {
		digits, fracRest, ok := lexutil.UnsignedInt(after)
		if !ok {
			return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONBadNumber, 0, "expected digits after decimal point")
		}
		fracDigits := countDigits(after, fracRest)
		mantissa += float64(digits) / math.Pow(10, float64(fracDigits))
		rest = fracRest
	}

	if after, ok := matchExpSign(rest); ok {
		expNeg := false
		expAfter := after
		if signed, ok2 := lexutil.Char(after, '-'); ok2 {
			expNeg = true
			expAfter = signed
		} else if signed, ok2 := lexutil.Char(after, '+'); ok2 {
			expAfter = signed
		}
		expDigits, expRest, ok2 := lexutil.UnsignedInt(expAfter)
		if !ok2 {
			return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONBadNumber, 0, "expected digits in exponent")
		}
		exp := float64(expDigits)
		if expNeg {
			exp = -exp
		}
		mantissa *= math.Pow(10, exp)
		rest = expRest
	}

	if neg {
		mantissa = -mantissa
	}
	return jsonval.NewNumber(mantissa), rest, nil
}

func matchExpSign(s string) (string, bool) {
	if rest, ok := lexutil.Char(s, 'e'); ok {
		return rest, true
	}
	if rest, ok := lexutil.Char(s, 'E'); ok {
		return rest, true
	}
	return "", false
}

// countDigits returns how many digit characters were consumed between
// before and after, skipping the leading whitespace UnsignedInt itself
// skips, so fractional precision (e.g. "05") is preserved.
func countDigits(before, after string) int {
	trimmed := lexutil.SkipSpace(before)
	return len(trimmed) - len(after)
}

func parseArray(s string) (jsonval.Value, string, error) {
	rest, ok := lexutil.Char(s, '[')
	if !ok {
		return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONUnmatchedBracket, 0, "expected '['")
	}
	elems := []jsonval.Value{}

	if closed, ok := lexutil.Char(rest, ']'); ok {
		return jsonval.NewArray(elems), closed, nil
	}

	for {
		v, r, err := parseValue(rest)
		if err != nil {
			return jsonval.Value{}, "", err
		}
		elems = append(elems, v)
		rest = r

		if next, ok := lexutil.Char(rest, ','); ok {
			rest = next
			continue
		}
		if closed, ok := lexutil.Char(rest, ']'); ok {
			return jsonval.NewArray(elems), closed, nil
		}
		return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONMissingDelimiter, len(s)-len(rest),
			"expected ',' or ']' in array")
	}
}

func parseObject(s string) (jsonval.Value, string, error) {
	rest, ok := lexutil.Char(s, '{')
	if !ok {
		return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONUnmatchedBracket, 0, "expected '{'")
	}
	keys := []string{}
	obj := map[string]jsonval.Value{}

	if closed, ok := lexutil.Char(rest, '}'); ok {
		return jsonval.NewObject(keys, obj), closed, nil
	}

	for {
		keyV, r, err := parseString(lexutil.SkipSpace(rest))
		if err != nil {
			return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONMissingDelimiter, len(s)-len(rest),
				"object keys must be strings")
		}
		rest = r

		colonRest, ok := lexutil.Char(rest, ':')
		if !ok {
			return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONMissingDelimiter, len(s)-len(rest), "expected ':'")
		}
		val, r2, err := parseValue(colonRest)
		if err != nil {
			return jsonval.Value{}, "", err
		}
		rest = r2

		if _, dup := obj[keyV.Str]; !dup {
			keys = append(keys, keyV.Str)
		}
		obj[keyV.Str] = val

		if next, ok := lexutil.Char(rest, ','); ok {
			rest = next
			continue
		}
		if closed, ok := lexutil.Char(rest, '}'); ok {
			return jsonval.NewObject(keys, obj), closed, nil
		}
		return jsonval.Value{}, "", jqerr.New(jqerr.CodeJSONMissingDelimiter, len(s)-len(rest),
			"expected ',' or '}' in object")
	}
}
