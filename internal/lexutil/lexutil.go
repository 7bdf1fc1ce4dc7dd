// Package lexutil provides the pure, string-slice lexical primitives shared
// by the JSON parser and the filter parser: skip whitespace, consume a
// literal character, consume a keyword, scan an unsigned integer, scan an
// identifier. None of them tokenize ahead of time — each is called at the
// point a grammar rule needs it, on whatever of the input string remains.
//
// Every helper skips leading whitespace before attempting its own match,
// and none of them enforce a word-boundary after a keyword: callers must
// order their alternatives so that a longer keyword is never shadowed by a
// shorter one that is also a prefix of it (e.g. try "null" before anything
// that would accept "nu" as an identifier prefix).
package lexutil

import "strconv"

// SkipSpace returns the suffix of s with leading space, tab, newline, and
// carriage-return characters removed.
func SkipSpace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return s[i:]
}

// Char skips leading whitespace and, if the next character is c, returns
// the remainder after it. ok is false (and rest is unspecified) otherwise.
func Char(s string, c byte) (rest string, ok bool) {
	s = SkipSpace(s)
	if len(s) == 0 || s[0] != c {
		return "", false
	}
	return s[1:], true
}

// Word skips leading whitespace and, if s starts with word at that point,
// returns the remainder after it. No word-boundary check is performed; it
// is the caller's responsibility to try keywords in an order that avoids
// ambiguous prefixes (see the package doc).
func Word(s, word string) (rest string, ok bool) {
	s = SkipSpace(s)
	if len(s) < len(word) || s[:len(word)] != word {
		return "", false
	}
	return s[len(word):], true
}

// UnsignedInt skips leading whitespace and scans a run of ASCII digits,
// returning the parsed value and the remainder. ok is false if the next
// non-space character is not a digit.
func UnsignedInt(s string) (n int, rest string, ok bool) {
	s = SkipSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", false
	}
	v, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, "", false
	}
	return v, s[i:], true
}

// IsIdentStart reports whether c can start an identifier: ASCII letter or
// underscore.
func IsIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// IsIdentCont reports whether c can continue an identifier: a start
// character or an ASCII digit.
func IsIdentCont(c byte) bool {
	return IsIdentStart(c) || (c >= '0' && c <= '9')
}

// Ident skips leading whitespace and scans an identifier: a letter or
// underscore, followed by letters, digits, or underscores.
func Ident(s string) (name, rest string, ok bool) {
	s = SkipSpace(s)
	if len(s) == 0 || !IsIdentStart(s[0]) {
		return "", "", false
	}
	i := 1
	for i < len(s) && IsIdentCont(s[i]) {
		i++
	}
	return s[:i], s[i:], true
}
