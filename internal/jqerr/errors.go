// Package jqerr defines the two error tiers used across jqlite: parser
// errors (JSON and filter syntax) and runtime errors raised by the
// interpreter. Every error carries a short code so the CLI driver and
// Optional/Alternative recovery in the interpreter can distinguish failure
// classes without string matching.
package jqerr

import (
	"fmt"

	"github.com/samber/oops"
)

// Code identifies a class of failure. Parser codes start with "P-" or "J-"
// (JSON-layer parse errors specifically); runtime codes start with "R-".
type Code string

const (
	// JSON parser errors (§4.2, §7 category 1).
	CodeJSONUnterminatedString Code = "J-UNTERM-STRING"
	CodeJSONBadNumber          Code = "J-BAD-NUMBER"
	CodeJSONBadEscape          Code = "J-BAD-ESCAPE"
	CodeJSONUnmatchedBracket   Code = "J-UNMATCHED-BRACKET"
	CodeJSONMissingDelimiter   Code = "J-MISSING-DELIM"
	CodeJSONUnrecognized       Code = "J-UNRECOGNIZED"
	CodeJSONTrailing           Code = "J-TRAILING"

	// Filter parser errors (§4.3, §7 category 1).
	CodeFilterUnmatchedBracket Code = "P-UNMATCHED-BRACKET"
	CodeFilterMissingDelimiter Code = "P-MISSING-DELIM"
	CodeFilterUnrecognized     Code = "P-UNRECOGNIZED"
	CodeFilterLeftover         Code = "P-LEFTOVER"
	CodeFilterEmpty            Code = "P-EMPTY"

	// Interpreter runtime errors (§7 category 2).
	CodeRuntimeTypeMismatch Code = "R-TYPE-MISMATCH"
	CodeRuntimeOutOfRange   Code = "R-OUT-OF-RANGE"
	CodeRuntimeNotContainer Code = "R-NOT-CONTAINER"
	CodeRuntimeNotObject    Code = "R-NOT-OBJECT"
	CodeRuntimeMissingKey   Code = "R-MISSING-KEY"
	CodeRuntimeNotBoolean   Code = "R-NOT-BOOLEAN"
	CodeRuntimeBadArgCount  Code = "R-BAD-ARGC"

	// CLI / driver errors (§6, §10).
	CodeCLIArgCount    Code = "C-ARGCOUNT"
	CodeCLIFileRead    Code = "C-FILEREAD"
	CodeCLIJSONParse   Code = "C-JSONPARSE"
	CodeCLIFilterParse Code = "C-FILTERPARSE"
	CodeCLIEval        Code = "C-EVAL"
)

// Error is a coded, positioned error. It wraps a samber/oops error so
// callers can still recover structured context via oops.AsOops, while
// jqlite code can switch on Code without reaching into oops internals.
type Error struct {
	Code     Code
	Position int // byte offset into the source being parsed; -1 if not applicable
	err      error
}

// New builds an Error with the given code and message, attaching position
// context via oops when a position is known.
func New(code Code, position int, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	builder := oops.Code(string(code))
	if position >= 0 {
		builder = builder.With("position", position)
	}
	return &Error{Code: code, Position: position, err: builder.Errorf("%s", msg)}
}

// Wrap attaches a code and message to an existing error, preserving it as
// the underlying cause.
func Wrap(code Code, position int, cause error, format string, args ...interface{}) *Error {
	builder := oops.Code(string(code)).With("cause", cause.Error())
	if position >= 0 {
		builder = builder.With("position", position)
	}
	if format == "" {
		return &Error{Code: code, Position: position, err: builder.Wrap(cause)}
	}
	return &Error{Code: code, Position: position, err: builder.With("message", fmt.Sprintf(format, args...)).Wrap(cause)}
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsCode reports whether err is a *Error with the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	if ae, ok := err.(*Error); ok {
		e = ae
		return e.Code == code
	}
	return false
}
