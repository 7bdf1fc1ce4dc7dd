// Package main is the entry point for jqlite, a small jq-style JSON
// filter (spec.md §1).
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/dataslice/jqlite/internal/jqerr"
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		slog.Error("jqlite failed", "error", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a jqerr.Error's code to a process exit status, grouped by
// spec.md §7's tiers: CLI usage errors, parse errors, and runtime
// evaluation errors each get a distinct range so scripts can distinguish
// them.
func exitCode(err error) int {
	var e *jqerr.Error
	if !errors.As(err, &e) {
		return 1
	}
	switch e.Code {
	case jqerr.CodeCLIArgCount:
		return 2
	case jqerr.CodeCLIFileRead:
		return 3
	case jqerr.CodeCLIJSONParse:
		return 4
	case jqerr.CodeCLIFilterParse:
		return 5
	case jqerr.CodeCLIEval:
		return 6
	default:
		return 1
	}
}
