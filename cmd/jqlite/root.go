package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dataslice/jqlite/internal/filterparser"
	"github.com/dataslice/jqlite/internal/interp"
	"github.com/dataslice/jqlite/internal/jqerr"
	"github.com/dataslice/jqlite/internal/jsonparser"
	"github.com/dataslice/jqlite/internal/jsonval"
	"github.com/dataslice/jqlite/internal/printer"
)

// NewRootCmd builds the jqlite root command: exactly two positional
// arguments, filter expression first and JSON file path second (spec.md
// §6; this order is a redesign relative to original_source/src/main.rs,
// which took file then filter).
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jqlite <filter> <file>",
		Short: "jqlite - a small jq-style JSON filter",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return jqerr.Wrap(jqerr.CodeCLIArgCount, -1, err, "expected a filter and a file path")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, args[0], args[1])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return cmd
}

func runFilter(cmd *cobra.Command, filterExpr, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return jqerr.Wrap(jqerr.CodeCLIFileRead, -1, err, "cannot read file %q", path)
	}

	doc, err := jsonparser.Parse(string(raw))
	if err != nil {
		return jqerr.Wrap(jqerr.CodeCLIJSONParse, -1, err, "failed to parse JSON in %q", path)
	}

	node, err := filterparser.Parse(filterExpr)
	if err != nil {
		return jqerr.Wrap(jqerr.CodeCLIFilterParse, -1, err, "failed to parse filter %q", filterExpr)
	}

	out, err := interp.Eval([]jsonval.Value{doc}, node)
	if err != nil {
		return jqerr.Wrap(jqerr.CodeCLIEval, -1, err, "failed to evaluate filter")
	}

	w := cmd.OutOrStdout()
	for _, v := range out {
		fmt.Fprintln(w, printer.Pretty(v))
	}
	return nil
}
