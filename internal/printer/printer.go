// Package printer renders jsonval.Value back to JSON text. §6 leaves
// compact-vs-pretty as an implementation choice as long as output is valid,
// re-parseable JSON; this package offers both, grounded on
// original_source/src/json/json_print.rs for the compact encoding (kept
// down to its comma-spacing texture: arrays join elements with a bare ",",
// objects with ", " — an homage, not a functional requirement, since the
// pretty encoder is what the CLI actually uses for its one-value-per-line
// output per SPEC_FULL.md §6).
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dataslice/jqlite/internal/jsonval"
)

// Compact renders v as JSON with no extra whitespace beyond the original's
// array/object comma-spacing asymmetry.
func Compact(v jsonval.Value) string {
	var b strings.Builder
	writeCompact(&b, v)
	return b.String()
}

func writeCompact(b *strings.Builder, v jsonval.Value) {
	switch v.Kind {
	case jsonval.Null:
		b.WriteString("null")
	case jsonval.Bool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case jsonval.Number:
		b.WriteString(formatNumber(v.Num))
	case jsonval.String:
		writeQuoted(b, v.Str)
	case jsonval.Array:
		b.WriteByte('[')
		for i, el := range v.Arr {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCompact(b, el)
		}
		b.WriteByte(']')
	case jsonval.Object:
		b.WriteByte('{')
		for i, k := range v.Keys {
			if i > 0 {
				b.WriteString(", ")
			}
			writeQuoted(b, k)
			b.WriteByte(':')
			writeCompact(b, v.Obj[k])
		}
		b.WriteByte('}')
	}
}

// Pretty renders v as multi-line JSON with a two-space indent (§6: "two-
// space or tab-indented is an implementation choice").
func Pretty(v jsonval.Value) string {
	var b strings.Builder
	writePretty(&b, v, 0)
	return b.String()
}

func writePretty(b *strings.Builder, v jsonval.Value, depth int) {
	switch v.Kind {
	case jsonval.Array:
		if len(v.Arr) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, el := range v.Arr {
			indent(b, depth+1)
			writePretty(b, el, depth+1)
			if i != len(v.Arr)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteByte(']')
	case jsonval.Object:
		if len(v.Keys) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for i, k := range v.Keys {
			indent(b, depth+1)
			writeQuoted(b, k)
			b.WriteString(": ")
			writePretty(b, v.Obj[k], depth+1)
			if i != len(v.Keys)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteByte('}')
	default:
		writeCompact(b, v)
	}
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

// formatNumber renders a float64 using the shortest round-tripping decimal
// representation, spelling whole numbers without a trailing ".0" so that
// integers look canonical in output.
func formatNumber(n float64) string {
	if n == float64(int64(n)) && !isNegZero(n) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func isNegZero(n float64) bool {
	return n == 0 && strconv.FormatFloat(n, 'g', -1, 64) == "-0"
}
