// Package diagnostic formats loader, scanner, parser, and evaluator
// errors for a terminal, and prints the final result of a run. It never
// inspects an error for anything but its color and layout — the
// type-switch here never drives control flow, that decision already
// happened in the core pipeline. Grounded on the teacher's
// redColor/yellowColor/cyanColor trio in main/main.go and repl/repl.go.
package diagnostic

import (
	"io"

	"github.com/fatih/color"
	"github.com/shunsock/shot/internal/eval"
	"github.com/shunsock/shot/internal/lexer"
	"github.com/shunsock/shot/internal/loader"
	"github.com/shunsock/shot/internal/parser"
	"github.com/shunsock/shot/internal/value"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// PrintError writes err to w, colored red, tagged with the family it
// came from.
func PrintError(w io.Writer, err error) {
	switch e := err.(type) {
	case *loader.Error:
		redColor.Fprintf(w, "[LOAD ERROR] %s\n", e)
	case *lexer.ScanError:
		redColor.Fprintf(w, "[SCAN ERROR] %s\n", e)
	case *parser.ParseError:
		redColor.Fprintf(w, "[PARSE ERROR] %s\n", e)
	case *eval.Error:
		redColor.Fprintf(w, "[EVAL ERROR] %s\n", e)
	default:
		redColor.Fprintf(w, "[ERROR] %s\n", err)
	}
}

// PrintResult writes v to w, colored yellow. A void result (no Return
// ever executed) is not printed, matching the teacher's file-mode
// behavior of skipping nil results.
func PrintResult(w io.Writer, v value.Value) {
	if v == nil || v.Type() == value.Void {
		return
	}
	yellowColor.Fprintf(w, "%s\n", v.String())
}

// PrintInfo writes an informational line (debug-dump headers, banners)
// to w, colored cyan.
func PrintInfo(w io.Writer, format string, args ...any) {
	cyanColor.Fprintf(w, format, args...)
}

// PrintDebugHeader writes a labeled cyan section header, used to
// separate the token dump from the statement dump.
func PrintDebugHeader(w io.Writer, label string) {
	cyanColor.Fprintf(w, "--- %s ---\n", label)
}
