// Command shot is the Shot language driver: it reads source from -i or
// -f, runs it through the scanner, parser, and evaluator, and prints the
// result or the first error encountered. Flag handling and colorized
// output are modeled on the teacher's main/main.go; the -r/--repl mode
// is modeled on repl/repl.go.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/shunsock/shot/internal/ast"
	"github.com/shunsock/shot/internal/diagnostic"
	"github.com/shunsock/shot/internal/eval"
	"github.com/shunsock/shot/internal/lexer"
	"github.com/shunsock/shot/internal/loader"
	"github.com/shunsock/shot/internal/parser"
)

const (
	version = "v0.1.0"
	prompt  = "shot >>> "
)

var (
	greenColor = color.New(color.FgGreen)
	blueColor  = color.New(color.FgBlue)
)

func main() {
	inline := flag.String("i", "", "evaluate the given source text")
	filePath := flag.String("f", "", "evaluate the given source file")
	debug := flag.Bool("d", false, "dump tokens and parsed statements before evaluating")
	flag.BoolVar(debug, "debug", false, "alias for -d")
	repl := flag.Bool("r", false, "start an interactive read-eval-print loop")
	flag.BoolVar(repl, "repl", false, "alias for -r")
	flag.Parse()

	if *repl {
		runRepl()
		return
	}

	var content, path *string
	if *inline != "" {
		content = inline
	}
	if *filePath != "" {
		path = filePath
	}

	src, err := loader.Load(content, path)
	if err != nil {
		diagnostic.PrintError(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(os.Stdout, src.Text, *debug); err != nil {
		diagnostic.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// run scans, parses, and evaluates text, optionally dumping the token
// and statement lists first. It returns the first error from any stage.
func run(w io.Writer, text string, debug bool) error {
	tokens, err := lexer.New(text).ScanAll()
	if err != nil {
		return err
	}

	if debug {
		diagnostic.PrintDebugHeader(w, "tokens")
		for _, tok := range tokens {
			fmt.Fprintf(w, "%s\n", tok)
		}
	}

	prog, err := parser.ParseProgram(tokens)
	if err != nil {
		return err
	}

	if debug {
		diagnostic.PrintDebugHeader(w, "statements")
		printer := &ast.DebugPrinter{}
		fmt.Fprint(w, printer.Print(prog))
	}

	result, err := eval.New().EvalProgram(prog)
	if err != nil {
		return err
	}

	diagnostic.PrintResult(w, result)
	return nil
}

// runRepl starts an interactive session: one statement per line,
// evaluated against a persistent top-level evaluator, with panic
// recovery so a single bad line never kills the session.
func runRepl() {
	blueColor.Println("----------------------------------------------------------------")
	greenColor.Println("Shot - an interpreted expression language")
	blueColor.Println("----------------------------------------------------------------")
	diagnostic.PrintInfo(os.Stdout, "Version: %s\n", version)
	diagnostic.PrintInfo(os.Stdout, "Type an expression or statement and press enter\n")
	diagnostic.PrintInfo(os.Stdout, "Ctrl+D to quit\n")
	blueColor.Println("----------------------------------------------------------------")

	rl, err := readline.New(prompt)
	if err != nil {
		diagnostic.PrintError(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	evaluator := eval.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Println("bye")
			return
		}
		if line == "" {
			continue
		}
		rl.SaveHistory(line)
		evalLine(evaluator, line)
	}
}

func evalLine(evaluator *eval.Evaluator, line string) {
	defer func() {
		if r := recover(); r != nil {
			diagnostic.PrintError(os.Stdout, fmt.Errorf("%v", r))
		}
	}()

	tokens, err := lexer.New(line).ScanAll()
	if err != nil {
		diagnostic.PrintError(os.Stdout, err)
		return
	}
	prog, err := parser.ParseProgram(tokens)
	if err != nil {
		diagnostic.PrintError(os.Stdout, err)
		return
	}
	result, err := evaluator.EvalProgram(prog)
	if err != nil {
		diagnostic.PrintError(os.Stdout, err)
		return
	}
	diagnostic.PrintResult(os.Stdout, result)
}
