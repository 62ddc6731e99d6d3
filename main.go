// Command ember is the command-line interface for the ember language
// interpreter.
//
// It provides a complete lexer, parser and tree-walking evaluator for ember
// expressions, supporting:
//
//   - Arithmetic, comparison and logical expressions
//   - int, num, str, bool, none, range, tuple, list, map and tagged values
//   - Function definitions and single-argument (curried) application
//   - let bindings, with scoping, if/then/else and assert
//   - The container (`[]`, `?`) and cast (`as`, `is`) operators
//
// ember supports three subcommands:
//   - eval EXPR: evaluate an expression given on the command line
//   - run FILE: evaluate an ember source file
//   - repl: start an interactive read-eval-print loop
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conneroisu/emberlang/internal/heap"
	"github.com/conneroisu/emberlang/internal/value"
	"github.com/conneroisu/emberlang/pkg/eval"
	"github.com/conneroisu/emberlang/pkg/lexer"
	"github.com/conneroisu/emberlang/pkg/parser"
)

// dumpDepth bounds how deeply the CLI prints nested compound values.
const dumpDepth = 32

var verbose bool

var errorColor = color.New(color.FgRed, color.Bold)
var promptColor = color.New(color.FgCyan, color.Bold)

var rootCmd = &cobra.Command{
	Use:   "emberlang",
	Short: "ember language interpreter",
}

var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "evaluate an expression given on the command line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		return runExpression(args[0])
	},
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "evaluate an ember source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		return runFile(args[0])
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start an interactive read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		runREPL()

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging and heap statistics")
	rootCmd.AddCommand(evalCmd, runCmd, replCmd)
}

func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runExpression evaluates a single ember expression and prints the result.
func runExpression(expr string) error {
	pool := heap.New()
	ev := eval.New(pool)

	result, err := evaluate(ev, expr)
	if err != nil {
		errorColor.Fprintln(os.Stderr, err)

		return err
	}

	fmt.Println(value.DumpString(result, dumpDepth))
	logStats(pool)

	return nil
}

// runFile reads and evaluates an ember source file.
func runFile(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "error reading file: %v\n", err)

		return err
	}

	return runExpression(string(content))
}

// evaluate runs the full lex/parse/eval pipeline against an existing
// evaluator, letting the REPL reuse one pool and built-in set across lines.
func evaluate(ev *eval.Evaluator, source string) (value.Value, error) {
	l := lexer.New(source)
	p := parser.New(l)

	ast, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	result, err := ev.Eval(ast)
	if err != nil {
		return nil, fmt.Errorf("evaluation error: %w", err)
	}

	return result, nil
}

func logStats(pool *heap.Pool) {
	if !verbose {
		return
	}

	stats := pool.Stats()
	args := []any{"live", stats.Live, "allocated", stats.Allocated, "collected", stats.Collected}

	if rssKB, err := heap.MaxRSSKB(); err == nil {
		args = append(args, "max_rss_kb", rssKB)
	}

	slog.Debug("heap stats", args...)
}

// runREPL starts an interactive read-eval-print loop. Expressions are
// evaluated one at a time, but share a single evaluator instance so built-ins
// and pool state persist across lines; ember has no top-level assignment
// statement, so variable bindings do not carry over between lines.
func runREPL() {
	fmt.Println("ember repl - type :quit to exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	pool := heap.New()
	ev := eval.New(pool)

	for {
		promptColor.Print("ember> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == ":quit" || line == ":q" {
			break
		}

		if strings.HasPrefix(line, ":") {
			handleReplCommand(line, pool)

			continue
		}

		result, err := evaluate(ev, line)
		if err != nil {
			errorColor.Println(err)

			continue
		}

		fmt.Println(value.DumpString(result, dumpDepth))
	}
}

func handleReplCommand(cmd string, pool *heap.Pool) {
	switch cmd {
	case ":help", ":h":
		fmt.Println("available commands:")
		fmt.Println("  :help, :h    show this help")
		fmt.Println("  :stats       show heap statistics")
		fmt.Println("  :quit, :q    exit the repl")
	case ":stats":
		stats := pool.Stats()
		fmt.Printf("live=%d allocated=%d collected=%d\n", stats.Live, stats.Allocated, stats.Collected)
	default:
		fmt.Printf("unknown command: %s\n", cmd)
		fmt.Println("type :help for available commands")
	}
}
