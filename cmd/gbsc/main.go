// Package main implements the gbsc front-end driver: a thin CLI over
// the internal/syntax lexer and parser.
package main

import (
	"fmt"
	"os"
	"runtime"

	"flag"

	"github.com/peterh/liner"

	"github.com/gobstones/gbsc/internal/messages"
	"github.com/gobstones/gbsc/internal/syntax"
)

var (
	emitTokens = flag.Bool("emit-tokens", false, "Output the token stream instead of parsing")
	emitAST    = flag.Bool("emit-ast", false, "Output the parsed AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	region     = flag.String("region", "", "Override the root region label for the first input file")
	repl       = flag.Bool("repl", false, "Start an interactive read-eval-print loop over the lexer/parser")
	output     = flag.String("o", "", "Write output to this file instead of stdout")
	version    = flag.Bool("version", false, "Print version")
)

const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gbsc %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: gbsc [options] <file.gbs...>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Printf("gbsc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	if *repl {
		os.Exit(runRepl())
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input files")
		flag.Usage()
		os.Exit(1)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	files, err := readFiles(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *emitTokens:
		os.Exit(runEmitTokens(out, files))
	case *emitAST:
		os.Exit(runEmitAST(out, files))
	default:
		os.Exit(runCheck(files))
	}
}

func readFiles(paths []string) ([]syntax.FileSource, error) {
	files := make([]syntax.FileSource, len(paths))
	for i, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		files[i] = syntax.FileSource{ID: path, Text: string(text)}
	}
	if *region != "" && len(files) > 0 {
		files[0].ID = *region
	}
	return files, nil
}

// runCheck parses the input and reports either success or the first
// syntax error, per spec.md §7's "first error wins" contract.
func runCheck(files []syntax.FileSource) int {
	_, warnings, err := syntax.ParseProgram(files, messages.Translate)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%s: warning: %s\n", w.Pos, w.Message)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runEmitTokens(out *os.File, files []syntax.FileSource) int {
	lex := syntax.NewLexer(files, messages.Translate)
	for {
		tok, err := lex.NextToken()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Fprintf(out, "%s\t%s\n", tok.StartPos, tok)
		if tok.IsEOF() {
			break
		}
	}
	for _, w := range lex.Warnings() {
		fmt.Fprintf(os.Stderr, "%s: warning: %s\n", w.Pos, w.Message)
	}
	return 0
}

func runEmitAST(out *os.File, files []syntax.FileSource) int {
	defs, warnings, err := syntax.ParseProgram(files, messages.Translate)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%s: warning: %s\n", w.Pos, w.Message)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	switch *astFormat {
	case "json":
		data, jsonErr := syntax.MarshalProgram(defs)
		if jsonErr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", jsonErr)
			return 1
		}
		out.Write(data)
		fmt.Fprintln(out)
	default:
		for _, d := range defs {
			syntax.Fprint(out, d)
		}
	}
	return 0
}

// runRepl drives the lexer and parser interactively over liner-read
// lines, one program per input, for poking at the grammar by hand.
func runRepl() int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := replHistoryPath()
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Println("gbsc repl — enter a program, Ctrl-D to quit")
	for {
		text, err := line.Prompt("gbsc> ")
		if err != nil {
			break
		}
		line.AppendHistory(text)

		defs, warnings, parseErr := syntax.Parse(text, messages.Translate)
		for _, w := range warnings {
			fmt.Printf("%s: warning: %s\n", w.Pos, w.Message)
		}
		if parseErr != nil {
			fmt.Println(parseErr)
			continue
		}
		for _, d := range defs {
			syntax.Fprint(os.Stdout, d)
		}
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
	return 0
}

func replHistoryPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".gbsc_history"
	}
	return dir + "/gbsc_history"
}
