package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vesper-lang/vesper-lang/internal/lexer"
)

const version = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vesper <command> [options]\n")
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  lex <file>    Tokenize a Vesper source file\n")
		fmt.Fprintf(os.Stderr, "  repl          Start the interactive token REPL\n")
		fmt.Fprintf(os.Stderr, "  version       Print the version\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "lex":
		os.Exit(runLex(args))
	case "repl":
		os.Exit(runRepl(args))
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

// printTokens writes one token per line: type, literal and position.
func printTokens(w io.Writer, tokens []lexer.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-10s %-10q %d:%d\n", tok.Type, tok.Literal, tok.Span.Line, tok.Span.Column)
	}
}
