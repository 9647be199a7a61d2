package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/vesper-lang/vesper-lang/internal/diag"
	"github.com/vesper-lang/vesper-lang/internal/lexer"
)

func runLex(args []string) int {
	fs := flag.NewFlagSet("lex", flag.ContinueOnError)
	dump := fs.Bool("dump", false, "dump the raw token slice for debugging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: vesper lex [--dump] <file>\n")
		return 2
	}
	file := fs.Arg(0)

	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vesper: cannot read %s: %v\n", file, err)
		return 1
	}

	l := lexer.NewFile(file, string(src))
	tokens := l.Lex()

	if *dump {
		spew.Fdump(os.Stdout, tokens)
	} else {
		printTokens(os.Stdout, tokens)
	}

	if len(l.Errors) > 0 {
		formatter := diag.NewFormatter(os.Stderr)
		formatter.AddSource(file, string(src))
		for _, lexErr := range l.Errors {
			formatter.Format(lexErr.ToDiagnostic().
				WithNote("scanning resumed at the following character"))
		}
		return 1
	}
	return 0
}
