package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/vesper-lang/vesper-lang/internal/lexer"
)

const (
	historyFile = ".vesper_history"
	promptMain  = ">> "
)

func runRepl(_ []string) int {
	fmt.Printf("Vesper %s token REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer saveHistory(ln, histPath)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		// os.Exit skips the deferred calls; persist history and restore
		// the terminal here before leaving.
		saveHistory(ln, histPath)
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			switch strings.TrimSpace(strings.ToLower(line)) {
			case ":quit":
				return 0
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		l := lexer.New(line)
		printTokens(os.Stdout, l.Lex())
		for _, lexErr := range l.Errors {
			fmt.Fprintf(os.Stderr, "error: %s at %d:%d\n",
				lexErr.Message, lexErr.Span.Line, lexErr.Span.Column)
		}
		ln.AppendHistory(line)
	}
}

// saveHistory writes the REPL history to path, best effort.
func saveHistory(ln *liner.State, path string) {
	if f, err := os.Create(path); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
}
