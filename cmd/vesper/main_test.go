package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesper-lang/vesper-lang/internal/lexer"
)

func TestPrintTokens(t *testing.T) {
	var buf bytes.Buffer
	printTokens(&buf, lexer.New("let x = 5;").Lex())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	want := [][]string{
		{"LET", `"let"`, "1:1"},
		{"IDENT", `"x"`, "1:5"},
		{"=", `"="`, "1:7"},
		{"INT", `"5"`, "1:9"},
		{";", `";"`, "1:10"},
	}
	for i, fields := range want {
		assert.Equal(t, fields, strings.Fields(lines[i]), "line %d", i)
	}
}

func TestPrintTokens_Empty(t *testing.T) {
	var buf bytes.Buffer
	printTokens(&buf, nil)
	assert.Empty(t, buf.String())
}
