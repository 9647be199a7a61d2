package lexer

import (
	"testing"
)

func TestTokenSpan_Basic(t *testing.T) {
	input := `let x = 10;`

	l := New(input)
	tok := l.NextToken() // LET

	if tok.Span.Line != 1 {
		t.Fatalf("expected line 1, got %d", tok.Span.Line)
	}
	if tok.Span.Column != 1 {
		t.Fatalf("expected column 1, got %d", tok.Span.Column)
	}
	if tok.Span.Start != 0 {
		t.Fatalf("expected start 0, got %d", tok.Span.Start)
	}
	if tok.Span.End != 3 {
		t.Fatalf("expected end 3, got %d", tok.Span.End)
	}

	tok = l.NextToken() // IDENT "x"
	if tok.Span.Line != 1 {
		t.Fatalf("expected line 1, got %d", tok.Span.Line)
	}
	if tok.Span.Column != 5 {
		t.Fatalf("expected column 5, got %d", tok.Span.Column)
	}
	if tok.Span.Start != 4 {
		t.Fatalf("expected start 4, got %d", tok.Span.Start)
	}
	if tok.Span.End != 5 {
		t.Fatalf("expected end 5, got %d", tok.Span.End)
	}
}

func TestTokenSpan_MultiLine(t *testing.T) {
	input := `let x = 10;
let y = 20;`

	l := New(input)

	// Skip to second line
	l.NextToken() // LET
	l.NextToken() // IDENT "x"
	l.NextToken() // ASSIGN
	l.NextToken() // INT "10"
	l.NextToken() // SEMICOLON

	tok := l.NextToken() // LET on second line
	if tok.Span.Line != 2 {
		t.Fatalf("expected line 2, got %d", tok.Span.Line)
	}
	if tok.Span.Column != 1 {
		t.Fatalf("expected column 1, got %d", tok.Span.Column)
	}
	if tok.Span.Start != 12 {
		t.Fatalf("expected start 12, got %d", tok.Span.Start)
	}
	if tok.Span.End != 15 {
		t.Fatalf("expected end 15, got %d", tok.Span.End)
	}
}

func TestTokenSpan_IllegalByte(t *testing.T) {
	input := `x = @;`

	l := New(input)
	l.NextToken() // IDENT "x"
	l.NextToken() // ASSIGN

	tok := l.NextToken() // ILLEGAL "@"
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL token, got %q", tok.Type)
	}
	if tok.Span.Column != 5 {
		t.Fatalf("expected column 5, got %d", tok.Span.Column)
	}
	if tok.Span.Start != 4 || tok.Span.End != 5 {
		t.Fatalf("expected span [4,5), got [%d,%d)", tok.Span.Start, tok.Span.End)
	}
}

func TestTokenSpan_Filename(t *testing.T) {
	l := NewFile("main.vsp", `let`)

	tok := l.NextToken()
	if tok.Span.Filename != "main.vsp" {
		t.Fatalf("expected filename to be carried on spans, got %q", tok.Span.Filename)
	}
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident    string
		expected TokenType
	}{
		{"fn", FUNCTION},
		{"let", LET},
		{"Let", IDENT},
		{"FN", IDENT},
		{"lets", IDENT},
		{"fnord", IDENT},
		{"foobar", IDENT},
		{"_", IDENT},
	}

	for _, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.expected {
			t.Fatalf("LookupIdent(%q) - expected %q, got %q", tt.ident, tt.expected, got)
		}
	}
}
