package lexer

import (
	"strconv"

	"github.com/vesper-lang/vesper-lang/internal/diag"
)

type LexerErrorKind int

const (
	ErrIllegalByte LexerErrorKind = iota
)

type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrIllegalByte:
		return diag.CodeLexerIllegalByte
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Lexer represents the lexer state. Input is treated as ASCII by
// construction: a byte outside every recognized class is not a fault, it
// lexes as an ILLEGAL token and scanning resumes at the following byte.
type Lexer struct {
	input        []byte
	position     int    // index of the byte under examination
	readPosition int    // index of the next byte to read
	ch           byte   // current byte (0 = EOF)
	line         int    // current line number (1-based)
	column       int    // current column number (1-based)
	filename     string // optional, carried on every span

	Errors []LexerError
}

func (l *Lexer) addError(kind LexerErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, LexerError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	return NewFile("", input)
}

// NewFile creates a new lexer whose token spans carry the given filename.
func NewFile(filename, input string) *Lexer {
	l := &Lexer{
		input:    []byte(input),
		line:     1,
		column:   0, // will be 1 after the first readChar()
		filename: filename,
	}
	l.readChar() // move to first character
	return l
}

// readChar advances the lexer to the next byte. It is the only mutator of
// the position/readPosition pair; every scan below is composed from it.
// Immediately after a call, readPosition == position+1 and line/column
// reflect the byte now at position.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPosition]
	}
	// The byte being stepped over decides whether a new line starts.
	if prev := l.readPosition - 1; prev >= 0 && prev < len(l.input) && l.input[prev] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.position = l.readPosition
	l.readPosition++
}

// spanStart captures the position of the byte about to be tokenized.
func (l *Lexer) spanStart() (line, column, pos int) {
	return l.line, l.column, l.position
}

// makeToken creates a token with span information
func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, literal string) Token {
	return Token{
		Type:    tokType,
		Literal: literal,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads an identifier or keyword. The identifier body is
// letters and underscores only: a digit ends the run, it does not extend it.
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

// readNumber reads a run of decimal digits. There are no signs, decimal
// points or exponents; any such byte ends the run and lexes on its own.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

// NextToken returns the next token from the input. Once the input is
// exhausted every further call keeps returning an EOF token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	startLine, startColumn, startPos := l.spanStart()

	var tokType TokenType
	switch l.ch {
	case '=':
		tokType = ASSIGN
	case '+':
		tokType = PLUS
	case ',':
		tokType = COMMA
	case ';':
		tokType = SEMICOLON
	case '(':
		tokType = LPAREN
	case ')':
		tokType = RPAREN
	case '{':
		tokType = LBRACE
	case '}':
		tokType = RBRACE

	case 0:
		// The sentinel is absorbing: no advance happens here.
		return l.makeToken(EOF, startLine, startColumn, startPos, startPos, string(l.ch))

	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return l.makeToken(LookupIdent(literal), startLine, startColumn, startPos, l.position, literal)
		}
		if isDigit(l.ch) {
			literal := l.readNumber()
			return l.makeToken(INT, startLine, startColumn, startPos, l.position, literal)
		}
		// Slice the source rather than converting l.ch: a string
		// conversion would UTF-8 encode bytes >= 0x80 into two bytes.
		literal := string(l.input[l.position : l.position+1])
		l.readChar()
		tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.position, literal)
		l.addError(
			ErrIllegalByte,
			"illegal character "+strconv.Quote(literal),
			tok.Span,
		)
		return tok
	}

	literal := string(l.ch)
	l.readChar()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.position, literal)
}

// Lex drains the input, returning every token strictly preceding EOF, in
// source order. The EOF token itself is never appended.
func (l *Lexer) Lex() []Token {
	var tokens []Token
	for tok := l.NextToken(); tok.Type != EOF; tok = l.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
