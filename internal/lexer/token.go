package lexer

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // byte index in the source
	End      int    // exclusive end index
}

// Token represents a lexical token. Literal is the exact source text the
// token was scanned from: one byte for punctuation, the full matched run
// for identifiers, keywords and integers.
type Token struct {
	Type    TokenType
	Literal string
	Span    Span
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT TokenType = "IDENT" // add, foobar, x, y, ...
	INT   TokenType = "INT"   // 1343456

	// Operators
	ASSIGN TokenType = "="
	PLUS   TokenType = "+"

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"

	LPAREN TokenType = "("
	RPAREN TokenType = ")"
	LBRACE TokenType = "{"
	RBRACE TokenType = "}"

	// Keywords
	FUNCTION TokenType = "FUNCTION"
	LET      TokenType = "LET"
)

var keywords = map[string]TokenType{
	"fn":  FUNCTION,
	"let": LET,
}

// LookupIdent checks if the identifier is a keyword. Matching is exact and
// case-sensitive; there are no partial matches.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
