package diag

import "fmt"

// Stage identifies which frontend phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	CodeLexerIllegalByte Code = "LEXER_ILLEGAL_BYTE"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a frontend diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Notes    []string // additional notes displayed below the snippet
	Help     string   // optional help text
}

// WithNote returns a new diagnostic with the given note added.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp returns a new diagnostic with the given help text.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}
