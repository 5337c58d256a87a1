// Package token defines the lexical tokens produced by the scanner and
// consumed by the parser.
package token

import "fmt"

// Kind identifies the syntactic category of a Token. Modeled as a string
// type, the same choice the teacher's lexer package makes, so token kinds
// print readably without a lookup table.
type Kind string

const (
	// Eof marks the end of the input stream. Exactly one appears, last,
	// in every scan result.
	Eof Kind = "EOF"

	// Keywords
	Let    Kind = "LET"
	As     Kind = "AS"
	Fn     Kind = "FN"
	Return Kind = "RETURN"

	// Type names
	IntType    Kind = "INT_TYPE"
	FloatType  Kind = "FLOAT_TYPE"
	StringType Kind = "STRING_TYPE"
	VoidType   Kind = "VOID_TYPE"

	// Identifier
	Identifier Kind = "IDENTIFIER"

	// Literals
	IntegerLiteral Kind = "INTEGER_LITERAL"
	FloatLiteral   Kind = "FLOAT_LITERAL"
	StringLiteral  Kind = "STRING_LITERAL"
	NoneLiteral    Kind = "NONE_LITERAL"

	// Punctuation
	Plus          Kind = "+"
	Minus         Kind = "-"
	Asterisk      Kind = "*"
	Slash         Kind = "/"
	Equal         Kind = "="
	Colon         Kind = ":"
	Comma         Kind = ","
	LessThan      Kind = "<"
	GreaterThan   Kind = ">"
	LeftParen     Kind = "("
	RightParen    Kind = ")"
	LeftBrace     Kind = "{"
	RightBrace    Kind = "}"
	Semicolon     Kind = ";"
	TypeCastArrow Kind = "->"
)

// keywords maps the exact spelling of a reserved word to its Kind. Any
// identifier run not present here is a plain Identifier.
var keywords = map[string]Kind{
	"let":    Let,
	"as":     As,
	"fn":     Fn,
	"return": Return,
	"none":   NoneLiteral,
	"void":   VoidType,
	"int":    IntType,
	"float":  FloatType,
	"string": StringType,
}

// LookupIdentifier classifies an already-scanned alphanumeric run as
// either a keyword Kind or a plain Identifier.
func LookupIdentifier(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Identifier
}

// Token is a single lexical unit: its Kind, its literal text as it
// appears in the source (for a string literal, the text between the
// quotes), and its 1-based source position.
type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Column  int
}

// New builds a Token at the given position.
func New(kind Kind, literal string, line, column int) Token {
	return Token{Kind: kind, Literal: literal, Line: line, Column: column}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Kind, t.Literal, t.Line, t.Column)
}
