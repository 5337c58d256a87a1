package parser

import (
	"fmt"

	"github.com/shunsock/shot/internal/token"
)

// ErrorKind identifies which of the Parser's error variants occurred.
type ErrorKind string

const (
	UnexpectedTokenType ErrorKind = "UnexpectedTokenType"
	MismatchedToken     ErrorKind = "MismatchedToken"
	TypeNotFound        ErrorKind = "TypeNotFound"
	UnexpectedEof       ErrorKind = "UnexpectedEof"
)

// ParseError reports a syntax failure at a specific token position.
// Expected/Found are populated for MismatchedToken; Found alone for
// UnexpectedTokenType and TypeNotFound.
type ParseError struct {
	Kind     ErrorKind
	Line     int
	Column   int
	Expected token.Kind
	Found    token.Kind
	Text     string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MismatchedToken:
		return fmt.Sprintf("expected %s, found %s at %d:%d", e.Expected, e.Found, e.Line, e.Column)
	case UnexpectedTokenType:
		return fmt.Sprintf("unexpected token %s at %d:%d", e.Found, e.Line, e.Column)
	case TypeNotFound:
		return fmt.Sprintf("%q is not a known type at %d:%d", e.Text, e.Line, e.Column)
	case UnexpectedEof:
		return fmt.Sprintf("unexpected end of input at %d:%d", e.Line, e.Column)
	default:
		return fmt.Sprintf("parse error at %d:%d", e.Line, e.Column)
	}
}
