// Package lexer implements the Shot scanner: a byte-cursor tokenizer
// that turns source text into a Token sequence terminated by exactly one
// Eof token.
package lexer

import (
	"strconv"
	"strings"

	"github.com/shunsock/shot/internal/token"
)

// Lexer scans Shot source text one byte at a time, tracking 1-based
// line/column position the way the teacher's lexer.Lexer does.
type Lexer struct {
	src     string
	pos     int
	current byte
	line    int
	column  int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	l := &Lexer{src: src, line: 1, column: 1}
	if len(src) > 0 {
		l.current = src[0]
	}
	return l
}

// SourceLines splits text into its constituent lines, used by callers to
// attach the offending source line to a ScanError for diagnostics.
func SourceLines(text string) []string {
	return strings.Split(text, "\n")
}

func (l *Lexer) advance() {
	if l.current == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
	if l.pos >= len(l.src) {
		l.current = 0
		return
	}
	l.current = l.src[l.pos]
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) sourceLine() string {
	lines := SourceLines(l.src)
	if l.line-1 >= 0 && l.line-1 < len(lines) {
		return lines[l.line-1]
	}
	return ""
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlphaNumeric(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// skipWhitespaceAndComments advances past runs of whitespace and `#`
// line comments, mirroring the teacher's IgnoreWhitespacesAndComments
// but with Shot's single comment style.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch {
		case isSpace(l.current):
			l.advance()
		case l.current == '#':
			for !l.atEnd() && l.current != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// NextToken returns the next Token in the stream, or a ScanError if the
// input cannot be tokenized starting at the current position.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespaceAndComments()

	line, column := l.line, l.column

	if l.atEnd() {
		return token.New(token.Eof, "", line, column), nil
	}

	c := l.current

	switch {
	case isAlpha(c):
		return l.scanIdentifier()
	case isDigit(c):
		return l.scanNumber()
	case c == '"':
		return l.scanString()
	}

	single := func(k token.Kind) (token.Token, error) {
		l.advance()
		return token.New(k, string(c), line, column), nil
	}

	switch c {
	case '+':
		return single(token.Plus)
	case '-':
		if l.peek() == '>' {
			l.advance()
			l.advance()
			return token.New(token.TypeCastArrow, "->", line, column), nil
		}
		return single(token.Minus)
	case '*':
		return single(token.Asterisk)
	case '/':
		return single(token.Slash)
	case '=':
		return single(token.Equal)
	case ':':
		return single(token.Colon)
	case ',':
		return single(token.Comma)
	case '<':
		return single(token.LessThan)
	case '>':
		return single(token.GreaterThan)
	case '(':
		return single(token.LeftParen)
	case ')':
		return single(token.RightParen)
	case '{':
		return single(token.LeftBrace)
	case '}':
		return single(token.RightBrace)
	case ';':
		return single(token.Semicolon)
	default:
		return token.Token{}, &ScanError{
			Kind:       UnexpectedToken,
			Line:       line,
			Column:     column,
			Text:       string(c),
			SourceLine: l.sourceLine(),
		}
	}
}

func (l *Lexer) scanIdentifier() (token.Token, error) {
	line, column := l.line, l.column
	start := l.pos
	for !l.atEnd() && isAlphaNumeric(l.current) {
		l.advance()
	}
	text := l.src[start:l.pos]
	return token.New(token.LookupIdentifier(text), text, line, column), nil
}

// scanNumber reads a run of digits with at most one '.', per spec.md
// §4.1. A run immediately followed by an alphabetic character or by a
// second '.' is an InvalidCharacterInNumberLiteral error; otherwise the
// text is parsed as
// a FloatLiteral (if it contained '.') or an IntegerLiteral.
func (l *Lexer) scanNumber() (token.Token, error) {
	line, column := l.line, l.column
	start := l.pos
	hasDot := false
	for !l.atEnd() && (isDigit(l.current) || (l.current == '.' && !hasDot)) {
		if l.current == '.' {
			hasDot = true
		}
		l.advance()
	}

	if !l.atEnd() && (isAlpha(l.current) || l.current == '.') {
		for !l.atEnd() && (isAlphaNumeric(l.current) || l.current == '.') {
			l.advance()
		}
		text := l.src[start:l.pos]
		return token.Token{}, &ScanError{
			Kind:       InvalidCharacterInNumberLiteral,
			Line:       line,
			Column:     column,
			Text:       text,
			SourceLine: l.sourceLine(),
		}
	}

	text := l.src[start:l.pos]
	if hasDot {
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return token.Token{}, &ScanError{
				Kind:       InvalidFloatLiteralFound,
				Line:       line,
				Column:     column,
				Text:       text,
				SourceLine: l.sourceLine(),
			}
		}
		return token.New(token.FloatLiteral, text, line, column), nil
	}

	if _, err := strconv.ParseInt(text, 10, 64); err != nil {
		return token.Token{}, &ScanError{
			Kind:       InvalidIntegerLiteralFound,
			Line:       line,
			Column:     column,
			Text:       text,
			SourceLine: l.sourceLine(),
		}
	}
	return token.New(token.IntegerLiteral, text, line, column), nil
}

// scanString reads a verbatim string literal (no escape sequences) per
// spec.md §4.1/§6.
func (l *Lexer) scanString() (token.Token, error) {
	line, column := l.line, l.column
	l.advance() // opening quote
	var sb strings.Builder
	for !l.atEnd() && l.current != '"' {
		sb.WriteByte(l.current)
		l.advance()
	}
	if l.atEnd() {
		return token.Token{}, &ScanError{
			Kind:       UnterminatedString,
			Line:       line,
			Column:     column,
			Text:       sb.String(),
			SourceLine: l.sourceLine(),
		}
	}
	l.advance() // closing quote
	return token.New(token.StringLiteral, sb.String(), line, column), nil
}

// ScanAll tokenizes the whole source, returning tokens up to and
// including Eof, or the first ScanError encountered.
func (l *Lexer) ScanAll() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.Eof {
			return tokens, nil
		}
	}
}
