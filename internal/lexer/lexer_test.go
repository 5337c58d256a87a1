package lexer

import (
	"testing"

	"github.com/shunsock/shot/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	name     string
	input    string
	expected []token.Kind
}

func TestScanAll_Kinds(t *testing.T) {
	tests := []tokenCase{
		{
			name:  "integers and operators",
			input: `1 + 23 * 4 - 5 / 6`,
			expected: []token.Kind{
				token.IntegerLiteral, token.Plus, token.IntegerLiteral, token.Asterisk,
				token.IntegerLiteral, token.Minus, token.IntegerLiteral, token.Slash,
				token.IntegerLiteral, token.Eof,
			},
		},
		{
			name:  "float literal",
			input: `3.14 + 0.5`,
			expected: []token.Kind{
				token.FloatLiteral, token.Plus, token.FloatLiteral, token.Eof,
			},
		},
		{
			name:  "keywords",
			input: `let x: int = 1; fn f(): void { return none; }`,
			expected: []token.Kind{
				token.Let, token.Identifier, token.Colon, token.IntType, token.Equal,
				token.IntegerLiteral, token.Semicolon,
				token.Fn, token.Identifier, token.LeftParen, token.RightParen, token.Colon, token.VoidType,
				token.LeftBrace, token.Return, token.NoneLiteral, token.Semicolon, token.RightBrace,
				token.Eof,
			},
		},
		{
			name:  "type cast arrow",
			input: `1 as int -> float`,
			expected: []token.Kind{
				token.IntegerLiteral, token.As, token.IntType, token.TypeCastArrow, token.FloatType, token.Eof,
			},
		},
		{
			name:  "string literal",
			input: `"hello world"`,
			expected: []token.Kind{
				token.StringLiteral, token.Eof,
			},
		},
		{
			name:  "comment is ignored",
			input: "1 # this is a comment\n+ 2",
			expected: []token.Kind{
				token.IntegerLiteral, token.Plus, token.IntegerLiteral, token.Eof,
			},
		},
		{
			name:  "minus not followed by angle bracket stays minus",
			input: `5 - 2`,
			expected: []token.Kind{
				token.IntegerLiteral, token.Minus, token.IntegerLiteral, token.Eof,
			},
		},
		{
			name:     "empty input yields only eof",
			input:    ``,
			expected: []token.Kind{token.Eof},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := New(tc.input).ScanAll()
			require.NoError(t, err)
			require.Len(t, toks, len(tc.expected))
			for i, k := range tc.expected {
				assert.Equalf(t, k, toks[i].Kind, "token %d", i)
			}
		})
	}
}

func TestScanAll_Literals(t *testing.T) {
	toks, err := New(`"abc" 42 1.5 count`).ScanAll()
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, "abc", toks[0].Literal)
	assert.Equal(t, "42", toks[1].Literal)
	assert.Equal(t, "1.5", toks[2].Literal)
	assert.Equal(t, "count", toks[3].Literal)
}

func TestNextToken_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"unexpected token", `@`, UnexpectedToken},
		{"invalid char in number", `12abc`, InvalidCharacterInNumberLiteral},
		{"second dot in number", `1.2.3`, InvalidCharacterInNumberLiteral},
		{"unterminated string", `"abc`, UnterminatedString},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.input).ScanAll()
			require.Error(t, err)
			var scanErr *ScanError
			require.ErrorAs(t, err, &scanErr)
			assert.Equal(t, tc.kind, scanErr.Kind)
		})
	}
}

func TestLexer_LineAndColumnTracking(t *testing.T) {
	toks, err := New("1\n22 + 3").ScanAll()
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 1, toks[1].Column)
}

func TestSourceLines(t *testing.T) {
	lines := SourceLines("a\nb\nc")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}
