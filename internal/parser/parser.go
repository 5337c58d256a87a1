// Package parser implements Shot's recursive-descent parser: tokens in,
// a Program out. Two precedence levels for binary operators (additive,
// then multiplicative), a postfix type-cast suffix, and named-argument
// function calls. Grounded on the teacher's two-token lookahead and
// expectAdvance idiom, generalized from the teacher's Pratt dispatch
// table into genuine recursive descent per the grammar this language
// actually needs.
package parser

import (
	"strconv"

	"github.com/shunsock/shot/internal/ast"
	"github.com/shunsock/shot/internal/token"
	"github.com/shunsock/shot/internal/value"
)

// Parser consumes a token slice left-to-right, never backtracking past
// a token it has already committed to.
type Parser struct {
	tokens []token.Token
	pos    int
	cur    token.Token
	next   token.Token
}

// New primes the two-token lookahead on construction, the same shape as
// the teacher's NewParser/init.
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}
	p.cur = p.tokenAt(0)
	p.next = p.tokenAt(1)
	p.pos = 0
	return p
}

func (p *Parser) tokenAt(i int) token.Token {
	if i >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return token.New(token.Eof, "", 1, 1)
		}
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) advance() {
	p.pos++
	p.cur = p.next
	p.next = p.tokenAt(p.pos + 1)
}

func (p *Parser) check(k token.Kind) bool {
	return p.cur.Kind == k
}

// expect consumes the current token if it matches k, returning it;
// otherwise it returns a MismatchedToken error and does not advance.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.check(k) {
		return token.Token{}, &ParseError{
			Kind:     MismatchedToken,
			Line:     p.cur.Line,
			Column:   p.cur.Column,
			Expected: k,
			Found:    p.cur.Kind,
		}
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// ParseProgram parses the whole token stream into a Program, or returns
// the first ParseError, ScanError-shaped errors already having been
// handled upstream.
func ParseProgram(tokens []token.Token) (*ast.Program, error) {
	p := New(tokens)
	prog := &ast.Program{}
	for !p.check(token.Eof) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// parseStatement implements `statement := let_stmt | return_stmt | expr_stmt`.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.check(token.Let):
		return p.parseLetStatement()
	case p.check(token.Return):
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement implements `let_stmt := "let" declaration ";"`.
func (p *Parser) parseLetStatement() (ast.Statement, error) {
	letTok, err := p.expect(token.Let)
	if err != nil {
		return nil, err
	}

	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}

	if p.check(token.Fn) {
		return p.parseFunctionDeclaration(letTok.Line, name.Literal)
	}
	return p.parseVariableDeclaration(letTok.Line, name.Literal)
}

// parseVariableDeclaration implements `var_decl := ident ":" type "=" expression`,
// consuming the trailing ";" that let_stmt requires.
func (p *Parser) parseVariableDeclaration(line int, name string) (ast.Statement, error) {
	declaredType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: name, DeclaredType: declaredType, Initializer: init, LineNo: line}, nil
}

// parseFunctionDeclaration implements
// `fn_decl := ident ":" "fn" "=" "(" [ params ] ")" ":" type "{" body "}"`,
// consuming the trailing ";" that let_stmt requires.
func (p *Parser) parseFunctionDeclaration(line int, name string) (ast.Statement, error) {
	if _, err := p.expect(token.Fn); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if p.check(token.Eof) {
		return nil, &ParseError{Kind: UnexpectedEof, Line: p.cur.Line, Column: p.cur.Column}
	}
	if _, err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Name: name, Params: params, ReturnType: returnType, Body: body, LineNo: line}, nil
}

// parseParams implements `params := param { "," param } [ "," ]`: a
// trailing comma is permitted here, unlike at a call site.
func (p *Parser) parseParams() ([]ast.Param, error) {
	var params []ast.Param
	if p.check(token.RightParen) {
		return params, nil
	}
	for {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.check(token.Comma) {
			break
		}
		p.advance()
		if p.check(token.RightParen) {
			break
		}
	}
	return params, nil
}

// parseParam implements `param := ident ":" type`.
func (p *Parser) parseParam() (ast.Param, error) {
	name, err := p.expect(token.Identifier)
	if err != nil {
		return ast.Param{}, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return ast.Param{}, err
	}
	typ, err := p.parseType()
	if err != nil {
		return ast.Param{}, err
	}
	return ast.Param{Name: name.Literal, Type: typ}, nil
}

// parseBody implements `body := { statement } return_stmt`: it parses
// ordinary statements until it sees the `return` keyword, then parses
// and includes exactly that one trailing return statement.
func (p *Parser) parseBody() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		if p.check(token.Return) {
			ret, err := p.parseReturnStatement()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, ret)
			return stmts, nil
		}
		if p.check(token.RightBrace) {
			return nil, &ParseError{
				Kind:     MismatchedToken,
				Line:     p.cur.Line,
				Column:   p.cur.Column,
				Expected: token.Return,
				Found:    token.RightBrace,
			}
		}
		if p.check(token.Eof) {
			return nil, &ParseError{Kind: UnexpectedEof, Line: p.cur.Line, Column: p.cur.Column}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// parseReturnStatement implements `return_stmt := "return" expression ";"`.
func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	retTok, err := p.expect(token.Return)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Expr: expr, LineNo: retTok.Line}, nil
}

// parseExpressionStatement implements `expr_stmt := expression ";"`.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	line := p.cur.Line
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expr: expr, LineNo: line}, nil
}

// parseExpression implements `expression := add_expr [ "as" type "->" type ]`.
func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseAddExpr()
	if err != nil {
		return nil, err
	}
	if !p.check(token.As) {
		return left, nil
	}
	p.advance()
	from, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TypeCastArrow); err != nil {
		return nil, err
	}
	to, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.TypeCastExpr{From: from, To: to, Expr: left, LineNo: left.Line()}, nil
}

// parseAddExpr implements `add_expr := mul_expr { ("+"|"-") mul_expr }`,
// left-associative.
func (p *Parser) parseAddExpr() (ast.Expression, error) {
	left, err := p.parseMulExpr()
	if err != nil {
		return nil, err
	}
	for p.check(token.Plus) || p.check(token.Minus) {
		op := ast.Add
		if p.check(token.Minus) {
			op = ast.Subtract
		}
		p.advance()
		right, err := p.parseMulExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Operator: op, Right: right, LineNo: left.Line()}
	}
	return left, nil
}

// parseMulExpr implements `mul_expr := primary { ("*"|"/") primary }`,
// left-associative.
func (p *Parser) parseMulExpr() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.check(token.Asterisk) || p.check(token.Slash) {
		op := ast.Multiply
		if p.check(token.Slash) {
			op = ast.Divide
		}
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Operator: op, Right: right, LineNo: left.Line()}
	}
	return left, nil
}

// parsePrimary implements the `primary` production: parenthesized
// expressions (with the `()` → `none` special case), literals, and
// identifier references that may turn into named-argument calls.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	line, col := p.cur.Line, p.cur.Column

	switch {
	case p.check(token.LeftParen):
		p.advance()
		if p.check(token.RightParen) {
			p.advance()
			return &ast.LiteralExpr{Value: value.None, LineNo: line}, nil
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParen); err != nil {
			return nil, err
		}
		return inner, nil

	case p.check(token.IntegerLiteral):
		tok := p.cur
		p.advance()
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, &ParseError{Kind: UnexpectedTokenType, Line: tok.Line, Column: tok.Column, Found: token.IntegerLiteral}
		}
		return &ast.LiteralExpr{Value: value.IntegerValue{Val: n}, LineNo: tok.Line}, nil

	case p.check(token.FloatLiteral):
		tok := p.cur
		p.advance()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, &ParseError{Kind: UnexpectedTokenType, Line: tok.Line, Column: tok.Column, Found: token.FloatLiteral}
		}
		return &ast.LiteralExpr{Value: value.FloatValue{Val: f}, LineNo: tok.Line}, nil

	case p.check(token.StringLiteral):
		tok := p.cur
		p.advance()
		return &ast.LiteralExpr{Value: value.StringValue{Val: tok.Literal}, LineNo: tok.Line}, nil

	case p.check(token.NoneLiteral):
		tok := p.cur
		p.advance()
		return &ast.LiteralExpr{Value: value.None, LineNo: tok.Line}, nil

	case p.check(token.Identifier):
		name := p.cur.Literal
		p.advance()
		if p.check(token.LeftParen) {
			p.advance()
			args, err := p.parseNamedArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RightParen); err != nil {
				return nil, err
			}
			return &ast.CallOfFunction{Name: name, Arguments: args, LineNo: line}, nil
		}
		return &ast.CallOfVariable{Name: name, LineNo: line}, nil

	default:
		return nil, &ParseError{Kind: UnexpectedTokenType, Line: line, Column: col, Found: p.cur.Kind}
	}
}

// parseNamedArgs implements `named_args := named_arg { "," named_arg }`.
// A trailing comma is not permitted here.
func (p *Parser) parseNamedArgs() ([]ast.Argument, error) {
	var args []ast.Argument
	if p.check(token.RightParen) {
		return args, nil
	}
	for {
		arg, err := p.parseNamedArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.check(token.Comma) {
			break
		}
		p.advance()
	}
	return args, nil
}

// parseNamedArg implements `named_arg := ident ":" expression`.
func (p *Parser) parseNamedArg() (ast.Argument, error) {
	name, err := p.expect(token.Identifier)
	if err != nil {
		return ast.Argument{}, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return ast.Argument{}, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return ast.Argument{}, err
	}
	return ast.Argument{Name: name.Literal, Expr: expr}, nil
}

// parseType implements `type := "int" | "float" | "string" | "void" | "fn"`.
func (p *Parser) parseType() (value.Type, error) {
	tok := p.cur
	var typ value.Type
	switch tok.Kind {
	case token.IntType:
		typ = value.Integer
	case token.FloatType:
		typ = value.Float
	case token.StringType:
		typ = value.String
	case token.VoidType:
		typ = value.Void
	case token.Fn:
		typ = value.Function
	default:
		return "", &ParseError{Kind: TypeNotFound, Line: tok.Line, Column: tok.Column, Text: tok.Literal, Found: tok.Kind}
	}
	p.advance()
	return typ, nil
}
