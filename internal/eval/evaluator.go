// Package eval implements Shot's tree-walking evaluator: a Program
// walked statement by statement against a scope.Scope of variable and
// function declarations, per the semantics in the language's component
// design. Grounded on the teacher's scope-swap-and-restore shape in
// CallFunction, generalized to fresh (non-chained) call scopes and
// named-argument binding.
package eval

import (
	"strconv"

	"github.com/shunsock/shot/internal/ast"
	"github.com/shunsock/shot/internal/scope"
	"github.com/shunsock/shot/internal/value"
)

// Evaluator walks one Program against its own global scope.
type Evaluator struct {
	global *scope.Scope
}

// New creates an Evaluator with a fresh global scope.
func New() *Evaluator {
	return &Evaluator{global: scope.New()}
}

// EvalProgram evaluates every top-level statement in order. If the
// program never executes a Return, the result is value.None.
func (e *Evaluator) EvalProgram(prog *ast.Program) (value.Value, error) {
	return e.evalStatements(prog.Statements, e.global)
}

// evalStatements runs stmts against sc, stopping (and returning the
// Return's value) at the first ReturnStatement it executes.
func (e *Evaluator) evalStatements(stmts []ast.Statement, sc *scope.Scope) (value.Value, error) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.ExpressionStatement:
			if _, err := e.evalExpr(s.Expr, sc); err != nil {
				return nil, err
			}
		case *ast.VarDecl:
			if sc.BindVariable(s) {
				return nil, &Error{Kind: ReassignmentError, Line: s.LineNo, Name: s.Name}
			}
		case *ast.FuncDecl:
			if sc.BindFunction(s) {
				return nil, &Error{Kind: ReassignmentError, Line: s.LineNo, Name: s.Name}
			}
		case *ast.ReturnStatement:
			return e.evalExpr(s.Expr, sc)
		}
	}
	return value.None, nil
}

// evalExpr evaluates a single Expression in the given scope.
func (e *Evaluator) evalExpr(expr ast.Expression, sc *scope.Scope) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.LiteralExpr:
		return n.Value, nil
	case *ast.CallOfVariable:
		return e.evalCallOfVariable(n, sc)
	case *ast.BinaryExpr:
		return e.evalBinary(n, sc)
	case *ast.TypeCastExpr:
		return e.evalTypeCast(n, sc)
	case *ast.CallOfFunction:
		return e.evalCallOfFunction(n, sc)
	default:
		return nil, &Error{Kind: UnexpectedError, Line: expr.Line(), Message: "unrecognized expression node"}
	}
}

// evalCallOfVariable re-evaluates the variable's stored initializer
// expression on every read, per the re-evaluation semantics in the
// language's design notes. Memoization would be indistinguishable here
// since the language forbids mutation, but is not required.
func (e *Evaluator) evalCallOfVariable(n *ast.CallOfVariable, sc *scope.Scope) (value.Value, error) {
	decl, ok := sc.LookupVariable(n.Name)
	if !ok {
		return nil, &Error{Kind: VariableNotFound, Line: n.LineNo, Name: n.Name}
	}
	return e.evalExpr(decl.Initializer, sc)
}

// evalCallOfFunction implements the six-step named-argument call
// protocol: lookup, argument-count check, per-argument name+type
// matching evaluated in the caller's scope, then evaluation of the body
// in a brand-new, non-inheriting scope.
func (e *Evaluator) evalCallOfFunction(n *ast.CallOfFunction, sc *scope.Scope) (value.Value, error) {
	fn, ok := sc.LookupFunction(n.Name)
	if !ok {
		return nil, &Error{Kind: FunctionNotFound, Line: n.LineNo, Name: n.Name}
	}
	if len(n.Arguments) != len(fn.Params) {
		return nil, &Error{
			Kind: ArgumentLengthError, Line: n.LineNo,
			ExpectedCount: len(fn.Params), ActualCount: len(n.Arguments),
		}
	}

	callScope := scope.New()
	for _, arg := range n.Arguments {
		argValue, err := e.evalExpr(arg.Expr, sc)
		if err != nil {
			return nil, err
		}

		param, ok := findParam(fn.Params, arg.Name)
		if !ok {
			return nil, &Error{Kind: ParameterNotFound, Line: n.LineNo, Name: arg.Name}
		}
		if argValue.Type() != param.Type {
			return nil, &Error{
				Kind: ParameterTypeMismatch, Line: n.LineNo, Name: param.Name,
				Expected: param.Type, Actual: argValue.Type(),
			}
		}

		binding := &ast.VarDecl{
			Name:         param.Name,
			DeclaredType: param.Type,
			Initializer:  &ast.LiteralExpr{Value: argValue, LineNo: n.LineNo},
			LineNo:       n.LineNo,
		}
		if callScope.BindVariable(binding) {
			return nil, &Error{Kind: ReassignmentError, Line: n.LineNo, Name: param.Name}
		}
	}

	return e.evalStatements(fn.Body, callScope)
}

func findParam(params []ast.Param, name string) (ast.Param, bool) {
	for _, p := range params {
		if p.Name == name {
			return p, true
		}
	}
	return ast.Param{}, false
}

// evalBinary dispatches a BinaryExpr per the operator/operand-type
// table: Integer/Integer and Float/Float arithmetic for all four
// operators, mixed Integer/Float widens to Float, String/String
// concatenation for "+" only, everything else is InvalidBinaryOperation.
func (e *Evaluator) evalBinary(n *ast.BinaryExpr, sc *scope.Scope) (value.Value, error) {
	left, err := e.evalExpr(n.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right, sc)
	if err != nil {
		return nil, err
	}

	switch l := left.(type) {
	case value.IntegerValue:
		switch r := right.(type) {
		case value.IntegerValue:
			return evalIntOp(n.Operator, l.Val, r.Val, n.LineNo)
		case value.FloatValue:
			return evalFloatOp(n.Operator, float64(l.Val), r.Val, n.LineNo)
		}
	case value.FloatValue:
		switch r := right.(type) {
		case value.IntegerValue:
			return evalFloatOp(n.Operator, l.Val, float64(r.Val), n.LineNo)
		case value.FloatValue:
			return evalFloatOp(n.Operator, l.Val, r.Val, n.LineNo)
		}
	case value.StringValue:
		if r, ok := right.(value.StringValue); ok && n.Operator == ast.Add {
			return value.StringValue{Val: l.Val + r.Val}, nil
		}
	}

	return nil, &Error{
		Kind: InvalidBinaryOperation, Line: n.LineNo,
		Operator: n.Operator, From: left.Type(), To: right.Type(),
	}
}

func evalIntOp(op ast.BinaryOp, l, r int64, line int) (value.Value, error) {
	switch op {
	case ast.Add:
		return value.IntegerValue{Val: l + r}, nil
	case ast.Subtract:
		return value.IntegerValue{Val: l - r}, nil
	case ast.Multiply:
		return value.IntegerValue{Val: l * r}, nil
	case ast.Divide:
		if r == 0 {
			return nil, &Error{Kind: UnexpectedError, Line: line, Message: "division by zero"}
		}
		return value.IntegerValue{Val: l / r}, nil
	}
	return nil, &Error{Kind: UnexpectedError, Line: line, Message: "unrecognized binary operator"}
}

func evalFloatOp(op ast.BinaryOp, l, r float64, line int) (value.Value, error) {
	switch op {
	case ast.Add:
		return value.FloatValue{Val: l + r}, nil
	case ast.Subtract:
		return value.FloatValue{Val: l - r}, nil
	case ast.Multiply:
		return value.FloatValue{Val: l * r}, nil
	case ast.Divide:
		if r == 0 {
			return nil, &Error{Kind: UnexpectedError, Line: line, Message: "division by zero"}
		}
		return value.FloatValue{Val: l / r}, nil
	}
	return nil, &Error{Kind: UnexpectedError, Line: line, Message: "unrecognized binary operator"}
}

// evalTypeCast converts the value of Expr from From to To per the
// fixed conversion table. Float->Integer re-parses the float's decimal
// text as an integer, so a fractional value fails the cast rather than
// being truncated.
func (e *Evaluator) evalTypeCast(n *ast.TypeCastExpr, sc *scope.Scope) (value.Value, error) {
	v, err := e.evalExpr(n.Expr, sc)
	if err != nil {
		return nil, err
	}

	switch {
	case n.From == value.Integer && n.To == value.Float:
		iv, ok := v.(value.IntegerValue)
		if !ok {
			return nil, &Error{Kind: UnexpectedError, Line: n.LineNo, Message: "cast source type mismatch"}
		}
		return value.FloatValue{Val: float64(iv.Val)}, nil

	case n.From == value.Integer && n.To == value.String:
		iv, ok := v.(value.IntegerValue)
		if !ok {
			return nil, &Error{Kind: UnexpectedError, Line: n.LineNo, Message: "cast source type mismatch"}
		}
		return value.StringValue{Val: strconv.FormatInt(iv.Val, 10)}, nil

	case n.From == value.Float && n.To == value.Integer:
		fv, ok := v.(value.FloatValue)
		if !ok {
			return nil, &Error{Kind: UnexpectedError, Line: n.LineNo, Message: "cast source type mismatch"}
		}
		text := strconv.FormatFloat(fv.Val, 'f', -1, 64)
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, &Error{Kind: FailedToTypeCast, Line: n.LineNo, From: n.From, To: n.To, Value: text}
		}
		return value.IntegerValue{Val: i}, nil

	case n.From == value.Float && n.To == value.String:
		fv, ok := v.(value.FloatValue)
		if !ok {
			return nil, &Error{Kind: UnexpectedError, Line: n.LineNo, Message: "cast source type mismatch"}
		}
		return value.StringValue{Val: strconv.FormatFloat(fv.Val, 'f', -1, 64)}, nil

	case n.From == value.String && n.To == value.Integer:
		sv, ok := v.(value.StringValue)
		if !ok {
			return nil, &Error{Kind: UnexpectedError, Line: n.LineNo, Message: "cast source type mismatch"}
		}
		i, err := strconv.ParseInt(sv.Val, 10, 64)
		if err != nil {
			return nil, &Error{Kind: FailedToTypeCast, Line: n.LineNo, From: n.From, To: n.To, Value: sv.Val}
		}
		return value.IntegerValue{Val: i}, nil

	case n.From == value.String && n.To == value.Float:
		sv, ok := v.(value.StringValue)
		if !ok {
			return nil, &Error{Kind: UnexpectedError, Line: n.LineNo, Message: "cast source type mismatch"}
		}
		f, err := strconv.ParseFloat(sv.Val, 64)
		if err != nil {
			return nil, &Error{Kind: FailedToTypeCast, Line: n.LineNo, From: n.From, To: n.To, Value: sv.Val}
		}
		return value.FloatValue{Val: f}, nil

	default:
		return nil, &Error{Kind: InvalidTypeCast, Line: n.LineNo, From: n.From, To: n.To}
	}
}
