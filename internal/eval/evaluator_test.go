package eval

import (
	"testing"

	"github.com/shunsock/shot/internal/lexer"
	"github.com/shunsock/shot/internal/parser"
	"github.com/shunsock/shot/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (value.Value, error) {
	t.Helper()
	toks, err := lexer.New(src).ScanAll()
	require.NoError(t, err)
	prog, err := parser.ParseProgram(toks)
	require.NoError(t, err)
	return New().EvalProgram(prog)
}

func TestEval_SimpleAddition(t *testing.T) {
	v, err := run(t, `return 1 + 1;`)
	require.NoError(t, err)
	assert.Equal(t, value.IntegerValue{Val: 2}, v)
}

func TestEval_NoReturn_YieldsNone(t *testing.T) {
	v, err := run(t, `let x: int = 2; let y: int = 3; x * y + 1;`)
	require.NoError(t, err)
	assert.Equal(t, value.None, v)
}

func TestEval_ReturnStopsEvaluation(t *testing.T) {
	v, err := run(t, `let x: int = 2; return x + 40;`)
	require.NoError(t, err)
	assert.Equal(t, value.IntegerValue{Val: 42}, v)
}

func TestEval_FunctionCallWithNamedArguments(t *testing.T) {
	src := `let add: fn = (a: int, b: int): int { return a + b; }; return add(a: 20, b: 22);`
	v, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, value.IntegerValue{Val: 42}, v)
}

func TestEval_StringConcatenation_DiscardedAtStatementLevel(t *testing.T) {
	v, err := run(t, `"hello" + " world";`)
	require.NoError(t, err)
	assert.Equal(t, value.None, v)
}

func TestEval_StringConcatenation_ViaReturn(t *testing.T) {
	v, err := run(t, `return "hello" + " world";`)
	require.NoError(t, err)
	assert.Equal(t, value.StringValue{Val: "hello world"}, v)
}

func TestEval_Reassignment(t *testing.T) {
	_, err := run(t, `let x: int = 1; let x: int = 2;`)
	require.Error(t, err)
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, ReassignmentError, evalErr.Kind)
	assert.Equal(t, "x", evalErr.Name)
}

func TestEval_DivisionByZero(t *testing.T) {
	_, err := run(t, `1 / 0;`)
	require.Error(t, err)
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, UnexpectedError, evalErr.Kind)
}

func TestEval_FailedTypeCast(t *testing.T) {
	_, err := run(t, `"abc" as string -> int;`)
	require.Error(t, err)
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, FailedToTypeCast, evalErr.Kind)
}

func TestEval_TypeCastRoundTrip(t *testing.T) {
	v, err := run(t, `return (42 as int -> string) as string -> int;`)
	require.NoError(t, err)
	assert.Equal(t, value.IntegerValue{Val: 42}, v)
}

func TestEval_ScopeIsolation(t *testing.T) {
	src := `let f: fn = (): void { let inner: int = 1; return inner; }; f(); inner;`
	_, err := run(t, src)
	require.Error(t, err)
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, VariableNotFound, evalErr.Kind)
}

func TestEval_FunctionScopeDoesNotInheritCaller(t *testing.T) {
	src := `let x: int = 99; let f: fn = (): int { return x; }; return f();`
	_, err := run(t, src)
	require.Error(t, err)
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, VariableNotFound, evalErr.Kind)
}

func TestEval_IdempotentReEvaluation(t *testing.T) {
	src := `let x: int = 21; return x + x;`
	v, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, value.IntegerValue{Val: 42}, v)
}

func TestEval_ArgumentLengthError(t *testing.T) {
	src := `let f: fn = (a: int): int { return a; }; return f(a: 1, b: 2);`
	_, err := run(t, src)
	require.Error(t, err)
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, ArgumentLengthError, evalErr.Kind)
	assert.Equal(t, 1, evalErr.ExpectedCount)
	assert.Equal(t, 2, evalErr.ActualCount)
}

func TestEval_ParameterTypeMismatch(t *testing.T) {
	src := `let f: fn = (a: int): int { return a; }; return f(a: "nope");`
	_, err := run(t, src)
	require.Error(t, err)
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, ParameterTypeMismatch, evalErr.Kind)
}

func TestEval_IntegerOverflow_Wraps(t *testing.T) {
	src := `return 9223372036854775807 + 1;`
	v, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, value.IntegerValue{Val: -9223372036854775808}, v)
}
