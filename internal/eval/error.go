package eval

import (
	"fmt"

	"github.com/shunsock/shot/internal/ast"
	"github.com/shunsock/shot/internal/value"
)

// ErrorKind identifies which of the Evaluator's error variants occurred.
type ErrorKind string

const (
	FunctionNotFound       ErrorKind = "FunctionNotFound"
	VariableNotFound       ErrorKind = "VariableNotFound"
	ReassignmentError      ErrorKind = "ReassignmentError"
	ParameterNotFound      ErrorKind = "ParameterNotFound"
	ParameterTypeMismatch  ErrorKind = "ParameterTypeMismatch"
	ArgumentLengthError    ErrorKind = "ArgumentLengthError"
	InvalidTypeCast        ErrorKind = "InvalidTypeCast"
	FailedToTypeCast       ErrorKind = "FailedToTypeCast"
	InvalidBinaryOperation ErrorKind = "InvalidBinaryOperation"
	UnexpectedError        ErrorKind = "UnexpectedError"
)

// Error reports a runtime evaluation failure, always tagged with the
// current source line.
type Error struct {
	Kind          ErrorKind
	Line          int
	Name          string
	Expected      value.Type
	Actual        value.Type
	ExpectedCount int
	ActualCount   int
	Operator      ast.BinaryOp
	From          value.Type
	To            value.Type
	Value         string
	Message       string
}

func (e *Error) Error() string {
	switch e.Kind {
	case FunctionNotFound:
		return fmt.Sprintf("[%d] function %q not found", e.Line, e.Name)
	case VariableNotFound:
		return fmt.Sprintf("[%d] variable %q not found", e.Line, e.Name)
	case ReassignmentError:
		return fmt.Sprintf("[%d] %q is already bound in this scope", e.Line, e.Name)
	case ParameterNotFound:
		return fmt.Sprintf("[%d] no parameter named %q", e.Line, e.Name)
	case ParameterTypeMismatch:
		return fmt.Sprintf("[%d] parameter %q expected %s, got %s", e.Line, e.Name, e.Expected, e.Actual)
	case ArgumentLengthError:
		return fmt.Sprintf("[%d] expected %d arguments, got %d", e.Line, e.ExpectedCount, e.ActualCount)
	case InvalidTypeCast:
		return fmt.Sprintf("[%d] cannot cast %s to %s", e.Line, e.From, e.To)
	case FailedToTypeCast:
		return fmt.Sprintf("[%d] failed to cast %q from %s to %s", e.Line, e.Value, e.From, e.To)
	case InvalidBinaryOperation:
		return fmt.Sprintf("[%d] invalid operation %s between %s and %s", e.Line, e.Operator, e.From, e.To)
	case UnexpectedError:
		return fmt.Sprintf("[%d] %s", e.Line, e.Message)
	default:
		return fmt.Sprintf("[%d] evaluation error", e.Line)
	}
}
