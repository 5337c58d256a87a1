// Package eval is single-threaded and sequential: EvalProgram makes no
// use of goroutines or cancellation. Its recursion depth at any point
// equals the AST's nesting depth plus the number of live (unreturned)
// function calls on the Go call stack, since evalCallOfFunction
// recurses through evalStatements for the callee's body rather than
// trampolining through an explicit work stack. A sufficiently deep
// expression or a long, non-terminating chain of function calls fails
// as an ordinary Go stack overflow; there is no bytecode VM or explicit
// call-frame stack to bound it at a Shot-level error instead.
package eval
