package ast

import (
	"bytes"
	"fmt"
)

const debugIndentSize = 2

// DebugPrinter is a Visitor that renders a Program as an indented tree,
// one line per node, for the driver's -d/--debug dump. Modeled on the
// teacher's PrintingVisitor.
type DebugPrinter struct {
	indent int
	buf    bytes.Buffer
}

// Print renders prog and returns the accumulated text.
func (p *DebugPrinter) Print(prog *Program) string {
	for _, stmt := range prog.Statements {
		stmt.Accept(p)
	}
	return p.buf.String()
}

func (p *DebugPrinter) writeln(format string, args ...any) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteString("\n")
}

func (p *DebugPrinter) visitChildren(f func()) {
	p.indent += debugIndentSize
	f()
	p.indent -= debugIndentSize
}

func (p *DebugPrinter) VisitExpressionStatement(n *ExpressionStatement) {
	p.writeln("ExpressionStatement [%d]", n.LineNo)
	p.visitChildren(func() { n.Expr.Accept(p) })
}

func (p *DebugPrinter) VisitVarDecl(n *VarDecl) {
	p.writeln("VarDecl %s: %s [%d]", n.Name, n.DeclaredType, n.LineNo)
	p.visitChildren(func() { n.Initializer.Accept(p) })
}

func (p *DebugPrinter) VisitFuncDecl(n *FuncDecl) {
	p.writeln("FuncDecl %s(%s): %s [%d]", n.Name, formatParams(n.Params), n.ReturnType, n.LineNo)
	p.visitChildren(func() {
		for _, stmt := range n.Body {
			stmt.Accept(p)
		}
	})
}

func (p *DebugPrinter) VisitReturnStatement(n *ReturnStatement) {
	p.writeln("ReturnStatement [%d]", n.LineNo)
	p.visitChildren(func() { n.Expr.Accept(p) })
}

func (p *DebugPrinter) VisitLiteralExpr(n *LiteralExpr) {
	p.writeln("Literal %s (%s) [%d]", n.Value.String(), n.Value.Type(), n.LineNo)
}

func (p *DebugPrinter) VisitCallOfVariable(n *CallOfVariable) {
	p.writeln("CallOfVariable %s [%d]", n.Name, n.LineNo)
}

func (p *DebugPrinter) VisitCallOfFunction(n *CallOfFunction) {
	p.writeln("CallOfFunction %s [%d]", n.Name, n.LineNo)
	p.visitChildren(func() {
		for _, arg := range n.Arguments {
			p.writeln("Argument %s:", arg.Name)
			p.visitChildren(func() { arg.Expr.Accept(p) })
		}
	})
}

func (p *DebugPrinter) VisitBinaryExpr(n *BinaryExpr) {
	p.writeln("BinaryExpr %s [%d]", n.Operator, n.LineNo)
	p.visitChildren(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *DebugPrinter) VisitTypeCastExpr(n *TypeCastExpr) {
	p.writeln("TypeCastExpr %s -> %s [%d]", n.From, n.To, n.LineNo)
	p.visitChildren(func() { n.Expr.Accept(p) })
}

func formatParams(params []Param) string {
	out := ""
	for i, p := range params {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %s", p.Name, p.Type)
	}
	return out
}
