package ast

import (
	"strings"
	"testing"

	"github.com/shunsock/shot/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestDebugPrinter_Print(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&VarDecl{
				Name:         "x",
				DeclaredType: value.Integer,
				Initializer:  &LiteralExpr{Value: value.IntegerValue{Val: 1}, LineNo: 1},
				LineNo:       1,
			},
			&ReturnStatement{
				Expr: &BinaryExpr{
					Left:     &CallOfVariable{Name: "x", LineNo: 2},
					Operator: Add,
					Right:    &LiteralExpr{Value: value.IntegerValue{Val: 2}, LineNo: 2},
					LineNo:   2,
				},
				LineNo: 2,
			},
		},
	}

	out := (&DebugPrinter{}).Print(prog)

	assert.True(t, strings.Contains(out, "VarDecl x: int"))
	assert.True(t, strings.Contains(out, "ReturnStatement"))
	assert.True(t, strings.Contains(out, "BinaryExpr +"))
	assert.True(t, strings.Contains(out, "CallOfVariable x"))
}

func TestDebugPrinter_FuncDeclAndCall(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&FuncDecl{
				Name:       "add",
				Params:     []Param{{Name: "a", Type: value.Integer}, {Name: "b", Type: value.Integer}},
				ReturnType: value.Integer,
				Body: []Statement{
					&ReturnStatement{
						Expr: &BinaryExpr{
							Left:     &CallOfVariable{Name: "a", LineNo: 1},
							Operator: Add,
							Right:    &CallOfVariable{Name: "b", LineNo: 1},
							LineNo:   1,
						},
						LineNo: 1,
					},
				},
				LineNo: 1,
			},
			&ExpressionStatement{
				Expr: &CallOfFunction{
					Name: "add",
					Arguments: []Argument{
						{Name: "a", Expr: &LiteralExpr{Value: value.IntegerValue{Val: 1}, LineNo: 2}},
					},
					LineNo: 2,
				},
				LineNo: 2,
			},
		},
	}

	out := (&DebugPrinter{}).Print(prog)

	assert.True(t, strings.Contains(out, "FuncDecl add(a: int, b: int): int"))
	assert.True(t, strings.Contains(out, "CallOfFunction add"))
	assert.True(t, strings.Contains(out, "Argument a:"))
}
