// Package scope implements Shot's flat per-call environment: a pair of
// name→declaration maps with no parent chain. Modeled on the teacher's
// scope.Scope Bind-returns-existed pattern, but with the Parent link
// removed — Shot function calls start from wholly empty maps, never
// inheriting the caller's or definer's bindings.
package scope

import "github.com/shunsock/shot/internal/ast"

// Scope holds the variable and function bindings active during
// evaluation of one program or one function call. Variable and function
// names share a single namespace: binding either kind checks both maps.
type Scope struct {
	variables map[string]*ast.VarDecl
	functions map[string]*ast.FuncDecl
}

// New creates an empty Scope.
func New() *Scope {
	return &Scope{
		variables: make(map[string]*ast.VarDecl),
		functions: make(map[string]*ast.FuncDecl),
	}
}

// Taken reports whether name is already bound in this scope, as either a
// variable or a function.
func (s *Scope) Taken(name string) bool {
	if _, ok := s.variables[name]; ok {
		return true
	}
	if _, ok := s.functions[name]; ok {
		return true
	}
	return false
}

// BindVariable stores decl under its own name. It returns true if the
// name was already bound (as a variable or a function) in this scope.
func (s *Scope) BindVariable(decl *ast.VarDecl) bool {
	existed := s.Taken(decl.Name)
	s.variables[decl.Name] = decl
	return existed
}

// BindFunction stores decl under its own name. It returns true if the
// name was already bound (as a variable or a function) in this scope.
func (s *Scope) BindFunction(decl *ast.FuncDecl) bool {
	existed := s.Taken(decl.Name)
	s.functions[decl.Name] = decl
	return existed
}

// LookupVariable finds a variable declaration bound in this scope.
// Scope is flat: there is no parent to fall back to.
func (s *Scope) LookupVariable(name string) (*ast.VarDecl, bool) {
	decl, ok := s.variables[name]
	return decl, ok
}

// LookupFunction finds a function declaration bound in this scope.
func (s *Scope) LookupFunction(name string) (*ast.FuncDecl, bool) {
	decl, ok := s.functions[name]
	return decl, ok
}
