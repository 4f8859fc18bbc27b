package ast

import "github.com/shipsimfan/acsl/acslerr"

// Stmt is a tagged variant: Return, VariableDefinition, or Assignment.
type Stmt interface {
	stmtNode()
}

// Return evaluates an expression and returns it from the enclosing function.
type Return struct {
	Expr Expr
	Pos  acslerr.Position
}

func (*Return) stmtNode() {}

// VariableDefinition introduces a new binding in the current scope.
type VariableDefinition struct {
	Name    string
	Expr    Expr
	Mutable bool
	Pos     acslerr.Position
}

func (*VariableDefinition) stmtNode() {}

// Assignment rebinds an existing variable.
type Assignment struct {
	Name string
	Expr Expr
	Pos  acslerr.Position
}

func (*Assignment) stmtNode() {}

// CodeBlock owns an indent depth and an ordered sequence of statements.
type CodeBlock struct {
	Depth      int
	Statements []Stmt
}
