package sema

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/ast"
	"github.com/shipsimfan/acsl/types"
)

func (a *analyzer) analyzeCodeBlock(block *ast.CodeBlock, scope *Scope, returnType types.Type) (*annotated.CodeBlock, *acslerr.SemanticError) {
	out := &annotated.CodeBlock{Depth: block.Depth}

	for _, stmt := range block.Statements {
		s, err := a.analyzeStmt(stmt, scope, returnType)
		if err != nil {
			return nil, err
		}
		out.Statements = append(out.Statements, s)
	}

	return out, nil
}

func (a *analyzer) analyzeStmt(stmt ast.Stmt, scope *Scope, returnType types.Type) (annotated.Stmt, *acslerr.SemanticError) {
	switch s := stmt.(type) {
	case *ast.Return:
		return a.analyzeReturn(s, scope, returnType)
	case *ast.VariableDefinition:
		return a.analyzeVariableDefinition(s, scope)
	case *ast.Assignment:
		return a.analyzeAssignment(s, scope)
	default:
		return nil, acslerr.NewUnknownVariable("", acslerr.Position{})
	}
}

func (a *analyzer) analyzeReturn(s *ast.Return, scope *Scope, returnType types.Type) (*annotated.Return, *acslerr.SemanticError) {
	expr, err := a.analyzeExpr(s.Expr, scope)
	if err != nil {
		return nil, err
	}
	if !types.Equal(expr.Type(), returnType) {
		return nil, acslerr.NewInvalidReturnType(expr.Type().String(), returnType.String(), s.Pos)
	}
	return &annotated.Return{Expr: expr, Pos: s.Pos}, nil
}

func (a *analyzer) analyzeVariableDefinition(s *ast.VariableDefinition, scope *Scope) (*annotated.VariableDefinition, *acslerr.SemanticError) {
	expr, err := a.analyzeExpr(s.Expr, scope)
	if err != nil {
		return nil, err
	}
	if err := scope.DefineVariable(s.Name, expr.Type(), s.Mutable, s.Pos); err != nil {
		return nil, err
	}
	return &annotated.VariableDefinition{Name: s.Name, Expr: expr, Mutable: s.Mutable, Pos: s.Pos}, nil
}

func (a *analyzer) analyzeAssignment(s *ast.Assignment, scope *Scope) (*annotated.Assignment, *acslerr.SemanticError) {
	declaredType, mutable, err := scope.GetVariable(s.Name, s.Pos)
	if err != nil {
		return nil, err
	}
	if !mutable {
		return nil, acslerr.NewAssignmentToImmutable(s.Name, s.Pos)
	}

	expr, err := a.analyzeExpr(s.Expr, scope)
	if err != nil {
		return nil, err
	}
	if !types.Equal(expr.Type(), declaredType) {
		return nil, acslerr.NewVariableTypeMismatch(s.Name, expr.Type().String(), declaredType.String(), s.Pos)
	}

	return &annotated.Assignment{Name: s.Name, Expr: expr, Pos: s.Pos}, nil
}
