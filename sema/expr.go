package sema

import (
	"github.com/shipsimfan/acsl/acslerr"
	"github.com/shipsimfan/acsl/annotated"
	"github.com/shipsimfan/acsl/ast"
	"github.com/shipsimfan/acsl/types"
)

func (a *analyzer) analyzeExpr(expr ast.Expr, scope *Scope) (annotated.Expr, *acslerr.SemanticError) {
	switch e := expr.(type) {
	case *ast.Variable:
		return a.analyzeVariable(e, scope)
	case *ast.FunctionCall:
		return a.analyzeFunctionCall(e, scope)
	case *ast.FloatLiteral:
		return &annotated.FloatLiteral{Value: e.Value, Pos: e.Pos}, nil
	case *ast.StructCreation:
		return a.analyzeStructCreation(e, scope)
	case *ast.MemberAccess:
		return a.analyzeMemberAccess(e, scope)
	case *ast.Multiply:
		return a.analyzeMultiply(e, scope)
	case *ast.Add:
		return a.analyzeAdd(e, scope)
	case *ast.Subtract:
		return a.analyzeSubtract(e, scope)
	case *ast.Empty:
		return &annotated.Empty{Pos: e.Pos}, nil
	default:
		return nil, acslerr.NewUnknownVariable("", acslerr.Position{})
	}
}

func (a *analyzer) analyzeVariable(e *ast.Variable, scope *Scope) (*annotated.Variable, *acslerr.SemanticError) {
	t, _, err := scope.GetVariable(e.Name, e.Pos)
	if err != nil {
		return nil, err
	}
	return &annotated.Variable{Name: e.Name, T: t, Pos: e.Pos}, nil
}

func (a *analyzer) analyzeFunctionCall(e *ast.FunctionCall, scope *Scope) (*annotated.FunctionCall, *acslerr.SemanticError) {
	fn, ok := a.unit.Functions[e.Name]
	if !ok {
		fn, ok = builtins()[e.Name]
	}
	if !ok {
		return nil, acslerr.NewUnknownFunction(e.Name, e.Pos)
	}

	if len(e.Args) != len(fn.Params) {
		return nil, acslerr.NewInvalidParameterCount(e.Name, len(e.Args), len(fn.Params), e.Pos)
	}

	args := make([]annotated.Expr, len(e.Args))
	for i, argExpr := range e.Args {
		arg, err := a.analyzeExpr(argExpr, scope)
		if err != nil {
			return nil, err
		}
		if !types.Equal(arg.Type(), fn.Params[i].Type) {
			return nil, acslerr.NewInvalidParameterType(e.Name, i, arg.Type().String(), fn.Params[i].Type.String(), e.Pos)
		}
		if isTextureType(fn.Params[i].Type) {
			if err := a.checkTextureArgument(e.Name, argExpr, e.Pos); err != nil {
				return nil, err
			}
		}
		args[i] = arg
	}

	return &annotated.FunctionCall{Name: e.Name, Args: args, T: fn.ReturnType, Pos: e.Pos}, nil
}

func isTextureType(t types.Type) bool {
	p, ok := types.Underlying(t).(*types.Primitive)
	return ok && p.Kind == types.TextureKind
}

// checkTextureArgument enforces that a texture-typed builtin argument
// directly names a top-level texture declaration (e.g. "albedo", not
// "h.tex" or any other computed texture-typed expression). The HLSL
// backend resolves a texture's paired sampler register purely from that
// declared name, so any other shape of expression has no register to
// generate code against.
func (a *analyzer) checkTextureArgument(function string, argExpr ast.Expr, pos acslerr.Position) *acslerr.SemanticError {
	v, ok := argExpr.(*ast.Variable)
	if !ok {
		return acslerr.NewInvalidTextureArgument(function, pos)
	}
	for _, tex := range a.unit.Textures {
		if tex != nil && tex.Name == v.Name {
			return nil
		}
	}
	return acslerr.NewInvalidTextureArgument(function, pos)
}

func (a *analyzer) analyzeStructCreation(e *ast.StructCreation, scope *Scope) (*annotated.StructCreation, *acslerr.SemanticError) {
	s, ok := a.structsByName[e.Name]
	if !ok {
		return nil, acslerr.NewUnknownStructure(e.Name, e.Pos)
	}

	inits := make([]annotated.StructInit, 0, len(s.Members))
	provided := make(map[string]annotated.Expr, len(e.Inits))

	for _, init := range e.Inits {
		if _, _, ok := lookupMember(s, init.Name); !ok {
			return nil, acslerr.NewInvalidMember(s.Name, init.Name, e.Pos)
		}
		expr, err := a.analyzeExpr(init.Expr, scope)
		if err != nil {
			return nil, err
		}
		provided[init.Name] = expr
	}

	for _, m := range s.Members {
		expr, ok := provided[m.Name]
		if !ok {
			return nil, acslerr.NewMissingStructureMember(s.Name, m.Name, e.Pos)
		}
		if !types.Equal(expr.Type(), m.Type) {
			return nil, acslerr.NewInvalidMemberType(s.Name, m.Name, expr.Type().String(), m.Type.String(), e.Pos)
		}
		inits = append(inits, annotated.StructInit{Name: m.Name, Expr: expr})
	}

	return &annotated.StructCreation{StructType: s, Inits: inits, Pos: e.Pos}, nil
}

func lookupMember(s *types.Struct, name string) (types.StructMember, int, bool) {
	for i, m := range s.Members {
		if m.Name == name {
			return m, i, true
		}
	}
	return types.StructMember{}, -1, false
}

func (a *analyzer) analyzeMemberAccess(e *ast.MemberAccess, scope *Scope) (*annotated.MemberAccess, *acslerr.SemanticError) {
	inner, err := a.analyzeExpr(e.Expr, scope)
	if err != nil {
		return nil, err
	}
	t, err := types.MemberType(inner.Type(), e.Name, e.Pos)
	if err != nil {
		return nil, err
	}
	return &annotated.MemberAccess{Expr: inner, Name: e.Name, T: t, Pos: e.Pos}, nil
}

func (a *analyzer) analyzeMultiply(e *ast.Multiply, scope *Scope) (*annotated.Multiply, *acslerr.SemanticError) {
	left, err := a.analyzeExpr(e.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := a.analyzeExpr(e.Right, scope)
	if err != nil {
		return nil, err
	}
	t, err := types.ProductType(left.Type(), right.Type(), e.Pos)
	if err != nil {
		return nil, err
	}
	return &annotated.Multiply{Left: left, Right: right, T: t, Pos: e.Pos}, nil
}

func (a *analyzer) analyzeAdd(e *ast.Add, scope *Scope) (*annotated.Add, *acslerr.SemanticError) {
	left, err := a.analyzeExpr(e.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := a.analyzeExpr(e.Right, scope)
	if err != nil {
		return nil, err
	}
	t, err := types.SumType(left.Type(), right.Type(), e.Pos)
	if err != nil {
		return nil, err
	}
	return &annotated.Add{Left: left, Right: right, T: t, Pos: e.Pos}, nil
}

func (a *analyzer) analyzeSubtract(e *ast.Subtract, scope *Scope) (*annotated.Subtract, *acslerr.SemanticError) {
	left, err := a.analyzeExpr(e.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := a.analyzeExpr(e.Right, scope)
	if err != nil {
		return nil, err
	}
	t, err := types.SumType(left.Type(), right.Type(), e.Pos)
	if err != nil {
		return nil, err
	}
	return &annotated.Subtract{Left: left, Right: right, T: t, Pos: e.Pos}, nil
}
